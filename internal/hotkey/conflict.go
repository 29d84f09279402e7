package hotkey

import (
	"sort"
	"strings"

	"github.com/keysummon/keysummon/internal/model"
)

// NormalizeModifier folds modifier aliases to a canonical name for
// comparison (ctrl/control → ctrl, meta/super/win/cmd/command → meta).
func NormalizeModifier(modifier string) string {
	switch strings.ToLower(modifier) {
	case "ctrl", "control":
		return "ctrl"
	case "alt":
		return "alt"
	case "shift":
		return "shift"
	case "meta", "super", "win", "cmd", "command":
		return "meta"
	default:
		return strings.ToLower(modifier)
	}
}

// normalizedModifiers returns the sorted canonical modifier set, dropping
// empty entries.
func normalizedModifiers(mods []string) []string {
	result := make([]string, 0, len(mods))
	for _, m := range mods {
		n := NormalizeModifier(m)
		if n != "" {
			result = append(result, n)
		}
	}
	sort.Strings(result)
	return result
}

// BindingsMatch reports whether two bindings are equivalent: same key
// (case-insensitive) and the same modifier set regardless of order.
func BindingsMatch(a, b model.HotkeyBinding) bool {
	if !strings.EqualFold(a.Key, b.Key) {
		return false
	}
	modsA := normalizedModifiers(a.Modifiers)
	modsB := normalizedModifiers(b.Modifiers)
	if len(modsA) != len(modsB) {
		return false
	}
	for i := range modsA {
		if modsA[i] != modsB[i] {
			return false
		}
	}
	return true
}

// systemHotkeys lists well-known OS chords a user binding should avoid.
var systemHotkeys = []model.HotkeyBinding{
	// Windows
	{Modifiers: []string{"ctrl", "alt"}, Key: "delete"},
	{Modifiers: []string{"alt"}, Key: "tab"},
	{Modifiers: []string{"alt"}, Key: "f4"},
	{Modifiers: []string{"meta"}, Key: "l"},
	{Modifiers: []string{"meta"}, Key: "d"},
	{Modifiers: []string{"meta"}, Key: "e"},
	{Modifiers: []string{"meta"}, Key: "r"},
	{Modifiers: []string{"meta"}, Key: "tab"},
	{Modifiers: []string{"ctrl", "shift"}, Key: "escape"},
	// macOS
	{Modifiers: []string{"meta"}, Key: "q"},
	{Modifiers: []string{"meta"}, Key: "w"},
	{Modifiers: []string{"meta", "shift"}, Key: "3"},
	{Modifiers: []string{"meta", "shift"}, Key: "4"},
	{Modifiers: []string{"meta", "shift"}, Key: "5"},
	{Modifiers: []string{"meta"}, Key: "space"},
	{Modifiers: []string{"ctrl"}, Key: "space"},
}

// ConflictsWithSystem reports whether a binding collides with a well-known
// system chord.
func ConflictsWithSystem(binding model.HotkeyBinding) bool {
	for _, sys := range systemHotkeys {
		if BindingsMatch(sys, binding) {
			return true
		}
	}
	return false
}

// CheckConflict reports whether a binding collides with a registered hotkey,
// optionally excluding one ID (useful when editing an existing hotkey).
func CheckConflict(registry *Registry, binding model.HotkeyBinding, excludeID string) bool {
	for _, cfg := range registry.List() {
		if cfg.ID == excludeID {
			continue
		}
		if BindingsMatch(cfg.Binding, binding) {
			return true
		}
	}
	return false
}
