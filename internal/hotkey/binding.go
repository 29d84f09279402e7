package hotkey

import (
	"errors"
	"strings"

	"github.com/keysummon/keysummon/internal/model"
)

// ParseBinding parses a textual chord such as "ctrl+shift+k" into a binding.
// The last token is the key; everything before it is a modifier.
func ParseBinding(s string) (model.HotkeyBinding, error) {
	parts := strings.Split(s, "+")
	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			tokens = append(tokens, p)
		}
	}
	if len(tokens) == 0 {
		return model.HotkeyBinding{}, errors.New("empty hotkey")
	}

	key := tokens[len(tokens)-1]
	mods := tokens[:len(tokens)-1]
	binding := model.HotkeyBinding{
		Modifiers: make([]string, 0, len(mods)),
		Key:       key,
	}
	for _, m := range mods {
		switch NormalizeModifier(m) {
		case "ctrl", "alt", "shift", "meta":
			binding.Modifiers = append(binding.Modifiers, NormalizeModifier(m))
		default:
			return model.HotkeyBinding{}, errors.New("unknown modifier: " + m)
		}
	}
	return binding, nil
}
