package hotkey

import (
	"testing"

	"github.com/keysummon/keysummon/internal/model"
)

func TestParseBinding(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    model.HotkeyBinding
		wantErr bool
	}{
		{
			name: "plain chord",
			in:   "ctrl+shift+k",
			want: model.HotkeyBinding{Modifiers: []string{"ctrl", "shift"}, Key: "k"},
		},
		{
			name: "spaces and case",
			in:   "Ctrl + Alt + F5",
			want: model.HotkeyBinding{Modifiers: []string{"ctrl", "alt"}, Key: "F5"},
		},
		{
			name: "modifier aliases fold",
			in:   "cmd+space",
			want: model.HotkeyBinding{Modifiers: []string{"meta"}, Key: "space"},
		},
		{
			name: "bare key",
			in:   "f12",
			want: model.HotkeyBinding{Modifiers: []string{}, Key: "f12"},
		},
		{name: "empty", in: "", wantErr: true},
		{name: "only separators", in: " + + ", wantErr: true},
		{name: "unknown modifier", in: "hyper+k", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBinding(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseBinding(%q) = %+v, want error", tt.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseBinding(%q) unexpected error: %v", tt.in, err)
			}
			if got.Key != tt.want.Key || len(got.Modifiers) != len(tt.want.Modifiers) {
				t.Fatalf("ParseBinding(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
			for i := range tt.want.Modifiers {
				if got.Modifiers[i] != tt.want.Modifiers[i] {
					t.Fatalf("ParseBinding(%q) modifiers = %v, want %v", tt.in, got.Modifiers, tt.want.Modifiers)
				}
			}
		})
	}
}

func TestBindingsMatch(t *testing.T) {
	tests := []struct {
		name string
		a, b model.HotkeyBinding
		want bool
	}{
		{
			name: "identical",
			a:    model.HotkeyBinding{Modifiers: []string{"ctrl"}, Key: "k"},
			b:    model.HotkeyBinding{Modifiers: []string{"ctrl"}, Key: "k"},
			want: true,
		},
		{
			name: "modifier order irrelevant",
			a:    model.HotkeyBinding{Modifiers: []string{"shift", "ctrl"}, Key: "k"},
			b:    model.HotkeyBinding{Modifiers: []string{"ctrl", "shift"}, Key: "k"},
			want: true,
		},
		{
			name: "key case-insensitive",
			a:    model.HotkeyBinding{Modifiers: []string{"ctrl"}, Key: "K"},
			b:    model.HotkeyBinding{Modifiers: []string{"ctrl"}, Key: "k"},
			want: true,
		},
		{
			name: "alias modifiers fold",
			a:    model.HotkeyBinding{Modifiers: []string{"cmd"}, Key: "q"},
			b:    model.HotkeyBinding{Modifiers: []string{"meta"}, Key: "q"},
			want: true,
		},
		{
			name: "different key",
			a:    model.HotkeyBinding{Modifiers: []string{"ctrl"}, Key: "k"},
			b:    model.HotkeyBinding{Modifiers: []string{"ctrl"}, Key: "j"},
			want: false,
		},
		{
			name: "extra modifier",
			a:    model.HotkeyBinding{Modifiers: []string{"ctrl"}, Key: "k"},
			b:    model.HotkeyBinding{Modifiers: []string{"ctrl", "shift"}, Key: "k"},
			want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BindingsMatch(tt.a, tt.b); got != tt.want {
				t.Errorf("BindingsMatch = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConflictsWithSystem(t *testing.T) {
	tests := []struct {
		name    string
		binding model.HotkeyBinding
		want    bool
	}{
		{name: "alt tab", binding: model.HotkeyBinding{Modifiers: []string{"alt"}, Key: "tab"}, want: true},
		{name: "cmd q via alias", binding: model.HotkeyBinding{Modifiers: []string{"cmd"}, Key: "q"}, want: true},
		{name: "ctrl shift escape", binding: model.HotkeyBinding{Modifiers: []string{"shift", "ctrl"}, Key: "Escape"}, want: true},
		{name: "harmless chord", binding: model.HotkeyBinding{Modifiers: []string{"ctrl", "shift"}, Key: "k"}, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ConflictsWithSystem(tt.binding); got != tt.want {
				t.Errorf("ConflictsWithSystem(%+v) = %v, want %v", tt.binding, got, tt.want)
			}
		})
	}
}

func TestRegistryAndCheckConflict(t *testing.T) {
	reg := NewRegistry()
	existing := model.HotkeyConfig{
		ID:      "one",
		Binding: model.HotkeyBinding{Modifiers: []string{"ctrl", "shift"}, Key: "k"},
	}
	reg.Register(existing)

	same := model.HotkeyBinding{Modifiers: []string{"shift", "ctrl"}, Key: "K"}
	if !CheckConflict(reg, same, "") {
		t.Error("equivalent binding not flagged as conflict")
	}
	if CheckConflict(reg, same, "one") {
		t.Error("excluded ID still flagged, editing a hotkey would always conflict with itself")
	}
	other := model.HotkeyBinding{Modifiers: []string{"ctrl"}, Key: "j"}
	if CheckConflict(reg, other, "") {
		t.Error("unrelated binding flagged as conflict")
	}

	if _, ok := reg.Match(same); !ok {
		t.Error("Match failed for equivalent binding")
	}
	reg.Unregister("one")
	if _, ok := reg.Get("one"); ok {
		t.Error("entry survives Unregister")
	}
}

func TestRegistryReplaceAll(t *testing.T) {
	reg := NewRegistry()
	reg.Register(model.HotkeyConfig{ID: "old"})

	reg.ReplaceAll([]model.HotkeyConfig{{ID: "a"}, {ID: "b"}})

	if _, ok := reg.Get("old"); ok {
		t.Error("stale entry survived ReplaceAll")
	}
	if len(reg.List()) != 2 {
		t.Errorf("List() = %d entries, want 2", len(reg.List()))
	}
}

func TestHookKeys(t *testing.T) {
	binding := model.HotkeyBinding{Modifiers: []string{"ctrl", "meta"}, Key: "Enter"}
	keys, err := hookKeys(binding)
	if err != nil {
		t.Fatalf("hookKeys: %v", err)
	}
	want := []string{"enter", "ctrl", "cmd"}
	if len(keys) != len(want) {
		t.Fatalf("keys = %v, want %v", keys, want)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("keys[%d] = %q, want %q", i, keys[i], want[i])
		}
	}

	if _, err := hookKeys(model.HotkeyBinding{Modifiers: []string{"hyper"}, Key: "a"}); err == nil {
		t.Error("expected error for unresolvable modifier")
	}
}
