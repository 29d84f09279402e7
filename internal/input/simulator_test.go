package input

import (
	"errors"
	"fmt"
	"runtime"
	"testing"

	"github.com/keysummon/keysummon/internal/model"
)

// recordingBackend captures key transitions in order.
type recordingBackend struct {
	ops     []string
	failKey string
}

func (b *recordingBackend) record(op, key string) error {
	if key == b.failKey {
		return fmt.Errorf("injected failure on %s", key)
	}
	b.ops = append(b.ops, op+":"+key)
	return nil
}

func (b *recordingBackend) KeyDown(key string) error { return b.record("down", key) }
func (b *recordingBackend) KeyUp(key string) error   { return b.record("up", key) }
func (b *recordingBackend) KeyTap(key string) error  { return b.record("tap", key) }

func assertOps(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("ops = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ops[%d] = %q, want %q (full: %v)", i, got[i], want[i], got)
		}
	}
}

func TestPasteSendsPlatformChord(t *testing.T) {
	backend := &recordingBackend{}
	sim := NewWithBackend(backend)

	if err := sim.Paste(); err != nil {
		t.Fatalf("Paste() unexpected error: %v", err)
	}

	mod := "ctrl"
	if runtime.GOOS == "darwin" {
		mod = "cmd"
	}
	assertOps(t, backend.ops, []string{"down:" + mod, "tap:v", "up:" + mod})
}

func TestSimulateKeystrokeReleasesInReverse(t *testing.T) {
	backend := &recordingBackend{}
	sim := NewWithBackend(backend)

	ks := model.Keystroke{Modifiers: []string{"ctrl", "shift"}, Key: "K"}
	if err := sim.SimulateKeystroke(ks); err != nil {
		t.Fatalf("SimulateKeystroke() unexpected error: %v", err)
	}

	assertOps(t, backend.ops, []string{
		"down:ctrl",
		"down:shift",
		"tap:k",
		"up:shift",
		"up:ctrl",
	})
}

func TestSimulateKeystrokeNoModifiers(t *testing.T) {
	backend := &recordingBackend{}
	sim := NewWithBackend(backend)

	if err := sim.SimulateKeystroke(model.Keystroke{Key: "ENTER"}); err != nil {
		t.Fatalf("SimulateKeystroke() unexpected error: %v", err)
	}
	assertOps(t, backend.ops, []string{"tap:enter"})
}

func TestSimulateKeystrokeUnknownModifierPressesNothing(t *testing.T) {
	backend := &recordingBackend{}
	sim := NewWithBackend(backend)

	ks := model.Keystroke{Modifiers: []string{"ctrl", "hyper"}, Key: "a"}
	err := sim.SimulateKeystroke(ks)
	if err == nil {
		t.Fatal("SimulateKeystroke() expected error for unknown modifier")
	}
	var unknownMod *UnknownModifierError
	if !errors.As(err, &unknownMod) {
		t.Fatalf("error = %v, want *UnknownModifierError", err)
	}
	if len(backend.ops) != 0 {
		t.Fatalf("backend received %v before validation finished", backend.ops)
	}
}

func TestSimulateKeystrokeUnknownKeyPressesNothing(t *testing.T) {
	backend := &recordingBackend{}
	sim := NewWithBackend(backend)

	err := sim.SimulateKeystroke(model.Keystroke{Modifiers: []string{"ctrl"}, Key: "NOSUCH"})
	if err == nil {
		t.Fatal("SimulateKeystroke() expected error for unknown key")
	}
	if len(backend.ops) != 0 {
		t.Fatalf("backend received %v before validation finished", backend.ops)
	}
}

func TestSimulateKeystrokeBackendFailurePropagates(t *testing.T) {
	backend := &recordingBackend{failKey: "k"}
	sim := NewWithBackend(backend)

	ks := model.Keystroke{Modifiers: []string{"ctrl"}, Key: "k"}
	if err := sim.SimulateKeystroke(ks); err == nil {
		t.Fatal("SimulateKeystroke() expected backend failure to propagate")
	}
	// The modifier press happened before the failing tap.
	assertOps(t, backend.ops, []string{"down:ctrl"})
}
