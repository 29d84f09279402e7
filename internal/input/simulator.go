// Package input produces synthetic keyboard events for post-actions.
package input

import (
	"fmt"
	"runtime"

	"github.com/keysummon/keysummon/internal/model"
)

// Backend sends individual key transitions to the OS. Implementations must
// tolerate being called from any goroutine; calls for one simulator are
// always serialized.
type Backend interface {
	// KeyDown presses and holds a key.
	KeyDown(key string) error
	// KeyUp releases a held key.
	KeyUp(key string) error
	// KeyTap presses and releases a key once.
	KeyTap(key string) error
}

// Simulator sends synthetic keystrokes through a platform backend. One
// simulator is constructed per action batch and discarded afterward.
type Simulator struct {
	backend Backend
	pasteMod string
}

// New acquires the platform input backend. Failure (e.g. a headless session)
// is fatal to the whole action batch.
func New() (*Simulator, error) {
	backend, err := newPlatformBackend()
	if err != nil {
		return nil, fmt.Errorf("failed to create input simulator: %w", err)
	}
	return NewWithBackend(backend), nil
}

// NewWithBackend wires a simulator to an explicit backend. Tests inject a
// recording fake here.
func NewWithBackend(backend Backend) *Simulator {
	return &Simulator{
		backend:  backend,
		pasteMod: pasteModifier(),
	}
}

// pasteModifier returns the platform paste chord modifier, resolved once per
// simulator construction.
func pasteModifier() string {
	if runtime.GOOS == "darwin" {
		return "cmd"
	}
	return "ctrl"
}

// Paste sends the platform paste chord as press, click, release. The target
// application must see a standard chord, not an atomic paste primitive.
func (s *Simulator) Paste() error {
	if err := s.backend.KeyDown(s.pasteMod); err != nil {
		return fmt.Errorf("failed to press paste modifier: %w", err)
	}
	if err := s.backend.KeyTap("v"); err != nil {
		return fmt.Errorf("failed to press v: %w", err)
	}
	if err := s.backend.KeyUp(s.pasteMod); err != nil {
		return fmt.Errorf("failed to release paste modifier: %w", err)
	}
	return nil
}

// SimulateKeystroke presses the keystroke's modifiers in listed order, clicks
// the key once, and releases the modifiers in reverse order. Some target
// applications misinterpret the chord if release order differs from LIFO.
func (s *Simulator) SimulateKeystroke(ks model.Keystroke) error {
	mods := make([]string, len(ks.Modifiers))
	for i, m := range ks.Modifiers {
		resolved, err := ResolveModifier(m)
		if err != nil {
			return err
		}
		mods[i] = resolved
	}
	key, err := ResolveKey(ks.Key)
	if err != nil {
		return err
	}

	for _, m := range mods {
		if err := s.backend.KeyDown(m); err != nil {
			return fmt.Errorf("failed to press modifier %s: %w", m, err)
		}
	}
	if err := s.backend.KeyTap(key); err != nil {
		return fmt.Errorf("failed to press key %s: %w", key, err)
	}
	for i := len(mods) - 1; i >= 0; i-- {
		if err := s.backend.KeyUp(mods[i]); err != nil {
			return fmt.Errorf("failed to release modifier %s: %w", mods[i], err)
		}
	}
	return nil
}
