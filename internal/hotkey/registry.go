// Package hotkey registers global key bindings and dispatches presses into
// trigger chains.
package hotkey

import (
	"sync"

	"github.com/keysummon/keysummon/internal/model"
)

// Registry is the owned collection of registered hotkeys, guarded behind a
// single accessor. The engine receives its inputs as parameters; nothing
// reads this through ambient globals.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]model.HotkeyConfig
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]model.HotkeyConfig),
	}
}

// Register adds or replaces a hotkey by its ID.
func (r *Registry) Register(cfg model.HotkeyConfig) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[cfg.ID] = cfg
}

// Unregister removes a hotkey by ID. Removing an unknown ID is a no-op.
func (r *Registry) Unregister(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, id)
}

// ReplaceAll swaps the full set of registered hotkeys, used when syncing
// from the store after configuration changes.
func (r *Registry) ReplaceAll(cfgs []model.HotkeyConfig) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = make(map[string]model.HotkeyConfig, len(cfgs))
	for _, cfg := range cfgs {
		r.entries[cfg.ID] = cfg
	}
}

// Get retrieves a hotkey by ID.
func (r *Registry) Get(id string) (model.HotkeyConfig, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cfg, ok := r.entries[id]
	return cfg, ok
}

// List returns all registered hotkeys.
func (r *Registry) List() []model.HotkeyConfig {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]model.HotkeyConfig, 0, len(r.entries))
	for _, cfg := range r.entries {
		result = append(result, cfg)
	}
	return result
}

// IDs returns the registered hotkey IDs.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.entries))
	for id := range r.entries {
		ids = append(ids, id)
	}
	return ids
}

// Match returns the first hotkey whose binding is equivalent to the given
// one, if any.
func (r *Registry) Match(binding model.HotkeyBinding) (model.HotkeyConfig, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, cfg := range r.entries {
		if BindingsMatch(cfg.Binding, binding) {
			return cfg, true
		}
	}
	return model.HotkeyConfig{}, false
}
