package hotkey

import (
	"errors"
	"log/slog"
	"sync"

	hook "github.com/robotn/gohook"

	"github.com/keysummon/keysummon/internal/input"
	"github.com/keysummon/keysummon/internal/model"
)

// Dispatcher receives exactly one trigger per qualifying key press. It must
// return quickly; chain work happens on the dispatcher's own goroutines.
type Dispatcher interface {
	Trigger(name string, action model.HotkeyAction, post model.PostActionsConfig)
}

// Listener owns the global keyboard hook and forwards presses of registered
// bindings to the dispatcher.
type Listener struct {
	registry   *Registry
	dispatcher Dispatcher
	logger     *slog.Logger

	mu      sync.Mutex
	running bool
	done    chan bool
}

// NewListener creates a listener over the given registry.
func NewListener(registry *Registry, dispatcher Dispatcher, logger *slog.Logger) *Listener {
	if logger == nil {
		logger = slog.Default()
	}
	return &Listener{
		registry:   registry,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// hookKeys translates a binding into the key-name list the hook library
// expects: the main key followed by its modifiers.
func hookKeys(binding model.HotkeyBinding) ([]string, error) {
	key, err := input.ResolveKey(binding.Key)
	if err != nil {
		return nil, err
	}
	keys := []string{key}
	for _, m := range binding.Modifiers {
		mod, err := input.ResolveModifier(m)
		if err != nil {
			return nil, err
		}
		keys = append(keys, mod)
	}
	return keys, nil
}

// Start registers all enabled hotkeys with the OS hook and begins listening
// on a background goroutine. Bindings that fail to resolve are skipped with
// a warning rather than failing the rest.
func (l *Listener) Start() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.running {
		return errors.New("listener already running")
	}

	registered := 0
	for _, cfg := range l.registry.List() {
		if !cfg.Enabled {
			continue
		}
		keys, err := hookKeys(cfg.Binding)
		if err != nil {
			l.logger.Warn("skipping unresolvable binding", "hotkey", cfg.DisplayName(), "error", err)
			continue
		}
		cfg := cfg
		hook.Register(hook.KeyDown, keys, func(e hook.Event) {
			l.dispatcher.Trigger(cfg.DisplayName(), cfg.Action, cfg.PostActions)
		})
		registered++
	}
	l.logger.Info("hotkey listener started", "registered", registered)

	events := hook.Start()
	l.done = hook.Process(events)
	l.running = true
	return nil
}

// Stop tears down the OS hook and waits for the event loop to drain.
func (l *Listener) Stop() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.running {
		return
	}
	hook.End()
	<-l.done
	l.running = false
}

// Reload re-registers bindings after registry changes. The hook library
// keeps registrations internally, so a full stop/start cycle is required.
func (l *Listener) Reload() error {
	l.Stop()
	return l.Start()
}
