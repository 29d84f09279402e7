// KeySummon - Global Hotkey Launcher
// A daemon and TUI for binding global hotkeys to program launches, AI calls,
// and post-action input chains.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/keysummon/keysummon/internal/ai"
	"github.com/keysummon/keysummon/internal/app"
	"github.com/keysummon/keysummon/internal/audio"
	"github.com/keysummon/keysummon/internal/chain"
	"github.com/keysummon/keysummon/internal/clipboard"
	"github.com/keysummon/keysummon/internal/hotkey"
	"github.com/keysummon/keysummon/internal/input"
	"github.com/keysummon/keysummon/internal/model"
	"github.com/keysummon/keysummon/internal/notify"
	"github.com/keysummon/keysummon/internal/process"
	"github.com/keysummon/keysummon/internal/store"
	"github.com/keysummon/keysummon/internal/ui"
)

const (
	appName    = "KeySummon"
	appVersion = "0.1.0"
)

func main() {
	configDir, err := app.ConfigDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error getting config directory: %v\n", err)
		os.Exit(1)
	}
	if err := os.MkdirAll(configDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating config directory: %v\n", err)
		os.Exit(1)
	}

	config, err := app.LoadConfig(configDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	logger, logFile, err := newLogger(configDir, config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()
	slog.SetDefault(logger)

	s, err := store.NewJSONStore(configDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing store: %v\n", err)
		os.Exit(1)
	}
	defer s.Close()

	// Chain execution wiring.
	registry := hotkey.NewRegistry()
	aiRegistry := ai.NewRegistry(s)
	executor := chain.NewExecutor(
		func() (chain.Simulator, error) {
			sim, err := input.New()
			if err != nil {
				return nil, err
			}
			return sim, nil
		},
		clipboard.New(),
		audio.NewRecorder(),
		aiRegistry,
	)
	dispatcher := notify.NewDispatcher()
	notifier := notify.NewChainNotifier(dispatcher, func() model.NotificationConfig {
		return config.Notifications
	})
	coordinator := chain.NewCoordinator(process.NewLauncher(), executor, notifier, logger)
	listener := hotkey.NewListener(registry, coordinator, logger)

	syncRegistry := func() error {
		hotkeys, err := s.ListHotkeys(context.Background())
		if err != nil {
			return err
		}
		registry.ReplaceAll(hotkeys)
		return nil
	}
	reload := func() error {
		if err := syncRegistry(); err != nil {
			return err
		}
		return listener.Reload()
	}

	if err := syncRegistry(); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading hotkeys: %v\n", err)
		os.Exit(1)
	}
	listenerUp := true
	if err := listener.Start(); err != nil {
		// The settings UI stays usable without the OS hook, e.g. over SSH.
		logger.Warn("hotkey listener unavailable", "error", err)
		listenerUp = false
	}
	defer func() {
		if listenerUp {
			listener.Stop()
		}
	}()

	application := ui.New(ui.Deps{
		Store:       s,
		Coordinator: coordinator,
		Reload:      reload,
		ConflictCheck: func(binding model.HotkeyBinding, excludeID string) string {
			if hotkey.ConflictsWithSystem(binding) {
				return "binding conflicts with a system hotkey"
			}
			if hotkey.CheckConflict(registry, binding, excludeID) {
				return "binding conflicts with an existing hotkey"
			}
			return ""
		},
		Config:    config,
		ConfigDir: configDir,
	})

	p := tea.NewProgram(
		application,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running application: %v\n", err)
		os.Exit(1)
	}
}

// newLogger opens the log file and builds the application logger. The TUI
// owns the terminal, so logs never go to stdout.
func newLogger(configDir string, config *app.Config) (*slog.Logger, *os.File, error) {
	path := filepath.Join(configDir, "keysummon.log")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, err
	}
	handler := slog.NewTextHandler(f, &slog.HandlerOptions{Level: config.SlogLevel()})
	return slog.New(handler), f, nil
}
