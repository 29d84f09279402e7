package ui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/keysummon/keysummon/internal/app"
	"github.com/keysummon/keysummon/internal/hotkey"
	"github.com/keysummon/keysummon/internal/model"
	"github.com/keysummon/keysummon/pkg/utils"
)

// settingsRowCount is the number of rows in the settings pane.
const settingsRowCount = 3

// exportFileName is the import/export file under the config directory.
const exportFileName = "keysummon-export.json"

// Update routes messages to the active mode.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case HotkeysLoadedMsg:
		if msg.Err != nil {
			a.setStatus("failed to load hotkeys: "+msg.Err.Error(), false)
			return a, nil
		}
		a.hotkeys = msg.Hotkeys
		a.clampCursors()
		return a, nil

	case RolesLoadedMsg:
		if msg.Err != nil {
			a.setStatus("failed to load roles: "+msg.Err.Error(), false)
			return a, nil
		}
		a.roles = msg.Roles
		a.clampCursors()
		return a, nil

	case ProvidersLoadedMsg:
		if msg.Err != nil {
			a.setStatus("failed to load providers: "+msg.Err.Error(), false)
			return a, nil
		}
		a.providers = msg.Providers
		a.clampCursors()
		return a, nil

	case SavedMsg:
		if msg.Err != nil {
			a.setStatus(msg.Err.Error(), false)
			if a.form != nil {
				a.form.err = msg.Err.Error()
			}
			return a, nil
		}
		a.mode = ModeList
		a.form = nil
		a.setStatus(msg.Info, true)
		if a.deps.Reload != nil {
			if err := a.deps.Reload(); err != nil {
				a.setStatus("saved, but hotkey reload failed: "+err.Error(), false)
			}
		}
		return a, tea.Batch(a.loadHotkeys(), a.loadRoles(), a.loadProviders())

	case ChainTriggeredMsg:
		a.setStatus("triggered "+msg.Name, true)
		return a, nil

	case tea.KeyMsg:
		if a.mode == ModeForm && a.form != nil {
			cmd, open := a.form.Update(msg)
			if !open {
				a.mode = ModeList
				a.form = nil
			}
			return a, cmd
		}
		return a.updateList(msg)
	}

	return a, nil
}

// updateList handles key input in list mode.
func (a *App) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Quit):
		a.quitting = true
		return a, tea.Quit

	case key.Matches(msg, a.keys.Tab):
		a.pane = (a.pane + 1) % paneCount
		return a, nil

	case key.Matches(msg, a.keys.ShiftTab):
		a.pane = (a.pane + paneCount - 1) % paneCount
		return a, nil

	case key.Matches(msg, a.keys.Up):
		a.cursor[a.pane]--
		a.clampCursors()
		return a, nil

	case key.Matches(msg, a.keys.Down):
		a.cursor[a.pane]++
		a.clampCursors()
		return a, nil

	case key.Matches(msg, a.keys.Export):
		return a, a.exportConfig()

	case key.Matches(msg, a.keys.Import):
		return a, a.importConfig()
	}

	switch a.pane {
	case PaneHotkeys:
		return a.updateHotkeyList(msg)
	case PaneRoles:
		return a.updateRoleList(msg)
	case PaneProviders:
		return a.updateProviderList(msg)
	case PaneSettings:
		return a.updateSettings(msg)
	}
	return a, nil
}

// ---------- Hotkeys pane ----------

func (a *App) updateHotkeyList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Add):
		a.openHotkeyForm(nil)
		return a, nil

	case key.Matches(msg, a.keys.Enter):
		if h := a.selectedHotkey(); h != nil {
			a.openHotkeyForm(h)
		}
		return a, nil

	case key.Matches(msg, a.keys.Toggle):
		if h := a.selectedHotkey(); h != nil {
			updated := *h
			updated.Enabled = !updated.Enabled
			updated.Touch()
			return a, a.saveCmd(func(ctx context.Context) error {
				return a.deps.Store.UpdateHotkey(ctx, &updated)
			}, "updated "+updated.DisplayName())
		}
		return a, nil

	case key.Matches(msg, a.keys.Delete):
		if h := a.selectedHotkey(); h != nil {
			id, name := h.ID, h.DisplayName()
			return a, a.saveCmd(func(ctx context.Context) error {
				return a.deps.Store.DeleteHotkey(ctx, id)
			}, "deleted "+name)
		}
		return a, nil

	case key.Matches(msg, a.keys.Run):
		if h := a.selectedHotkey(); h != nil && a.deps.Coordinator != nil {
			cfg := *h
			return a, func() tea.Msg {
				a.deps.Coordinator.Trigger(cfg.DisplayName(), cfg.Action, cfg.PostActions)
				return ChainTriggeredMsg{Name: cfg.DisplayName()}
			}
		}
		return a, nil
	}
	return a, nil
}

// openHotkeyForm opens the add/edit form. Post-action chains are preserved
// across edits; they are managed through import/export.
func (a *App) openHotkeyForm(existing *model.HotkeyConfig) {
	labels := []string{"Name", "Hotkey", "Program", "Arguments", "Working dir", "Hidden (y/n)"}
	values := make([]string, len(labels))
	var base model.HotkeyConfig
	isNew := existing == nil
	if existing != nil {
		base = *existing
		values = []string{
			base.Name,
			base.Binding.Display(),
			base.Action.Program.Path,
			joinArgs(base.Action.Program.Arguments),
			base.Action.Program.WorkingDirectory,
			boolValue(base.Action.Program.Hidden),
		}
	}

	title := "Edit Hotkey"
	if isNew {
		title = "New Hotkey"
	}
	a.form = newForm(title, labels, values, func(v []string) tea.Cmd {
		binding, err := hotkey.ParseBinding(v[1])
		if err != nil {
			return saveErr(err)
		}
		args, err := utils.ParseArgs(v[3])
		if err != nil {
			return saveErr(err)
		}

		action := model.HotkeyAction{
			Kind: model.HotkeyLaunchProgram,
			Program: model.ProgramConfig{
				Path:             v[2],
				Arguments:        args,
				WorkingDirectory: v[4],
				Hidden:           boolField(v[5]),
			},
		}
		cfg := base
		if isNew {
			cfg = *model.NewHotkeyConfig(v[0], binding, action)
		}
		cfg.Name = v[0]
		cfg.Binding = binding
		cfg.Action = action
		cfg.Touch()

		if a.deps.ConflictCheck != nil {
			if conflict := a.deps.ConflictCheck(binding, cfg.ID); conflict != "" {
				return saveErr(errors.New(conflict))
			}
		}

		verb := "updated "
		if isNew {
			verb = "created "
		}
		return a.saveCmd(func(ctx context.Context) error {
			if isNew {
				return a.deps.Store.CreateHotkey(ctx, &cfg)
			}
			return a.deps.Store.UpdateHotkey(ctx, &cfg)
		}, verb+cfg.DisplayName())
	})
	a.mode = ModeForm
}

// ---------- Roles pane ----------

func (a *App) updateRoleList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Add):
		a.openRoleForm(nil)
		return a, nil

	case key.Matches(msg, a.keys.Enter):
		if r := a.selectedRole(); r != nil {
			if r.Builtin {
				a.setStatus("builtin roles cannot be edited", false)
				return a, nil
			}
			a.openRoleForm(r)
		}
		return a, nil

	case key.Matches(msg, a.keys.Delete):
		if r := a.selectedRole(); r != nil {
			if r.Builtin {
				a.setStatus("builtin roles cannot be deleted", false)
				return a, nil
			}
			id, name := r.ID, r.Name
			return a, a.saveCmd(func(ctx context.Context) error {
				return a.deps.Store.DeleteRole(ctx, id)
			}, "deleted role "+name)
		}
		return a, nil
	}
	return a, nil
}

func (a *App) openRoleForm(existing *model.Role) {
	labels := []string{"Name", "System prompt", "Format (plain/markdown)"}
	values := make([]string, len(labels))
	var base model.Role
	isNew := existing == nil
	if existing != nil {
		base = *existing
		values = []string{base.Name, base.SystemPrompt, string(base.OutputFormat)}
	}

	title := "Edit Role"
	if isNew {
		title = "New Role"
	}
	a.form = newForm(title, labels, values, func(v []string) tea.Cmd {
		role := base
		if isNew {
			role = *model.NewRole(v[0], v[1])
		}
		role.Name = v[0]
		role.SystemPrompt = v[1]
		role.OutputFormat = model.OutputFormat(v[2])
		if role.OutputFormat == "" {
			role.OutputFormat = model.OutputPlain
		}

		verb := "updated role "
		if isNew {
			verb = "created role "
		}
		return a.saveCmd(func(ctx context.Context) error {
			if isNew {
				return a.deps.Store.CreateRole(ctx, &role)
			}
			return a.deps.Store.UpdateRole(ctx, &role)
		}, verb+role.Name)
	})
	a.mode = ModeForm
}

// ---------- Providers pane ----------

func (a *App) updateProviderList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Add):
		a.openProviderForm(nil)
		return a, nil

	case key.Matches(msg, a.keys.Enter):
		if p := a.selectedProvider(); p != nil {
			a.openProviderForm(p)
		}
		return a, nil

	case key.Matches(msg, a.keys.Delete):
		if p := a.selectedProvider(); p != nil {
			id, name := p.ID, p.Name
			return a, a.saveCmd(func(ctx context.Context) error {
				return a.deps.Store.DeleteProvider(ctx, id)
			}, "deleted provider "+name)
		}
		return a, nil
	}
	return a, nil
}

func (a *App) openProviderForm(existing *model.ProviderConfig) {
	labels := []string{"Name", "Kind (gemini/openai/anthropic)", "API key", "Model", "Default (y/n)"}
	values := make([]string, len(labels))
	var base model.ProviderConfig
	isNew := existing == nil
	if existing != nil {
		base = *existing
		values = []string{base.Name, string(base.Kind), base.APIKey, base.Model, boolValue(base.Default)}
	}

	title := "Edit Provider"
	if isNew {
		title = "New Provider"
	}
	a.form = newForm(title, labels, values, func(v []string) tea.Cmd {
		p := base
		if isNew {
			p = *model.NewProviderConfig(v[0], model.ProviderKind(v[1]), v[2])
		}
		p.Name = v[0]
		p.Kind = model.ProviderKind(v[1])
		p.APIKey = v[2]
		p.Model = v[3]
		p.Default = boolField(v[4])

		verb := "updated provider "
		if isNew {
			verb = "created provider "
		}
		return a.saveCmd(func(ctx context.Context) error {
			if isNew {
				return a.deps.Store.CreateProvider(ctx, &p)
			}
			return a.deps.Store.UpdateProvider(ctx, &p)
		}, verb+p.Name)
	})
	a.mode = ModeForm
}

// ---------- Settings pane ----------

func (a *App) updateSettings(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if !key.Matches(msg, a.keys.Enter) && !key.Matches(msg, a.keys.Toggle) {
		return a, nil
	}

	switch a.cursor[PaneSettings] {
	case 0: // desktop notifications
		a.deps.Config.Notifications.Desktop = !a.deps.Config.Notifications.Desktop
		return a, a.saveAppConfig("notifications updated")

	case 1: // webhook URL
		a.form = newForm("Webhook URL", []string{"URL"}, []string{a.deps.Config.Notifications.WebhookURL}, func(v []string) tea.Cmd {
			a.deps.Config.Notifications.WebhookURL = v[0]
			return a.saveAppConfig("webhook updated")
		})
		a.mode = ModeForm
		return a, nil

	case 2: // log level
		a.deps.Config.LogLevel = nextLogLevel(a.deps.Config.LogLevel)
		return a, a.saveAppConfig("log level: " + a.deps.Config.LogLevel)
	}
	return a, nil
}

func nextLogLevel(level string) string {
	switch level {
	case "debug":
		return "info"
	case "info":
		return "warn"
	case "warn":
		return "error"
	default:
		return "debug"
	}
}

func (a *App) saveAppConfig(info string) tea.Cmd {
	return func() tea.Msg {
		if err := app.SaveConfig(a.deps.ConfigDir, a.deps.Config); err != nil {
			return SavedMsg{Err: err}
		}
		return SavedMsg{Info: info}
	}
}

// ---------- Import / Export ----------

func (a *App) exportConfig() tea.Cmd {
	return func() tea.Msg {
		raw, err := a.deps.Store.Export(context.Background())
		if err != nil {
			return SavedMsg{Err: err}
		}
		path := filepath.Join(a.deps.ConfigDir, exportFileName)
		if err := os.WriteFile(path, raw, 0644); err != nil {
			return SavedMsg{Err: err}
		}
		return SavedMsg{Info: "exported to " + path}
	}
}

func (a *App) importConfig() tea.Cmd {
	return func() tea.Msg {
		path := filepath.Join(a.deps.ConfigDir, exportFileName)
		raw, err := os.ReadFile(path)
		if err != nil {
			return SavedMsg{Err: fmt.Errorf("nothing to import: %w", err)}
		}
		if err := a.deps.Store.Import(context.Background(), raw); err != nil {
			return SavedMsg{Err: err}
		}
		return SavedMsg{Info: "imported from " + path}
	}
}

// ---------- Helpers ----------

// saveCmd runs a store mutation and reports the outcome.
func (a *App) saveCmd(mutate func(context.Context) error, info string) tea.Cmd {
	return func() tea.Msg {
		if err := mutate(context.Background()); err != nil {
			return SavedMsg{Err: err}
		}
		return SavedMsg{Info: info}
	}
}

// saveErr reports a validation failure without touching the store.
func saveErr(err error) tea.Cmd {
	return func() tea.Msg {
		return SavedMsg{Err: err}
	}
}

func (a *App) setStatus(msg string, ok bool) {
	a.status = msg
	a.statusOK = ok
}

func joinArgs(args []string) string {
	out := ""
	for i, arg := range args {
		if i > 0 {
			out += " "
		}
		out += arg
	}
	return out
}
