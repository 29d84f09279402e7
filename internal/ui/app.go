package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/keysummon/keysummon/internal/ai"
	"github.com/keysummon/keysummon/internal/app"
	"github.com/keysummon/keysummon/internal/chain"
	"github.com/keysummon/keysummon/internal/model"
	"github.com/keysummon/keysummon/internal/store"
	"github.com/keysummon/keysummon/internal/ui/keys"
)

// Pane represents which tab has focus.
type Pane int

const (
	// PaneHotkeys is the hotkey list tab.
	PaneHotkeys Pane = iota
	// PaneRoles is the AI role list tab.
	PaneRoles
	// PaneProviders is the AI provider list tab.
	PaneProviders
	// PaneSettings is the application settings tab.
	PaneSettings
	paneCount
)

// Mode controls whether key input drives the list or an open form.
type Mode int

const (
	ModeList Mode = iota
	ModeForm
)

const (
	minAppWidth  = 40
	minAppHeight = 10
)

// Deps bundles the collaborators the UI operates on.
type Deps struct {
	Store store.Store
	// Coordinator fires chains for the "run now" action.
	Coordinator *chain.Coordinator
	// Reload re-registers OS hotkeys after configuration changes.
	Reload func() error
	// ConflictCheck reports whether a binding collides with an existing
	// hotkey (excluding the given ID) or a known system chord.
	ConflictCheck func(binding model.HotkeyBinding, excludeID string) string
	Config        *app.Config
	ConfigDir     string
}

// App is the main application model.
type App struct {
	deps Deps
	keys keys.KeyMap

	// Data
	hotkeys   []model.HotkeyConfig
	roles     []model.Role
	providers []model.ProviderConfig

	// State
	pane     Pane
	mode     Mode
	cursor   [paneCount]int
	form     *form
	status   string
	statusOK bool
	width    int
	height   int
	quitting bool
}

// New creates the application model.
func New(deps Deps) *App {
	return &App{
		deps: deps,
		keys: keys.DefaultKeyMap(),
	}
}

// Init loads all configuration lists.
func (a *App) Init() tea.Cmd {
	return tea.Batch(a.loadHotkeys(), a.loadRoles(), a.loadProviders())
}

// loadHotkeys reads hotkeys from the store.
func (a *App) loadHotkeys() tea.Cmd {
	return func() tea.Msg {
		hotkeys, err := a.deps.Store.ListHotkeys(context.Background())
		return HotkeysLoadedMsg{Hotkeys: hotkeys, Err: err}
	}
}

// loadRoles reads user roles from the store and appends the builtin set.
func (a *App) loadRoles() tea.Cmd {
	return func() tea.Msg {
		roles, err := a.deps.Store.ListRoles(context.Background())
		if err != nil {
			return RolesLoadedMsg{Err: err}
		}
		return RolesLoadedMsg{Roles: append(roles, ai.BuiltinRoles()...)}
	}
}

// loadProviders reads providers from the store.
func (a *App) loadProviders() tea.Cmd {
	return func() tea.Msg {
		providers, err := a.deps.Store.ListProviders(context.Background())
		return ProvidersLoadedMsg{Providers: providers, Err: err}
	}
}

// selectedHotkey returns the hotkey under the cursor, if any.
func (a *App) selectedHotkey() *model.HotkeyConfig {
	i := a.cursor[PaneHotkeys]
	if i < 0 || i >= len(a.hotkeys) {
		return nil
	}
	return &a.hotkeys[i]
}

// selectedRole returns the role under the cursor, if any.
func (a *App) selectedRole() *model.Role {
	i := a.cursor[PaneRoles]
	if i < 0 || i >= len(a.roles) {
		return nil
	}
	return &a.roles[i]
}

// selectedProvider returns the provider under the cursor, if any.
func (a *App) selectedProvider() *model.ProviderConfig {
	i := a.cursor[PaneProviders]
	if i < 0 || i >= len(a.providers) {
		return nil
	}
	return &a.providers[i]
}

// clampCursors keeps all cursors within their list bounds.
func (a *App) clampCursors() {
	lengths := [paneCount]int{
		PaneHotkeys:   len(a.hotkeys),
		PaneRoles:     len(a.roles),
		PaneProviders: len(a.providers),
		PaneSettings:  settingsRowCount,
	}
	for p := Pane(0); p < paneCount; p++ {
		if a.cursor[p] >= lengths[p] {
			a.cursor[p] = lengths[p] - 1
		}
		if a.cursor[p] < 0 {
			a.cursor[p] = 0
		}
	}
}
