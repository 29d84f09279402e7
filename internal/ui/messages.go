// Package ui provides the terminal user interface for KeySummon.
package ui

import (
	"github.com/keysummon/keysummon/internal/model"
)

// ---------- Hotkey Messages ----------

// HotkeysLoadedMsg is sent when hotkeys are loaded from the store.
type HotkeysLoadedMsg struct {
	Hotkeys []model.HotkeyConfig
	Err     error
}

// ---------- Role Messages ----------

// RolesLoadedMsg is sent when roles are loaded from the store.
type RolesLoadedMsg struct {
	Roles []model.Role
	Err   error
}

// ---------- Provider Messages ----------

// ProvidersLoadedMsg is sent when providers are loaded from the store.
type ProvidersLoadedMsg struct {
	Providers []model.ProviderConfig
	Err       error
}

// ---------- General Messages ----------

// SavedMsg reports the outcome of a store mutation.
type SavedMsg struct {
	Info string
	Err  error
}

// ChainTriggeredMsg is sent after a chain is started manually from the UI.
type ChainTriggeredMsg struct {
	Name string
}
