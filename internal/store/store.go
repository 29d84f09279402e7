// Package store provides data persistence abstractions for KeySummon.
package store

import (
	"context"

	"github.com/keysummon/keysummon/internal/model"
)

// HotkeyStore defines the interface for hotkey persistence.
type HotkeyStore interface {
	// ListHotkeys returns all hotkeys sorted by creation time descending.
	ListHotkeys(ctx context.Context) ([]model.HotkeyConfig, error)
	// GetHotkey retrieves a hotkey by its ID.
	GetHotkey(ctx context.Context, id string) (*model.HotkeyConfig, error)
	// CreateHotkey adds a new hotkey.
	CreateHotkey(ctx context.Context, h *model.HotkeyConfig) error
	// UpdateHotkey modifies an existing hotkey.
	UpdateHotkey(ctx context.Context, h *model.HotkeyConfig) error
	// DeleteHotkey removes a hotkey by its ID.
	DeleteHotkey(ctx context.Context, id string) error
}

// RoleStore defines the interface for AI role persistence.
type RoleStore interface {
	// ListRoles returns all user-defined roles.
	ListRoles(ctx context.Context) ([]model.Role, error)
	// GetRole retrieves a role by its ID.
	GetRole(ctx context.Context, id string) (*model.Role, error)
	// CreateRole adds a new role.
	CreateRole(ctx context.Context, r *model.Role) error
	// UpdateRole modifies an existing role.
	UpdateRole(ctx context.Context, r *model.Role) error
	// DeleteRole removes a role by its ID.
	DeleteRole(ctx context.Context, id string) error
}

// ProviderStore defines the interface for AI provider persistence.
type ProviderStore interface {
	// ListProviders returns all configured providers.
	ListProviders(ctx context.Context) ([]model.ProviderConfig, error)
	// GetProvider retrieves a provider by its ID.
	GetProvider(ctx context.Context, id string) (*model.ProviderConfig, error)
	// CreateProvider adds a new provider.
	CreateProvider(ctx context.Context, p *model.ProviderConfig) error
	// UpdateProvider modifies an existing provider.
	UpdateProvider(ctx context.Context, p *model.ProviderConfig) error
	// DeleteProvider removes a provider by its ID.
	DeleteProvider(ctx context.Context, id string) error
}

// Store combines all storage interfaces.
type Store interface {
	HotkeyStore
	RoleStore
	ProviderStore
	// Export returns the full configuration as indented JSON.
	Export(ctx context.Context) ([]byte, error)
	// Import replaces the full configuration after validation.
	Import(ctx context.Context, raw []byte) error
	// Close releases any resources held by the store.
	Close() error
}
