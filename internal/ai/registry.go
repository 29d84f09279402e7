package ai

import (
	"context"
	"errors"
	"fmt"

	"github.com/keysummon/keysummon/internal/model"
)

var (
	// ErrRoleNotFound is returned when a role ID resolves to nothing.
	ErrRoleNotFound = errors.New("role not found")
	// ErrNoProvider is returned when no provider matches a call.
	ErrNoProvider = errors.New("no provider configured")
)

// ConfigSource supplies the user-configured roles and providers. The
// registry reads it at call time so configuration edits take effect on the
// next hotkey press without restarts.
type ConfigSource interface {
	ListRoles(ctx context.Context) ([]model.Role, error)
	ListProviders(ctx context.Context) ([]model.ProviderConfig, error)
}

// Registry resolves role and provider IDs to concrete values and clients.
type Registry struct {
	source ConfigSource
}

// NewRegistry creates a registry over the given configuration source.
func NewRegistry(source ConfigSource) *Registry {
	return &Registry{source: source}
}

// ResolveRole looks up a role by ID, checking user-defined roles before the
// builtin set.
func (r *Registry) ResolveRole(ctx context.Context, id string) (*model.Role, error) {
	roles, err := r.source.ListRoles(ctx)
	if err != nil {
		return nil, err
	}
	for i := range roles {
		if roles[i].ID == id {
			role := roles[i]
			return &role, nil
		}
	}
	for _, role := range BuiltinRoles() {
		if role.ID == id {
			return &role, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrRoleNotFound, id)
}

// ResolveProvider returns a client for the given provider ID. An empty ID
// selects the provider marked default, falling back to the first configured.
func (r *Registry) ResolveProvider(ctx context.Context, id string) (Provider, error) {
	providers, err := r.source.ListProviders(ctx)
	if err != nil {
		return nil, err
	}
	if len(providers) == 0 {
		return nil, ErrNoProvider
	}

	var cfg *model.ProviderConfig
	if id == "" {
		for i := range providers {
			if providers[i].Default {
				cfg = &providers[i]
				break
			}
		}
		if cfg == nil {
			cfg = &providers[0]
		}
	} else {
		for i := range providers {
			if providers[i].ID == id {
				cfg = &providers[i]
				break
			}
		}
		if cfg == nil {
			return nil, fmt.Errorf("%w: %s", ErrNoProvider, id)
		}
	}

	return NewProvider(*cfg)
}

// NewProvider constructs a client for a provider configuration.
func NewProvider(cfg model.ProviderConfig) (Provider, error) {
	switch cfg.Kind {
	case model.ProviderGemini:
		return NewGemini(cfg.APIKey, cfg.Model), nil
	case model.ProviderOpenAI:
		return NewOpenAI(cfg.APIKey, cfg.Model), nil
	case model.ProviderAnthropic:
		return NewAnthropic(cfg.APIKey, cfg.Model), nil
	default:
		return nil, fmt.Errorf("unknown provider kind: %s", cfg.Kind)
	}
}
