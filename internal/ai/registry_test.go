package ai

import (
	"context"
	"errors"
	"testing"

	"github.com/keysummon/keysummon/internal/model"
)

type staticSource struct {
	roles     []model.Role
	providers []model.ProviderConfig
	err       error
}

func (s *staticSource) ListRoles(_ context.Context) ([]model.Role, error) {
	return s.roles, s.err
}

func (s *staticSource) ListProviders(_ context.Context) ([]model.ProviderConfig, error) {
	return s.providers, s.err
}

func TestResolveRoleBuiltin(t *testing.T) {
	r := NewRegistry(&staticSource{})

	role, err := r.ResolveRole(context.Background(), "de-en-translate")
	if err != nil {
		t.Fatalf("ResolveRole: %v", err)
	}
	if !role.Builtin || role.SystemPrompt == "" {
		t.Errorf("builtin role malformed: %+v", role)
	}
}

func TestResolveRoleUserShadowsBuiltin(t *testing.T) {
	custom := model.Role{ID: "beautify", Name: "My Beautify", SystemPrompt: "custom prompt"}
	r := NewRegistry(&staticSource{roles: []model.Role{custom}})

	role, err := r.ResolveRole(context.Background(), "beautify")
	if err != nil {
		t.Fatalf("ResolveRole: %v", err)
	}
	if role.SystemPrompt != "custom prompt" {
		t.Errorf("user role did not shadow builtin: %+v", role)
	}
}

func TestResolveRoleNotFound(t *testing.T) {
	r := NewRegistry(&staticSource{})
	_, err := r.ResolveRole(context.Background(), "nope")
	if !errors.Is(err, ErrRoleNotFound) {
		t.Fatalf("err = %v, want ErrRoleNotFound", err)
	}
}

func TestResolveProviderSelection(t *testing.T) {
	providers := []model.ProviderConfig{
		{ID: "a", Name: "First", Kind: model.ProviderOpenAI, APIKey: "k1"},
		{ID: "b", Name: "Chosen", Kind: model.ProviderGemini, APIKey: "k2", Default: true},
	}
	r := NewRegistry(&staticSource{providers: providers})
	ctx := context.Background()

	// Empty ID selects the default.
	p, err := r.ResolveProvider(ctx, "")
	if err != nil {
		t.Fatalf("ResolveProvider(default): %v", err)
	}
	if _, ok := p.(*Gemini); !ok {
		t.Errorf("default provider = %T, want *Gemini", p)
	}

	// Named ID must match exactly.
	p, err = r.ResolveProvider(ctx, "a")
	if err != nil {
		t.Fatalf("ResolveProvider(a): %v", err)
	}
	if _, ok := p.(*OpenAI); !ok {
		t.Errorf("named provider = %T, want *OpenAI", p)
	}

	if _, err := r.ResolveProvider(ctx, "missing"); !errors.Is(err, ErrNoProvider) {
		t.Fatalf("missing id err = %v, want ErrNoProvider", err)
	}
}

func TestResolveProviderFirstWhenNoDefault(t *testing.T) {
	providers := []model.ProviderConfig{
		{ID: "only", Kind: model.ProviderAnthropic, APIKey: "k"},
	}
	r := NewRegistry(&staticSource{providers: providers})

	p, err := r.ResolveProvider(context.Background(), "")
	if err != nil {
		t.Fatalf("ResolveProvider: %v", err)
	}
	if _, ok := p.(*Anthropic); !ok {
		t.Errorf("provider = %T, want *Anthropic", p)
	}
}

func TestResolveProviderEmptyConfig(t *testing.T) {
	r := NewRegistry(&staticSource{})
	if _, err := r.ResolveProvider(context.Background(), ""); !errors.Is(err, ErrNoProvider) {
		t.Fatalf("err = %v, want ErrNoProvider", err)
	}
}

func TestNewProviderUnknownKind(t *testing.T) {
	if _, err := NewProvider(model.ProviderConfig{Kind: "oracle"}); err == nil {
		t.Error("expected error for unknown provider kind")
	}
}

func TestBuiltinRolesComplete(t *testing.T) {
	roles := BuiltinRoles()
	want := map[string]bool{
		"de-transcribe":   false,
		"de-en-translate": false,
		"beautify":        false,
		"ai-response":     false,
	}
	for _, role := range roles {
		if _, ok := want[role.ID]; !ok {
			t.Errorf("unexpected builtin role %q", role.ID)
			continue
		}
		want[role.ID] = true
		if !role.Builtin {
			t.Errorf("role %q not flagged builtin", role.ID)
		}
		if role.SystemPrompt == "" {
			t.Errorf("role %q has empty prompt", role.ID)
		}
	}
	for id, seen := range want {
		if !seen {
			t.Errorf("builtin role %q missing", id)
		}
	}
}
