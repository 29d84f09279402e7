package model

import (
	"github.com/google/uuid"
)

// Role pairs a named system prompt with an output format for AI calls.
type Role struct {
	// ID is the unique identifier for this role.
	ID string `json:"id"`
	// Name is the display name (e.g. "DE Transcribe").
	Name string `json:"name"`
	// SystemPrompt is sent as the system instruction for every call.
	SystemPrompt string `json:"system_prompt"`
	// OutputFormat describes the expected response formatting.
	OutputFormat OutputFormat `json:"output_format"`
	// Builtin roles ship with the application and cannot be edited or deleted.
	Builtin bool `json:"builtin"`
}

// NewRole creates a user-defined role with a generated UUID.
func NewRole(name, systemPrompt string) *Role {
	return &Role{
		ID:           uuid.New().String(),
		Name:         name,
		SystemPrompt: systemPrompt,
		OutputFormat: OutputPlain,
	}
}

// ProviderConfig holds credentials and model selection for one AI provider.
type ProviderConfig struct {
	// ID is the unique identifier for this provider entry.
	ID string `json:"id"`
	// Name is the display name (e.g. "Personal Gemini").
	Name string `json:"name"`
	// Kind selects the backend implementation.
	Kind ProviderKind `json:"kind"`
	// APIKey authenticates against the provider.
	APIKey string `json:"api_key"`
	// Model overrides the backend's default model when set.
	Model string `json:"model,omitempty"`
	// Default marks this provider as the fallback when a call names none.
	Default bool `json:"default"`
}

// NewProviderConfig creates a provider entry with a generated UUID.
func NewProviderConfig(name string, kind ProviderKind, apiKey string) *ProviderConfig {
	return &ProviderConfig{
		ID:     uuid.New().String(),
		Name:   name,
		Kind:   kind,
		APIKey: apiKey,
	}
}
