package model

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// HotkeyBinding is the global key combination that triggers a hotkey.
type HotkeyBinding struct {
	// Modifiers are modifier names (Ctrl, Alt, Shift, Meta).
	Modifiers []string `json:"modifiers"`
	// Key is the non-modifier key name.
	Key string `json:"key"`
}

// Display formats the binding for logs and the UI, e.g. "Ctrl + Shift + K".
func (b HotkeyBinding) Display() string {
	parts := make([]string, 0, len(b.Modifiers)+1)
	parts = append(parts, b.Modifiers...)
	parts = append(parts, b.Key)
	return strings.Join(parts, " + ")
}

// ProgramConfig describes an external program launch.
type ProgramConfig struct {
	// Path is the executable path or a bare name resolved via PATH.
	Path string `json:"path"`
	// Arguments are passed in order; empty strings are skipped at launch.
	Arguments []string `json:"arguments"`
	// WorkingDirectory is applied only if it exists and is a directory.
	WorkingDirectory string `json:"working_directory,omitempty"`
	// Hidden requests platform hidden-window creation flags.
	Hidden bool `json:"hidden"`
}

// AiActionConfig configures a direct AI invocation bound to a hotkey.
type AiActionConfig struct {
	// RoleID selects the role; user-defined roles shadow builtins.
	RoleID string `json:"role_id"`
	// InputSource is resolved when the hotkey fires.
	InputSource AiInputSource `json:"input_source"`
	// ProviderID selects a provider; empty means the default provider.
	ProviderID string `json:"provider_id,omitempty"`
}

// HotkeyAction is what a hotkey press triggers: a program launch or an AI
// call. Kind selects the variant.
type HotkeyAction struct {
	Kind HotkeyActionKind
	// Program is set for the launchProgram variant.
	Program ProgramConfig
	// AI is set for the callAi variant.
	AI AiActionConfig
}

type hotkeyActionJSON struct {
	Type    HotkeyActionKind `json:"type"`
	Program *ProgramConfig   `json:"program,omitempty"`
	AI      *AiActionConfig  `json:"ai,omitempty"`
}

// MarshalJSON encodes the action with a type discriminator field.
func (a HotkeyAction) MarshalJSON() ([]byte, error) {
	switch a.Kind {
	case HotkeyLaunchProgram:
		p := a.Program
		return json.Marshal(hotkeyActionJSON{Type: a.Kind, Program: &p})
	case HotkeyCallAI:
		ai := a.AI
		return json.Marshal(hotkeyActionJSON{Type: a.Kind, AI: &ai})
	default:
		return nil, fmt.Errorf("unknown hotkey action type: %s", a.Kind)
	}
}

// UnmarshalJSON decodes the action, defaulting to launchProgram when the
// discriminator is absent (configs predating AI actions).
func (a *HotkeyAction) UnmarshalJSON(data []byte) error {
	var raw hotkeyActionJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch raw.Type {
	case "", HotkeyLaunchProgram:
		if raw.Program == nil {
			return fmt.Errorf("launchProgram action missing program")
		}
		*a = HotkeyAction{Kind: HotkeyLaunchProgram, Program: *raw.Program}
	case HotkeyCallAI:
		if raw.AI == nil {
			return fmt.Errorf("callAi action missing ai config")
		}
		*a = HotkeyAction{Kind: HotkeyCallAI, AI: *raw.AI}
	default:
		return fmt.Errorf("unknown hotkey action type: %s", raw.Type)
	}
	return nil
}

// HotkeyConfig binds a global key combination to an action with optional
// post-actions.
type HotkeyConfig struct {
	// ID is the unique identifier for this hotkey.
	ID string `json:"id"`
	// Name is the display name used in logs and the UI.
	Name string `json:"name"`
	// Binding is the global key combination.
	Binding HotkeyBinding `json:"binding"`
	// Action is what the press triggers.
	Action HotkeyAction `json:"action"`
	// Enabled controls whether the binding is registered.
	Enabled bool `json:"enabled"`
	// PostActions is the optional chain executed after the action.
	PostActions PostActionsConfig `json:"post_actions"`
	// CreatedAt is the Unix timestamp of creation.
	CreatedAt int64 `json:"created_at"`
	// UpdatedAt is the Unix timestamp of the last modification.
	UpdatedAt int64 `json:"updated_at"`
}

// NewHotkeyConfig creates an enabled hotkey with a generated UUID.
func NewHotkeyConfig(name string, binding HotkeyBinding, action HotkeyAction) *HotkeyConfig {
	now := time.Now().Unix()
	return &HotkeyConfig{
		ID:        uuid.New().String(),
		Name:      name,
		Binding:   binding,
		Action:    action,
		Enabled:   true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Touch updates the UpdatedAt timestamp to now.
func (h *HotkeyConfig) Touch() {
	h.UpdatedAt = time.Now().Unix()
}

// DisplayName returns the name to display, falling back to the binding.
func (h *HotkeyConfig) DisplayName() string {
	if h.Name != "" {
		return h.Name
	}
	return h.Binding.Display()
}
