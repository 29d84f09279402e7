package model

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// Keystroke is a key combination to simulate: modifiers pressed in listed
// order around a single key click.
type Keystroke struct {
	// Modifiers are pressed in order and released in reverse order.
	Modifiers []string `json:"modifiers"`
	// Key is a single printable character or a named key (Enter, F5, ...).
	Key string `json:"key"`
}

// PostActionTrigger decides when post-actions fire relative to the launch.
// The zero value is the onExit trigger.
type PostActionTrigger struct {
	// Kind selects the variant.
	Kind TriggerKind
	// DelayMS is the wait in milliseconds for the afterDelay variant.
	DelayMS uint64
}

// OnExitTrigger returns the default trigger (wait for exit code 0).
func OnExitTrigger() PostActionTrigger {
	return PostActionTrigger{Kind: TriggerOnExit}
}

// AfterDelayTrigger returns a trigger that fires delayMS after launch.
func AfterDelayTrigger(delayMS uint64) PostActionTrigger {
	return PostActionTrigger{Kind: TriggerAfterDelay, DelayMS: delayMS}
}

type triggerJSON struct {
	Type    TriggerKind `json:"type"`
	DelayMS uint64      `json:"delay_ms,omitempty"`
}

// MarshalJSON encodes the trigger with a type discriminator field.
func (t PostActionTrigger) MarshalJSON() ([]byte, error) {
	kind := t.Kind
	if kind == "" {
		kind = TriggerOnExit
	}
	return json.Marshal(triggerJSON{Type: kind, DelayMS: t.DelayMS})
}

// UnmarshalJSON decodes the trigger, defaulting to onExit when the
// discriminator is absent.
func (t *PostActionTrigger) UnmarshalJSON(data []byte) error {
	var raw triggerJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch raw.Type {
	case "", TriggerOnExit:
		*t = PostActionTrigger{Kind: TriggerOnExit}
	case TriggerAfterDelay:
		*t = PostActionTrigger{Kind: TriggerAfterDelay, DelayMS: raw.DelayMS}
	default:
		return fmt.Errorf("unknown trigger type: %s", raw.Type)
	}
	return nil
}

// AiInputSource selects where an AI call's input comes from. The content is
// resolved at execution time, never at config-save time.
type AiInputSource struct {
	// Kind selects the variant.
	Kind InputSourceKind `json:"type"`
	// MaxDurationMS bounds a recordAudio capture in milliseconds.
	MaxDurationMS uint64 `json:"max_duration_ms,omitempty"`
	// Format is the recorded audio container format ("wav").
	Format string `json:"format,omitempty"`
}

// PostActionType is a tagged union of the action variants. Kind selects the
// variant; only the fields belonging to that variant are meaningful.
type PostActionType struct {
	Kind ActionKind
	// Keystroke is the combination for the simulateKeystroke variant.
	Keystroke Keystroke
	// DelayMS is the wait in milliseconds for the delay variant.
	DelayMS uint64
	// RoleID, InputSource and ProviderID configure the callAi variant.
	// ProviderID may be empty to select the default provider.
	RoleID      string
	InputSource AiInputSource
	ProviderID  string
}

type actionTypeJSON struct {
	Type        ActionKind     `json:"type"`
	Keystroke   *Keystroke     `json:"keystroke,omitempty"`
	DelayMS     uint64         `json:"delay_ms,omitempty"`
	RoleID      string         `json:"role_id,omitempty"`
	InputSource *AiInputSource `json:"input_source,omitempty"`
	ProviderID  string         `json:"provider_id,omitempty"`
}

// MarshalJSON encodes the action with a type discriminator field.
func (a PostActionType) MarshalJSON() ([]byte, error) {
	raw := actionTypeJSON{Type: a.Kind}
	switch a.Kind {
	case ActionPasteClipboard:
	case ActionSimulateKeystroke:
		ks := a.Keystroke
		raw.Keystroke = &ks
	case ActionDelay:
		raw.DelayMS = a.DelayMS
	case ActionCallAI:
		raw.RoleID = a.RoleID
		src := a.InputSource
		raw.InputSource = &src
		raw.ProviderID = a.ProviderID
	default:
		return nil, fmt.Errorf("unknown action type: %s", a.Kind)
	}
	return json.Marshal(raw)
}

// UnmarshalJSON decodes the action and rejects unknown discriminators.
func (a *PostActionType) UnmarshalJSON(data []byte) error {
	var raw actionTypeJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch raw.Type {
	case ActionPasteClipboard:
		*a = PostActionType{Kind: ActionPasteClipboard}
	case ActionSimulateKeystroke:
		if raw.Keystroke == nil {
			return fmt.Errorf("simulateKeystroke action missing keystroke")
		}
		*a = PostActionType{Kind: ActionSimulateKeystroke, Keystroke: *raw.Keystroke}
	case ActionDelay:
		*a = PostActionType{Kind: ActionDelay, DelayMS: raw.DelayMS}
	case ActionCallAI:
		src := AiInputSource{Kind: InputClipboard}
		if raw.InputSource != nil {
			src = *raw.InputSource
		}
		*a = PostActionType{Kind: ActionCallAI, RoleID: raw.RoleID, InputSource: src, ProviderID: raw.ProviderID}
	default:
		return fmt.Errorf("unknown action type: %s", raw.Type)
	}
	return nil
}

// PostAction is one entry in a hotkey's post-action list. Disabled actions
// are skipped during execution but retained in the ordered list.
type PostAction struct {
	// ID is the unique identifier for this action.
	ID string `json:"id"`
	// Type is the action variant and its payload.
	Type PostActionType `json:"action_type"`
	// Enabled controls whether the executor dispatches this action.
	Enabled bool `json:"enabled"`
}

// NewPostAction creates an enabled post-action with a generated UUID.
func NewPostAction(t PostActionType) PostAction {
	return PostAction{
		ID:      uuid.New().String(),
		Type:    t,
		Enabled: true,
	}
}

// PostActionsConfig configures a hotkey's post-action chain.
type PostActionsConfig struct {
	// Enabled gates the whole chain. Disabled behaves exactly like an
	// empty action list: plain launch, no waiting.
	Enabled bool `json:"enabled"`
	// Trigger decides when the actions fire.
	Trigger PostActionTrigger `json:"trigger"`
	// Actions run strictly in list order.
	Actions []PostAction `json:"actions"`
}

// Active reports whether the chain has anything to execute.
func (c PostActionsConfig) Active() bool {
	return c.Enabled && len(c.Actions) > 0
}
