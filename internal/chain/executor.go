// Package chain runs the trigger state machine and post-action execution
// for one hotkey press.
package chain

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/keysummon/keysummon/internal/ai"
	"github.com/keysummon/keysummon/internal/model"
)

// settleDelay is slept before every input-simulating action so the target
// window's focus transition has finished. Synthetic input sent immediately
// after a focus change is frequently dropped by the OS. Not configurable.
const settleDelay = 50 * time.Millisecond

// Simulator sends synthetic keyboard input.
type Simulator interface {
	Paste() error
	SimulateKeystroke(ks model.Keystroke) error
}

// SimulatorFactory acquires a simulator for one action batch. Construction
// failure aborts the whole batch.
type SimulatorFactory func() (Simulator, error)

// Clipboard reads and writes the desktop clipboard.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(text string) error
}

// Recorder captures audio from the default input device.
type Recorder interface {
	// Record captures up to maxDuration of audio and returns encoded bytes
	// with their mime type.
	Record(ctx context.Context, maxDuration time.Duration) ([]byte, string, error)
}

// AIResolver resolves role and provider IDs at execution time.
type AIResolver interface {
	ResolveRole(ctx context.Context, id string) (*model.Role, error)
	ResolveProvider(ctx context.Context, id string) (ai.Provider, error)
}

// Executor runs an ordered post-action list to completion or first failure.
// Any failure aborts the remaining sequence: a failed paste usually means
// the wrong window has focus, and continuing would send input to an
// unintended target.
type Executor struct {
	newSimulator SimulatorFactory
	clipboard    Clipboard
	recorder     Recorder
	ai           AIResolver
}

// NewExecutor wires an executor to its collaborators. recorder may be nil
// when no audio capability is available; recordAudio actions then fail.
func NewExecutor(factory SimulatorFactory, clipboard Clipboard, recorder Recorder, resolver AIResolver) *Executor {
	return &Executor{
		newSimulator: factory,
		clipboard:    clipboard,
		recorder:     recorder,
		ai:           resolver,
	}
}

// Execute runs the enabled actions in list order. processOutput is the
// stdout captured from an awaited launch, consumed by processOutput input
// sources; it may be nil. One simulator instance serves the whole batch.
func (e *Executor) Execute(ctx context.Context, actions []model.PostAction, processOutput []byte) error {
	sim, err := e.newSimulator()
	if err != nil {
		return err
	}

	for _, action := range actions {
		if !action.Enabled {
			continue
		}
		if err := e.dispatch(ctx, sim, action.Type, processOutput); err != nil {
			return err
		}
	}
	return nil
}

// dispatch executes one action variant.
func (e *Executor) dispatch(ctx context.Context, sim Simulator, t model.PostActionType, processOutput []byte) error {
	switch t.Kind {
	case model.ActionPasteClipboard:
		time.Sleep(settleDelay)
		return sim.Paste()
	case model.ActionSimulateKeystroke:
		time.Sleep(settleDelay)
		return sim.SimulateKeystroke(t.Keystroke)
	case model.ActionDelay:
		time.Sleep(time.Duration(t.DelayMS) * time.Millisecond)
		return nil
	case model.ActionCallAI:
		return e.callAI(ctx, t.RoleID, t.InputSource, t.ProviderID, processOutput)
	default:
		return fmt.Errorf("unknown action type: %s", t.Kind)
	}
}

// callAI resolves role, provider, and input, invokes the provider, and
// writes the response text back to the clipboard.
func (e *Executor) callAI(ctx context.Context, roleID string, source model.AiInputSource, providerID string, processOutput []byte) error {
	role, err := e.ai.ResolveRole(ctx, roleID)
	if err != nil {
		return err
	}
	provider, err := e.ai.ResolveProvider(ctx, providerID)
	if err != nil {
		return err
	}

	var resp ai.Response
	switch source.Kind {
	case model.InputClipboard:
		text, err := e.clipboard.ReadText()
		if err != nil {
			return fmt.Errorf("failed to read clipboard: %w", err)
		}
		resp, err = provider.SendText(ctx, role.SystemPrompt, text)
		if err != nil {
			return err
		}
	case model.InputRecordAudio:
		if e.recorder == nil {
			return fmt.Errorf("no audio recorder available")
		}
		maxDuration := time.Duration(source.MaxDurationMS) * time.Millisecond
		audio, mimeType, err := e.recorder.Record(ctx, maxDuration)
		if err != nil {
			return fmt.Errorf("failed to record audio: %w", err)
		}
		resp, err = provider.SendAudio(ctx, role.SystemPrompt, audio, mimeType)
		if err != nil {
			return err
		}
	case model.InputProcessOutput:
		// Captured stdout may carry terminal escape sequences.
		text := strings.TrimSpace(ansi.Strip(string(processOutput)))
		var err error
		resp, err = provider.SendText(ctx, role.SystemPrompt, text)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown input source: %s", source.Kind)
	}

	if err := e.clipboard.WriteText(resp.Text); err != nil {
		return fmt.Errorf("failed to write clipboard: %w", err)
	}
	return nil
}
