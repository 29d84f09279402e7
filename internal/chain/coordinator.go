package chain

import (
	"context"
	"log/slog"
	"time"

	"github.com/keysummon/keysummon/internal/model"
	"github.com/keysummon/keysummon/internal/process"
)

// Notifier receives terminal chain failures for user-facing surfacing.
type Notifier interface {
	ChainFailed(hotkeyName string, err error)
}

// Result is the terminal outcome of one chain.
type Result struct {
	// State is ChainDone or ChainFailed.
	State model.ChainState
	// Skipped is set when an onExit gate saw a non-zero exit code. That is
	// a handled outcome, not a fault.
	Skipped bool
	// ExitCode is the awaited process's exit code, when one was awaited.
	ExitCode int
	// Err is set only when State is ChainFailed.
	Err error
}

// Coordinator owns the per-press state machine:
//
//	Idle → Launching → {Waiting | Delaying} → ExecutingActions → Done
//
// with failure exits to Failed from any active state.
type Coordinator struct {
	launcher process.Launcher
	executor *Executor
	notifier Notifier
	logger   *slog.Logger
}

// NewCoordinator wires a coordinator. notifier may be nil.
func NewCoordinator(launcher process.Launcher, executor *Executor, notifier Notifier, logger *slog.Logger) *Coordinator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Coordinator{
		launcher: launcher,
		executor: executor,
		notifier: notifier,
		logger:   logger,
	}
}

// Trigger starts one chain on its own goroutine and returns immediately.
// The hotkey dispatch loop must never block on process I/O, input
// simulation, or network calls; concurrent chains run fully independently.
func (c *Coordinator) Trigger(name string, action model.HotkeyAction, post model.PostActionsConfig) {
	go func() {
		res := c.Run(context.Background(), name, action, post)
		c.report(name, res)
	}()
}

// Run executes one chain synchronously and returns its terminal result.
// Errors are recovered here, never propagated as panics; there is no retry.
func (c *Coordinator) Run(ctx context.Context, name string, action model.HotkeyAction, post model.PostActionsConfig) Result {
	switch action.Kind {
	case model.HotkeyCallAI:
		return c.runAI(ctx, action.AI, post)
	case model.HotkeyLaunchProgram:
		return c.runProgram(ctx, action.Program, post)
	default:
		return Result{State: model.ChainFailed, Err: &UnknownActionError{Kind: action.Kind}}
	}
}

// runProgram launches the program and gates post-actions on the trigger.
func (c *Coordinator) runProgram(ctx context.Context, program model.ProgramConfig, post model.PostActionsConfig) Result {
	// The common path: no post-actions means a plain detached launch with
	// zero added latency or blocking.
	if !post.Active() {
		if err := c.launcher.LaunchDetached(program); err != nil {
			return Result{State: model.ChainFailed, Err: err}
		}
		return Result{State: model.ChainDone}
	}

	switch post.Trigger.Kind {
	case model.TriggerAfterDelay:
		// Launching → Delaying: detached launch, no exit-code check is
		// possible or attempted in this mode.
		if err := c.launcher.LaunchDetached(program); err != nil {
			return Result{State: model.ChainFailed, Err: err}
		}
		time.Sleep(time.Duration(post.Trigger.DelayMS) * time.Millisecond)
		// Delaying → ExecutingActions, unconditionally.
		if err := c.executor.Execute(ctx, post.Actions, nil); err != nil {
			return Result{State: model.ChainFailed, Err: err}
		}
		return Result{State: model.ChainDone}

	default: // onExit, also the zero value
		// Launching → Waiting: blocks until the process exits, with no
		// timeout unless ctx bounds one.
		res, err := c.launcher.LaunchAndWait(ctx, program)
		if err != nil {
			return Result{State: model.ChainFailed, Err: err}
		}
		if res.ExitCode != 0 {
			// Waiting → Done without running actions: a non-zero exit
			// is an expected, handled outcome, not a fault.
			return Result{State: model.ChainDone, Skipped: true, ExitCode: res.ExitCode}
		}
		if err := c.executor.Execute(ctx, post.Actions, res.Stdout); err != nil {
			return Result{State: model.ChainFailed, Err: err, ExitCode: res.ExitCode}
		}
		return Result{State: model.ChainDone, ExitCode: res.ExitCode}
	}
}

// runAI executes a direct AI invocation. AI actions are not gated by process
// exit; any configured post-actions run inline after the call.
func (c *Coordinator) runAI(ctx context.Context, cfg model.AiActionConfig, post model.PostActionsConfig) Result {
	call := model.PostAction{
		ID:      "ai-action",
		Enabled: true,
		Type: model.PostActionType{
			Kind:        model.ActionCallAI,
			RoleID:      cfg.RoleID,
			InputSource: cfg.InputSource,
			ProviderID:  cfg.ProviderID,
		},
	}
	actions := []model.PostAction{call}
	if post.Active() {
		actions = append(actions, post.Actions...)
	}
	if err := c.executor.Execute(ctx, actions, nil); err != nil {
		return Result{State: model.ChainFailed, Err: err}
	}
	return Result{State: model.ChainDone}
}

// report emits exactly one log line per terminal state, tagged with the
// hotkey's display name.
func (c *Coordinator) report(name string, res Result) {
	switch {
	case res.State == model.ChainFailed:
		c.logger.Error("chain failed", "hotkey", name, "error", res.Err)
		if c.notifier != nil {
			c.notifier.ChainFailed(name, res.Err)
		}
	case res.Skipped:
		c.logger.Info("process exited non-zero, skipping post-actions", "hotkey", name, "exit_code", res.ExitCode)
	default:
		c.logger.Info("chain completed", "hotkey", name)
	}
}

// UnknownActionError reports a hotkey action kind the coordinator cannot run.
type UnknownActionError struct {
	Kind model.HotkeyActionKind
}

func (e *UnknownActionError) Error() string {
	return "unknown hotkey action type: " + string(e.Kind)
}
