// Package process starts external programs for hotkey actions.
package process

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/keysummon/keysummon/internal/model"
)

// ErrNotFound is returned when the configured executable cannot be resolved.
var ErrNotFound = errors.New("program not found")

// WaitResult is the outcome of an attached launch.
type WaitResult struct {
	// ExitCode is the process exit code, or -1 when the platform cannot
	// report one (e.g. killed by a signal).
	ExitCode int
	// Stdout is the captured standard output of the process.
	Stdout []byte
}

// Launcher starts external programs. The two entry points are deliberately
// separate calls: waiting for exit changes stream handling and caller
// blocking semantics, and a fire-and-forget launch must never block.
type Launcher interface {
	// LaunchDetached spawns the program without waiting for it.
	LaunchDetached(cfg model.ProgramConfig) error
	// LaunchAndWait spawns the program attached, blocks until it exits,
	// and returns its exit code and captured stdout.
	LaunchAndWait(ctx context.Context, cfg model.ProgramConfig) (WaitResult, error)
}

// ExecLauncher implements Launcher using os/exec.
type ExecLauncher struct{}

// NewLauncher creates the default launcher.
func NewLauncher() *ExecLauncher {
	return &ExecLauncher{}
}

// ResolveExecutable resolves a path or bare name to a runnable executable.
// An existing file path wins; otherwise PATH is searched.
func ResolveExecutable(pathOrName string) (string, bool) {
	if info, err := os.Stat(pathOrName); err == nil && !info.IsDir() {
		return pathOrName, true
	}
	if resolved, err := exec.LookPath(pathOrName); err == nil {
		return resolved, true
	}
	return "", false
}

// buildCommand constructs the exec.Cmd shared by both launch modes.
func buildCommand(ctx context.Context, cfg model.ProgramConfig) (*exec.Cmd, error) {
	path, ok := ResolveExecutable(cfg.Path)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, cfg.Path)
	}

	args := make([]string, 0, len(cfg.Arguments))
	for _, arg := range cfg.Arguments {
		if arg != "" {
			args = append(args, arg)
		}
	}

	var cmd *exec.Cmd
	if ctx != nil {
		cmd = exec.CommandContext(ctx, path, args...)
	} else {
		cmd = exec.Command(path, args...)
	}

	// Working directory applies only when it actually is a directory;
	// anything else is silently ignored rather than failing the launch.
	if cfg.WorkingDirectory != "" {
		if info, err := os.Stat(cfg.WorkingDirectory); err == nil && info.IsDir() {
			cmd.Dir = cfg.WorkingDirectory
		}
	}

	if cfg.Hidden {
		configureHidden(cmd)
	}

	return cmd, nil
}

// LaunchDetached spawns the program and returns immediately. The process is
// detached from our process group and reaped in the background.
func (l *ExecLauncher) LaunchDetached(cfg model.ProgramConfig) error {
	cmd, err := buildCommand(nil, cfg)
	if err != nil {
		return err
	}
	configureDetached(cmd)

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to launch program '%s': %w", cfg.Path, err)
	}

	// Reap the child so a long-running program never leaves a zombie.
	go func() { _ = cmd.Wait() }()

	return nil
}

// LaunchAndWait spawns the program attached and blocks the calling goroutine
// until it exits. There is no timeout unless the caller bounds ctx; waiting
// indefinitely is the documented baseline behavior.
func (l *ExecLauncher) LaunchAndWait(ctx context.Context, cfg model.ProgramConfig) (WaitResult, error) {
	cmd, err := buildCommand(ctx, cfg)
	if err != nil {
		return WaitResult{}, err
	}

	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return WaitResult{ExitCode: exitErr.ExitCode(), Stdout: stdout.Bytes()}, nil
		}
		return WaitResult{}, fmt.Errorf("failed to launch program '%s': %w", cfg.Path, err)
	}

	return WaitResult{ExitCode: cmd.ProcessState.ExitCode(), Stdout: stdout.Bytes()}, nil
}
