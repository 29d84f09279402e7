//go:build !windows

package process

import (
	"os/exec"
	"syscall"
)

// configureHidden is a no-op on unix; windows owns the hidden-window flags.
func configureHidden(cmd *exec.Cmd) {}

// configureDetached places the child in its own session so it survives us
// and never shares our controlling terminal.
func configureDetached(cmd *exec.Cmd) {
	if cmd.SysProcAttr == nil {
		cmd.SysProcAttr = &syscall.SysProcAttr{}
	}
	cmd.SysProcAttr.Setsid = true
}
