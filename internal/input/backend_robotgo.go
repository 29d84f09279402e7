package input

import (
	"errors"
	"os"
	"runtime"

	"github.com/go-vgo/robotgo"
)

// ErrNoInputBackend indicates the session has no synthetic-input capability.
var ErrNoInputBackend = errors.New("no input backend available in this session")

// robotgoBackend sends key events through robotgo.
type robotgoBackend struct{}

// newPlatformBackend acquires the OS input backend.
func newPlatformBackend() (Backend, error) {
	// robotgo needs a display server to inject events on Linux.
	if runtime.GOOS == "linux" && os.Getenv("DISPLAY") == "" && os.Getenv("WAYLAND_DISPLAY") == "" {
		return nil, ErrNoInputBackend
	}
	return &robotgoBackend{}, nil
}

func (b *robotgoBackend) KeyDown(key string) error {
	return robotgo.KeyDown(key)
}

func (b *robotgoBackend) KeyUp(key string) error {
	return robotgo.KeyUp(key)
}

func (b *robotgoBackend) KeyTap(key string) error {
	return robotgo.KeyTap(key)
}
