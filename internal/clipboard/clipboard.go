// Package clipboard adapts the system clipboard for post-action execution.
package clipboard

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// System reads and writes the desktop clipboard.
type System struct{}

// New returns a clipboard backed by the OS clipboard service.
func New() *System {
	return &System{}
}

// ReadText returns the clipboard's current text content.
func (s *System) ReadText() (string, error) {
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", fmt.Errorf("clipboard read: %w", err)
	}
	return text, nil
}

// WriteText replaces the clipboard's content with text.
func (s *System) WriteText(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("clipboard write: %w", err)
	}
	return nil
}
