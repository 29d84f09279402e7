// Package ai integrates external AI providers for hotkey actions.
package ai

import (
	"context"
	"errors"
)

// ErrAudioUnsupported is returned by providers that cannot accept audio input.
var ErrAudioUnsupported = errors.New("provider does not support audio input")

// Response is the text returned by a provider.
type Response struct {
	Text string
}

// Provider is an opaque, potentially slow, fallible network capability.
type Provider interface {
	// SendText sends a system prompt and text input, returning the response.
	SendText(ctx context.Context, systemPrompt, input string) (Response, error)
	// SendAudio sends a system prompt and raw audio, returning the response.
	SendAudio(ctx context.Context, systemPrompt string, audio []byte, mimeType string) (Response, error)
	// TestConnection verifies credentials with a minimal request.
	TestConnection(ctx context.Context) error
}
