package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const anthropicDefaultModel = "claude-sonnet-4-20250514"

// Anthropic is a text-only Provider backed by the Anthropic messages API.
type Anthropic struct {
	apiKey string
	model  string
}

// NewAnthropic creates an Anthropic provider. An empty model selects the
// default.
func NewAnthropic(apiKey, model string) *Anthropic {
	if model == "" {
		model = anthropicDefaultModel
	}
	return &Anthropic{apiKey: apiKey, model: model}
}

// SendText sends the system prompt and input as one user message.
func (a *Anthropic) SendText(ctx context.Context, systemPrompt, input string) (Response, error) {
	client := anthropic.NewClient(option.WithAPIKey(a.apiKey))

	msg, err := client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(a.model),
		MaxTokens: 8192,
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(input)),
		},
	})
	if err != nil {
		return Response{}, fmt.Errorf("anthropic request failed: %w", err)
	}

	var sb strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	return Response{Text: sb.String()}, nil
}

// SendAudio is not supported by this provider.
func (a *Anthropic) SendAudio(ctx context.Context, systemPrompt string, audio []byte, mimeType string) (Response, error) {
	return Response{}, ErrAudioUnsupported
}

// TestConnection verifies the API key with a minimal request.
func (a *Anthropic) TestConnection(ctx context.Context) error {
	resp, err := a.SendText(ctx, "Respond with only: OK", "Test")
	if err != nil {
		return err
	}
	if resp.Text == "" {
		return errors.New("anthropic returned an empty response")
	}
	return nil
}
