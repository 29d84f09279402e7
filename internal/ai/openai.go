package ai

import (
	"context"
	"errors"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const openAIDefaultModel = "gpt-4o-mini"

// OpenAI is a text-only Provider backed by the OpenAI chat completions API.
type OpenAI struct {
	apiKey string
	model  string
}

// NewOpenAI creates an OpenAI provider. An empty model selects the default.
func NewOpenAI(apiKey, model string) *OpenAI {
	if model == "" {
		model = openAIDefaultModel
	}
	return &OpenAI{apiKey: apiKey, model: model}
}

// SendText sends the system prompt and input as a two-message chat.
func (o *OpenAI) SendText(ctx context.Context, systemPrompt, input string) (Response, error) {
	client := openai.NewClient(option.WithAPIKey(o.apiKey))

	resp, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(o.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(input),
		},
	})
	if err != nil {
		return Response{}, fmt.Errorf("openai request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return Response{}, errors.New("openai returned no choices")
	}
	return Response{Text: resp.Choices[0].Message.Content}, nil
}

// SendAudio is not supported by this provider.
func (o *OpenAI) SendAudio(ctx context.Context, systemPrompt string, audio []byte, mimeType string) (Response, error) {
	return Response{}, ErrAudioUnsupported
}

// TestConnection verifies the API key with a minimal request.
func (o *OpenAI) TestConnection(ctx context.Context) error {
	resp, err := o.SendText(ctx, "Respond with only: OK", "Test")
	if err != nil {
		return err
	}
	if resp.Text == "" {
		return errors.New("openai returned an empty response")
	}
	return nil
}
