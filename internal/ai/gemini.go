package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const geminiDefaultModel = "gemini-2.5-flash-lite"

// Gemini is a Provider backed by the Google Gemini API. It is the only
// provider that accepts inline audio.
type Gemini struct {
	apiKey string
	model  string
}

// NewGemini creates a Gemini provider. An empty model selects the default.
func NewGemini(apiKey, model string) *Gemini {
	if model == "" {
		model = geminiDefaultModel
	}
	return &Gemini{apiKey: apiKey, model: model}
}

// generate runs one request against the API with the provider's settings.
func (g *Gemini) generate(ctx context.Context, parts ...genai.Part) (Response, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(g.apiKey))
	if err != nil {
		return Response{}, fmt.Errorf("gemini client: %w", err)
	}
	defer client.Close()

	m := client.GenerativeModel(g.model)
	m.SetTemperature(0.1)
	m.SetMaxOutputTokens(8192)

	resp, err := m.GenerateContent(ctx, parts...)
	if err != nil {
		return Response{}, fmt.Errorf("gemini request failed: %w", err)
	}

	var sb strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				sb.WriteString(string(text))
			}
		}
		break
	}
	return Response{Text: sb.String()}, nil
}

// SendText sends the system prompt and input as one combined text part.
func (g *Gemini) SendText(ctx context.Context, systemPrompt, input string) (Response, error) {
	return g.generate(ctx, genai.Text(systemPrompt+"\n\n"+input))
}

// SendAudio sends the system prompt plus the audio as an inline blob.
func (g *Gemini) SendAudio(ctx context.Context, systemPrompt string, audio []byte, mimeType string) (Response, error) {
	return g.generate(ctx,
		genai.Text(systemPrompt),
		genai.Blob{MIMEType: mimeType, Data: audio},
	)
}

// TestConnection verifies the API key with a minimal request.
func (g *Gemini) TestConnection(ctx context.Context) error {
	resp, err := g.SendText(ctx, "Respond with only: OK", "Test")
	if err != nil {
		return err
	}
	if resp.Text == "" {
		return errors.New("gemini returned an empty response")
	}
	return nil
}
