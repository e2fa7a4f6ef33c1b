package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	googleoption "google.golang.org/api/option"
)

// googleProvider implements Provider using the Google Generative AI SDK.
// A new genai.Client is created per Complete call so that the caller's
// context governs the connection and the client is always closed after use.
type googleProvider struct {
	apiKey   string
	model    string
	endpoint string
}

func newGoogleProvider(s Settings) (Provider, error) {
	if s.APIKey == "" {
		return nil, fmt.Errorf("llm: %s not set", KindGoogle.EnvKey())
	}
	return &googleProvider{apiKey: s.APIKey, model: s.ModelOrDefault(), endpoint: s.BaseURL}, nil
}

func (p *googleProvider) Complete(
	ctx context.Context,
	systemPrompt, userPrompt string,
	maxTokens int,
	temperature float64,
) (string, error) {
	opts := []googleoption.ClientOption{googleoption.WithAPIKey(p.apiKey)}
	if p.endpoint != "" {
		opts = append(opts, googleoption.WithEndpoint(p.endpoint))
	}
	client, err := genai.NewClient(ctx, opts...)
	if err != nil {
		return "", fmt.Errorf("google: genai client: %w", err)
	}
	defer client.Close()

	m := client.GenerativeModel(p.model)
	m.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemPrompt)},
	}
	m.SetMaxOutputTokens(int32(maxTokens))
	m.SetTemperature(float32(temperature))
	m.ResponseMIMEType = "text/plain"

	resp, err := m.GenerateContent(ctx, genai.Text(userPrompt))
	if err != nil {
		return "", fmt.Errorf("google: generate content: %w", err)
	}

	var parts []string
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if t, ok := part.(genai.Text); ok {
				parts = append(parts, string(t))
			}
		}
	}
	if len(parts) == 0 {
		return "", fmt.Errorf("google: %w", ErrEmptyResponse)
	}
	return strings.Join(parts, ""), nil
}
