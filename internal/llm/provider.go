package llm

import (
	"context"
	"fmt"
	"strings"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// Kind identifies a hosted completion service. The set is closed.
type Kind int

const (
	KindAnthropic Kind = iota + 1
	KindOpenAI
	KindGoogle
	KindOllama
)

type kindInfo struct {
	name  string
	env   string
	model string
}

var kindTable = map[Kind]kindInfo{
	KindAnthropic: {"anthropic", "ANTHROPIC_API_KEY", "claude-sonnet-4-20250514"},
	KindOpenAI:    {"openai", "OPENAI_API_KEY", "gpt-4o-mini"},
	KindGoogle:    {"google", "GOOGLE_API_KEY", "gemini-1.5-flash"},
	KindOllama:    {"ollama", "OLLAMA_HOST", "llama3.2"},
}

// Kinds returns every provider kind in declaration order.
func Kinds() []Kind {
	return []Kind{KindAnthropic, KindOpenAI, KindGoogle, KindOllama}
}

func (k Kind) String() string {
	if info, ok := kindTable[k]; ok {
		return info.name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// DefaultModel is the model used when Settings.Model is empty.
func (k Kind) DefaultModel() string { return kindTable[k].model }

// EnvKey names the environment variable holding the kind's credential. For
// Ollama, which is unauthenticated, it is the server address.
func (k Kind) EnvKey() string { return kindTable[k].env }

// ParseKind converts a provider name into a Kind.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, k := range Kinds() {
		if k.String() == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("llm: unknown provider %q (available: anthropic, openai, google, ollama)", s)
}

// Settings identifies one remote poet.
type Settings struct {
	Kind Kind
	// APIKey is the credential. For Ollama it is unused; BaseURL is the
	// server address.
	APIKey  string
	Model   string
	BaseURL string
}

// HasCredential reports whether the settings can reach a provider at all.
// Ollama needs no key, so an explicit server address stands in for one.
func (s Settings) HasCredential() bool {
	if s.Kind == KindOllama {
		return s.BaseURL != ""
	}
	return s.APIKey != ""
}

// ModelOrDefault returns the configured model or the kind's default.
func (s Settings) ModelOrDefault() string {
	if s.Model != "" {
		return s.Model
	}
	return s.Kind.DefaultModel()
}

// defaultNewProvider dispatches to the appropriate provider implementation.
func defaultNewProvider(s Settings) (Provider, error) {
	switch s.Kind {
	case KindAnthropic:
		return newAnthropicProvider(s)
	case KindOpenAI:
		return newOpenAIProvider(s)
	case KindGoogle:
		return newGoogleProvider(s)
	case KindOllama:
		return newOllamaProvider(s)
	default:
		return nil, fmt.Errorf("llm: unknown provider %s", s.Kind)
	}
}

// anthropicProvider implements Provider using the Anthropic SDK.
// anthropic.Client is a value type; the SDK's NewClient returns it by value.
type anthropicProvider struct {
	client anthropic.Client
	model  string
}

func newAnthropicProvider(s Settings) (Provider, error) {
	if s.APIKey == "" {
		return nil, fmt.Errorf("llm: %s not set", KindAnthropic.EnvKey())
	}
	opts := []option.RequestOption{
		option.WithAPIKey(s.APIKey),
		option.WithMaxRetries(0),
	}
	if s.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(s.BaseURL))
	}
	return &anthropicProvider{client: anthropic.NewClient(opts...), model: s.ModelOrDefault()}, nil
}

func (p *anthropicProvider) Complete(
	ctx context.Context,
	systemPrompt, userPrompt string,
	maxTokens int,
	temperature float64,
) (string, error) {
	msg, err := p.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(p.model),
		MaxTokens:   int64(maxTokens),
		Temperature: anthropic.Float(temperature),
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(userPrompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("anthropic: messages.new: %w", err)
	}

	var parts []string
	for _, block := range msg.Content {
		// "text" is the only block type that carries assistant output.
		if block.Type == "text" {
			parts = append(parts, block.Text)
		}
	}
	if len(parts) == 0 {
		return "", fmt.Errorf("anthropic: %w", ErrEmptyResponse)
	}
	return strings.Join(parts, ""), nil
}
