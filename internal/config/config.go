package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/dshills/kelly/internal/llm"
	"github.com/dshills/kelly/internal/persona"
	"github.com/dshills/kelly/internal/poem"
	"github.com/dshills/kelly/internal/scientist"
)

// Config holds all application configuration.
type Config struct {
	// Remote poet. Provider is empty for auto-detection.
	Provider string
	Model    string

	AnthropicAPIKey string
	OpenAIAPIKey    string
	GoogleAPIKey    string
	OllamaHost      string

	// Poem shape and voice
	Stanzas        int
	LinesPerStanza int
	Strategy       string
	Persona        string
	PersonaFile    string

	// Remote call tuning
	Timeout     time.Duration
	Temperature float64
	MaxTokens   int
	Strict      bool

	// Logging
	LogLevel string
}

// Load reads configuration from environment variables.
// It automatically loads .env file if present.
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	cfg := &Config{
		Provider:        strings.ToLower(getEnv("KELLY_PROVIDER", "")),
		Model:           getEnv("KELLY_MODEL", ""),
		AnthropicAPIKey: getEnv("ANTHROPIC_API_KEY", ""),
		OpenAIAPIKey:    getEnv("OPENAI_API_KEY", ""),
		GoogleAPIKey:    getEnv("GOOGLE_API_KEY", ""),
		OllamaHost:      getEnv("OLLAMA_HOST", ""),
		Strategy:        getEnv("KELLY_STRATEGY", string(poem.StrategyCompositional)),
		Persona:         getEnv("KELLY_PERSONA", persona.Default),
		PersonaFile:     getEnv("KELLY_PERSONA_FILE", ""),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
	}

	var err error
	if cfg.Stanzas, err = strconv.Atoi(getEnv("KELLY_STANZAS", strconv.Itoa(poem.DefaultStanzas))); err != nil {
		return nil, fmt.Errorf("invalid KELLY_STANZAS: %w", err)
	}
	if cfg.LinesPerStanza, err = strconv.Atoi(getEnv("KELLY_LINES_PER_STANZA", strconv.Itoa(poem.DefaultLinesPerStanza))); err != nil {
		return nil, fmt.Errorf("invalid KELLY_LINES_PER_STANZA: %w", err)
	}
	if cfg.Timeout, err = time.ParseDuration(getEnv("KELLY_TIMEOUT", scientist.DefaultTimeout.String())); err != nil {
		return nil, fmt.Errorf("invalid KELLY_TIMEOUT: %w", err)
	}
	if cfg.Temperature, err = strconv.ParseFloat(getEnv("KELLY_TEMPERATURE", "0.7"), 64); err != nil {
		return nil, fmt.Errorf("invalid KELLY_TEMPERATURE: %w", err)
	}
	if cfg.MaxTokens, err = strconv.Atoi(getEnv("KELLY_MAX_TOKENS", strconv.Itoa(scientist.DefaultMaxTokens))); err != nil {
		return nil, fmt.Errorf("invalid KELLY_MAX_TOKENS: %w", err)
	}
	if cfg.Strict, err = strconv.ParseBool(getEnv("KELLY_STRICT", "false")); err != nil {
		return nil, fmt.Errorf("invalid KELLY_STRICT: %w", err)
	}

	return cfg, nil
}

// Validate checks that the configuration can build a scientist.
func (c *Config) Validate() error {
	if err := c.PoemConfig().Validate(); err != nil {
		return err
	}
	if _, err := poem.ParseStrategy(c.Strategy); err != nil {
		return err
	}
	if c.PersonaFile != "" {
		if _, err := persona.LoadFile(c.PersonaFile); err != nil {
			return err
		}
	} else if _, err := persona.Load(c.Persona); err != nil {
		return err
	}
	if c.Provider != "" && c.Provider != "none" {
		if _, err := llm.ParseKind(c.Provider); err != nil {
			return err
		}
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("KELLY_TIMEOUT must be positive")
	}
	if c.MaxTokens <= 0 {
		return fmt.Errorf("KELLY_MAX_TOKENS must be positive")
	}
	if c.Temperature < 0 || c.Temperature > 2 {
		return fmt.Errorf("KELLY_TEMPERATURE must be between 0 and 2")
	}
	return nil
}

// PoemConfig returns the configured poem shape.
func (c *Config) PoemConfig() poem.Config {
	return poem.Config{Stanzas: c.Stanzas, LinesPerStanza: c.LinesPerStanza}
}

// LLMSettings returns the remote poet to delegate to, or nil when no
// credential is configured.
//
// With an explicit provider, only that provider's credential counts. With
// no provider, the first hosted service with an API key wins, in the order
// anthropic, openai, google. Ollama is never auto-selected. "none" disables
// delegation.
func (c *Config) LLMSettings() (*llm.Settings, error) {
	switch c.Provider {
	case "none":
		return nil, nil
	case "":
		for _, k := range []llm.Kind{llm.KindAnthropic, llm.KindOpenAI, llm.KindGoogle} {
			if c.credential(k) != "" {
				return c.settings(k), nil
			}
		}
		return nil, nil
	}

	k, err := llm.ParseKind(c.Provider)
	if err != nil {
		return nil, err
	}
	if k == llm.KindOllama {
		s := c.settings(k)
		if s.BaseURL == "" {
			s.BaseURL = llm.DefaultOllamaHost
		}
		return s, nil
	}
	if c.credential(k) == "" {
		return nil, nil
	}
	return c.settings(k), nil
}

func (c *Config) settings(k llm.Kind) *llm.Settings {
	s := &llm.Settings{Kind: k, Model: c.Model}
	if k == llm.KindOllama {
		s.BaseURL = normalizeOllamaHost(c.OllamaHost)
	} else {
		s.APIKey = c.credential(k)
	}
	return s
}

func (c *Config) credential(k llm.Kind) string {
	switch k {
	case llm.KindAnthropic:
		return c.AnthropicAPIKey
	case llm.KindOpenAI:
		return c.OpenAIAPIKey
	case llm.KindGoogle:
		return c.GoogleAPIKey
	case llm.KindOllama:
		return c.OllamaHost
	}
	return ""
}

// ScientistOptions converts the configuration into scientist options.
func (c *Config) ScientistOptions() (scientist.Options, error) {
	strategy, err := poem.ParseStrategy(c.Strategy)
	if err != nil {
		return scientist.Options{}, err
	}
	settings, err := c.LLMSettings()
	if err != nil {
		return scientist.Options{}, err
	}
	return scientist.Options{
		Poem:        c.PoemConfig(),
		Strategy:    strategy,
		LLM:         settings,
		Persona:     c.Persona,
		PersonaFile: c.PersonaFile,
		Timeout:     c.Timeout,
		Temperature: c.Temperature,
		MaxTokens:   c.MaxTokens,
		Strict:      c.Strict,
	}, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// normalizeOllamaHost turns a bind address such as "0.0.0.0:11434" or a bare
// host into a client URL.
func normalizeOllamaHost(host string) string {
	switch host {
	case "":
		return ""
	case "0.0.0.0", "0.0.0.0:11434":
		return llm.DefaultOllamaHost
	}
	if !strings.HasPrefix(host, "http://") && !strings.HasPrefix(host, "https://") {
		return "http://" + host
	}
	return host
}
