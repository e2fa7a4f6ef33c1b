// Package scientist answers questions about AI in verse. It chooses between
// the deterministic composer and a remote LLM poet, and always falls back to
// the composer when the remote path fails.
package scientist

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dshills/kelly/internal/llm"
	"github.com/dshills/kelly/internal/persona"
	"github.com/dshills/kelly/internal/poem"
	"github.com/dshills/kelly/internal/schema"
	"github.com/dshills/kelly/internal/topic"
)

const (
	DefaultTimeout     = 30 * time.Second
	DefaultTemperature = 0.7
	DefaultMaxTokens   = 800
)

// Options configures a Scientist.
type Options struct {
	Poem     poem.Config
	Strategy poem.Strategy
	// LLM enables delegation when non-nil and carrying a credential.
	LLM     *llm.Settings
	Persona string
	// PersonaFile, when set, loads a custom persona from YAML instead of
	// the named builtin.
	PersonaFile string
	Timeout     time.Duration
	Temperature float64
	MaxTokens   int
	Strict      bool
	Logger      *slog.Logger
}

// DefaultOptions returns a deterministic-only configuration producing four
// quatrains.
func DefaultOptions() Options {
	return Options{
		Poem:        poem.DefaultConfig(),
		Strategy:    poem.StrategyCompositional,
		Persona:     persona.Default,
		Timeout:     DefaultTimeout,
		Temperature: DefaultTemperature,
		MaxTokens:   DefaultMaxTokens,
	}
}

// Scientist is safe for concurrent use; it holds no mutable state.
type Scientist struct {
	opts     Options
	composer poem.Composer
	persona  persona.Persona
	log      *slog.Logger
}

// New validates opts and builds the composer. Configuration errors are
// returned here, never from Generate.
func New(opts Options) (*Scientist, error) {
	if opts.Strategy == "" {
		opts.Strategy = poem.StrategyCompositional
	}
	composer, err := poem.New(opts.Strategy, opts.Poem)
	if err != nil {
		return nil, fmt.Errorf("scientist: %w", err)
	}
	p, err := loadPersona(opts)
	if err != nil {
		return nil, fmt.Errorf("scientist: %w", err)
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.MaxTokens <= 0 {
		opts.MaxTokens = DefaultMaxTokens
	}
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	return &Scientist{opts: opts, composer: composer, persona: p, log: log}, nil
}

func loadPersona(opts Options) (persona.Persona, error) {
	if opts.PersonaFile != "" {
		return persona.LoadFile(opts.PersonaFile)
	}
	return persona.Load(opts.Persona)
}

// Delegates reports whether Generate will try the remote poet first.
func (s *Scientist) Delegates() bool {
	return s.opts.LLM != nil && s.opts.LLM.HasCredential()
}

// Generate returns a poem answering question. It never fails: any remote
// error is logged and replaced by the deterministic composer's poem.
func (s *Scientist) Generate(ctx context.Context, question string, extraSuggestions []string) string {
	return s.Answer(ctx, question, extraSuggestions).Text
}

// Compose runs the deterministic path only.
func (s *Scientist) Compose(question string, extraSuggestions []string) string {
	return s.composer.Generate(question, extraSuggestions)
}

// Answer is Generate with metadata describing how the poem was produced.
func (s *Scientist) Answer(ctx context.Context, question string, extraSuggestions []string) schema.Answer {
	a := schema.Answer{
		Tool:     schema.Tool,
		Question: question,
		Topic:    string(topic.Classify(question)),
		Strategy: string(s.opts.Strategy),
		Shape:    s.opts.Poem,
	}

	if s.Delegates() {
		a.Provider = s.opts.LLM.Kind.String()
		a.Model = s.opts.LLM.ModelOrDefault()
		a.Persona = s.persona.Name

		text, err := s.delegate(ctx, question, extraSuggestions)
		if err == nil {
			a.Source = schema.SourceLLM
			a.Text = text
			return a
		}
		s.log.Warn("remote poet failed; using deterministic composer",
			"provider", a.Provider, "model", a.Model, "topic", a.Topic, "error", err)
		a.Fallback = err.Error()
	}

	a.Source = schema.SourceDeterministic
	a.Text = s.Compose(question, extraSuggestions)
	return a
}

// delegate makes the single bounded remote attempt. Panics inside a
// provider are converted to errors so they take the fallback path too.
func (s *Scientist) delegate(ctx context.Context, question string, extra []string) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("scientist: provider panic: %v", r)
		}
	}()

	ctx, cancel := context.WithTimeout(ctx, s.opts.Timeout)
	defer cancel()

	provider, err := llm.NewProvider(*s.opts.LLM)
	if err != nil {
		return "", err
	}

	start := time.Now()
	text, err = llm.Generate(ctx, provider, question, llm.Options{
		Persona:     s.persona,
		Poem:        s.opts.Poem,
		Extra:       extra,
		MaxTokens:   s.opts.MaxTokens,
		Temperature: s.opts.Temperature,
		Strict:      s.opts.Strict,
		Logger:      s.log,
	})
	s.log.Debug("remote poet call",
		"provider", s.opts.LLM.Kind.String(), "latency_ms", time.Since(start).Milliseconds(), "ok", err == nil)
	return text, err
}
