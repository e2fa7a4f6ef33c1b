package poem

import (
	"fmt"
	"strings"

	"github.com/dshills/kelly/internal/library"
	"github.com/dshills/kelly/internal/topic"
)

// Composer turns a question into a serialized poem. Implementations are
// stateless and safe for concurrent use.
type Composer interface {
	Generate(question string, extraSuggestions []string) string
}

// Strategy selects a Composer implementation.
type Strategy string

const (
	StrategyCompositional Strategy = "compositional"
	StrategyTemplate      Strategy = "template"
)

// ParseStrategy converts a strategy name; the empty string means
// StrategyCompositional.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(strings.ToLower(strings.TrimSpace(s))) {
	case StrategyCompositional, "":
		return StrategyCompositional, nil
	case StrategyTemplate:
		return StrategyTemplate, nil
	default:
		return "", fmt.Errorf("poem: unknown strategy %q (available: compositional, template)", s)
	}
}

// New builds the Composer for strategy. cfg is validated even for the
// template strategy so a bad configuration fails the same way everywhere.
func New(strategy Strategy, cfg Config) (Composer, error) {
	switch strategy {
	case StrategyCompositional, "":
		c, err := NewCompositional(cfg)
		if err != nil {
			return nil, err
		}
		return c, nil
	case StrategyTemplate:
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		t, err := NewFixedTemplate()
		if err != nil {
			return nil, err
		}
		return t, nil
	default:
		return nil, fmt.Errorf("poem: unknown strategy %q", strategy)
	}
}

// Compositional assembles poems line by line from the shared pools and the
// classified topic's block.
type Compositional struct {
	cfg         Config
	openers     []string
	limitations []string
	suggestions []string
	closers     []string
}

// NewCompositional returns a composer with the given shape. It fails when
// cfg has a non-positive dimension or the library is incomplete.
func NewCompositional(cfg Config) (*Compositional, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := library.Validate(); err != nil {
		return nil, err
	}
	return &Compositional{
		cfg:         cfg,
		openers:     library.LinesFor(library.RoleOpener, topic.General),
		limitations: library.LinesFor(library.RoleLimitation, topic.General),
		suggestions: library.LinesFor(library.RoleSuggestion, topic.General),
		closers:     library.LinesFor(library.RoleCloser, topic.General),
	}, nil
}

// Config returns the composer's shape.
func (c *Compositional) Config() Config { return c.cfg }

// Generate returns the serialized poem for question.
func (c *Compositional) Generate(question string, extraSuggestions []string) string {
	p, _ := c.Compose(question, extraSuggestions)
	return p.String()
}

// Compose classifies question and assembles its poem.
//
// Candidate order: one opener, up to L topic lines, L limitation lines, L-1
// suggestion lines and one closer. The first usable extra suggestion takes
// the first suggestion slot and pushes the last one out. The candidate is
// then padded with further limitation lines or truncated to Stanzas*L.
func (c *Compositional) Compose(question string, extraSuggestions []string) (Poem, topic.Topic) {
	per := c.cfg.LinesPerStanza
	t := topic.Classify(question)

	lines := make([]string, 0, c.cfg.Total()+1)
	lines = append(lines, Rotate(c.openers, 1)...)

	block := library.LinesFor(library.RoleTopic, t)
	if len(block) > per {
		block = block[:per]
	}
	lines = append(lines, block...)

	lines = append(lines, Rotate(c.limitations, per)...)
	limitationsUsed := per

	tips := Rotate(c.suggestions, per-1)
	if extra, ok := firstSuggestion(extraSuggestions); ok {
		if len(tips) > 0 {
			tips = append([]string{extra}, tips[:len(tips)-1]...)
		} else {
			tips = []string{extra}
		}
	}
	lines = append(lines, tips...)
	lines = append(lines, Rotate(c.closers, 1)...)

	total := c.cfg.Total()
	if missing := total - len(lines); missing > 0 {
		lines = append(lines, rotateFrom(c.limitations, limitationsUsed, missing)...)
	}
	lines = lines[:total]

	return partition(lines, per), t
}

// firstSuggestion returns the first non-blank caller suggestion, flattened
// to a single line so it cannot break the stanza layout.
func firstSuggestion(extra []string) (string, bool) {
	for _, s := range extra {
		s = strings.Join(strings.Fields(s), " ")
		if s != "" {
			return s, true
		}
	}
	return "", false
}

// FixedTemplate returns the hand-written poem for the classified topic,
// verbatim. Extra suggestions are ignored.
type FixedTemplate struct{}

// NewFixedTemplate returns a template composer after checking the library.
func NewFixedTemplate() (*FixedTemplate, error) {
	if err := library.Validate(); err != nil {
		return nil, err
	}
	return &FixedTemplate{}, nil
}

// Generate returns the template for question's topic.
func (FixedTemplate) Generate(question string, _ []string) string {
	return library.Template(topic.Classify(question))
}
