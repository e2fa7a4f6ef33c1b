// Package llm handles remote poet communication: provider selection, persona
// prompt construction, response validation, and the single repair attempt.
package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/dshills/kelly/internal/persona"
	"github.com/dshills/kelly/internal/poem"
)

var (
	// ErrInvalidModelOutput is returned when both the initial and repair
	// responses fail validation.
	ErrInvalidModelOutput = errors.New("llm: invalid model output after repair attempt")

	// ErrEmptyResponse is returned by providers whose reply carries no text.
	ErrEmptyResponse = errors.New("llm: empty response")

	// ErrTimeout is returned when the caller's deadline expires mid-call.
	ErrTimeout = errors.New("llm: request timed out")
)

// Provider is the interface for remote completion backends.
type Provider interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string, maxTokens int, temperature float64) (string, error)
}

// NewProvider is the factory for creating providers. It is a package-level
// variable so tests can replace it with a mock without modifying the call site.
// Tests must restore the original value; use t.Cleanup to do so safely.
var NewProvider func(s Settings) (Provider, error) = defaultNewProvider

// Options configures a Generate call.
type Options struct {
	Persona     persona.Persona
	Poem        poem.Config
	Extra       []string
	MaxTokens   int
	Temperature float64
	// Strict makes a stanza/line mismatch a repairable failure instead of a
	// logged warning.
	Strict bool
	Logger *slog.Logger
}

// ValidationError records a single validation failure on a response.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation: %s: %s", e.Field, e.Message)
}

// Generate asks the provider for a poem answering question, validates the
// reply, and performs one repair attempt if validation fails. Transport
// errors are returned as-is without retry.
func Generate(ctx context.Context, p Provider, question string, opts Options) (string, error) {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}

	sysPrompt := buildSystemPrompt(opts)
	userPrompt := buildUserPrompt(question)
	log.Debug("llm prompt", "system", sysPrompt, "user", userPrompt)

	raw, err := p.Complete(ctx, sysPrompt, userPrompt, opts.MaxTokens, opts.Temperature)
	if err != nil {
		return "", completeErr(ctx, "complete", err)
	}

	text, errs := ValidateResponse(raw, opts.Poem)
	if !needsRepair(errs, opts.Strict) {
		logWarnings(log, errs)
		return text, nil
	}

	log.Debug("llm response failed validation; repairing", "errors", len(errs))
	repairPrompt := buildRepairPrompt(userPrompt, raw, errs)
	raw2, err := p.Complete(ctx, sysPrompt, repairPrompt, opts.MaxTokens, opts.Temperature)
	if err != nil {
		return "", completeErr(ctx, "repair complete", err)
	}

	text2, errs2 := ValidateResponse(raw2, opts.Poem)
	if !needsRepair(errs2, opts.Strict) {
		logWarnings(log, errs2)
		return text2, nil
	}
	return "", ErrInvalidModelOutput
}

func completeErr(ctx context.Context, op string, err error) error {
	if ctx.Err() != nil {
		return fmt.Errorf("llm: %s: %w: %v", op, ErrTimeout, err)
	}
	return fmt.Errorf("llm: %s: %w", op, err)
}

func logWarnings(log *slog.Logger, errs []ValidationError) {
	for _, e := range errs {
		log.Warn("llm response accepted with warning", "field", e.Field, "message", e.Message)
	}
}

// needsRepair reports whether errs contain a failure that rejects the
// response. Shape mismatches only count in strict mode.
func needsRepair(errs []ValidationError, strict bool) bool {
	for _, e := range errs {
		switch e.Field {
		case "empty":
			return true
		case "shape":
			if strict {
				return true
			}
		}
	}
	return false
}

// fenceRe matches a markdown code fence block (``` or ~~~) with an optional
// language tag and captures the content between the fences.
var fenceRe = regexp.MustCompile("(?s)^(?:`{3}|~{3})[^\\n]*\\n(.*?)(?:`{3}|~{3})\\s*$")

// openFenceRe matches only an opening fence line (no closing fence required).
var openFenceRe = regexp.MustCompile("^(?:`{3}|~{3})[^\\n]*\\n")

// stripMarkdownFences removes leading/trailing markdown code fences that
// models sometimes wrap around verse. A lone opening fence from a truncated
// reply is stripped too.
func stripMarkdownFences(s string) string {
	s = strings.TrimSpace(s)
	if m := fenceRe.FindStringSubmatch(s); m != nil {
		return strings.TrimSpace(m[1])
	}
	if loc := openFenceRe.FindStringIndex(s); loc != nil {
		return strings.TrimSpace(s[loc[1]:])
	}
	return s
}

// ValidateResponse normalizes a raw reply into serialized poem text and
// reports problems. An empty reply yields no text and an "empty" error; a
// reply whose stanza layout differs from cfg is returned normalized with a
// "shape" error.
func ValidateResponse(raw string, cfg poem.Config) (string, []ValidationError) {
	var errs []ValidationError

	p := poem.Parse(stripMarkdownFences(raw))
	if len(p.Stanzas) == 0 {
		return "", append(errs, ValidationError{
			Field:   "empty",
			Message: "response contained no verse",
		})
	}

	if !p.Matches(cfg) {
		stanzas, lines := p.Shape()
		errs = append(errs, ValidationError{
			Field: "shape",
			Message: fmt.Sprintf("want %d stanzas of %d lines, got %d stanzas with line counts %v",
				cfg.Stanzas, cfg.LinesPerStanza, stanzas, lines),
		})
	}
	return p.String(), errs
}

// buildSystemPrompt assembles the persona instructions sent as the system
// prompt.
func buildSystemPrompt(opts Options) string {
	var sb strings.Builder

	if opts.Persona.Voice != "" {
		sb.WriteString(opts.Persona.Voice)
		sb.WriteString("\n\n")
	}

	sb.WriteString("Always answer in verse, never in prose.\n\n")

	fmt.Fprintf(&sb, "Structure: exactly %d stanzas of exactly %d lines each. "+
		"Separate stanzas with one blank line. No title, no preamble, no markdown, no numbering.\n\n",
		opts.Poem.Stanzas, opts.Poem.LinesPerStanza)

	sb.WriteString("Every poem must:\n" +
		"1. Question broad or sweeping claims about AI and ask for the evidence behind them.\n" +
		"2. Name concrete limitations of current AI technology.\n" +
		"3. Offer practical, evidence-based suggestions.\n" +
		"Open with a skeptical question. End the final stanza on a closing statement.\n")

	var extras []string
	for _, s := range opts.Extra {
		if s = strings.TrimSpace(s); s != "" {
			extras = append(extras, s)
		}
	}
	if len(extras) > 0 {
		sb.WriteString("\nInclude these suggestions from the user in the final stanza, verbatim where possible:\n")
		for _, s := range extras {
			fmt.Fprintf(&sb, "  - %s\n", s)
		}
	}

	return sb.String()
}

// buildUserPrompt carries the question.
func buildUserPrompt(question string) string {
	return "Question:\n" + strings.TrimSpace(question) + "\n\nWrite the poem now."
}

// buildRepairPrompt constructs the repair message. It includes the original
// user prompt and the previous invalid response so the model has full context.
func buildRepairPrompt(originalUserPrompt, previousResponse string, errs []ValidationError) string {
	var sb strings.Builder
	sb.WriteString(originalUserPrompt)
	sb.WriteString("\n\nYour previous response was:\n")
	sb.WriteString(previousResponse)
	sb.WriteString("\n\nThat response was invalid. Errors:\n")
	for _, e := range errs {
		fmt.Fprintf(&sb, "  - %s\n", e.Error())
	}
	sb.WriteString("\nPlease output only the corrected poem with the required structure.")
	return sb.String()
}
