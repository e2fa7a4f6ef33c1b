// Package schema defines the canonical answer record emitted by kelly.
package schema

import "github.com/dshills/kelly/internal/poem"

// Tool is the name recorded in every answer.
const Tool = "kelly"

// Source records which path produced an answer.
type Source string

const (
	SourceLLM           Source = "llm"
	SourceDeterministic Source = "deterministic"
)

// Answer is one poem plus the metadata describing how it was produced.
type Answer struct {
	ID       string      `json:"id,omitempty"`
	Tool     string      `json:"tool"`
	Question string      `json:"question"`
	Topic    string      `json:"topic"`
	Source   Source      `json:"source"`
	Strategy string      `json:"strategy,omitempty"`
	Provider string      `json:"provider,omitempty"`
	Model    string      `json:"model,omitempty"`
	Persona  string      `json:"persona,omitempty"`
	Shape    poem.Config `json:"shape"`
	Text     string      `json:"text"`
	// Fallback holds the delegation error that sent the answer down the
	// deterministic path. Empty when no delegation was attempted or it
	// succeeded.
	Fallback string `json:"fallback,omitempty"`
}

// Stanzas returns the answer text split into stanzas.
func (a Answer) Stanzas() [][]string {
	return poem.Parse(a.Text).Stanzas
}
