// Package poem assembles fixed-shape poems from the content library.
package poem

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned when a Config has a non-positive dimension.
var ErrInvalidConfig = errors.New("poem: invalid config")

const (
	DefaultStanzas        = 4
	DefaultLinesPerStanza = 4
)

// Config fixes the shape of every poem a composer produces.
type Config struct {
	Stanzas        int `json:"stanzas"`
	LinesPerStanza int `json:"lines_per_stanza"`
}

// DefaultConfig returns four quatrains.
func DefaultConfig() Config {
	return Config{Stanzas: DefaultStanzas, LinesPerStanza: DefaultLinesPerStanza}
}

// Validate rejects non-positive stanza or line counts.
func (c Config) Validate() error {
	if c.Stanzas <= 0 {
		return fmt.Errorf("%w: stanzas must be positive, got %d", ErrInvalidConfig, c.Stanzas)
	}
	if c.LinesPerStanza <= 0 {
		return fmt.Errorf("%w: lines per stanza must be positive, got %d", ErrInvalidConfig, c.LinesPerStanza)
	}
	return nil
}

// Total is the number of lines in a poem of this shape.
func (c Config) Total() int {
	return c.Stanzas * c.LinesPerStanza
}
