package poem

import "strings"

// Poem is an ordered list of stanzas, each an ordered list of lines.
type Poem struct {
	Stanzas [][]string
}

// String serializes the poem: lines joined by a newline, stanzas separated
// by a blank line.
func (p Poem) String() string {
	parts := make([]string, len(p.Stanzas))
	for i, s := range p.Stanzas {
		parts[i] = strings.Join(s, "\n")
	}
	return strings.Join(parts, "\n\n")
}

// Lines returns every line in order.
func (p Poem) Lines() []string {
	var out []string
	for _, s := range p.Stanzas {
		out = append(out, s...)
	}
	return out
}

// Shape reports the stanza count and the line count of each stanza.
func (p Poem) Shape() (stanzas int, lines []int) {
	lines = make([]int, len(p.Stanzas))
	for i, s := range p.Stanzas {
		lines[i] = len(s)
	}
	return len(p.Stanzas), lines
}

// Matches reports whether the poem has exactly cfg's shape.
func (p Poem) Matches(cfg Config) bool {
	if len(p.Stanzas) != cfg.Stanzas {
		return false
	}
	for _, s := range p.Stanzas {
		if len(s) != cfg.LinesPerStanza {
			return false
		}
	}
	return true
}

// Parse splits serialized text back into stanzas. Runs of blank lines
// separate stanzas; leading and trailing blank lines are ignored, as is
// trailing whitespace on each line.
func Parse(text string) Poem {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	var (
		p       Poem
		current []string
	)
	flush := func() {
		if len(current) > 0 {
			p.Stanzas = append(p.Stanzas, current)
			current = nil
		}
	}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, " \t")
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		current = append(current, line)
	}
	flush()
	return p
}

// partition groups lines into consecutive stanzas of size per. len(lines)
// must be a multiple of per.
func partition(lines []string, per int) Poem {
	p := Poem{Stanzas: make([][]string, 0, len(lines)/per)}
	for i := 0; i < len(lines); i += per {
		p.Stanzas = append(p.Stanzas, append([]string(nil), lines[i:i+per]...))
	}
	return p
}
