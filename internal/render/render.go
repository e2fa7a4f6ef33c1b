// Package render produces output from a fully assembled schema.Answer.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/dshills/kelly/internal/schema"
)

// Format selects an output rendering.
type Format string

const (
	FormatText   Format = "text"
	FormatJSON   Format = "json"
	FormatStyled Format = "styled"
)

// ParseFormat converts a flag value into a Format. An empty value is text.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON, FormatStyled:
		return f, nil
	default:
		return "", fmt.Errorf("render: unknown format %q (available: text, json, styled)", s)
	}
}

// Gruvbox palette shared with the terminal formatter.
var (
	colorHeader = lipgloss.Color("#fe8019")
	colorDim    = lipgloss.Color("#928374")
	colorFg     = lipgloss.Color("#ebdbb2")
	colorYellow = lipgloss.Color("#fabd2f")

	styleHeader = lipgloss.NewStyle().Foreground(colorHeader).Bold(true)
	styleDim    = lipgloss.NewStyle().Foreground(colorDim)
	styleLine   = lipgloss.NewStyle().Foreground(colorFg)
	styleWarn   = lipgloss.NewStyle().Foreground(colorYellow)
	styleBox    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDim).
			PaddingLeft(2).
			PaddingRight(2)
)

// RenderText returns the poem exactly as produced, with a trailing newline.
func RenderText(a *schema.Answer) string {
	if a == nil {
		return ""
	}
	return a.Text + "\n"
}

// RenderJSON produces a pretty-printed JSON representation of the answer.
// The output round-trips through json.Unmarshal back to an equal Answer.
func RenderJSON(a *schema.Answer) ([]byte, error) {
	if a == nil {
		return nil, fmt.Errorf("render: nil answer")
	}
	b, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("render: json marshal: %w", err)
	}
	return b, nil
}

// RenderStyled frames the poem in a box under the question, with a dim
// footer naming the topic and the path that produced it.
func RenderStyled(a *schema.Answer) string {
	if a == nil {
		return ""
	}
	stanzas := a.Stanzas()
	blocks := make([]string, len(stanzas))
	for i, s := range stanzas {
		lines := make([]string, len(s))
		for j, l := range s {
			lines[j] = styleLine.Render(l)
		}
		blocks[i] = strings.Join(lines, "\n")
	}

	var sb strings.Builder
	title := a.Question
	if strings.TrimSpace(title) == "" {
		title = "untitled"
	}
	sb.WriteString(styleHeader.Render(title))
	sb.WriteString("\n")
	sb.WriteString(styleBox.Render(strings.Join(blocks, "\n\n")))
	sb.WriteString("\n")
	sb.WriteString(styleDim.Render(footer(a)))
	sb.WriteString("\n")
	if a.Fallback != "" {
		sb.WriteString(styleWarn.Render("remote poet unavailable: " + a.Fallback))
		sb.WriteString("\n")
	}
	return sb.String()
}

func footer(a *schema.Answer) string {
	parts := []string{"topic: " + a.Topic, "source: " + string(a.Source)}
	if a.Source == schema.SourceLLM {
		parts = append(parts, "via "+a.Provider+"/"+a.Model)
	} else if a.Strategy != "" {
		parts = append(parts, "strategy: "+a.Strategy)
	}
	return strings.Join(parts, " · ")
}

// Write renders a in the given format to w. Styled output degrades to text
// when w is not a terminal.
func Write(w io.Writer, a *schema.Answer, f Format) error {
	var out string
	switch f {
	case FormatJSON:
		b, err := RenderJSON(a)
		if err != nil {
			return err
		}
		out = string(b) + "\n"
	case FormatStyled:
		if ShouldStyle(w) {
			out = RenderStyled(a)
		} else {
			out = RenderText(a)
		}
	default:
		out = RenderText(a)
	}
	_, err := io.WriteString(w, out)
	return err
}

// ShouldStyle reports whether w is an interactive terminal.
func ShouldStyle(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
