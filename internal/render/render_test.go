package render

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/dshills/kelly/internal/poem"
	"github.com/dshills/kelly/internal/schema"
)

const sampleText = "Intelligence, you say, is near.\nWe measure tests, not minds.\n\n" +
	"Benchmarks leak into their training.\nGeneralization stays unproven."

func sampleAnswer() *schema.Answer {
	return &schema.Answer{
		ID:       "0b0e6c1a-8c0f-4b53-9f7e-0f5b9a3c1d2e",
		Tool:     schema.Tool,
		Question: "Is AI intelligent?",
		Topic:    "intelligence",
		Source:   schema.SourceDeterministic,
		Strategy: "compositional",
		Shape:    poem.Config{Stanzas: 2, LinesPerStanza: 2},
		Text:     sampleText,
	}
}

func TestRenderJSON_RoundTrip(t *testing.T) {
	a := sampleAnswer()
	a.Fallback = "llm: request timed out"
	b, err := RenderJSON(a)
	if err != nil {
		t.Fatalf("RenderJSON error: %v", err)
	}
	var got schema.Answer
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("json.Unmarshal: %v", err)
	}
	if got != *a {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, *a)
	}
}

func TestRenderJSON_OmitsEmptyMetadata(t *testing.T) {
	b, err := RenderJSON(sampleAnswer())
	if err != nil {
		t.Fatalf("RenderJSON error: %v", err)
	}
	for _, key := range []string{`"provider"`, `"model"`, `"persona"`, `"fallback"`} {
		if bytes.Contains(b, []byte(key)) {
			t.Errorf("expected %s to be omitted:\n%s", key, b)
		}
	}
	if !bytes.Contains(b, []byte(`"lines_per_stanza": 2`)) {
		t.Errorf("shape missing from JSON:\n%s", b)
	}
}

func TestRenderJSON_Nil(t *testing.T) {
	if _, err := RenderJSON(nil); err == nil {
		t.Error("expected error for nil answer")
	}
}

func TestRenderText(t *testing.T) {
	if got := RenderText(sampleAnswer()); got != sampleText+"\n" {
		t.Errorf("RenderText = %q", got)
	}
	if got := RenderText(nil); got != "" {
		t.Errorf("RenderText(nil) = %q", got)
	}
}

func TestRenderStyled_ContainsEveryLine(t *testing.T) {
	a := sampleAnswer()
	a.Fallback = "anthropic: 401"
	out := RenderStyled(a)
	for _, line := range strings.Split(sampleText, "\n") {
		if line != "" && !strings.Contains(out, line) {
			t.Errorf("styled output missing %q:\n%s", line, out)
		}
	}
	for _, want := range []string{"Is AI intelligent?", "topic: intelligence", "source: deterministic", "anthropic: 401"} {
		if !strings.Contains(out, want) {
			t.Errorf("styled output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderStyled_RemoteFooter(t *testing.T) {
	a := sampleAnswer()
	a.Source = schema.SourceLLM
	a.Provider, a.Model = "ollama", "llama3.2"
	if out := RenderStyled(a); !strings.Contains(out, "via ollama/llama3.2") {
		t.Errorf("footer missing provider:\n%s", out)
	}
}

func TestWrite_StyledDegradesOffTerminal(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, sampleAnswer(), FormatStyled); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	if buf.String() != sampleText+"\n" {
		t.Errorf("styled output to a buffer should be plain text, got %q", buf.String())
	}
}

func TestWrite_JSON(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, sampleAnswer(), FormatJSON); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	if !json.Valid(buf.Bytes()) {
		t.Errorf("invalid JSON: %s", buf.String())
	}
}

func TestShouldStyle(t *testing.T) {
	if ShouldStyle(&bytes.Buffer{}) {
		t.Error("a buffer is never a terminal")
	}
	f, err := os.CreateTemp(t.TempDir(), "out")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if ShouldStyle(f) {
		t.Error("a regular file is never a terminal")
	}
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"": FormatText, "TEXT": FormatText, "json": FormatJSON, " styled ": FormatStyled} {
		got, err := ParseFormat(in)
		if err != nil || got != want {
			t.Errorf("ParseFormat(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	if _, err := ParseFormat("yaml"); err == nil {
		t.Error("ParseFormat(\"yaml\") expected error")
	}
}
