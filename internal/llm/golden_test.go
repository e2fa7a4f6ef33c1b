package llm

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/dshills/kelly/internal/poem"
)

// runGolden feeds a canned reply from testdata/replies through Generate.
func runGolden(t *testing.T, name string, strict bool) (string, *mockProvider, error) {
	t.Helper()
	raw, err := os.ReadFile("../../testdata/replies/" + name)
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}
	mp := &mockProvider{responses: []string{string(raw)}}
	opts := defaultOptions(t)
	opts.Strict = strict
	text, err := Generate(context.Background(), mp, "golden question", opts)
	return text, mp, err
}

func TestGolden_Fenced(t *testing.T) {
	text, _, err := runGolden(t, "fenced.txt", true)
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	if strings.Contains(text, "```") {
		t.Errorf("fence survived normalization:\n%s", text)
	}
	if !poem.Parse(text).Matches(poem.DefaultConfig()) {
		t.Errorf("expected 4x4 poem, got:\n%s", text)
	}
	if !strings.HasPrefix(text, "They promise minds in silicon") {
		t.Errorf("unexpected first line:\n%s", text)
	}
}

func TestGolden_CRLF(t *testing.T) {
	text, _, err := runGolden(t, "crlf.txt", true)
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	if strings.Contains(text, "\r") {
		t.Error("carriage returns survived normalization")
	}
	if strings.Contains(text, "\n\n\n") {
		t.Error("double blank line survived normalization")
	}
	if !poem.Parse(text).Matches(poem.DefaultConfig()) {
		t.Errorf("expected 4x4 poem, got:\n%s", text)
	}
}

func TestGolden_ShortLenient(t *testing.T) {
	text, mp, err := runGolden(t, "short.txt", false)
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	if n, _ := poem.Parse(text).Shape(); n != 1 {
		t.Errorf("expected the single stanza to be kept, got %d", n)
	}
	if mp.callCount != 1 {
		t.Errorf("expected no repair, got %d calls", mp.callCount)
	}
}

func TestGolden_ShortStrict(t *testing.T) {
	_, mp, err := runGolden(t, "short.txt", true)
	if !errors.Is(err, ErrInvalidModelOutput) {
		t.Fatalf("expected ErrInvalidModelOutput, got %v", err)
	}
	if mp.callCount != 2 {
		t.Errorf("expected initial + repair calls, got %d", mp.callCount)
	}
}

func TestGolden_Blank(t *testing.T) {
	_, _, err := runGolden(t, "blank.txt", false)
	if !errors.Is(err, ErrInvalidModelOutput) {
		t.Fatalf("expected ErrInvalidModelOutput, got %v", err)
	}
}
