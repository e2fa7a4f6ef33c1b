package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/kelly/internal/library"
	"github.com/dshills/kelly/internal/poem"
	"github.com/dshills/kelly/internal/schema"
	"github.com/dshills/kelly/internal/topic"
)

// run executes the root command offline and returns stdout.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("KELLY_PROVIDER", "none")
	t.Setenv("LOG_LEVEL", "error")

	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func compose(t *testing.T, cfg poem.Config, question string, extra []string) string {
	t.Helper()
	c, err := poem.NewCompositional(cfg)
	require.NoError(t, err)
	return c.Generate(question, extra)
}

func TestAsk_Text(t *testing.T) {
	out, err := run(t, "", "ask", "Is", "AI", "conscious?")
	require.NoError(t, err)
	assert.Equal(t, compose(t, poem.DefaultConfig(), "Is AI conscious?", nil)+"\n", out)
}

func TestAsk_ShapeAndSuggestionFlags(t *testing.T) {
	out, err := run(t, "", "ask", "--stanzas", "3", "--lines", "5", "-s", "Pilot before scaling.", "Will AI replace all jobs?")
	require.NoError(t, err)

	cfg := poem.Config{Stanzas: 3, LinesPerStanza: 5}
	assert.Equal(t, compose(t, cfg, "Will AI replace all jobs?", []string{"Pilot before scaling."})+"\n", out)
	assert.True(t, poem.Parse(out).Matches(cfg))
	assert.Contains(t, out, "Pilot before scaling.")
}

func TestAsk_JSON(t *testing.T) {
	out, err := run(t, "", "ask", "--format", "json", "--strategy", "template", "Is AI biased?")
	require.NoError(t, err)

	var a schema.Answer
	require.NoError(t, json.Unmarshal([]byte(out), &a))
	assert.Equal(t, "kelly", a.Tool)
	assert.Equal(t, "bias", a.Topic)
	assert.Equal(t, schema.SourceDeterministic, a.Source)
	assert.Equal(t, "template", a.Strategy)
	assert.NotEmpty(t, a.ID)
	assert.Empty(t, a.Fallback)
}

func TestAsk_InvalidFlags(t *testing.T) {
	tests := [][]string{
		{"ask", "--stanzas", "0", "q"},
		{"ask", "--lines", "-2", "q"},
		{"ask", "--strategy", "haiku", "q"},
		{"ask", "--persona", "bard", "q"},
		{"ask", "--format", "yaml", "q"},
		{"ask"},
	}
	for _, args := range tests {
		_, err := run(t, "", args...)
		assert.Error(t, err, strings.Join(args, " "))
	}
}

func TestAsk_InvalidEnvironment(t *testing.T) {
	t.Setenv("KELLY_STANZAS", "many")
	_, err := run(t, "", "ask", "q")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "KELLY_STANZAS")
}

func TestBatch_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "questions.txt")
	content := "# warm-up\nIs AI conscious?\n\nWill AI replace all jobs?\nTell me about AI\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	out, err := run(t, "", "batch", "--workers", "2", "--format", "json", path)
	require.NoError(t, err)

	var answers []schema.Answer
	require.NoError(t, json.Unmarshal([]byte(out), &answers))
	require.Len(t, answers, 3)
	assert.Equal(t, "Is AI conscious?", answers[0].Question)
	assert.Equal(t, "consciousness", answers[0].Topic)
	assert.Equal(t, "jobs", answers[1].Topic)
	assert.Equal(t, "general", answers[2].Topic)
	assert.Equal(t, compose(t, poem.DefaultConfig(), "Tell me about AI", nil), answers[2].Text)
}

func TestBatch_StdinText(t *testing.T) {
	out, err := run(t, "Is AI biased?\nIs AI safe?\n", "batch", "-")
	require.NoError(t, err)

	want := "# Is AI biased?\n" + compose(t, poem.DefaultConfig(), "Is AI biased?", nil) + "\n\n" +
		"# Is AI safe?\n" + compose(t, poem.DefaultConfig(), "Is AI safe?", nil) + "\n"
	assert.Equal(t, want, out)
}

func TestBatch_EmptyJSON(t *testing.T) {
	out, err := run(t, "\n# nothing\n", "batch", "--format", "json", "-")
	require.NoError(t, err)
	assert.Equal(t, "[]\n", out)
}

func TestBatch_MissingFile(t *testing.T) {
	_, err := run(t, "", "batch", filepath.Join(t.TempDir(), "absent.txt"))
	assert.Error(t, err)
}

func TestClassify(t *testing.T) {
	tests := map[string]string{
		"Is AI conscious?":          "consciousness",
		"Will AI replace all jobs?": "jobs",
		"Tell me about AI":          "general",
	}
	for q, want := range tests {
		out, err := run(t, "", "classify", q)
		require.NoError(t, err)
		assert.Equal(t, want+"\n", out, q)
	}
}

func TestTopics(t *testing.T) {
	out, err := run(t, "", "topics")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 11)
	assert.True(t, strings.HasPrefix(lines[0], "emotions"))
	assert.True(t, strings.HasPrefix(lines[10], "general"))
	assert.Contains(t, lines[10], "(fallback)")
}

func TestTopics_Template(t *testing.T) {
	out, err := run(t, "", "topics", "Bias")
	require.NoError(t, err)
	assert.Equal(t, library.Template(topic.Bias)+"\n", out)

	_, err = run(t, "", "topics", "astrology")
	assert.Error(t, err)
}

func TestPersonas(t *testing.T) {
	out, err := run(t, "", "personas")
	require.NoError(t, err)
	for _, name := range []string{"lecturer", "reviewer", "scientist"} {
		assert.Contains(t, out, name)
	}
}

func TestAsk_PersonaFileValidated(t *testing.T) {
	_, err := run(t, "", "ask", "--persona-file", filepath.Join(t.TempDir(), "absent.yaml"), "q")
	assert.Error(t, err)
}
