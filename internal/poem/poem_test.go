package poem

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPoemString(t *testing.T) {
	p := Poem{Stanzas: [][]string{{"a", "b"}, {"c", "d"}}}
	assert.Equal(t, "a\nb\n\nc\nd", p.String())
	assert.Equal(t, "", Poem{}.String())
}

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		text string
		want [][]string
	}{
		{"simple", "a\nb\n\nc\nd", [][]string{{"a", "b"}, {"c", "d"}}},
		{"crlf and padding", "\r\na\r\nb  \r\n\r\n\r\nc\n\n", [][]string{{"a", "b"}, {"c"}}},
		{"whitespace separator", "a\n   \nb", [][]string{{"a"}, {"b"}}},
		{"empty", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.text).Stanzas)
		})
	}
}

func TestPoemMatches(t *testing.T) {
	p := Parse("a\nb\n\nc\nd")
	assert.True(t, p.Matches(Config{Stanzas: 2, LinesPerStanza: 2}))
	assert.False(t, p.Matches(Config{Stanzas: 1, LinesPerStanza: 4}))
	assert.False(t, Parse("a\nb\n\nc").Matches(Config{Stanzas: 2, LinesPerStanza: 2}))

	n, lines := Parse("a\nb\n\nc").Shape()
	assert.Equal(t, 2, n)
	assert.Equal(t, []int{2, 1}, lines)
}

func TestConfigTotal(t *testing.T) {
	assert.Equal(t, 16, DefaultConfig().Total())
	assert.NoError(t, DefaultConfig().Validate())
}
