package models

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestExcerpt_MultibyteStaysValidUTF8(t *testing.T) {
	tests := []struct {
		name    string
		content string
		max     int
	}{
		{"cyrillic", strings.Repeat("ф", 80), 50},
		{"emoji", strings.Repeat("🙂", 60), 50},
		{"mixed", "héllo " + strings.Repeat("wörld ", 20), 50},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got := Excerpt(tc.content, tc.max)
			assert.True(t, utf8.ValidString(got), "truncation must not split a rune: %q", got)
			assert.Equal(t, tc.max, utf8.RuneCountInString(strings.TrimSuffix(got, "...")))
		})
	}
}

func TestExcerpt_ShortContentUntouched(t *testing.T) {
	assert.Equal(t, "привет", Excerpt("привет", 50))
	assert.Equal(t, strings.Repeat("a", 50), Excerpt(strings.Repeat("a", 50), 50))
}

func TestPreview_MultibyteContent(t *testing.T) {
	p := DocumentSummary{Content: strings.Repeat("ф", 80)}.Preview()
	assert.True(t, utf8.ValidString(p))
	assert.True(t, strings.HasSuffix(p, "..."))
}
