package spoonacular

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeSummary(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "bold and anchor",
			input:    `<b>Tasty</b> dish <a href="x">link</a>`,
			expected: "Tasty dish link",
		},
		{
			name:     "plain text untouched",
			input:    "Just a dish.",
			expected: "Just a dish.",
		},
		{
			name:     "other markup passes through",
			input:    "<i>Spicy</i> <strong>hot</strong> <abbr>kcal</abbr> <br/>",
			expected: "<i>Spicy</i> <strong>hot</strong> <abbr>kcal</abbr> <br/>",
		},
		{
			name:     "multiple anchors",
			input:    "See <a href=\"https://a\">one</a> and <a\nhref=\"https://b\">two</a>.",
			expected: "See one and two.",
		},
		{
			name:     "bare anchor tag",
			input:    "<a>x</a>",
			expected: "x",
		},
		{
			name:     "unterminated anchor",
			input:    "tail <a href",
			expected: "tail  href",
		},
		{
			name:     "empty",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizeSummary(tt.input))
		})
	}
}
