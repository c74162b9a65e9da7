package llmutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncateForLog(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		maxRunes int
		expected string
	}{
		{name: "should return short strings unchanged", input: "Who leads OpenAI?", maxRunes: 64, expected: "Who leads OpenAI?"},
		{name: "should return exact-length strings unchanged", input: "abcde", maxRunes: 5, expected: "abcde"},
		{name: "should truncate long strings with ellipsis", input: "abcdefghij", maxRunes: 4, expected: "abcd..."},
		{name: "should count runes not bytes", input: "こんにちは世界", maxRunes: 5, expected: "こんにちは..."},
		{name: "should return empty for zero budget", input: "abc", maxRunes: 0, expected: ""},
		{name: "should return empty for negative budget", input: "abc", maxRunes: -1, expected: ""},
		{name: "should handle empty input", input: "", maxRunes: 10, expected: ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, TruncateForLog(tt.input, tt.maxRunes))
		})
	}
}
