package sanitizer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formkit/pkg/sanitizer"
)

func TestDecodePercent(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "leaves plain text untouched",
			input:    "https://example.com/a b",
			expected: "https://example.com/a b",
		},
		{
			name:     "decodes single pass",
			input:    "https://example.com/%7Euser",
			expected: "https://example.com/~user",
		},
		{
			name:     "decodes nested encodings",
			input:    "%252541",
			expected: "A",
		},
		{
			name:     "keeps plus signs",
			input:    "a+b%20c",
			expected: "a+b c",
		},
		{
			name:     "stops on malformed escape",
			input:    "100%zz",
			expected: "100%zz",
		},
		{
			name:     "stops before invalid utf-8",
			input:    "%ff%fe",
			expected: "%ff%fe",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizer.DecodePercent(tt.input))
		})
	}
}

func TestDecodePercentIsBounded(t *testing.T) {
	encoded := "%41"
	for range sanitizer.MaxDecodePasses + 3 {
		encoded = strings.ReplaceAll(encoded, "%", "%25")
	}

	result := sanitizer.DecodePercent(encoded)
	assert.Contains(t, result, "%")
}

func TestEscapePercent(t *testing.T) {
	assert.Equal(t, "100%25", sanitizer.EscapePercent("100%"))
	assert.Equal(t, "plain", sanitizer.EscapePercent("plain"))
}
