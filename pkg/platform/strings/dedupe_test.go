package strings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDedupeAndTrim(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{
			name:     "removes duplicates preserving order",
			input:    []string{"foo", "bar", "foo", "baz", "bar"},
			expected: []string{"foo", "bar", "baz"},
		},
		{
			name:     "trims whitespace before comparing",
			input:    []string{"  foo ", "foo", "\tbar"},
			expected: []string{"foo", "bar"},
		},
		{
			name:     "removes empty strings",
			input:    []string{"foo", "", "   ", "bar"},
			expected: []string{"foo", "bar"},
		},
		{
			name:     "nil input",
			input:    nil,
			expected: nil,
		},
		{
			name:     "case is preserved and significant",
			input:    []string{"Foo", "foo"},
			expected: []string{"Foo", "foo"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DedupeAndTrim(tt.input))
		})
	}
}

func TestDedupeAndTrimLower(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{
			name:     "lowercases before deduplicating",
			input:    []string{"HR@example.com", "hr@example.com", "Ops@example.com"},
			expected: []string{"hr@example.com", "ops@example.com"},
		},
		{
			name:     "trims and drops empties",
			input:    []string{" A ", "", "a"},
			expected: []string{"a"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DedupeAndTrimLower(tt.input))
		})
	}
}
