package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDirectoryName(t *testing.T) {
	tests := []struct {
		name     string
		branch   string
		expected string
	}{
		{
			name:     "single separator",
			branch:   "feature/test",
			expected: "feature-test",
		},
		{
			name:     "multiple separators",
			branch:   "fix/bug/123",
			expected: "fix-bug-123",
		},
		{
			name:     "no separator",
			branch:   "simple-branch",
			expected: "simple-branch",
		},
		{
			name:     "empty branch",
			branch:   "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DirectoryName(tt.branch))
		})
	}
}

func TestDirectoryNameIsPure(t *testing.T) {
	// Equal branches always yield equal directory names
	first := DirectoryName("feature/login")
	second := DirectoryName("feature/login")
	assert.Equal(t, first, second)
}
