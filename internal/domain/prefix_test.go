package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRepoName(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		expected string
		ok       bool
	}{
		{
			name:     "https with .git suffix",
			url:      "https://github.com/owner/myrepo.git",
			expected: "myrepo",
			ok:       true,
		},
		{
			name:     "https without suffix",
			url:      "https://gitlab.com/group/sub/project",
			expected: "project",
			ok:       true,
		},
		{
			name:     "http",
			url:      "http://example.com/owner/repo.git",
			expected: "repo",
			ok:       true,
		},
		{
			name:     "scp style",
			url:      "git@github.com:owner/myrepo.git",
			expected: "myrepo",
			ok:       true,
		},
		{
			name:     "scp style nested path",
			url:      "git@gitlab.com:group/sub/project.git",
			expected: "project",
			ok:       true,
		},
		{
			name:     "ssh scheme",
			url:      "ssh://git@github.com/owner/repo.git",
			expected: "repo",
			ok:       true,
		},
		{
			name: "empty url",
			url:  "",
			ok:   false,
		},
		{
			name: "local path",
			url:  "/home/user/repo",
			ok:   false,
		},
		{
			name:     "trailing newline from command output",
			url:      "https://github.com/owner/repo.git\n",
			expected: "repo",
			ok:       true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, ok := ParseRepoName(tt.url)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, name)
			}
		})
	}
}

func TestRepoPrefix(t *testing.T) {
	tests := []struct {
		name           string
		remoteURL      string
		workingDirName string
		expected       string
	}{
		{
			name:           "remote url wins",
			remoteURL:      "https://github.com/owner/rocket.git",
			workingDirName: "elsewhere",
			expected:       "roc",
		},
		{
			name:           "falls back to working directory name",
			remoteURL:      "",
			workingDirName: "mydir",
			expected:       "myd",
		},
		{
			name:           "falls back to default",
			remoteURL:      "",
			workingDirName: "",
			expected:       DefaultPrefix,
		},
		{
			name:      "short repo name kept whole",
			remoteURL: "git@github.com:o/ab.git",
			expected:  "ab",
		},
		{
			name:           "dot working directory ignored",
			remoteURL:      "",
			workingDirName: ".",
			expected:       DefaultPrefix,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RepoPrefix(tt.remoteURL, tt.workingDirName))
		})
	}
}

func TestSessionName(t *testing.T) {
	assert.Equal(t, "roc-feature/login", SessionName("roc", "feature/login"))
}
