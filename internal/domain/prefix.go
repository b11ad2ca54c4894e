package domain

import "strings"

// DefaultPrefix is used when neither a remote URL nor a working
// directory name is available
const DefaultPrefix = "trr"

// ParseRepoName extracts the repository short name from a remote URL.
// HTTPS-style URLs use the basename minus the .git extension; SCP-style
// URLs use the last path segment after the final colon. Returns false
// when the URL matches neither format.
func ParseRepoName(url string) (string, bool) {
	url = strings.TrimSpace(url)
	if url == "" {
		return "", false
	}

	if strings.HasPrefix(url, "https://") || strings.HasPrefix(url, "http://") {
		parts := strings.Split(url, "/")
		name := strings.TrimSuffix(parts[len(parts)-1], ".git")
		if name == "" {
			return "", false
		}
		return name, true
	}

	if strings.Contains(url, ":") {
		// SCP-style: git@host:owner/repo.git
		afterColon := url[strings.LastIndex(url, ":")+1:]
		parts := strings.Split(afterColon, "/")
		name := strings.TrimSuffix(parts[len(parts)-1], ".git")
		if name == "" {
			return "", false
		}
		return name, true
	}

	return "", false
}

// RepoPrefix derives the session-name prefix shared by the creation and
// deletion flows: the first three characters of the repository short
// name, falling back to the first three characters of the working
// directory name, falling back to DefaultPrefix.
func RepoPrefix(remoteURL, workingDirName string) string {
	if name, ok := ParseRepoName(remoteURL); ok {
		return firstRunes(name, 3)
	}
	if workingDirName != "" && workingDirName != "." && workingDirName != "/" {
		return firstRunes(workingDirName, 3)
	}
	return DefaultPrefix
}

// SessionName is the tmux window/session name for a workspace
func SessionName(prefix, branch string) string {
	return prefix + "-" + branch
}

func firstRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) > n {
		runes = runes[:n]
	}
	return string(runes)
}
