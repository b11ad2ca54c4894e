package version

import "fmt"

// Tagline is the application's tagline used in help text
const Tagline = "trr duplicates a repository per branch and manages its tmux environment"

// Build information injected at build time via ldflags
var (
	Version = "dev"     // Semantic version or "dev"
	Commit  = "unknown" // Git commit hash
	Date    = "unknown" // Build date (RFC3339)
)

// Info returns formatted version information
func Info() string {
	return fmt.Sprintf("trr %s (commit: %s, built: %s)", Version, Commit, Date)
}
