package alias

import (
	"strings"

	"trr/internal/logging"
	"trr/internal/ports"
)

// Expander rewrites branch shorthands into real branch names. An
// expansion starting with "!" is a shell directive: it is executed once
// and its trimmed stdout is substituted.
type Expander struct {
	runner ports.CommandRunner
}

// NewExpander creates an Expander
func NewExpander(runner ports.CommandRunner) *Expander {
	return &Expander{runner: runner}
}

// Expand resolves a raw branch token against the alias table. The first
// alias whose token is a prefix of raw wins; iteration order over the
// table is unspecified, so overlapping aliases have no priority. A
// failing shell directive falls back to returning raw unchanged: the
// user may have intended a literal branch name that happens to start
// with an alias-like token.
func (e *Expander) Expand(raw string, aliases map[string]string) string {
	for token, expansion := range aliases {
		if !strings.HasPrefix(raw, token) {
			continue
		}
		remainder := raw[len(token):]

		if cmd, ok := strings.CutPrefix(expansion, "!"); ok {
			result, err := e.runner.Run("sh", []string{"-c", cmd}, "")
			if err != nil || result.ExitCode != 0 {
				logging.Logger.Warn("Alias shell expansion failed, using raw branch",
					"alias", token, "command", cmd, "error", err, "exit_code", result.ExitCode)
				return raw
			}
			return strings.TrimSpace(result.Stdout) + remainder
		}

		return expansion + remainder
	}

	return raw
}
