package editor

import (
	"os"

	"trr/internal/logging"
	"trr/internal/ports"
)

// Opener implements ports.EditorOpener
type Opener struct {
	runner ports.CommandRunner
}

// Compile-time interface verification
var _ ports.EditorOpener = (*Opener)(nil)

// NewOpener creates a new editor opener
func NewOpener(runner ports.CommandRunner) *Opener {
	return &Opener{runner: runner}
}

// Open opens the specified path in an editor and waits for it to exit.
// Priority: $TRR_EDITOR → $EDITOR → $VISUAL. Returns false when no
// editor is configured.
func (o *Opener) Open(path string) (bool, error) {
	editor := findEditor()
	if editor == "" {
		return false, nil
	}

	logging.Logger.Info("Opening editor", "editor", editor, "path", path)
	if err := o.runner.RunInteractive(editor, []string{path}, ""); err != nil {
		return true, err
	}
	return true, nil
}

func findEditor() string {
	for _, name := range []string{"TRR_EDITOR", "EDITOR", "VISUAL"} {
		if editor := os.Getenv(name); editor != "" {
			return editor
		}
	}
	return ""
}
