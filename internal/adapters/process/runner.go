package process

import (
	"bytes"
	"errors"
	"os"
	"os/exec"

	"trr/internal/logging"
	"trr/internal/ports"
)

// Runner implements ports.CommandRunner on top of os/exec
type Runner struct{}

// Compile-time interface verification
var _ ports.CommandRunner = (*Runner)(nil)

// NewRunner creates a new Runner
func NewRunner() *Runner {
	return &Runner{}
}

// Run executes a program in dir and captures its output. A non-zero
// exit is reported via the result, not the error.
func (r *Runner) Run(name string, args []string, dir string) (ports.CommandResult, error) {
	logging.Logger.Debug("Running command", "name", name, "args", args, "dir", dir)

	cmd := exec.Command(name, args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := ports.CommandResult{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			logging.Logger.Debug("Command exited non-zero", "name", name, "exit_code", result.ExitCode, "stderr", result.Stderr)
			return result, nil
		}
		return result, err
	}

	return result, nil
}

// RunInteractive executes a program with inherited stdio and blocks
// until it exits
func (r *Runner) RunInteractive(name string, args []string, dir string) error {
	logging.Logger.Debug("Running interactive command", "name", name, "args", args, "dir", dir)

	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// LookPath reports whether the program is available on PATH
func (r *Runner) LookPath(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}
