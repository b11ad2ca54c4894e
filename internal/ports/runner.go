package ports

// CommandResult holds the outcome of an external command invocation
type CommandResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// CommandRunner abstracts subprocess invocation so components depend on
// an interface instead of a concrete exec mechanism. A non-zero exit is
// reported through ExitCode, not through the error; the error is
// reserved for failures to start the process at all.
type CommandRunner interface {
	// Run executes a program with the given arguments in dir (empty dir
	// means the current directory), capturing its output
	Run(name string, args []string, dir string) (CommandResult, error)

	// RunInteractive executes a program with inherited stdio and blocks
	// until it exits
	RunInteractive(name string, args []string, dir string) error

	// LookPath reports whether the program is available on PATH
	LookPath(name string) bool
}
