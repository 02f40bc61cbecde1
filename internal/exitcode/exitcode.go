// Package exitcode defines exit codes for the CLI.
package exitcode

// Exit codes.
const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (bad args, bad title, out of range).
	UserError = 1

	// ConfigError indicates a configuration error.
	ConfigError = 2

	// StorageError indicates the data directory could not be set up.
	// Runtime persistence failures never surface as exit codes.
	StorageError = 3
)
