// Package exitcode defines exit codes for the CLI.
package exitcode

// Every reported failure exits non-zero. A user cancelling a prompt is
// not a failure.
const (
	// Success indicates successful completion, help/version output or a
	// cancelled operation.
	Success = 0

	// UserError indicates a user error (bad args, missing file, invalid token).
	UserError = 1

	// AuthError indicates the server refused the credentials or a password.
	AuthError = 2

	// BackendError indicates a server, network or local write error.
	BackendError = 3
)
