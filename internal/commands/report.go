package commands

import (
	"errors"
	"fmt"
	"net/http"

	"tpaste/internal/apperror"
	"tpaste/internal/exitcode"
)

// report prints err for the user and returns the matching exit code.
// Cancellation is not a failure: it gets a neutral notice on stdout.
func report(env *Env, err error) int {
	if errors.Is(err, apperror.ErrCancelled) {
		env.Log.Debug().Err(err).Msg("cancelled")
		fmt.Fprintln(env.Out, "operation cancelled")
		return exitcode.Success
	}
	env.Log.Debug().Err(err).Msg("command failed")
	fmt.Fprintf(env.ErrOut, "❌ Error: %s\n", err)
	return codeFor(err)
}

func codeFor(err error) int {
	switch {
	case errors.Is(err, apperror.ErrValidation),
		errors.Is(err, apperror.ErrFileNotFound),
		errors.Is(err, apperror.ErrInvalidToken):
		return exitcode.UserError
	case errors.Is(err, apperror.ErrPasswordRequired):
		return exitcode.AuthError
	case errors.Is(err, apperror.ErrServer):
		status := apperror.StatusOf(err)
		if status == http.StatusUnauthorized || status == http.StatusForbidden {
			return exitcode.AuthError
		}
		return exitcode.BackendError
	default:
		return exitcode.BackendError
	}
}

// usageError reports a local validation failure.
func usageError(env *Env, format string, a ...any) int {
	fmt.Fprintf(env.ErrOut, "❌ Error: %s\n", fmt.Sprintf(format, a...))
	return exitcode.UserError
}
