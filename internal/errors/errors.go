package errors

import (
	"errors"
	"fmt"
)

// Common error types for the webview authorization agent
var (
	// Session errors
	ErrSessionActive       = errors.New("session already active")
	ErrSessionTerminated   = errors.New("session terminated")
	ErrInvalidSession      = errors.New("invalid session context")
	ErrMissingCollaborator = errors.New("missing collaborator")

	// Navigation errors
	ErrInvalidRedirectURI = errors.New("invalid redirect URI")
	ErrMalformedURL       = errors.New("malformed url")

	// Device challenge errors
	ErrMalformedChallenge = errors.New("malformed device auth challenge")
	ErrChallengeFailed    = errors.New("device auth challenge response failed")

	// Interception errors
	ErrAlreadyRegistered = errors.New("interceptor already registered")
	ErrNotRegistered     = errors.New("interceptor not registered")

	// General errors
	ErrInternal    = errors.New("internal error")
	ErrUnsupported = errors.New("unsupported operation")
)

// Wrapf wraps an error with context using fmt.Errorf
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
