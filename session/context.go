package session

import (
	"strings"

	"github.com/jrsteele09/go-webview-auth/authresult"
	apperrors "github.com/jrsteele09/go-webview-auth/internal/errors"
)

// Context configures one interactive authorization attempt.
type Context struct {
	// AuthorizationURL is loaded into the embedded browser on Start.
	AuthorizationURL string

	// RedirectURI completes the flow when a navigation's base URL starts with it
	// (ASCII case-insensitive).
	RedirectURI string

	// Callback receives the terminal result exactly once.
	Callback func(result authresult.AuthorizationResult)
}

func (c Context) Validate() error {
	if strings.TrimSpace(c.AuthorizationURL) == "" {
		return apperrors.Wrapf(apperrors.ErrInvalidSession, "authorization URL is required")
	}
	if strings.TrimSpace(c.RedirectURI) == "" {
		return apperrors.Wrapf(apperrors.ErrInvalidRedirectURI, "redirect URI is required")
	}
	if c.Callback == nil {
		return apperrors.Wrapf(apperrors.ErrInvalidSession, "result callback is required")
	}
	return nil
}
