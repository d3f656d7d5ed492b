package errors_test

import (
	"testing"

	apperrors "github.com/jrsteele09/go-webview-auth/internal/errors"
	"github.com/stretchr/testify/require"
)

func TestWrapf(t *testing.T) {
	t.Run("nil error stays nil", func(t *testing.T) {
		require.NoError(t, apperrors.Wrapf(nil, "context %d", 1))
	})

	t.Run("wrapped error keeps chain", func(t *testing.T) {
		err := apperrors.Wrapf(apperrors.ErrMalformedChallenge, "[Handle] url %q", "urn:x")
		require.Error(t, err)
		require.True(t, apperrors.Is(err, apperrors.ErrMalformedChallenge))
		require.Equal(t, `[Handle] url "urn:x": malformed device auth challenge`, err.Error())
	})
}
