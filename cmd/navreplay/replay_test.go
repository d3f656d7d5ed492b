package main

import (
	"context"
	"testing"
	"time"

	"github.com/jrsteele09/go-webview-auth/authresult"
	"github.com/jrsteele09/go-webview-auth/internal/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

const (
	testAuthorizationURL = "https://login.example/authorize"
	testRedirectURI      = "https://app.example/callback"
	testChallenge        = "urn:http-auth:PKeyAuth?SubmitUrl=https%3A%2F%2Fsts.example%2Fsubmit&Context=abc"
)

func runReplay(t *testing.T, sc script) authresult.AuthorizationResult {
	t.Helper()
	sc.AuthorizationURL = testAuthorizationURL
	sc.RedirectURI = testRedirectURI
	result, err := replay(context.Background(), sc, config.Session{ChallengeTimeout: time.Second}, zerolog.Nop())
	require.NoError(t, err)
	return result
}

func TestReplay(t *testing.T) {
	t.Run("callback reached", func(t *testing.T) {
		result := runReplay(t, script{Navigations: []string{
			"https://login.example/page",
			"about:blank",
			"https://app.example/callback?code=XYZ",
			"https://never.example",
		}})
		require.Equal(t, authresult.StatusSuccess, result.Status())
		data, _ := result.ResponseData()
		require.Equal(t, "https://app.example/callback", data)
	})

	t.Run("device challenge answered", func(t *testing.T) {
		result := runReplay(t, script{
			ChallengeResponse: "token",
			Navigations: []string{
				testChallenge,
				"https://sts.example/submit",
				"https://app.example/callback?code=XYZ",
			},
		})
		require.Equal(t, authresult.StatusSuccess, result.Status())
	})

	t.Run("device challenge failure", func(t *testing.T) {
		result := runReplay(t, script{
			ChallengeError: "no device certificate",
			Navigations:    []string{testChallenge, "https://app.example/callback?code=XYZ"},
		})
		require.Equal(t, authresult.StatusErrorHTTP, result.Status())
		require.Equal(t, authresult.ErrorChallengeFailed, result.ErrorCode())
	})

	t.Run("non https redirect", func(t *testing.T) {
		result := runReplay(t, script{Navigations: []string{"http://notsecure.example/x"}})
		require.Equal(t, authresult.StatusErrorHTTP, result.Status())
		require.Equal(t, authresult.ErrorNonHTTPSRedirect, result.ErrorCode())
	})

	t.Run("external browser", func(t *testing.T) {
		result := runReplay(t, script{Navigations: []string{"browser://launch?continue=1"}})
		require.Equal(t, authresult.StatusUserCancel, result.Status())
	})

	t.Run("cancelled", func(t *testing.T) {
		result := runReplay(t, script{
			CancelAfter: 1,
			Navigations: []string{"https://login.example/page", "https://app.example/callback?code=XYZ"},
		})
		require.Equal(t, authresult.StatusUserCancel, result.Status())
	})

	t.Run("redirect path kept verbatim", func(t *testing.T) {
		result := runReplay(t, script{Navigations: []string{"HTTPS://app.example/callback/100%?code=XYZ"}})
		require.Equal(t, authresult.StatusSuccess, result.Status())
		data, _ := result.ResponseData()
		require.Equal(t, "HTTPS://app.example/callback/100%", data)
	})

	t.Run("script ends without result", func(t *testing.T) {
		result := runReplay(t, script{Navigations: []string{"https://login.example/page"}})
		require.Equal(t, authresult.StatusUserCancel, result.Status())
	})
}

func TestReplay_CancelAfter(t *testing.T) {
	tests := []struct {
		name        string
		cancelAfter int
		dismissed   bool
	}{
		{"after first navigation", 1, true},
		{"after last navigation", 2, true},
		{"beyond the script", 3, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			surface := newReplaySurface(zerolog.Nop())
			sc := script{
				AuthorizationURL: testAuthorizationURL,
				RedirectURI:      testRedirectURI,
				CancelAfter:      tt.cancelAfter,
				Navigations:      []string{"https://login.example/page", "https://login.example/mfa"},
			}

			result, err := replayOn(context.Background(), sc, config.Session{ChallengeTimeout: time.Second}, zerolog.Nop(), surface)
			require.NoError(t, err)
			require.Equal(t, authresult.StatusUserCancel, result.Status())
			require.Equal(t, tt.dismissed, surface.dismissed)
		})
	}
}
