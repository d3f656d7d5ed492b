package authresult

// Error codes and descriptions carried by error results. Hosts match on the
// codes; the descriptions are for display.
const (
	ErrorNonHTTPSRedirect        = "non_https_redirect_not_supported"
	ErrorNonHTTPSRedirectMessage = "Non-HTTPS url redirect is not supported in webview"

	ErrorChallengeFailed        = "device_auth_challenge_failed"
	ErrorChallengeFailedMessage = "Failed to compute the device authentication challenge response"

	ErrorChallengeMalformed        = "device_auth_challenge_malformed"
	ErrorChallengeMalformedMessage = "The device authentication challenge redirect is malformed"

	ErrorMalformedRedirect        = "malformed_redirect_url"
	ErrorMalformedRedirectMessage = "The navigation target is not a valid URL"
)

// ResultError exposes an error result as a Go error.
type ResultError struct {
	Status      Status
	Code        string
	Description string
}

func (e *ResultError) Error() string {
	if e.Description == "" {
		return e.Code
	}
	return e.Code + ": " + e.Description
}
