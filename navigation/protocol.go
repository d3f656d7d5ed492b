package navigation

// Protocol surface shared with the authorization servers. The values must
// match exactly.
const (
	// BrowserExtPrefix marks a navigation the server wants opened in the
	// system browser instead of the embedded one.
	BrowserExtPrefix = "browser://"

	// BrowserExtInstallPrefix marks the broker install prompt, which completes
	// the flow the same way as reaching the redirect URI.
	BrowserExtInstallPrefix = "msauth://"

	// DeviceAuthChallengeRedirect marks a device authentication (PKeyAuth)
	// challenge. Its query carries SubmitUrl and the challenge parameters.
	DeviceAuthChallengeRedirect = "urn:http-auth:PKeyAuth"

	// ChallengeResponseHeader carries the computed device auth response on the
	// request re-issued to SubmitUrl.
	ChallengeResponseHeader = "Authorization"

	// AboutBlankURL is the only non-HTTPS URL the embedded browser may load.
	AboutBlankURL = "about:blank"

	httpsScheme = "https"
)
