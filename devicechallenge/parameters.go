package devicechallenge

import (
	"net/url"
	"strings"
)

// SubmitURLKey names the challenge parameter holding the URL the response is
// submitted to.
const SubmitURLKey = "SubmitUrl"

// Parameters are the key/value pairs of a challenge redirect query. Keys keep
// the case the server sent.
type Parameters map[string]string

// ParseParameters parses a challenge query string. A single leading '?' is
// ignored. Pairs are separated by '&' and split on their first '='; keys and
// values are percent-decoded and trimmed. Pairs without '=' or with an empty
// key are skipped, and a repeated key keeps its last value.
func ParseParameters(query string) Parameters {
	query = strings.TrimPrefix(query, "?")

	params := make(Parameters)
	for _, pair := range strings.Split(query, "&") {
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(unescape(key))
		if key == "" {
			continue
		}
		params[key] = strings.TrimSpace(unescape(value))
	}
	return params
}

// SubmitURL returns the SubmitUrl value and whether it was present.
func (p Parameters) SubmitURL() (string, bool) {
	v, ok := p[SubmitURLKey]
	return v, ok
}

// unescape decodes s, returning it unchanged when it is not valid
// percent-encoding.
func unescape(s string) string {
	decoded, err := url.QueryUnescape(s)
	if err != nil {
		return s
	}
	return decoded
}
