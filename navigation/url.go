package navigation

import (
	"net/url"
	"strings"
)

// BaseURL returns the candidate up to its first '?' or '#': scheme, authority
// and path as the browser reported them, without normalization.
func BaseURL(raw string) string {
	if i := strings.IndexAny(raw, "?#"); i >= 0 {
		return raw[:i]
	}
	return raw
}

// WithHTTPSScheme returns raw, query and fragment included, with the text
// before its first ':' replaced by https. Nothing else is rewritten.
func WithHTTPSScheme(raw string) string {
	i := strings.IndexByte(raw, ':')
	if i < 0 {
		return raw
	}
	return httpsScheme + raw[i:]
}

// challengeURL returns the parsed challenge, or an opaque stand-in carrying
// the raw query when the candidate did not parse.
func challengeURL(c Classification) *url.URL {
	if c.URL != nil {
		return c.URL
	}
	u := &url.URL{Opaque: c.Base}
	if i := strings.IndexByte(c.Raw, '?'); i >= 0 {
		query := c.Raw[i+1:]
		if j := strings.IndexByte(query, '#'); j >= 0 {
			query = query[:j]
		}
		u.RawQuery = query
	}
	return u
}

// hasPrefixFold reports whether s begins with prefix, ignoring ASCII case.
func hasPrefixFold(s, prefix string) bool {
	if len(s) < len(prefix) {
		return false
	}
	for i := 0; i < len(prefix); i++ {
		if lowerASCII(s[i]) != lowerASCII(prefix[i]) {
			return false
		}
	}
	return true
}

func equalFold(a, b string) bool {
	return len(a) == len(b) && hasPrefixFold(a, b)
}

func lowerASCII(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
