package devicechallenge_test

import (
	"testing"

	"github.com/jrsteele09/go-webview-auth/devicechallenge"
	"github.com/stretchr/testify/require"
)

func TestParseParameters(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected devicechallenge.Parameters
	}{
		{
			name:  "submit url and context",
			query: "SubmitUrl=https://sts.example/submit&Context=abc",
			expected: devicechallenge.Parameters{
				"SubmitUrl": "https://sts.example/submit",
				"Context":   "abc",
			},
		},
		{
			name:     "leading question mark stripped once",
			query:    "?Context=abc",
			expected: devicechallenge.Parameters{"Context": "abc"},
		},
		{
			name:     "duplicate keys keep last value",
			query:    "Context=first&Context=second&Context=third",
			expected: devicechallenge.Parameters{"Context": "third"},
		},
		{
			name:     "split on first equals only",
			query:    "nonce=abc==&Version=1.0",
			expected: devicechallenge.Parameters{"nonce": "abc==", "Version": "1.0"},
		},
		{
			name:  "percent decoded",
			query: "SubmitUrl=https%3A%2F%2Fsts.example%2Fsubmit%3Fa%3Db&CertAuthorities=OU%3D82dbaca4",
			expected: devicechallenge.Parameters{
				"SubmitUrl":       "https://sts.example/submit?a=b",
				"CertAuthorities": "OU=82dbaca4",
			},
		},
		{
			name:     "keys keep their case",
			query:    "submiturl=a&SubmitUrl=b",
			expected: devicechallenge.Parameters{"submiturl": "a", "SubmitUrl": "b"},
		},
		{
			name:     "pairs without separator or key skipped",
			query:    "flag&=orphan&&Context= abc ",
			expected: devicechallenge.Parameters{"Context": "abc"},
		},
		{
			name:     "invalid escape kept raw",
			query:    "Context=100%",
			expected: devicechallenge.Parameters{"Context": "100%"},
		},
		{
			name:     "empty query",
			query:    "",
			expected: devicechallenge.Parameters{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, devicechallenge.ParseParameters(tt.query))
		})
	}
}

func TestParameters_SubmitURL(t *testing.T) {
	v, ok := devicechallenge.ParseParameters("SubmitUrl=https://sts.example/submit").SubmitURL()
	require.True(t, ok)
	require.Equal(t, "https://sts.example/submit", v)

	_, ok = devicechallenge.ParseParameters("submitUrl=https://sts.example/submit").SubmitURL()
	require.False(t, ok)
}
