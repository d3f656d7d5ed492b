package authresult_test

import (
	"encoding/json"
	"testing"

	"github.com/jrsteele09/go-webview-auth/authresult"
	"github.com/stretchr/testify/require"
)

func TestAuthorizationResult_Invariants(t *testing.T) {
	t.Run("success carries response data only", func(t *testing.T) {
		r := authresult.NewSuccess("https://app.example/callback")
		require.Equal(t, authresult.StatusSuccess, r.Status())
		data, ok := r.ResponseData()
		require.True(t, ok)
		require.Equal(t, "https://app.example/callback", data)
		require.Empty(t, r.ErrorCode())
		require.Empty(t, r.ErrorDescription())
		require.NoError(t, r.Err())
		require.True(t, r.Valid())
	})

	t.Run("user cancel carries nothing", func(t *testing.T) {
		r := authresult.NewUserCancel()
		require.Equal(t, authresult.StatusUserCancel, r.Status())
		_, ok := r.ResponseData()
		require.False(t, ok)
		require.Empty(t, r.ErrorCode())
		require.NoError(t, r.Err())
	})

	t.Run("error carries code and description", func(t *testing.T) {
		r := authresult.NewError(authresult.StatusErrorHTTP,
			authresult.ErrorNonHTTPSRedirect, authresult.ErrorNonHTTPSRedirectMessage)
		_, ok := r.ResponseData()
		require.False(t, ok)
		require.Equal(t, "non_https_redirect_not_supported", r.ErrorCode())
		require.Equal(t, authresult.ErrorNonHTTPSRedirectMessage, r.ErrorDescription())

		var resultErr *authresult.ResultError
		require.ErrorAs(t, r.Err(), &resultErr)
		require.Equal(t, authresult.StatusErrorHTTP, resultErr.Status)
		require.Equal(t, "non_https_redirect_not_supported: Non-HTTPS url redirect is not supported in webview", resultErr.Error())
	})

	t.Run("zero value is invalid", func(t *testing.T) {
		require.False(t, authresult.AuthorizationResult{}.Valid())
	})

	t.Run("error constructor rejects non-error status", func(t *testing.T) {
		require.Panics(t, func() { authresult.NewError(authresult.StatusSuccess, "x", "") })
		require.Panics(t, func() { authresult.NewError(authresult.StatusErrorHTTP, "", "") })
	})
}

func TestAuthorizationResult_MarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		result   authresult.AuthorizationResult
		expected string
	}{
		{
			name:     "success",
			result:   authresult.NewSuccess("https://app.example/callback"),
			expected: `{"status":"success","response_data":"https://app.example/callback"}`,
		},
		{
			name:     "cancel",
			result:   authresult.NewUserCancel(),
			expected: `{"status":"user_cancel"}`,
		},
		{
			name:     "error without description",
			result:   authresult.NewError(authresult.StatusProtocolError, authresult.ErrorMalformedRedirect, ""),
			expected: `{"status":"protocol_error","error":"malformed_redirect_url"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.result)
			require.NoError(t, err)
			require.JSONEq(t, tt.expected, string(data))
		})
	}
}

func TestStatus_String(t *testing.T) {
	require.Equal(t, "error_http", authresult.StatusErrorHTTP.String())
	require.Equal(t, "status(42)", authresult.Status(42).String())
	require.True(t, authresult.StatusUnknownError.IsError())
	require.False(t, authresult.StatusUserCancel.IsError())
}
