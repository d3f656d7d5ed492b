package utils_test

import (
	"testing"

	"github.com/jrsteele09/go-webview-auth/internal/utils"
	"github.com/stretchr/testify/require"
)

func TestPointerHelpers(t *testing.T) {
	require.Equal(t, "", utils.Value[string](nil))
	require.Equal(t, "x", utils.Value(utils.Ptr("x")))
	require.Nil(t, utils.NonEmptyPtr(""))
	require.Equal(t, "code", *utils.NonEmptyPtr("code"))
}
