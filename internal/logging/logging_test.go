package logging_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/jrsteele09/go-webview-auth/internal/config"
	"github.com/jrsteele09/go-webview-auth/internal/logging"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("json to writer respects level", func(t *testing.T) {
		var buf bytes.Buffer
		logger, closer, err := logging.New(config.Log{Level: "warn", Format: config.LogFormatJSON}, &buf)
		require.NoError(t, err)
		defer closer.Close()

		logger.Info().Msg("hidden")
		logger.Warn().Str("session_id", "abc").Msg("shown")

		require.NotContains(t, buf.String(), "hidden")
		require.Contains(t, buf.String(), `"session_id":"abc"`)
		require.Contains(t, buf.String(), `"message":"shown"`)
	})

	t.Run("invalid level", func(t *testing.T) {
		_, _, err := logging.New(config.Log{Level: "loud", Format: config.LogFormatJSON}, &bytes.Buffer{})
		require.Error(t, err)
		require.Contains(t, err.Error(), "invalid log level")
	})

	t.Run("rotating file receives entries", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "agent.log")
		logger, closer, err := logging.New(config.Log{
			Level:      "info",
			Format:     config.LogFormatJSON,
			File:       path,
			MaxSizeMB:  1,
			MaxBackups: 1,
		}, &bytes.Buffer{})
		require.NoError(t, err)

		logger.Info().Msg("to file")
		require.NoError(t, closer.Close())

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		require.Contains(t, string(data), "to file")
	})
}
