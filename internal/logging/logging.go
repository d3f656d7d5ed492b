// Package logging builds the zerolog logger shared by the agent and its hosts.
package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jrsteele09/go-webview-auth/internal/config"
	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// New returns a logger configured from cfg. Output goes to out (stderr when nil)
// and, when a log file is configured, to a size-rotated file as JSON lines.
// The returned closer releases the file and must be called on shutdown.
func New(cfg config.LogConfig, out io.Writer) (zerolog.Logger, io.Closer, error) {
	level, err := zerolog.ParseLevel(cfg.GetLogLevel())
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("[logging.New] invalid log level %q: %w", cfg.GetLogLevel(), err)
	}
	if level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	if out == nil {
		out = os.Stderr
	}
	if cfg.GetLogFormat() == config.LogFormatConsole {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen}
	}

	var closer io.Closer = nopCloser{}
	if path := cfg.GetLogFile(); path != "" {
		rotating := &lumberjack.Logger{
			Filename:   path,
			MaxSize:    cfg.GetLogMaxSizeMB(),
			MaxBackups: cfg.GetLogMaxBackups(),
		}
		closer = rotating
		out = zerolog.MultiLevelWriter(out, rotating)
	}

	logger := zerolog.New(out).Level(level).With().Timestamp().Logger()
	return logger, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
