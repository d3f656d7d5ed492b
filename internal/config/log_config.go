package config

import "fmt"

type LogConfig interface {
	GetLogLevel() string
	GetLogFormat() string
	GetLogFile() string
	GetLogMaxSizeMB() int
	GetLogMaxBackups() int
}

const (
	LogFormatConsole = "console"
	LogFormatJSON    = "json"
)

type Log struct {
	Level      string `env:"LOG_LEVEL" envDefault:"info"`
	Format     string `env:"LOG_FORMAT" envDefault:"console"`
	File       string `env:"LOG_FILE"`
	MaxSizeMB  int    `env:"LOG_MAX_SIZE_MB" envDefault:"10"`
	MaxBackups int    `env:"LOG_MAX_BACKUPS" envDefault:"3"`
}

var _ LogConfig = Log{}

func (l Log) GetLogLevel() string {
	return l.Level
}

func (l Log) GetLogFormat() string {
	return l.Format
}

// GetLogFile returns the path of the rotating log file, empty for stderr only.
func (l Log) GetLogFile() string {
	return l.File
}

func (l Log) GetLogMaxSizeMB() int {
	return l.MaxSizeMB
}

func (l Log) GetLogMaxBackups() int {
	return l.MaxBackups
}

func (l Log) validate() error {
	switch l.Format {
	case LogFormatConsole, LogFormatJSON:
		return nil
	default:
		return fmt.Errorf("LOG_FORMAT must be %q or %q, got %q", LogFormatConsole, LogFormatJSON, l.Format)
	}
}
