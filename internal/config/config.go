package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config interface {
	EnvConfig
	LogConfig
	SessionConfig
}

type mainConfig struct {
	EnvVars
	Log
	Session
}

var _ Config = mainConfig{}

// New reads the configuration from the process environment.
func New() (Config, error) {
	return parse(env.Options{})
}

// NewFromMap reads the configuration from the given variables instead of the
// process environment.
func NewFromMap(vars map[string]string) (Config, error) {
	return parse(env.Options{Environment: vars})
}

func parse(opts env.Options) (Config, error) {
	var c mainConfig
	if err := env.ParseWithOptions(&c, opts); err != nil {
		return nil, fmt.Errorf("[config.New] failed to parse environment: %w", err)
	}
	if err := c.Log.validate(); err != nil {
		return nil, fmt.Errorf("[config.New] %w", err)
	}
	if c.ChallengeTimeout < 0 {
		return nil, fmt.Errorf("[config.New] CHALLENGE_TIMEOUT must not be negative")
	}
	return c, nil
}
