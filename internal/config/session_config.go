package config

import "time"

type SessionConfig interface {
	// GetChallengeTimeout bounds the device auth challenge response computation.
	// Zero means no bound other than the session's own lifetime.
	GetChallengeTimeout() time.Duration
}

type Session struct {
	ChallengeTimeout time.Duration `env:"CHALLENGE_TIMEOUT" envDefault:"30s"`
}

var _ SessionConfig = Session{}

func (s Session) GetChallengeTimeout() time.Duration {
	return s.ChallengeTimeout
}
