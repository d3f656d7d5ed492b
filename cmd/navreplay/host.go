package main

import (
	"context"
	"errors"

	"github.com/jrsteele09/go-webview-auth/devicechallenge"
	"github.com/jrsteele09/go-webview-auth/navigation"
	"github.com/rs/zerolog"
)

// logOpener stands in for the operating system's browser launcher.
type logOpener struct {
	logger zerolog.Logger
}

func (o *logOpener) OpenExternally(rawURL string) {
	o.logger.Info().Str("url", rawURL).Msg("opening external browser")
}

// replaySurface records what the session asks the embedded browser to do.
type replaySurface struct {
	logger    zerolog.Logger
	loads     chan *navigation.Request
	dismissed bool
}

func newReplaySurface(logger zerolog.Logger) *replaySurface {
	return &replaySurface{logger: logger, loads: make(chan *navigation.Request, 16)}
}

func (s *replaySurface) Load(req *navigation.Request) {
	s.logger.Info().Str("url", req.URL).Int("headers", len(req.Header)).Msg("surface load")
	select {
	case s.loads <- req:
	default:
		s.logger.Warn().Str("url", req.URL).Msg("surface load backlog full")
	}
}

func (s *replaySurface) Dismiss() {
	s.dismissed = true
	s.logger.Info().Msg("surface dismissed")
}

// staticResponder answers every challenge with a fixed token or a fixed error.
func staticResponder(token, failure string) devicechallenge.Responder {
	return devicechallenge.ResponderFunc(func(ctx context.Context, _ devicechallenge.Parameters) (string, error) {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		if failure != "" {
			return "", errors.New(failure)
		}
		return token, nil
	})
}
