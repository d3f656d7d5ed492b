package main

import (
	"context"
	"fmt"
	"time"

	"github.com/jrsteele09/go-webview-auth/authresult"
	"github.com/jrsteele09/go-webview-auth/intercept"
	"github.com/jrsteele09/go-webview-auth/internal/config"
	"github.com/jrsteele09/go-webview-auth/internal/dispatch"
	"github.com/jrsteele09/go-webview-auth/session"
	"github.com/rs/zerolog"
)

// replay runs sc through a real session hosted on a serial dispatch queue and
// returns the delivered result.
func replay(ctx context.Context, sc script, cfg config.SessionConfig, logger zerolog.Logger) (authresult.AuthorizationResult, error) {
	return replayOn(ctx, sc, cfg, logger, newReplaySurface(logger))
}

func replayOn(ctx context.Context, sc script, cfg config.SessionConfig, logger zerolog.Logger, surface *replaySurface) (authresult.AuthorizationResult, error) {
	queue := dispatch.NewQueue(dispatch.WithLogger(logger))
	defer queue.Stop()

	registry := intercept.NewRegistry()
	opener := &logOpener{logger: logger}

	s, err := session.New(session.Context{
		AuthorizationURL: sc.AuthorizationURL,
		RedirectURI:      sc.RedirectURI,
		Callback: func(result authresult.AuthorizationResult) {
			logger.Info().Str("result", result.String()).Msg("result delivered")
		},
	}, session.Collaborators{
		Registrar:  registry,
		Opener:     opener,
		Responder:  staticResponder(sc.ChallengeResponse, sc.ChallengeError),
		Surface:    surface,
		Dispatcher: queue,
	},
		session.WithLogger(logger),
		session.WithChallengeTimeout(cfg.GetChallengeTimeout()),
	)
	if err != nil {
		return authresult.AuthorizationResult{}, fmt.Errorf("[replay] %w", err)
	}

	var startErr error
	queue.DispatchAndWait(func() { startErr = s.Start(ctx) })
	if startErr != nil {
		return authresult.AuthorizationResult{}, fmt.Errorf("[replay] %w", startErr)
	}
	<-surface.loads // authorization URL

	waitFor := cfg.GetChallengeTimeout() + time.Second
	for i, nav := range sc.Navigations {
		var allowed, pending bool
		var interceptErr error
		queue.DispatchAndWait(func() {
			allowed, interceptErr = registry.Intercept(s.ID(), nav)
			pending = s.ChallengePending()
		})
		if interceptErr != nil {
			logger.Warn().Err(interceptErr).Str("url", nav).Msg("navigation not intercepted")
			break
		}
		logger.Info().Int("step", i+1).Str("url", nav).Bool("allowed", allowed).Msg("navigation")

		if pending {
			select {
			case <-surface.loads:
			case <-s.Done():
			case <-time.After(waitFor):
				logger.Warn().Msg("device auth challenge did not complete")
			case <-ctx.Done():
				queue.DispatchAndWait(s.Cancel)
			}
		}

		if _, done := s.Result(); done {
			break
		}
		if sc.CancelAfter > 0 && i+1 == sc.CancelAfter {
			queue.DispatchAndWait(s.Cancel)
			break
		}
	}

	// A script that ends without a terminal navigation behaves like the host
	// closing the embedded browser.
	queue.DispatchAndWait(s.Dismissed)

	result, ok := s.Result()
	if !ok {
		return authresult.AuthorizationResult{}, fmt.Errorf("[replay] session %s delivered no result", s.ID())
	}
	return result, nil
}
