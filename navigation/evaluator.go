// Package navigation classifies the URLs an embedded browser is about to load
// during an interactive authorization flow.
package navigation

import (
	"context"
	"net/url"
	"strings"

	apperrors "github.com/jrsteele09/go-webview-auth/internal/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

//go:generate mockgen -source=evaluator.go -destination=mocks/mock_evaluator.go -package=mocks

// BrowserOpener opens a URL outside the embedded browser. Fire and forget.
type BrowserOpener interface {
	OpenExternally(rawURL string)
}

// ChallengeHandler answers a device authentication challenge redirect with the
// request to issue in its place.
type ChallengeHandler interface {
	Handle(ctx context.Context, challenge *url.URL) (*Request, error)
}

// Evaluator decides what happens to each navigation of one session.
type Evaluator struct {
	redirectURI string
	opener      BrowserOpener
	challenges  ChallengeHandler
	logger      zerolog.Logger
}

// EvaluatorOption defines a function type to modify the Evaluator instance.
type EvaluatorOption func(*Evaluator)

// WithChallengeHandler sets the device authentication challenge handler.
// Without one, challenge redirects terminate the session with a challenge failure.
func WithChallengeHandler(h ChallengeHandler) EvaluatorOption {
	return func(e *Evaluator) {
		e.challenges = h
	}
}

func WithLogger(logger zerolog.Logger) EvaluatorOption {
	return func(e *Evaluator) {
		e.logger = logger
	}
}

// NewEvaluator creates an evaluator matching completions against redirectURI.
func NewEvaluator(redirectURI string, opener BrowserOpener, options ...EvaluatorOption) (*Evaluator, error) {
	if strings.TrimSpace(redirectURI) == "" {
		return nil, apperrors.Wrapf(apperrors.ErrInvalidRedirectURI, "[NewEvaluator] redirect URI is required")
	}
	if opener == nil {
		return nil, apperrors.Wrapf(apperrors.ErrMissingCollaborator, "[NewEvaluator] browser opener is required")
	}

	e := &Evaluator{
		redirectURI: redirectURI,
		opener:      opener,
		challenges:  unsupportedChallenges{},
		logger:      log.Logger,
	}
	for _, opt := range options {
		opt(e)
	}
	return e, nil
}

// RedirectURI returns the prefix that completes the flow.
func (e *Evaluator) RedirectURI() string {
	return e.redirectURI
}

// Classify finds the first rule matching the candidate. It has no side
// effects. The prefix rules apply to the raw base even when the candidate
// does not parse; only the remaining rules need a parsed URL.
func (e *Evaluator) Classify(candidate string) Classification {
	if candidate == "" {
		return Classification{Rule: RuleMalformed, Raw: candidate}
	}
	base := BaseURL(candidate)
	u, err := url.Parse(candidate)
	if err != nil {
		u = nil
	}

	for _, r := range rules {
		if r.needsURL && u == nil {
			return Classification{Rule: RuleMalformed, Raw: candidate, Base: base}
		}
		if r.matches(e, base, u) {
			return Classification{Rule: r.kind, Raw: candidate, URL: u, Base: base}
		}
	}
	// RuleDefault always matches.
	return Classification{Rule: RuleDefault, Raw: candidate, URL: u, Base: base}
}

// Decide produces the decision for an earlier classification, performing the
// rule's side effects: opening the external browser or answering a challenge.
func (e *Evaluator) Decide(ctx context.Context, c Classification) Decision {
	var d Decision
	switch c.Rule {
	case RuleMalformed:
		d = malformedDecision()
	default:
		d = continueDecision(RuleDefault)
		for _, r := range rules {
			if r.kind == c.Rule {
				d = r.decide(e, ctx, c)
				break
			}
		}
	}

	e.logger.Debug().
		Str("rule", d.Rule.String()).
		Str("action", d.Action.String()).
		Str("url", c.Base).
		Msg("navigation evaluated")
	return d
}

// Evaluate classifies candidate and decides on it.
func (e *Evaluator) Evaluate(ctx context.Context, candidate string) Decision {
	return e.Decide(ctx, e.Classify(candidate))
}

type unsupportedChallenges struct{}

func (unsupportedChallenges) Handle(context.Context, *url.URL) (*Request, error) {
	return nil, apperrors.Wrapf(apperrors.ErrUnsupported, "no device challenge handler configured")
}
