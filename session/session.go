// Package session drives one interactive authorization attempt inside an
// embedded browser: it registers as the navigation interceptor, evaluates each
// navigation and delivers exactly one terminal result.
//
// All exported methods except ID and Done must be called on the host's UI
// context, the same context the Dispatcher runs work on.
package session

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jrsteele09/go-webview-auth/authresult"
	"github.com/jrsteele09/go-webview-auth/devicechallenge"
	apperrors "github.com/jrsteele09/go-webview-auth/internal/errors"
	"github.com/jrsteele09/go-webview-auth/navigation"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/jrsteele09/go-webview-auth/session"

// State of a session. Terminated is absorbing.
type State int

const (
	StateIdle State = iota
	StateActive
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateActive:
		return "active"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Session is one interactive authorization attempt.
type Session struct {
	id         string
	sctx       Context
	evaluator  *navigation.Evaluator
	registrar  Registrar
	surface    Surface
	dispatcher Dispatcher

	logger           zerolog.Logger
	tracerProvider   trace.TracerProvider
	challengeTimeout time.Duration

	// Owned by the UI context.
	state            State
	challengePending bool
	ctx              context.Context
	cancel           context.CancelFunc
	span             trace.Span
	result           authresult.AuthorizationResult
	done             chan struct{}
}

var _ Interceptor = (*Session)(nil)

// Option defines a function type to modify the Session instance.
type Option func(*Session)

func WithLogger(logger zerolog.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// WithTracerProvider sets the provider of the session span. Defaults to the
// global provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(s *Session) {
		s.tracerProvider = tp
	}
}

// WithChallengeTimeout bounds each device auth challenge response computation.
func WithChallengeTimeout(d time.Duration) Option {
	return func(s *Session) {
		s.challengeTimeout = d
	}
}

// WithID overrides the generated session ID.
func WithID(id string) Option {
	return func(s *Session) {
		s.id = id
	}
}

// New creates an idle session. Start makes it active.
func New(sctx Context, deps Collaborators, options ...Option) (*Session, error) {
	if err := sctx.Validate(); err != nil {
		return nil, apperrors.Wrapf(err, "[session.New]")
	}
	switch {
	case deps.Registrar == nil:
		return nil, apperrors.Wrapf(apperrors.ErrMissingCollaborator, "[session.New] registrar is required")
	case deps.Opener == nil:
		return nil, apperrors.Wrapf(apperrors.ErrMissingCollaborator, "[session.New] browser opener is required")
	case deps.Surface == nil:
		return nil, apperrors.Wrapf(apperrors.ErrMissingCollaborator, "[session.New] surface is required")
	case deps.Dispatcher == nil:
		return nil, apperrors.Wrapf(apperrors.ErrMissingCollaborator, "[session.New] dispatcher is required")
	}

	s := &Session{
		id:             uuid.NewString(),
		sctx:           sctx,
		registrar:      deps.Registrar,
		surface:        deps.Surface,
		dispatcher:     deps.Dispatcher,
		logger:         log.Logger,
		tracerProvider: otel.GetTracerProvider(),
		done:           make(chan struct{}),
	}
	for _, opt := range options {
		opt(s)
	}
	s.logger = s.logger.With().Str("session_id", s.id).Logger()

	evalOptions := []navigation.EvaluatorOption{navigation.WithLogger(s.logger)}
	if deps.Responder != nil {
		handler, err := devicechallenge.NewHandler(deps.Responder,
			devicechallenge.WithTimeout(s.challengeTimeout),
			devicechallenge.WithLogger(s.logger))
		if err != nil {
			return nil, apperrors.Wrapf(err, "[session.New]")
		}
		evalOptions = append(evalOptions, navigation.WithChallengeHandler(handler))
	}

	evaluator, err := navigation.NewEvaluator(sctx.RedirectURI, deps.Opener, evalOptions...)
	if err != nil {
		return nil, apperrors.Wrapf(err, "[session.New]")
	}
	s.evaluator = evaluator
	return s, nil
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) State() State {
	return s.state
}

// ChallengePending reports whether a device auth challenge response is being
// computed. Navigations are refused meanwhile.
func (s *Session) ChallengePending() bool {
	return s.challengePending
}

// Done is closed once the result has been delivered.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// Result returns the delivered result. ok is false until the session has
// terminated.
func (s *Session) Result() (result authresult.AuthorizationResult, ok bool) {
	select {
	case <-s.done:
		return s.result, true
	default:
		return authresult.AuthorizationResult{}, false
	}
}

// Start registers the session as the navigation interceptor and loads the
// authorization URL. If registration fails the session stays idle.
func (s *Session) Start(ctx context.Context) error {
	switch s.state {
	case StateActive:
		return apperrors.Wrapf(apperrors.ErrSessionActive, "[session.Start] %s", s.id)
	case StateTerminated:
		return apperrors.Wrapf(apperrors.ErrSessionTerminated, "[session.Start] %s", s.id)
	}

	ctx, span := s.tracerProvider.Tracer(tracerName).Start(ctx, "authorization_session",
		trace.WithAttributes(attribute.String("session.id", s.id)))

	if err := s.registrar.Register(s); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "interceptor registration failed")
		span.End()
		return apperrors.Wrapf(err, "[session.Start] registering interceptor")
	}

	s.ctx, s.cancel = context.WithCancel(ctx)
	s.span = span
	s.state = StateActive
	s.logger.Info().Msg("authorization session started")

	s.surface.Load(&navigation.Request{URL: s.sctx.AuthorizationURL})
	return nil
}

// WillNavigate is the host hook called before the embedded browser navigates
// to rawURL. It returns true when the navigation may proceed.
func (s *Session) WillNavigate(rawURL string) bool {
	if s.state != StateActive {
		s.logger.Warn().Str("state", s.state.String()).Msg("navigation reported to inactive session")
		return false
	}
	if s.challengePending {
		s.logger.Debug().Msg("navigation refused while device auth challenge is pending")
		return false
	}

	c := s.evaluator.Classify(rawURL)
	if c.Rule == navigation.RuleDeviceChallenge {
		s.beginChallenge(c)
		return false
	}
	return s.apply(s.evaluator.Decide(s.ctx, c))
}

// Cancel is the user facing cancel affordance.
func (s *Session) Cancel() {
	if s.state != StateActive {
		s.logger.Debug().Str("state", s.state.String()).Msg("cancel ignored")
		return
	}
	s.logger.Info().Msg("authorization cancelled by user")
	s.terminate(authresult.NewUserCancel(), true)
}

// Dismissed tells the session the host closed the embedded browser itself.
func (s *Session) Dismissed() {
	if s.state != StateActive {
		return
	}
	s.logger.Info().Msg("surface dismissed by host")
	s.terminate(authresult.NewUserCancel(), false)
}

// beginChallenge computes the challenge response off the UI context and
// resumes on it through the dispatcher.
func (s *Session) beginChallenge(c navigation.Classification) {
	s.challengePending = true
	s.span.AddEvent("device_challenge_started")

	ctx := s.ctx
	go func() {
		d := s.evaluator.Decide(ctx, c)
		s.dispatcher.Dispatch(func() {
			s.completeChallenge(d)
		})
	}()
}

func (s *Session) completeChallenge(d navigation.Decision) {
	if s.state != StateActive {
		s.logger.Debug().Str("action", d.Action.String()).Msg("dropping device auth challenge completion for inactive session")
		return
	}
	s.challengePending = false
	s.apply(d)
}

func (s *Session) apply(d navigation.Decision) bool {
	s.span.AddEvent("navigation", trace.WithAttributes(
		attribute.String("navigation.rule", d.Rule.String()),
		attribute.String("navigation.action", d.Action.String()),
	))

	switch d.Action {
	case navigation.ActionContinue:
		return true
	case navigation.ActionRedirect:
		s.surface.Load(d.Request)
		return false
	case navigation.ActionTerminate:
		s.terminate(d.Result, true)
		return false
	default:
		s.logger.Error().Str("action", d.Action.String()).Msg("unknown navigation action")
		return false
	}
}

// terminate delivers result and tears the session down. The interceptor is
// unregistered on every path, including a panicking callback.
func (s *Session) terminate(result authresult.AuthorizationResult, dismissSurface bool) {
	if s.state == StateTerminated {
		s.logger.Error().Str("result", result.String()).Msg("result already delivered, ignoring second result")
		return
	}
	s.state = StateTerminated
	s.challengePending = false
	s.result = result
	s.cancel()

	defer s.registrar.Unregister(s)
	defer close(s.done)
	defer s.endSpan(result)

	s.logger.Info().Str("status", result.Status().String()).Str("error", result.ErrorCode()).Msg("authorization session terminated")
	s.sctx.Callback(result)
	if dismissSurface {
		s.surface.Dismiss()
	}
}

func (s *Session) endSpan(result authresult.AuthorizationResult) {
	s.span.SetAttributes(attribute.String("authorization.status", result.Status().String()))
	if result.Status().IsError() {
		s.span.SetStatus(codes.Error, result.ErrorCode())
	} else {
		s.span.SetStatus(codes.Ok, "")
	}
	s.span.End()
}
