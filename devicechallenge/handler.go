// Package devicechallenge answers device authentication (PKeyAuth) challenge
// redirects raised by the authorization server inside the embedded browser.
package devicechallenge

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	apperrors "github.com/jrsteele09/go-webview-auth/internal/errors"
	"github.com/jrsteele09/go-webview-auth/navigation"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

//go:generate mockgen -source=handler.go -destination=mocks/mock_handler.go -package=mocks

// Responder computes the signed challenge response for a set of challenge
// parameters. The computation is owned by the platform's device registration.
type Responder interface {
	ComputeDeviceAuthResponse(ctx context.Context, params Parameters) (string, error)
}

// ResponderFunc adapts a function to the Responder interface.
type ResponderFunc func(ctx context.Context, params Parameters) (string, error)

func (f ResponderFunc) ComputeDeviceAuthResponse(ctx context.Context, params Parameters) (string, error) {
	return f(ctx, params)
}

// Handler turns a challenge redirect into the request that submits the
// challenge response.
type Handler struct {
	responder Responder
	timeout   time.Duration
	logger    zerolog.Logger
}

var _ navigation.ChallengeHandler = (*Handler)(nil)

// HandlerOption defines a function type to modify the Handler instance.
type HandlerOption func(*Handler)

// WithTimeout bounds each responder call. Zero leaves only the caller's context.
func WithTimeout(d time.Duration) HandlerOption {
	return func(h *Handler) {
		h.timeout = d
	}
}

func WithLogger(logger zerolog.Logger) HandlerOption {
	return func(h *Handler) {
		h.logger = logger
	}
}

func NewHandler(responder Responder, options ...HandlerOption) (*Handler, error) {
	if responder == nil {
		return nil, apperrors.Wrapf(apperrors.ErrMissingCollaborator, "[devicechallenge.NewHandler] responder is required")
	}
	h := &Handler{
		responder: responder,
		logger:    log.Logger,
	}
	for _, opt := range options {
		opt(h)
	}
	return h, nil
}

// Handle parses the challenge, obtains the response and returns the request to
// SubmitUrl carrying it in the challenge response header. Errors wrap
// ErrMalformedChallenge or ErrChallengeFailed.
func (h *Handler) Handle(ctx context.Context, challenge *url.URL) (*navigation.Request, error) {
	params := ParseParameters(challenge.RawQuery)

	submitURL, ok := params.SubmitURL()
	if !ok || submitURL == "" {
		return nil, apperrors.Wrapf(apperrors.ErrMalformedChallenge, "[devicechallenge.Handle] %s parameter is missing", SubmitURLKey)
	}
	target, err := url.Parse(submitURL)
	if err != nil || !target.IsAbs() || target.Host == "" {
		return nil, apperrors.Wrapf(apperrors.ErrMalformedChallenge, "[devicechallenge.Handle] %s %q is not an absolute URL", SubmitURLKey, submitURL)
	}

	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	h.logger.Debug().Str("submit_url", target.Host+target.Path).Int("params", len(params)).Msg("computing device auth challenge response")
	response, err := h.responder.ComputeDeviceAuthResponse(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("[devicechallenge.Handle] %w: %w", apperrors.ErrChallengeFailed, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("[devicechallenge.Handle] %w: %w", apperrors.ErrChallengeFailed, err)
	}

	header := make(http.Header)
	header.Set(navigation.ChallengeResponseHeader, response)
	return &navigation.Request{URL: submitURL, Header: header}, nil
}
