package intercept_test

import (
	"context"
	"testing"

	"github.com/jrsteele09/go-webview-auth/authresult"
	"github.com/jrsteele09/go-webview-auth/intercept"
	apperrors "github.com/jrsteele09/go-webview-auth/internal/errors"
	"github.com/jrsteele09/go-webview-auth/navigation"
	"github.com/jrsteele09/go-webview-auth/session"
	"github.com/jrsteele09/go-webview-auth/session/mocks"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRegistry_RegisterAndIntercept(t *testing.T) {
	ctrl := gomock.NewController(t)
	interceptor := mocks.NewMockInterceptor(ctrl)
	interceptor.EXPECT().ID().Return("session-1").AnyTimes()
	interceptor.EXPECT().WillNavigate("https://login.example").Return(true)

	r := intercept.NewRegistry()
	require.NoError(t, r.Register(interceptor))
	require.Equal(t, 1, r.Len())

	allowed, err := r.Intercept("session-1", "https://login.example")
	require.NoError(t, err)
	require.True(t, allowed)

	got, err := r.Get("session-1")
	require.NoError(t, err)
	require.Same(t, interceptor, got)
}

func TestRegistry_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	first := mocks.NewMockInterceptor(ctrl)
	first.EXPECT().ID().Return("dup").AnyTimes()
	second := mocks.NewMockInterceptor(ctrl)
	second.EXPECT().ID().Return("dup").AnyTimes()
	empty := mocks.NewMockInterceptor(ctrl)
	empty.EXPECT().ID().Return("").AnyTimes()

	r := intercept.NewRegistry()

	t.Run("nil", func(t *testing.T) {
		require.ErrorIs(t, r.Register(nil), apperrors.ErrMissingCollaborator)
	})

	t.Run("empty id", func(t *testing.T) {
		require.ErrorIs(t, r.Register(empty), apperrors.ErrInvalidSession)
	})

	t.Run("duplicate id", func(t *testing.T) {
		require.NoError(t, r.Register(first))
		require.ErrorIs(t, r.Register(second), apperrors.ErrAlreadyRegistered)
	})

	t.Run("unregister of a different instance keeps the registered one", func(t *testing.T) {
		r.Unregister(second)
		require.Equal(t, 1, r.Len())
		r.Unregister(first)
		require.Equal(t, 0, r.Len())
		r.Unregister(first)
		r.Unregister(nil)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := r.Intercept("missing", "https://login.example")
		require.ErrorIs(t, err, apperrors.ErrNotRegistered)
	})
}

type nopOpener struct{}

func (nopOpener) OpenExternally(string) {}

type inlineDispatcher struct{}

func (inlineDispatcher) Dispatch(fn func()) { fn() }

type recordingSurface struct {
	loaded    []string
	dismissed bool
}

func (s *recordingSurface) Load(req *navigation.Request) { s.loaded = append(s.loaded, req.URL) }
func (s *recordingSurface) Dismiss()                     { s.dismissed = true }

func TestRegistry_SessionScope(t *testing.T) {
	r := intercept.NewRegistry()
	surface := &recordingSurface{}
	var results []authresult.AuthorizationResult

	s, err := session.New(session.Context{
		AuthorizationURL: "https://login.example/authorize",
		RedirectURI:      "https://app.example/callback",
		Callback:         func(res authresult.AuthorizationResult) { results = append(results, res) },
	}, session.Collaborators{
		Registrar:  r,
		Opener:     nopOpener{},
		Surface:    surface,
		Dispatcher: inlineDispatcher{},
	}, session.WithLogger(zerolog.Nop()))
	require.NoError(t, err)

	require.NoError(t, s.Start(context.Background()))
	require.Equal(t, 1, r.Len())
	require.Equal(t, []string{"https://login.example/authorize"}, surface.loaded)

	allowed, err := r.Intercept(s.ID(), "https://login.example/login")
	require.NoError(t, err)
	require.True(t, allowed)

	allowed, err = r.Intercept(s.ID(), "https://app.example/callback?code=1")
	require.NoError(t, err)
	require.False(t, allowed)

	require.Equal(t, 0, r.Len())
	require.True(t, surface.dismissed)
	require.Len(t, results, 1)
	require.Equal(t, authresult.StatusSuccess, results[0].Status())

	_, err = r.Intercept(s.ID(), "https://login.example/again")
	require.ErrorIs(t, err, apperrors.ErrNotRegistered)
}
