package session

import (
	"github.com/jrsteele09/go-webview-auth/devicechallenge"
	"github.com/jrsteele09/go-webview-auth/navigation"
)

//go:generate mockgen -source=collaborators.go -destination=mocks/mock_collaborators.go -package=mocks

// Interceptor is what a session hands to the Registrar: the hook the host's
// interception mechanism calls before each navigation.
type Interceptor interface {
	ID() string
	WillNavigate(rawURL string) bool
}

// Registrar installs and removes the mechanism through which outbound
// navigations are observed before they happen.
type Registrar interface {
	Register(interceptor Interceptor) error
	Unregister(interceptor Interceptor)
}

// Surface is the embedded browser hosting the session.
type Surface interface {
	// Load navigates the embedded browser to req.
	Load(req *navigation.Request)
	// Dismiss closes the embedded browser.
	Dismiss()
}

// Dispatcher runs work on the host's UI context, one function at a time.
type Dispatcher interface {
	Dispatch(fn func())
}

// Collaborators are the host services a session consumes. Responder is
// optional: without it device auth challenges end the session with an error.
type Collaborators struct {
	Registrar  Registrar
	Opener     navigation.BrowserOpener
	Responder  devicechallenge.Responder
	Surface    Surface
	Dispatcher Dispatcher
}
