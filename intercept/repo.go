package intercept

import "github.com/jrsteele09/go-webview-auth/session"

// Repo tracks the interceptors registered with a host and routes the host's
// navigation events to them.
type Repo interface {
	session.Registrar
	Get(id string) (session.Interceptor, error)
	Intercept(id, rawURL string) (bool, error)
	Len() int
}
