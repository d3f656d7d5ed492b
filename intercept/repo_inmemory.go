// Package intercept is an in-memory interception registrar. Each host owns its
// own Registry; there is no process-wide interceptor.
package intercept

import (
	"sync"

	apperrors "github.com/jrsteele09/go-webview-auth/internal/errors"
	"github.com/jrsteele09/go-webview-auth/session"
)

// Registry is a thread-safe in-memory implementation of the Repo interface
type Registry struct {
	mu           sync.RWMutex
	interceptors map[string]session.Interceptor
}

var _ Repo = (*Registry)(nil)

// NewRegistry creates an empty interceptor registry
func NewRegistry() *Registry {
	return &Registry{
		interceptors: make(map[string]session.Interceptor),
	}
}

// Register adds an interceptor. IDs must be unique among registered interceptors.
func (r *Registry) Register(interceptor session.Interceptor) error {
	if interceptor == nil {
		return apperrors.Wrapf(apperrors.ErrMissingCollaborator, "[Registry.Register] interceptor cannot be nil")
	}
	id := interceptor.ID()
	if id == "" {
		return apperrors.Wrapf(apperrors.ErrInvalidSession, "[Registry.Register] interceptor ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.interceptors[id]; exists {
		return apperrors.Wrapf(apperrors.ErrAlreadyRegistered, "[Registry.Register] %s", id)
	}
	r.interceptors[id] = interceptor
	return nil
}

// Unregister removes an interceptor. Removing an unknown interceptor is a no-op.
func (r *Registry) Unregister(interceptor session.Interceptor) {
	if interceptor == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Only remove the exact instance, not a newer one reusing the ID
	if current, ok := r.interceptors[interceptor.ID()]; ok && current == interceptor {
		delete(r.interceptors, interceptor.ID())
	}
}

// Get retrieves a registered interceptor by ID
func (r *Registry) Get(id string) (session.Interceptor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	interceptor, exists := r.interceptors[id]
	if !exists {
		return nil, apperrors.Wrapf(apperrors.ErrNotRegistered, "[Registry.Get] %s", id)
	}
	return interceptor, nil
}

// Intercept forwards a navigation event to the interceptor registered under id
// and returns whether the navigation may proceed.
func (r *Registry) Intercept(id, rawURL string) (bool, error) {
	interceptor, err := r.Get(id)
	if err != nil {
		return false, err
	}
	// Called without the lock: the interceptor may unregister itself.
	return interceptor.WillNavigate(rawURL), nil
}

// Len returns the number of registered interceptors
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.interceptors)
}
