// Package session holds the signed-in user and gates every store operation
// on its presence. It is injected into the entity stores rather than looked
// up ambiently.
package session

import (
	"context"
	"sync"

	"github.com/workboard/workspace/pkg/apiclient"
)

// Authenticator is the remote auth surface the session needs.
type Authenticator interface {
	Login(ctx context.Context, username, password string) (apiclient.User, error)
	Register(ctx context.Context, username, password, name, email string) (apiclient.User, error)
}

// Session tracks the current user identity. A successful Login or Register
// sets it; Logout clears it and runs every registered reset hook so no
// stale cross-user data survives.
type Session struct {
	mu       sync.RWMutex
	auth     Authenticator
	user     *apiclient.User
	onLogout []func()
}

func New(auth Authenticator) *Session {
	return &Session{auth: auth}
}

// Login authenticates and, on success, installs the user as current.
func (s *Session) Login(ctx context.Context, username, password string) (apiclient.User, error) {
	user, err := s.auth.Login(ctx, username, password)
	if err != nil {
		return apiclient.User{}, err
	}

	s.mu.Lock()
	s.user = &user
	s.mu.Unlock()
	return user, nil
}

// Register creates an account and signs the new user in.
func (s *Session) Register(ctx context.Context, username, password, name, email string) (apiclient.User, error) {
	user, err := s.auth.Register(ctx, username, password, name, email)
	if err != nil {
		return apiclient.User{}, err
	}

	s.mu.Lock()
	s.user = &user
	s.mu.Unlock()
	return user, nil
}

// Logout clears the current user and fires every OnLogout hook. Safe to call
// when nobody is signed in.
func (s *Session) Logout() {
	s.mu.Lock()
	s.user = nil
	hooks := make([]func(), len(s.onLogout))
	copy(hooks, s.onLogout)
	s.mu.Unlock()

	for _, fn := range hooks {
		fn()
	}
}

// Current returns the signed-in user, if any.
func (s *Session) Current() (apiclient.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return apiclient.User{}, false
	}
	return *s.user, true
}

// UserID returns the signed-in user's id, if any.
func (s *Session) UserID() (int64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return 0, false
	}
	return s.user.ID, true
}

// OnLogout registers a hook run on every Logout. Entity stores use this to
// drop their collections.
func (s *Session) OnLogout(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onLogout = append(s.onLogout, fn)
}
