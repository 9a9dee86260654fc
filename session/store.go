// Package session owns the authenticated user's credentials: the bearer
// token, the profile of the signed-in user, and their persistence across
// restarts. It implements client.TokenSource and serves as the transport's
// 401 invalidation hook.
package session

import (
	"errors"
	"log/slog"
	"os"
	"sync"

	"github.com/archie46/OpenShop/client"
	"github.com/archie46/OpenShop/pkg/statefile"
)

// state is the persisted session payload.
type state struct {
	User  *client.UserDTO `json:"user,omitempty"`
	Token string          `json:"token,omitempty"`
}

// Store holds the current session and persists it to a JSON file. The zero
// session (no user, no token) means signed out.
type Store struct {
	path   string
	logger *slog.Logger

	mu    sync.RWMutex
	state state
}

// NewStore creates a session store persisted at path, loading any existing
// session. A missing or unreadable state file starts a signed-out session.
func NewStore(path string, logger *slog.Logger) *Store {
	s := &Store{path: path, logger: logger}

	var loaded state
	if err := statefile.Load(path, &loaded); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			logger.Warn("discarding unreadable session state",
				slog.String("path", path),
				slog.String("error", err.Error()),
			)
		}
		return s
	}
	s.state = loaded
	return s
}

// Token returns the current bearer token, empty when signed out. Implements
// client.TokenSource.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Token
}

// User returns a copy of the signed-in user, or nil when signed out.
func (s *Store) User() *client.UserDTO {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state.User == nil {
		return nil
	}
	u := *s.state.User
	return &u
}

// IsAuthenticated reports whether a session is active.
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Token != "" && s.state.User != nil
}

// SetAuth stores the user and token of a fresh login and persists them.
func (s *Store) SetAuth(user client.UserDTO, token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state{User: &user, Token: token}
	s.persistLocked()
}

// SetUser replaces the stored profile, keeping the token. Used after profile
// updates.
func (s *Store) SetUser(user client.UserDTO) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.Token == "" {
		return
	}
	s.state.User = &user
	s.persistLocked()
}

// ClearAuth drops the session and removes the persisted state. Safe to call
// when already signed out. This is the transport's 401 invalidation hook.
func (s *Store) ClearAuth() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state{}
	if err := statefile.Remove(s.path); err != nil {
		s.logger.Warn("failed to remove session state",
			slog.String("path", s.path),
			slog.String("error", err.Error()),
		)
	}
}

// persistLocked writes the session to disk. Callers hold s.mu. Persistence
// failures are logged, not returned: the in-memory session stays valid.
func (s *Store) persistLocked() {
	if err := statefile.Save(s.path, s.state); err != nil {
		s.logger.Warn("failed to persist session state",
			slog.String("path", s.path),
			slog.String("error", err.Error()),
		)
	}
}
