package session

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/archie46/OpenShop/client"
)

// AuthAPI is the slice of the backend client the manager drives.
type AuthAPI interface {
	Login(ctx context.Context, req client.LoginRequest) (*client.AuthResponse, error)
	Register(ctx context.Context, req client.RegisterRequest) (*client.AuthResponse, error)
}

// Manager couples the auth endpoints with the session store and notifies
// interested components when the session ends, so per-user state (the cart
// read-model, cached orders) gets dropped on logout.
type Manager struct {
	api      AuthAPI
	store    *Store
	logger   *slog.Logger
	onLogout []func()
}

// NewManager creates a session manager.
func NewManager(api AuthAPI, store *Store, logger *slog.Logger) *Manager {
	return &Manager{
		api:    api,
		store:  store,
		logger: logger,
	}
}

// OnLogout registers a callback invoked whenever the session ends, whether by
// explicit logout or 401 invalidation routed through Invalidate.
func (m *Manager) OnLogout(fn func()) {
	m.onLogout = append(m.onLogout, fn)
}

// Login authenticates and stores the resulting session.
func (m *Manager) Login(ctx context.Context, username, password string) (*client.UserDTO, error) {
	resp, err := m.api.Login(ctx, client.LoginRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	m.store.SetAuth(resp.User, resp.Token)
	m.logger.Info("session started",
		slog.Int64("user_id", resp.User.ID),
		slog.String("role", string(resp.User.Role)),
	)
	user := resp.User
	return &user, nil
}

// Register creates an account. The backend does not sign the new account in;
// callers follow up with Login.
func (m *Manager) Register(ctx context.Context, req client.RegisterRequest) (*client.UserDTO, error) {
	resp, err := m.api.Register(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}
	user := resp.User
	return &user, nil
}

// Logout ends the session locally. There is no backend call: the token is
// simply discarded.
func (m *Manager) Logout() {
	m.store.ClearAuth()
	m.logger.Info("session ended")
	for _, fn := range m.onLogout {
		fn()
	}
}

// Invalidate is the transport's 401 hook: it clears credentials and fires the
// logout callbacks. Wire this as the onUnauthorized argument of client.New.
func (m *Manager) Invalidate() {
	m.logger.Warn("session invalidated by backend")
	m.store.ClearAuth()
	for _, fn := range m.onLogout {
		fn()
	}
}
