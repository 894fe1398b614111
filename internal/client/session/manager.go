// Package session owns the client's authentication lifecycle: token storage,
// the current user and usage snapshot, and the state machine driving login,
// registration, logout and expiry.
//
// The manager is the only component that mutates the token store or the API
// client's tokens; everything else reads session state through accessors.
package session

import (
	"context"
	"errors"
	"sync"

	"github.com/prismai/prism-cli/internal/client/api"
	"github.com/prismai/prism-cli/internal/client/models"
	"github.com/prismai/prism-cli/internal/client/tokens"
	"github.com/prismai/prism-cli/internal/common"
	"github.com/prismai/prism-cli/internal/logging"
)

// Manager holds the in-memory session. user is present iff the last profile
// fetch succeeded with a valid access token.
type Manager struct {
	api   api.Client
	store tokens.Store
	log   logging.Logger

	mu    sync.RWMutex
	state State
	user  *models.User
	usage *models.Usage
}

func NewManager(apiClient api.Client, store tokens.Store, log logging.Logger) *Manager {
	return &Manager{
		api:   apiClient,
		store: store,
		log:   log,
		state: StateAnonymous,
	}
}

func (m *Manager) setState(s State) {
	m.mu.Lock()
	m.state = s
	m.mu.Unlock()
}

// State returns the current lifecycle state.
func (m *Manager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

// IsAuthenticated reports whether a user is currently loaded.
func (m *Manager) IsAuthenticated() bool {
	return m.State() == StateAuthenticated
}

// IsAdmin reports whether the authenticated user holds the admin role.
func (m *Manager) IsAdmin() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.user != nil && m.user.Role == models.RoleAdmin
}

// User returns a copy of the current user, or nil when anonymous.
func (m *Manager) User() *models.User {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.user == nil {
		return nil
	}
	u := *m.user
	return &u
}

// Usage returns a copy of the latest usage snapshot, or nil when anonymous.
func (m *Manager) Usage() *models.Usage {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.usage == nil {
		return nil
	}
	u := *m.usage
	return &u
}

// Login authenticates with the backend. On a successful grant both tokens are
// persisted and the profile is fetched; the session is Authenticated only
// after that fetch resolves. A rejected credential leaves the session
// Anonymous with nothing persisted.
func (m *Manager) Login(ctx context.Context, email, password string) error {
	m.setState(StateAuthenticating)

	tp, err := m.api.Login(ctx, email, password)
	if err != nil {
		m.setState(StateAnonymous)
		return err
	}

	return m.completeGrant(ctx, tp)
}

// Register creates an account and signs the new user in. Same completion
// contract as Login.
func (m *Manager) Register(ctx context.Context, name, email, password string) error {
	m.setState(StateAuthenticating)

	tp, err := m.api.Register(ctx, name, email, password)
	if err != nil {
		m.setState(StateAnonymous)
		return err
	}

	return m.completeGrant(ctx, tp)
}

// completeGrant persists the pair, installs it on the API client and loads
// the profile. Persisting is fail-soft: a broken local store downgrades to an
// in-memory session rather than rejecting a valid grant.
func (m *Manager) completeGrant(ctx context.Context, tp *models.TokenPair) error {
	if err := m.store.Save(ctx, tp.AccessToken, tp.RefreshToken); err != nil {
		m.log.Warn(ctx, "failed to persist tokens", "error", err)
	}
	m.api.SetTokens(tp.AccessToken, tp.RefreshToken)

	if err := m.FetchProfile(ctx); err != nil {
		// The grant is only half a session: without a profile the
		// transition never completes.
		if m.State() == StateAuthenticating {
			m.setState(StateAnonymous)
		}
		return err
	}
	return nil
}

// Logout clears the persisted tokens and the in-memory session. No network
// call is made.
func (m *Manager) Logout(ctx context.Context) {
	if err := m.store.Clear(ctx); err != nil {
		m.log.Warn(ctx, "failed to clear token store", "error", err)
	}
	m.api.ClearTokens()

	m.mu.Lock()
	m.user = nil
	m.usage = nil
	m.state = StateAnonymous
	m.mu.Unlock()
}

// Invalidate tears the session down after an expiry signal: tokens are
// cleared immediately and the session ends up Anonymous. The action that hit
// the expired token is reported failed to its caller; nothing is replayed.
func (m *Manager) Invalidate(ctx context.Context) {
	m.setState(StateExpired)
	m.log.Info(ctx, "session expired, clearing tokens")
	m.Logout(ctx)
}

// ObserveError inspects an error from any authenticated call and tears the
// session down when it indicates expiry. The error is returned unchanged so
// call sites can chain it.
func (m *Manager) ObserveError(ctx context.Context, err error) error {
	if errors.Is(err, common.ErrSessionExpired) {
		m.Invalidate(ctx)
	}
	return err
}

// FetchProfile reloads the user and usage snapshot from the backend. It is
// idempotent and safe to call repeatedly; the snapshot is replaced wholesale.
// An expiry signal tears the session down. Any other failure (backend down,
// transient 5xx) leaves the current state untouched, so a usage refresh after
// a generation cannot log the user out.
func (m *Manager) FetchProfile(ctx context.Context) error {
	p, err := m.api.Profile(ctx)
	if err != nil {
		if errors.Is(err, common.ErrSessionExpired) {
			m.Invalidate(ctx)
		}
		return err
	}

	m.mu.Lock()
	m.user = &p.User
	m.usage = &p.Usage
	m.state = StateAuthenticated
	m.mu.Unlock()
	return nil
}

// Restore loads persisted tokens on startup. With no stored access token the
// session stays Anonymous and no network call is made. With one, the profile
// is fetched; an expiry signal clears the stale pair, while an unreachable
// backend leaves the pair stored for the next start.
func (m *Manager) Restore(ctx context.Context) error {
	access, refresh, err := m.store.Load(ctx)
	if err != nil {
		m.log.Warn(ctx, "failed to load token store", "error", err)
		return nil
	}
	if access == "" {
		return nil
	}

	m.api.SetTokens(access, refresh)
	return m.FetchProfile(ctx)
}
