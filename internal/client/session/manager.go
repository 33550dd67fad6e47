// Package session owns the authenticated identity for the running client:
// who is logged in, the access token, and the operations that change that
// fact. It is constructed once and injected into whatever needs it; there is
// no package-level state.
package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/cvdesk/cvdesk/internal/client/api"
	"github.com/cvdesk/cvdesk/internal/client/models"
	"github.com/cvdesk/cvdesk/internal/client/state"
	"github.com/cvdesk/cvdesk/internal/logging"
)

// State is the session lifecycle phase.
type State int

const (
	// StateInitializing means startup restore has not finished yet.
	StateInitializing State = iota
	// StateAnonymous means no token and no user are held.
	StateAnonymous
	// StateAuthenticated means token and user are both present.
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateInitializing:
		return "initializing"
	case StateAnonymous:
		return "anonymous"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// Manager is the single source of truth for the session. Token and user are
// always set and cleared together.
type Manager struct {
	client api.Client
	store  state.Store
	log    logging.Logger

	mu    sync.Mutex
	st    State
	user  *models.User
	token string
	// gen increments on every transition; background work captures it and
	// bails out if the session changed underneath.
	gen uint64

	ready     chan struct{}
	readyOnce sync.Once
}

// NewManager builds a Manager in StateInitializing. Call Restore before
// serving commands.
func NewManager(client api.Client, store state.Store, log logging.Logger) *Manager {
	return &Manager{
		client: client,
		store:  store,
		log:    log,
		st:     StateInitializing,
		ready:  make(chan struct{}),
	}
}

// State returns the current lifecycle phase.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.st
}

// User returns a copy of the authenticated user, or nil when anonymous.
func (m *Manager) User() *models.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.user == nil {
		return nil
	}
	u := *m.user
	return &u
}

// Token implements api.TokenSource.
func (m *Manager) Token(ctx context.Context) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token
}

// Ready is closed once startup restore has resolved to a definite state.
func (m *Manager) Ready() <-chan struct{} {
	return m.ready
}

func (m *Manager) markReady() {
	m.readyOnce.Do(func() { close(m.ready) })
}

// Restore hydrates the session from the persisted store. A missing or
// locally expired token resolves to Anonymous immediately. Otherwise the
// session is assumed authenticated right away and a background call to the
// profile endpoint confirms it, revoking on failure. Restore itself never
// blocks on the network.
func (m *Manager) Restore(ctx context.Context) error {
	defer m.markReady()

	creds, err := m.store.Load(ctx)
	if err != nil {
		m.transition(StateAnonymous, nil, "")
		return fmt.Errorf("load credentials: %w", err)
	}
	if creds == nil {
		m.transition(StateAnonymous, nil, "")
		return nil
	}

	if tokenExpired(creds.Token) {
		m.log.Info(ctx, "stored token expired, discarding session")
		if err := m.store.Clear(ctx); err != nil {
			m.log.Error(ctx, "failed to clear expired credentials", "error", err)
		}
		m.transition(StateAnonymous, nil, "")
		return nil
	}

	user := creds.User
	gen := m.transition(StateAuthenticated, &user, creds.Token)

	go m.validate(ctx, gen)

	return nil
}

// validate confirms the restored token against the profile endpoint. The
// generation check keeps a slow response from tearing down a session that
// was replaced in the meantime.
func (m *Manager) validate(ctx context.Context, gen uint64) {
	_, err := m.client.Me(ctx)
	if err == nil {
		return
	}

	if m.invalidateIf(ctx, gen) {
		m.log.Warn(ctx, "stored session rejected by server", "error", err)
	}
}

// invalidateIf clears the session only while gen is still the current
// generation. The check and the teardown happen under one lock, so a login
// that lands concurrently can never be torn down by an older validation.
func (m *Manager) invalidateIf(ctx context.Context, gen uint64) bool {
	m.mu.Lock()
	if m.gen != gen {
		m.mu.Unlock()
		return false
	}
	m.st = StateAnonymous
	m.user = nil
	m.token = ""
	m.gen++
	m.mu.Unlock()

	if err := m.store.Clear(ctx); err != nil {
		m.log.Error(ctx, "failed to clear credentials on invalidation", "error", err)
	}
	return true
}

// Login authenticates, persists the new credentials (replacing any prior
// pair), and transitions to Authenticated. The returned error is a
// user-facing message; Login never panics past its boundary.
func (m *Manager) Login(ctx context.Context, username, password string) (*models.User, error) {
	resp, err := m.client.Login(ctx, username, password)
	if err != nil {
		return nil, err
	}
	return m.adopt(ctx, resp)
}

// Register creates the account and establishes the session with the same
// contract as Login. Field validation is the caller's job.
func (m *Manager) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	resp, err := m.client.Register(ctx, username, email, password)
	if err != nil {
		return nil, err
	}
	return m.adopt(ctx, resp)
}

func (m *Manager) adopt(ctx context.Context, resp *models.AuthResponse) (*models.User, error) {
	user := models.User{ID: resp.UserID, Username: resp.Username}

	err := m.store.Save(ctx, state.Credentials{Token: resp.AccessToken, User: user})
	if err != nil {
		return nil, fmt.Errorf("save credentials: %w", err)
	}

	m.transition(StateAuthenticated, &user, resp.AccessToken)
	return &user, nil
}

// Logout clears memory and persisted state and transitions to Anonymous.
func (m *Manager) Logout(ctx context.Context) error {
	m.transition(StateAnonymous, nil, "")
	if err := m.store.Clear(ctx); err != nil {
		return fmt.Errorf("clear credentials: %w", err)
	}
	return nil
}

// Invalidate is the 401 teardown path, wired to the gateway's
// session-expired handler. Idempotent: an already anonymous session stays
// anonymous.
func (m *Manager) Invalidate(ctx context.Context) {
	m.transition(StateAnonymous, nil, "")
	if err := m.store.Clear(ctx); err != nil {
		m.log.Error(ctx, "failed to clear credentials on invalidation", "error", err)
	}
}

// transition swaps the whole identity atomically and returns the new
// generation.
func (m *Manager) transition(st State, user *models.User, token string) uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.st = st
	m.user = user
	m.token = token
	m.gen++
	return m.gen
}

// tokenExpired reports whether the token is a JWT whose exp claim is in the
// past. The signature is not verified; this is a local fast path only, the
// server remains the authority. Opaque tokens are passed through.
func tokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
