// Package auth owns the client session: the single source of truth for
// "is a user logged in" and the identity stamped onto outgoing requests.
// All views go through this manager; nothing reads the durable store
// directly.
package auth

import (
	"sync"
	"time"

	"deskline/internal/domain/session"
	sharedauth "deskline/internal/shared/auth"
	"deskline/internal/shared/constants"
	apperrors "deskline/internal/shared/errors"
	"deskline/internal/shared/logger"
)

// SessionStorage is the durable half of the session state.
type SessionStorage interface {
	SaveSession(session.Session) error
	LoadSession() (session.Session, bool, error)
	ClearSession() error
	RememberLogin(email, password string) error
	RememberedLogin() (email, password string, ok bool, err error)
	ForgetLogin() error
}

// SessionManager holds the in-memory session and keeps it in sync with
// durable storage.
type SessionManager struct {
	storage SessionStorage
	logger  logger.Interface

	mu      sync.Mutex
	current session.Session
	loaded  bool
}

func NewSessionManager(storage SessionStorage, log logger.Interface) *SessionManager {
	return &SessionManager{
		storage: storage,
		logger:  log,
	}
}

// Login stores the token and profile returned by the API and persists
// them. The caller only invokes this after the API returned a token.
func (m *SessionManager) Login(token string, user session.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.current = session.Session{Token: token, User: user}
	m.loaded = true
	if err := m.storage.SaveSession(m.current); err != nil {
		return err
	}
	m.logger.Infow("session established", "user_id", user.ID, "email", user.Email)
	return nil
}

// Logout clears the session from memory and durable storage. Logging out
// while already logged out changes nothing and writes nothing.
func (m *SessionManager) Logout() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.load().Authenticated() {
		return nil
	}
	m.current = session.Session{}
	if err := m.storage.ClearSession(); err != nil {
		return err
	}
	m.logger.Infow("session cleared")
	return nil
}

// Current returns the session, loading it from durable storage on first
// access.
func (m *SessionManager) Current() session.Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.load()
}

// Token returns the current bearer token, empty when logged out.Shaped
// to plug straight into the API client as its token source.
func (m *SessionManager) Token() string {
	return m.Current().Token
}

// UpdateUser shallow-merges the patch onto the stored profile and
// re-persists the full merged record.
func (m *SessionManager) UpdateUser(patch session.UserPatch) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	current := m.load()
	if !current.Authenticated() {
		return apperrors.NewUnauthorizedError(constants.ErrMsgUnauthorized)
	}
	m.current.User = current.User.Merge(patch)
	return m.storage.SaveSession(m.current)
}

// ReplaceUser swaps in a full profile record, as returned by the server
// after a profile fetch or update.
func (m *SessionManager) ReplaceUser(user session.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.load().Authenticated() {
		return apperrors.NewUnauthorizedError(constants.ErrMsgUnauthorized)
	}
	m.current.User = user
	return m.storage.SaveSession(m.current)
}

// RememberCredentials persists the login for prefill when remember is
// true and clears any previously remembered login when it is false.
func (m *SessionManager) RememberCredentials(email, password string, remember bool) error {
	if remember {
		return m.storage.RememberLogin(email, password)
	}
	return m.storage.ForgetLogin()
}

// RememberedCredentials returns the remembered login for form prefill.
func (m *SessionManager) RememberedCredentials() (email, password string, ok bool) {
	email, password, ok, err := m.storage.RememberedLogin()
	if err != nil {
		m.logger.Warnw("failed to load remembered login", "error", err)
		return "", "", false
	}
	return email, password, ok
}

// Require is the synchronous session gate: it returns the session when a
// token is present and an unauthorized error otherwise, before any
// network call is made. An expired JWT is logged but still returned; the
// server stays the authority on validity.
func (m *SessionManager) Require() (session.Session, error) {
	current := m.Current()
	if !current.Authenticated() {
		return session.Session{}, apperrors.NewUnauthorizedError(constants.ErrMsgUnauthorized,
			"run \"deskline login\" first")
	}
	if sharedauth.Expired(current.Token, time.Now()) {
		m.logger.Warnw("stored session token appears expired",
			"user_id", current.User.ID)
	}
	return current, nil
}

// load returns the session, reading durable storage once. Callers hold mu.
func (m *SessionManager) load() session.Session {
	if m.loaded {
		return m.current
	}
	m.loaded = true
	stored, ok, err := m.storage.LoadSession()
	if err != nil {
		m.logger.Warnw("failed to load stored session", "error", err)
		return m.current
	}
	if ok {
		m.current = stored
	}
	return m.current
}
