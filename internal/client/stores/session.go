package stores

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/dmitrijs2005/coursecatalog/internal/client/auth"
	"github.com/dmitrijs2005/coursecatalog/internal/client/models"
	"github.com/dmitrijs2005/coursecatalog/internal/client/repositories/kv"
	"github.com/dmitrijs2005/coursecatalog/internal/client/state"
	"github.com/dmitrijs2005/coursecatalog/internal/common"
)

// SessionStore drives the authentication state machine
// unknown -> checking -> authenticated | unauthenticated.
//
// The session token and the serialized user live under separate storage
// keys and are written one after the other on login. A crash between the
// two writes leaves only one of them behind; CheckSession treats that as no
// session.
type SessionStore struct {
	api  AuthAPI
	repo kv.Repository
	opts options

	// pubMu spans a mutation and its publication, so subscribers see
	// snapshots in the order the state changed.
	pubMu   sync.Mutex
	mu      sync.Mutex
	session models.Session
	hub     state.Hub[models.Session]
}

func NewSessionStore(api AuthAPI, repo kv.Repository, opts ...Option) *SessionStore {
	return &SessionStore{
		api:     api,
		repo:    repo,
		opts:    buildOptions(opts),
		session: models.Session{Status: models.SessionUnknown},
	}
}

// Snapshot returns the current session. The user is a copy.
func (s *SessionStore) Snapshot() models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copySession(s.session)
}

// Subscribe calls fn with every new session snapshot until cancel is called.
// fn runs while the store publishes and must not call store actions.
func (s *SessionStore) Subscribe(fn func(models.Session)) (cancel func()) {
	return s.hub.Subscribe(fn)
}

func (s *SessionStore) update(fn func(models.Session) models.Session) {
	s.pubMu.Lock()
	defer s.pubMu.Unlock()

	s.mu.Lock()
	s.session = fn(s.session)
	snap := copySession(s.session)
	s.mu.Unlock()

	s.hub.Publish(snap)
}

func copySession(sess models.Session) models.Session {
	if sess.User != nil {
		u := *sess.User
		sess.User = &u
	}
	return sess
}

// CheckSession restores the session from local storage without contacting
// the server. Missing, partial or unreadable data yields an unauthenticated
// session; nothing is reported to the caller.
func (s *SessionStore) CheckSession(ctx context.Context) {
	s.update(func(cur models.Session) models.Session { return reduceCheckSession(cur, state.Pending[*models.User]()) })

	user, err := s.readSession(ctx)
	if err != nil {
		s.opts.logger.Warn(ctx, "stored session ignored", "error", err)
		user = nil
	}
	s.update(func(cur models.Session) models.Session { return reduceCheckSession(cur, state.Ok(user)) })
}

var (
	errNoStoredToken = errors.New("no stored token")
	errNoStoredUser  = errors.New("no stored user")
	errTokenExpired  = errors.New("stored token expired")

	errEmptyStoredUser = errors.New("stored user is empty")
	errTokenMismatch   = errors.New("stored user belongs to another token")
)

// readSession returns the cached user, or nil when no session is stored.
func (s *SessionStore) readSession(ctx context.Context) (*models.User, error) {
	token, err := s.repo.Get(ctx, common.StorageKeyToken)
	if err != nil {
		return nil, err
	}
	rawUser, err := s.repo.Get(ctx, common.StorageKeyUser)
	if err != nil {
		return nil, err
	}

	switch {
	case len(token) == 0 && len(rawUser) == 0:
		return nil, nil
	case len(token) == 0:
		return nil, errNoStoredToken
	case len(rawUser) == 0:
		return nil, errNoStoredUser
	}

	var user *models.User
	if err := json.Unmarshal(rawUser, &user); err != nil {
		return nil, &kv.StorageError{Op: "parse", Key: common.StorageKeyUser, Err: err}
	}
	if user == nil || (user.ID == 0 && user.Username == "") {
		return nil, errEmptyStoredUser
	}
	// Both keys are written by the same login; a user record carrying a
	// different token was left behind by an earlier one.
	if user.Token != "" && user.Token != string(token) {
		return nil, errTokenMismatch
	}
	user.Token = string(token)

	if s.opts.rejectExpired && auth.Expired(user.Token, s.opts.now()) {
		return nil, errTokenExpired
	}
	return user, nil
}

// Login authenticates against the server and persists the token and the
// user. On failure the session becomes unauthenticated with the failure
// message in Error, and previously stored data is left in place.
func (s *SessionStore) Login(ctx context.Context, username, password string) {
	s.update(func(cur models.Session) models.Session { return reduceLogin(cur, state.Pending[*models.User]()) })

	user, err := s.api.Login(ctx, username, password)
	if err == nil {
		err = s.persistSession(ctx, user)
	}
	if err != nil {
		s.opts.logger.Info(ctx, "login failed", "username", username, "error", err)
	}

	res := state.From(user, err)
	s.update(func(cur models.Session) models.Session { return reduceLogin(cur, res) })
}

func (s *SessionStore) persistSession(ctx context.Context, user *models.User) error {
	if err := s.repo.Set(ctx, common.StorageKeyToken, []byte(user.Token)); err != nil {
		return err
	}
	b, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return s.repo.Set(ctx, common.StorageKeyUser, b)
}

// Register creates an account. It never logs the new user in: on success the
// session is unauthenticated with no error and the created user is returned.
func (s *SessionStore) Register(ctx context.Context, req models.RegisterRequest) *models.RegisteredUser {
	s.update(func(cur models.Session) models.Session { return reduceRegister(cur, state.Pending[*models.RegisteredUser]()) })

	created, err := s.api.Register(ctx, req)
	if err != nil {
		s.opts.logger.Info(ctx, "registration failed", "username", req.Username, "error", err)
	}

	res := state.From(created, err)
	s.update(func(cur models.Session) models.Session { return reduceRegister(cur, res) })
	return created
}

// Logout removes the stored session and clears the in-memory one. A storage
// failure is logged and does not keep the user logged in.
func (s *SessionStore) Logout(ctx context.Context) {
	s.update(func(cur models.Session) models.Session { return reduceLogout(cur, state.Pending[struct{}]()) })

	err := s.repo.DeleteKeys(ctx, common.StorageKeyToken, common.StorageKeyUser)
	if err != nil {
		s.opts.logger.Warn(ctx, "logout: stored session not removed", "error", err)
	}
	s.update(func(cur models.Session) models.Session { return reduceLogout(cur, state.Ok(struct{}{})) })
}

// ClearError resets Error and nothing else.
func (s *SessionStore) ClearError() {
	s.update(func(cur models.Session) models.Session {
		cur.Error = ""
		return cur
	})
}

// RefreshUser reloads the profile of the logged-in user from the server and
// stores it. A failure is recorded in Error; the session stays as it was.
func (s *SessionStore) RefreshUser(ctx context.Context) error {
	cur := s.Snapshot()
	if !cur.IsAuthenticated() {
		return ErrNotAuthenticated
	}

	fresh, err := s.api.CurrentUser(ctx, cur.User.Token)
	if err != nil {
		s.update(func(sess models.Session) models.Session {
			sess.Error = err.Error()
			return sess
		})
		return nil
	}

	var merged *models.User
	s.update(func(sess models.Session) models.Session {
		if !sess.IsAuthenticated() {
			return sess
		}
		u := *fresh
		u.Token = sess.User.Token
		u.RefreshToken = sess.User.RefreshToken
		u.Bio = sess.User.Bio
		sess.User = &u
		merged = &u
		return sess
	})
	if merged != nil {
		s.saveUser(ctx, *merged)
	}
	return nil
}

// UpdateProfile applies local profile edits to the logged-in user and
// stores the result.
func (s *SessionStore) UpdateProfile(ctx context.Context, p models.ProfileUpdate) error {
	var updated *models.User
	s.update(func(sess models.Session) models.Session {
		if !sess.IsAuthenticated() {
			return sess
		}
		u := p.Apply(*sess.User)
		sess.User = &u
		updated = &u
		return sess
	})
	if updated == nil {
		return ErrNotAuthenticated
	}
	s.saveUser(ctx, *updated)
	return nil
}

func (s *SessionStore) saveUser(ctx context.Context, u models.User) {
	b, err := json.Marshal(u)
	if err == nil {
		err = s.repo.Set(ctx, common.StorageKeyUser, b)
	}
	if err != nil {
		s.opts.logger.Warn(ctx, "user not saved", "error", err)
	}
}

func tokenExpiry(u *models.User) time.Time {
	if u == nil {
		return time.Time{}
	}
	exp, _ := auth.ExpiresAt(u.Token)
	return exp
}
