// Package session signs staff in and out and tells subscribers when the
// session changes.
package session

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/frontdesk/internal/httperr"
	"github.com/BruksfildServices01/frontdesk/internal/infra/kv"
	"github.com/BruksfildServices01/frontdesk/internal/models"
	"github.com/BruksfildServices01/frontdesk/internal/validators"
)

const MinPasswordLen = 6

type UserRepository interface {
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	CreateUser(ctx context.Context, u *models.User) error
}

type Session struct {
	UserID    uuid.UUID `json:"user_id"`
	Email     string    `json:"email"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

type EventKind string

const (
	SignedIn  EventKind = "signed_in"
	SignedOut EventKind = "signed_out"
)

type Event struct {
	Kind    EventKind
	Session Session
}

type Manager struct {
	users   UserRepository
	revoked kv.Store
	secret  string
	ttl     time.Duration
	now     func() time.Time
	log     zerolog.Logger

	mu        sync.RWMutex
	nextID    int
	listeners map[int]func(Event)
}

func NewManager(users UserRepository, revoked kv.Store, secret string, ttl time.Duration, log zerolog.Logger) *Manager {
	return &Manager{
		users:     users,
		revoked:   revoked,
		secret:    secret,
		ttl:       ttl,
		now:       time.Now,
		log:       log,
		listeners: map[int]func(Event){},
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func revokedKey(jti string) string {
	return "revoked:" + jti
}

// ===== SIGN UP / SIGN IN =====

func (m *Manager) SignUp(ctx context.Context, email, password string) (*Session, error) {
	email = normalizeEmail(email)
	if !validators.IsEmail(email) {
		return nil, httperr.ErrValidation("Enter a valid email")
	}
	if len(password) < MinPasswordLen {
		return nil, httperr.ErrValidation("Password must be at least 6 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &models.User{Email: email, PasswordHash: string(hash)}
	if err := m.users.CreateUser(ctx, u); err != nil {
		return nil, err
	}

	return m.start(u)
}

func (m *Manager) SignIn(ctx context.Context, email, password string) (*Session, error) {
	u, err := m.users.FindUserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if httperr.IsBusiness(err, httperr.CodeNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeInvalidCredentials)
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidCredentials)
	}

	return m.start(u)
}

func (m *Manager) start(u *models.User) (*Session, error) {
	token, claims, err := makeToken(u.ID, u.Email, m.secret, m.now(), m.ttl)
	if err != nil {
		return nil, err
	}

	s := Session{
		UserID:    u.ID,
		Email:     u.Email,
		Token:     token,
		ExpiresAt: claims.ExpiresAt.Time,
	}
	m.emit(Event{Kind: SignedIn, Session: s})
	return &s, nil
}

// ===== CURRENT / SIGN OUT =====

// CurrentSession resolves token into the live session, or unauthorized.
func (m *Manager) CurrentSession(ctx context.Context, token string) (*Session, error) {
	s, _, err := m.resolve(ctx, token)
	return s, err
}

func (m *Manager) resolve(ctx context.Context, token string) (*Session, *Claims, error) {
	claims, err := parseToken(token, m.secret, m.now())
	if err != nil {
		return nil, nil, httperr.ErrBusiness(httperr.CodeUnauthorized)
	}

	revoked, err := m.revoked.Exists(ctx, revokedKey(claims.ID))
	if err != nil {
		return nil, nil, err
	}
	if revoked {
		return nil, nil, httperr.ErrBusiness(httperr.CodeUnauthorized)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, nil, httperr.ErrBusiness(httperr.CodeUnauthorized)
	}

	return &Session{
		UserID:    userID,
		Email:     claims.Email,
		Token:     token,
		ExpiresAt: claims.ExpiresAt.Time,
	}, claims, nil
}

// SignOut revokes token until it would have expired. Signing out an invalid
// or already revoked token is a no-op.
func (m *Manager) SignOut(ctx context.Context, token string) error {
	s, claims, err := m.resolve(ctx, token)
	if err != nil {
		if httperr.IsBusiness(err, httperr.CodeUnauthorized) {
			return nil
		}
		return err
	}

	remaining := s.ExpiresAt.Sub(m.now())
	if remaining <= 0 {
		return nil
	}
	if _, err := m.revoked.SetNX(ctx, revokedKey(claims.ID), claims.Subject, remaining); err != nil {
		return err
	}

	m.emit(Event{Kind: SignedOut, Session: *s})
	return nil
}

// ===== SUBSCRIPTIONS =====

// OnChange registers fn for every sign in and sign out. The returned func
// unsubscribes.
func (m *Manager) OnChange(fn func(Event)) func() {
	m.mu.Lock()
	id := m.nextID
	m.nextID++
	m.listeners[id] = fn
	m.mu.Unlock()

	return func() {
		m.mu.Lock()
		delete(m.listeners, id)
		m.mu.Unlock()
	}
}

func (m *Manager) emit(ev Event) {
	m.mu.RLock()
	fns := make([]func(Event), 0, len(m.listeners))
	for _, fn := range m.listeners {
		fns = append(fns, fn)
	}
	m.mu.RUnlock()

	m.log.Info().
		Str("event", string(ev.Kind)).
		Str("user_id", ev.Session.UserID.String()).
		Msg("session changed")

	for _, fn := range fns {
		fn(ev)
	}
}
