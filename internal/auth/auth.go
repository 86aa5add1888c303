// Package auth covers the mock identity layer: a static credential table
// behind a small verifier interface, a persisted session, and the one place
// role checks happen.
package auth

import (
	"errors"
	"sync"
	"time"

	"boutique-pos/internal/localstore"
	"boutique-pos/internal/models"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned on any email/password mismatch. Callers
// get no hint whether the email exists.
var ErrInvalidCredentials = errors.New("auth: invalid credentials")

const sessionKey = "boutiqueUser"

// Verifier checks a credential pair and returns the matching identity.
// Swapping the static table for a real backend only means providing another
// implementation here.
type Verifier interface {
	Verify(email, password string) (models.User, error)
}

type credential struct {
	user models.User
	hash []byte
}

// StaticVerifier matches against a fixed in-memory user list, with a small
// artificial delay so the login flow behaves like a remote call.
type StaticVerifier struct {
	credentials []credential
	delay       time.Duration
}

// NewStaticVerifier hashes the given plaintext passwords up front; the
// plaintext is not retained.
func NewStaticVerifier(users []models.User, passwords []string, delay time.Duration) (*StaticVerifier, error) {
	if len(users) != len(passwords) {
		return nil, errors.New("auth: users and passwords length mismatch")
	}
	v := &StaticVerifier{delay: delay}
	for i, u := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(passwords[i]), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		v.credentials = append(v.credentials, credential{user: u, hash: hash})
	}
	return v, nil
}

// DefaultVerifier builds the demo credential table.
func DefaultVerifier(delay time.Duration) (*StaticVerifier, error) {
	users := []models.User{
		{ID: "1", Name: "Admin User", Email: "admin@boutique.com", Role: models.RoleAdmin},
		{ID: "2", Name: "Cashier User", Email: "cashier@boutique.com", Role: models.RoleCashier},
		{ID: "3", Name: "Manager User", Email: "manager@boutique.com", Role: models.RoleManager},
	}
	passwords := []string{"admin123", "cashier123", "manager123"}
	return NewStaticVerifier(users, passwords, delay)
}

// Verify does an exact email match then a bcrypt compare.
func (v *StaticVerifier) Verify(email, password string) (models.User, error) {
	if v.delay > 0 {
		time.Sleep(v.delay)
	}
	for _, c := range v.credentials {
		if c.user.Email != email {
			continue
		}
		if err := bcrypt.CompareHashAndPassword(c.hash, []byte(password)); err != nil {
			return models.User{}, ErrInvalidCredentials
		}
		return c.user, nil
	}
	return models.User{}, ErrInvalidCredentials
}

// Session holds the authenticated identity and mirrors it into the local
// store so a restart picks the login back up.
type Session struct {
	mu       sync.RWMutex
	verifier Verifier
	store    *localstore.Store
	user     *models.User
}

// NewSession restores any persisted identity.
func NewSession(verifier Verifier, store *localstore.Store) (*Session, error) {
	s := &Session{verifier: verifier, store: store}

	var saved models.User
	err := store.Load(sessionKey, &saved)
	switch {
	case err == nil:
		s.user = &saved
	case errors.Is(err, localstore.ErrNoValue):
	default:
		return nil, err
	}
	return s, nil
}

// Login verifies the credentials and persists the stripped identity.
func (s *Session) Login(email, password string) (models.User, error) {
	user, err := s.verifier.Verify(email, password)
	if err != nil {
		return models.User{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.store.Save(sessionKey, user); err != nil {
		return models.User{}, err
	}
	s.user = &user
	return user, nil
}

// Logout clears the persisted identity.
func (s *Session) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.store.Remove(sessionKey); err != nil {
		return err
	}
	s.user = nil
	return nil
}

// CurrentUser returns the logged-in identity, if any.
func (s *Session) CurrentUser() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return models.User{}, false
	}
	return *s.user, true
}

// Allowed is the single capability check used everywhere instead of scattered
// role string comparisons.
func Allowed(role models.Role, allowed ...models.Role) bool {
	for _, a := range allowed {
		if role == a {
			return true
		}
	}
	return false
}

// CanAccessReports gates the reports and settings sections, and the
// cashier-performance breakdown inside reports.
func CanAccessReports(role models.Role) bool {
	return Allowed(role, models.RoleAdmin, models.RoleManager)
}
