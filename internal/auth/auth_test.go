package auth

import (
	"testing"

	"boutique-pos/internal/localstore"
	"boutique-pos/internal/models"

	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T) (*Session, *localstore.Store) {
	t.Helper()
	ls, err := localstore.Open(t.TempDir())
	require.NoError(t, err)
	verifier, err := DefaultVerifier(0) // no simulated latency in tests
	require.NoError(t, err)
	s, err := NewSession(verifier, ls)
	require.NoError(t, err)
	return s, ls
}

func TestLoginSuccess(t *testing.T) {
	s, ls := newTestSession(t)

	user, err := s.Login("admin@boutique.com", "admin123")
	require.NoError(t, err)
	require.Equal(t, models.RoleAdmin, user.Role)
	require.Equal(t, "Admin User", user.Name)

	current, ok := s.CurrentUser()
	require.True(t, ok)
	require.Equal(t, user, current)

	// identity is persisted, and the blob carries no password field
	var saved map[string]any
	require.NoError(t, ls.Load("boutiqueUser", &saved))
	require.Equal(t, "admin@boutique.com", saved["email"])
	require.NotContains(t, saved, "password")
}

func TestLoginInvalidCredentials(t *testing.T) {
	s, _ := newTestSession(t)

	_, err := s.Login("admin@boutique.com", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = s.Login("nobody@boutique.com", "admin123")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, ok := s.CurrentUser()
	require.False(t, ok)
}

func TestLogoutClearsPersistedIdentity(t *testing.T) {
	s, ls := newTestSession(t)

	_, err := s.Login("cashier@boutique.com", "cashier123")
	require.NoError(t, err)
	require.NoError(t, s.Logout())

	_, ok := s.CurrentUser()
	require.False(t, ok)

	var saved models.User
	require.ErrorIs(t, ls.Load("boutiqueUser", &saved), localstore.ErrNoValue)
}

func TestSessionRestoredFromStore(t *testing.T) {
	ls, err := localstore.Open(t.TempDir())
	require.NoError(t, err)
	verifier, err := DefaultVerifier(0)
	require.NoError(t, err)

	s1, err := NewSession(verifier, ls)
	require.NoError(t, err)
	_, err = s1.Login("manager@boutique.com", "manager123")
	require.NoError(t, err)

	// a fresh session over the same store picks the login back up
	s2, err := NewSession(verifier, ls)
	require.NoError(t, err)
	user, ok := s2.CurrentUser()
	require.True(t, ok)
	require.Equal(t, models.RoleManager, user.Role)
}

func TestAllowed(t *testing.T) {
	cases := []struct {
		role    models.Role
		allowed []models.Role
		want    bool
	}{
		{models.RoleAdmin, []models.Role{models.RoleAdmin, models.RoleManager}, true},
		{models.RoleManager, []models.Role{models.RoleAdmin, models.RoleManager}, true},
		{models.RoleCashier, []models.Role{models.RoleAdmin, models.RoleManager}, false},
		{models.RoleCashier, []models.Role{models.RoleCashier}, true},
		{models.RoleAdmin, nil, false},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, Allowed(tc.role, tc.allowed...), "role %s vs %v", tc.role, tc.allowed)
	}
}

func TestCanAccessReports(t *testing.T) {
	require.True(t, CanAccessReports(models.RoleAdmin))
	require.True(t, CanAccessReports(models.RoleManager))
	require.False(t, CanAccessReports(models.RoleCashier))
}

func TestTokenRoundTrip(t *testing.T) {
	user := models.User{ID: "3", Name: "Manager User", Email: "manager@boutique.com", Role: models.RoleManager}

	token, err := GenerateToken(user)
	require.NoError(t, err)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	require.Equal(t, "3", claims.UserID)
	require.Equal(t, "Manager User", claims.Name)
	require.Equal(t, models.RoleManager, claims.Role)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	_, err := ValidateToken("not-a-token")
	require.Error(t, err)
}
