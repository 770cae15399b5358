package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atlaserp/backend/internal/core/ports"
	"github.com/atlaserp/backend/internal/domain"
	"github.com/atlaserp/backend/internal/infrastructure/logger"
)

func newTestIdentity(t *testing.T) *IdentityService {
	t.Helper()
	s, err := NewIdentityService(IdentityServiceConfig{
		Logger: logger.NewNop(),
		Bootstrap: BootstrapUser{
			Username:   "admin",
			Credential: "admin",
			Department: "HQ",
		},
	})
	require.NoError(t, err)
	return s
}

func TestAuthenticateResolveRoundtrip(t *testing.T) {
	identity := newTestIdentity(t)

	session, user, err := identity.Authenticate("admin", "admin")
	require.NoError(t, err)
	require.NotEmpty(t, session.Token)
	assert.Equal(t, "admin", session.Username)
	assert.Equal(t, domain.RoleAdmin, user.Role)
	assert.Len(t, user.GrantedModules, len(domain.Modules))

	resolved, err := identity.Resolve(session.Token)
	require.NoError(t, err)
	assert.Equal(t, user.Username, resolved.Username)
}

func TestAuthenticateRejectsBadCredentials(t *testing.T) {
	identity := newTestIdentity(t)

	tests := []struct {
		name     string
		username string
		password string
	}{
		{"wrong password", "admin", "nope"},
		{"unknown user", "ghost", "admin"},
		{"empty credential", "admin", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := identity.Authenticate(tt.username, tt.password)
			assert.ErrorIs(t, err, ErrInvalidCredentials)
		})
	}
}

func TestRevokeMakesTokenUnresolvable(t *testing.T) {
	identity := newTestIdentity(t)

	session, _, err := identity.Authenticate("admin", "admin")
	require.NoError(t, err)

	identity.Revoke(session.Token)

	_, err = identity.Resolve(session.Token)
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)

	// Idempotent: revoking again is not an error.
	identity.Revoke(session.Token)
	identity.Revoke("never-existed")
}

func TestResolveUnknownTokenIsUnauthenticated(t *testing.T) {
	identity := newTestIdentity(t)

	_, err := identity.Resolve("not-a-token")
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestCreateUserAppliesDefaults(t *testing.T) {
	identity := newTestIdentity(t)

	created, err := identity.CreateUser(ports.CreateUserInput{})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(created, "user-"), "generated username should carry the user- prefix")

	user, err := identity.GetUser(created)
	require.NoError(t, err)
	assert.Equal(t, []domain.ModuleKey{domain.ModuleOffice}, user.GrantedModules)
	assert.Equal(t, "General", user.Department)
	assert.Equal(t, domain.RoleUser, user.Role)

	// Default credential works for login.
	_, _, err = identity.Authenticate(created, "changeme")
	assert.NoError(t, err)
}

func TestCreateUserFiltersUnknownModules(t *testing.T) {
	identity := newTestIdentity(t)

	created, err := identity.CreateUser(ports.CreateUserInput{
		Username:   "bob",
		Credential: "secret",
		Modules:    []domain.ModuleKey{domain.ModuleFinance, "bogus", domain.ModuleHRM},
	})
	require.NoError(t, err)
	assert.Equal(t, "bob", created)

	user, err := identity.GetUser("bob")
	require.NoError(t, err)
	assert.Equal(t, []domain.ModuleKey{domain.ModuleFinance, domain.ModuleHRM}, user.GrantedModules)
}

func TestCreateUserRejectsDuplicateUsername(t *testing.T) {
	identity := newTestIdentity(t)

	_, err := identity.CreateUser(ports.CreateUserInput{Username: "carol", Credential: "pw"})
	require.NoError(t, err)

	_, err = identity.CreateUser(ports.CreateUserInput{Username: "carol", Credential: "pw"})
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestGrantModulesOverwrites(t *testing.T) {
	identity := newTestIdentity(t)

	_, err := identity.CreateUser(ports.CreateUserInput{
		Username:   "dave",
		Credential: "pw",
		Modules:    []domain.ModuleKey{domain.ModuleFinance, domain.ModuleHRM},
	})
	require.NoError(t, err)

	require.NoError(t, identity.GrantModules("dave", []domain.ModuleKey{domain.ModuleCRM}))

	user, err := identity.GetUser("dave")
	require.NoError(t, err)
	assert.Equal(t, []domain.ModuleKey{domain.ModuleCRM}, user.GrantedModules,
		"grant must overwrite, not union")

	assert.ErrorIs(t, identity.GrantModules("ghost", nil), ErrUserNotFound)
}

func TestResolvedUserIsDetachedCopy(t *testing.T) {
	identity := newTestIdentity(t)

	session, _, err := identity.Authenticate("admin", "admin")
	require.NoError(t, err)

	first, err := identity.Resolve(session.Token)
	require.NoError(t, err)
	first.GrantedModules[0] = "tampered"

	second, err := identity.Resolve(session.Token)
	require.NoError(t, err)
	assert.NotEqual(t, domain.ModuleKey("tampered"), second.GrantedModules[0])
}

func TestSessionTokensAreUnique(t *testing.T) {
	identity := newTestIdentity(t)

	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		session, _, err := identity.Authenticate("admin", "admin")
		require.NoError(t, err)
		_, dup := seen[session.Token]
		require.False(t, dup, "token collision")
		seen[session.Token] = struct{}{}
	}
}
