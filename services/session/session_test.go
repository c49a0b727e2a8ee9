package session

import (
	"context"
	"testing"

	"travelplans/constants"
	"travelplans/middleware"
	"travelplans/models/user"
	"travelplans/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *Service {
	t.Setenv(constants.EnvJWTSecret, "test-secret")
	t.Setenv(constants.EnvDemoPassword, "")
	return New(store.Seed())
}

func TestLoginSuccess(t *testing.T) {
	svc := newTestService(t)
	assert.Equal(t, StateUnauthenticated, svc.State())

	principal, token, err := svc.Login(context.Background(), "suresh@travelplans.fun", constants.DefaultDemoPassword)
	require.NoError(t, err)
	assert.Equal(t, "user-admin-1", principal.ID)
	assert.NotEmpty(t, token)
	assert.Equal(t, StateAuthenticated, svc.State())

	got, ok := svc.Principal()
	require.True(t, ok)
	assert.Equal(t, principal, got)
}

func TestLoginIsCaseInsensitiveOnEmail(t *testing.T) {
	svc := newTestService(t)

	principal, _, err := svc.Login(context.Background(), "SURESH@TravelPlans.fun", constants.DefaultDemoPassword)
	require.NoError(t, err)
	assert.Equal(t, "user-admin-1", principal.ID)
}

// Unknown email and wrong password must be indistinguishable to the
// caller.
func TestLoginFailureParity(t *testing.T) {
	svc := newTestService(t)

	_, _, unknownErr := svc.Login(context.Background(), "nobody@travelplans.fun", constants.DefaultDemoPassword)
	require.ErrorIs(t, unknownErr, ErrInvalidCredentials)

	_, _, wrongErr := svc.Login(context.Background(), "suresh@travelplans.fun", "wrong")
	require.ErrorIs(t, wrongErr, ErrInvalidCredentials)

	assert.Equal(t, unknownErr.Error(), wrongErr.Error())
	assert.Equal(t, StateFailed, svc.State())
	_, ok := svc.Principal()
	assert.False(t, ok)
}

func TestLoginRejectsSuspendedAccount(t *testing.T) {
	t.Setenv(constants.EnvJWTSecret, "test-secret")
	t.Setenv(constants.EnvDemoPassword, "")
	s := store.Seed()
	require.NoError(t, s.ToggleUserStatus(context.Background(), "user-agent-2"))
	svc := New(s)

	_, _, err := svc.Login(context.Background(), "sameer@agent.com", constants.DefaultDemoPassword)
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogoutClearsPrincipal(t *testing.T) {
	svc := newTestService(t)
	_, _, err := svc.Login(context.Background(), "arjun@travelplans.fun", constants.DefaultDemoPassword)
	require.NoError(t, err)

	svc.Logout()
	assert.Equal(t, StateUnauthenticated, svc.State())
	_, ok := svc.Principal()
	assert.False(t, ok)
}

func TestIssuedTokenCarriesClaims(t *testing.T) {
	svc := newTestService(t)

	token, err := svc.IssueToken(user.User{
		ID:    "user-agent-1",
		Name:  "Arjun",
		Email: "arjun@travelplans.fun",
		Roles: []user.Role{user.RoleAgent, user.RoleRelationshipManager},
	})
	require.NoError(t, err)

	claims, err := middleware.VerifyJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "user-agent-1", claims["sub"])
	assert.Equal(t, "arjun@travelplans.fun", claims["email"])

	roles := middleware.RolesFromClaims(claims)
	assert.True(t, roles[constants.RoleAgent])
	assert.True(t, roles[constants.RoleRelationshipManager])
	assert.False(t, roles[constants.RoleAdmin])
}

func TestCustomDemoPassword(t *testing.T) {
	t.Setenv(constants.EnvJWTSecret, "test-secret")
	t.Setenv(constants.EnvDemoPassword, "hunter2")
	svc := New(store.Seed())

	_, _, err := svc.Login(context.Background(), "suresh@travelplans.fun", constants.DefaultDemoPassword)
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login(context.Background(), "suresh@travelplans.fun", "hunter2")
	require.NoError(t, err)
}
