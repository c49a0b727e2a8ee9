package store

import (
	"context"
	"testing"

	"travelplans/models/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUserDefaultsToActive(t *testing.T) {
	s := New()

	created, err := s.CreateUser(context.Background(), NewUser{
		Name:  "Meera",
		Email: "meera@travelplans.fun",
		Roles: []user.Role{user.RoleAgent},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, user.StatusActive, created.Status)

	stored, found := s.FindUserByID(created.ID)
	require.True(t, found)
	assert.Equal(t, created, stored)
}

func TestCreateUserRejectsEmptyRoleSet(t *testing.T) {
	s := New()

	_, err := s.CreateUser(context.Background(), NewUser{
		Name:  "Meera",
		Email: "meera@travelplans.fun",
	})
	require.ErrorIs(t, err, ErrNoRoles)
	assert.Empty(t, s.Read().Users)
}

func TestCreateUserRejectsUnknownRole(t *testing.T) {
	s := New()

	_, err := s.CreateUser(context.Background(), NewUser{
		Name:  "Meera",
		Email: "meera@travelplans.fun",
		Roles: []user.Role{"superuser"},
	})
	require.ErrorIs(t, err, ErrValidation)
}

func TestCreateUserRejectsDuplicateEmail(t *testing.T) {
	s := Seed()
	before := len(s.Read().Users)

	// The comparison ignores case, like FindUserByEmail does.
	_, err := s.CreateUser(context.Background(), NewUser{
		Name:  "Second Suresh",
		Email: "SURESH@travelplans.fun",
		Roles: []user.Role{user.RoleAgent},
	})
	require.ErrorIs(t, err, ErrValidation)
	assert.Len(t, s.Read().Users, before)
}

func TestUpdateUserRejectsDuplicateEmail(t *testing.T) {
	s := Seed()
	u, found := s.FindUserByID("user-agent-2")
	require.True(t, found)

	u.Email = "suresh@travelplans.fun"
	require.ErrorIs(t, s.UpdateUser(context.Background(), u), ErrValidation)

	// Keeping the account's own email is not a collision.
	u, _ = s.FindUserByID("user-agent-2")
	u.Name = "Sameer K"
	require.NoError(t, s.UpdateUser(context.Background(), u))
}

func TestUpdateUserRevalidatesRoles(t *testing.T) {
	s := New()
	created, err := s.CreateUser(context.Background(), NewUser{
		Name:  "Meera",
		Email: "meera@travelplans.fun",
		Roles: []user.Role{user.RoleAgent},
	})
	require.NoError(t, err)

	created.Roles = nil
	require.ErrorIs(t, s.UpdateUser(context.Background(), created), ErrNoRoles)

	created.Roles = []user.Role{user.RoleAdmin}
	created.Name = "Meera K"
	require.NoError(t, s.UpdateUser(context.Background(), created))

	stored, found := s.FindUserByID(created.ID)
	require.True(t, found)
	assert.Equal(t, "Meera K", stored.Name)
	assert.Equal(t, []user.Role{user.RoleAdmin}, stored.Roles)
}

func TestUpdateUserUnknownID(t *testing.T) {
	s := New()
	err := s.UpdateUser(context.Background(), user.User{
		ID:     "user-missing",
		Roles:  []user.Role{user.RoleAgent},
		Status: user.StatusActive,
	})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestToggleUserStatus(t *testing.T) {
	s := Seed()

	require.NoError(t, s.ToggleUserStatus(context.Background(), "user-agent-1"))
	u, found := s.FindUserByID("user-agent-1")
	require.True(t, found)
	assert.Equal(t, user.StatusSuspended, u.Status)

	require.NoError(t, s.ToggleUserStatus(context.Background(), "user-agent-1"))
	u, _ = s.FindUserByID("user-agent-1")
	assert.Equal(t, user.StatusActive, u.Status)

	require.ErrorIs(t, s.ToggleUserStatus(context.Background(), "user-missing"), ErrNotFound)
}

func TestDeleteUser(t *testing.T) {
	s := Seed()
	before := len(s.Read().Users)

	require.NoError(t, s.DeleteUser(context.Background(), "user-agent-2"))
	assert.Len(t, s.Read().Users, before-1)
	_, found := s.FindUserByID("user-agent-2")
	assert.False(t, found)

	require.ErrorIs(t, s.DeleteUser(context.Background(), "user-agent-2"), ErrNotFound)
}

func TestFindUserByEmailIsCaseInsensitive(t *testing.T) {
	s := Seed()

	u, found := s.FindUserByEmail("SURESH@travelplans.fun")
	require.True(t, found)
	assert.Equal(t, "user-admin-1", u.ID)

	_, found = s.FindUserByEmail("nobody@travelplans.fun")
	assert.False(t, found)
}

func TestReadSnapshotIsolation(t *testing.T) {
	s := Seed()
	before := s.Read()
	usersBefore := len(before.Users)

	_, err := s.CreateUser(context.Background(), NewUser{
		Name:  "Meera",
		Email: "meera@travelplans.fun",
		Roles: []user.Role{user.RoleAgent},
	})
	require.NoError(t, err)

	// The snapshot taken before the write must not observe the new user.
	assert.Len(t, before.Users, usersBefore)
	assert.Len(t, s.Read().Users, usersBefore+1)
}
