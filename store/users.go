package store

import (
	"context"
	"fmt"
	"strings"

	"travelplans/models/user"
)

// NewUser is the creation input for a user account.
type NewUser struct {
	Name   string
	Email  string
	Roles  []user.Role
	Status user.Status
}

func validateRoles(roles []user.Role) error {
	if len(roles) == 0 {
		return ErrNoRoles
	}
	for _, r := range roles {
		if !r.IsValid() {
			return fmt.Errorf("%w: unknown role %q", ErrValidation, r)
		}
	}
	return nil
}

func validateEmail(email string) error {
	if !strings.Contains(email, "@") {
		return fmt.Errorf("%w: malformed email %q", ErrValidation, email)
	}
	return nil
}

// emailTaken reports whether another account already claims the email.
// Comparison is case-insensitive; exceptID skips the record being updated.
// Callers must hold s.mu.
func emailTaken(users []user.User, email, exceptID string) bool {
	for _, u := range users {
		if u.ID != exceptID && strings.EqualFold(u.Email, email) {
			return true
		}
	}
	return false
}

// CreateUser assigns a fresh id and stores the user. Status defaults to
// Active; an empty role set or an email already held by another account
// is rejected.
func (s *Store) CreateUser(ctx context.Context, input NewUser) (user.User, error) {
	if err := validateRoles(input.Roles); err != nil {
		return user.User{}, err
	}
	if err := validateEmail(input.Email); err != nil {
		return user.User{}, err
	}

	status := input.Status
	if status == "" {
		status = user.StatusActive
	}
	if !status.IsValid() {
		return user.User{}, fmt.Errorf("%w: unknown status %q", ErrValidation, status)
	}

	newUser := user.User{
		ID:     newID("user"),
		Name:   input.Name,
		Email:  input.Email,
		Roles:  append([]user.Role(nil), input.Roles...),
		Status: status,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if emailTaken(s.snap.Users, newUser.Email, "") {
		return user.User{}, fmt.Errorf("%w: email %q is already in use", ErrValidation, newUser.Email)
	}
	snap := *s.snap
	snap.Users = append(append([]user.User(nil), snap.Users...), newUser)
	s.publish(snap)
	return newUser, nil
}

// UpdateUser replaces the stored record with the same id. The role set is
// re-validated here too, not only at creation.
func (s *Store) UpdateUser(ctx context.Context, updated user.User) error {
	if err := validateRoles(updated.Roles); err != nil {
		return err
	}
	if !updated.Status.IsValid() {
		return fmt.Errorf("%w: unknown status %q", ErrValidation, updated.Status)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if emailTaken(s.snap.Users, updated.Email, updated.ID) {
		return fmt.Errorf("%w: email %q is already in use", ErrValidation, updated.Email)
	}
	users, found := replaceUser(s.snap.Users, updated)
	if !found {
		return ErrNotFound
	}
	snap := *s.snap
	snap.Users = users
	s.publish(snap)
	return nil
}

// ToggleUserStatus flips Active and Suspended; a Pending account is
// activated.
func (s *Store) ToggleUserStatus(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.snap.Users {
		if u.ID != id {
			continue
		}
		switch u.Status {
		case user.StatusActive:
			u.Status = user.StatusSuspended
		default:
			u.Status = user.StatusActive
		}
		users, _ := replaceUser(s.snap.Users, u)
		snap := *s.snap
		snap.Users = users
		s.publish(snap)
		return nil
	}
	return ErrNotFound
}

// DeleteUser removes the account entirely.
func (s *Store) DeleteUser(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := make([]user.User, 0, len(s.snap.Users))
	found := false
	for _, u := range s.snap.Users {
		if u.ID == id {
			found = true
			continue
		}
		users = append(users, u)
	}
	if !found {
		return ErrNotFound
	}
	snap := *s.snap
	snap.Users = users
	s.publish(snap)
	return nil
}

// FindUserByEmail scans the user table with a case-insensitive match.
func (s *Store) FindUserByEmail(email string) (user.User, bool) {
	snap := s.Read()
	for _, u := range snap.Users {
		if strings.EqualFold(u.Email, email) {
			return u, true
		}
	}
	return user.User{}, false
}

// FindUserByID scans the user table by id.
func (s *Store) FindUserByID(id string) (user.User, bool) {
	snap := s.Read()
	for _, u := range snap.Users {
		if u.ID == id {
			return u, true
		}
	}
	return user.User{}, false
}

func replaceUser(users []user.User, updated user.User) ([]user.User, bool) {
	out := make([]user.User, len(users))
	found := false
	for i, u := range users {
		if u.ID == updated.ID {
			out[i] = updated
			found = true
		} else {
			out[i] = u
		}
	}
	return out, found
}
