package user

import "fmt"

// UserCreateRequest is the payload for creating a back-office account.
type UserCreateRequest struct {
	Name   string   `json:"name" validate:"required,min=1,max=255"`
	Email  string   `json:"email" validate:"required,email"`
	Roles  []string `json:"roles" validate:"required,min=1"`
	Status string   `json:"status" validate:"omitempty"`
}

func (r UserCreateRequest) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("name is required")
	}
	if r.Email == "" {
		return fmt.Errorf("email is required")
	}
	if len(r.Roles) == 0 {
		return fmt.Errorf("at least one role is required")
	}
	return nil
}

// UserUpdateRequest is the full-replace payload for an existing account.
type UserUpdateRequest struct {
	Name   string   `json:"name" validate:"required,min=1,max=255"`
	Email  string   `json:"email" validate:"required,email"`
	Roles  []string `json:"roles" validate:"required,min=1"`
	Status string   `json:"status" validate:"required"`
}

func (r UserUpdateRequest) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("name is required")
	}
	if r.Email == "" {
		return fmt.Errorf("email is required")
	}
	if len(r.Roles) == 0 {
		return fmt.Errorf("at least one role is required")
	}
	return nil
}
