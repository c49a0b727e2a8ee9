package user

import "travelplans/constants"

// Role identifies a portal a user can act in.
type Role string

const (
	RoleAdmin               Role = constants.RoleAdmin
	RoleAgent               Role = constants.RoleAgent
	RoleRelationshipManager Role = constants.RoleRelationshipManager
	RoleCustomer            Role = constants.RoleCustomer
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleAgent, RoleRelationshipManager, RoleCustomer:
		return true
	default:
		return false
	}
}

// GetAllRoles returns every valid role.
func GetAllRoles() []Role {
	return []Role{RoleAdmin, RoleAgent, RoleRelationshipManager, RoleCustomer}
}

// Status is the account lifecycle state.
type Status string

const (
	StatusActive    Status = "Active"
	StatusSuspended Status = "Suspended"
	StatusPending   Status = "Pending"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusSuspended, StatusPending:
		return true
	default:
		return false
	}
}
