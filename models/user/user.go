package user

// User is a back-office login account. A user may hold several roles at
// once; data access is the union of the held roles while navigation is
// resolved by priority (see services/navigation).
type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Roles  []Role `json:"roles"`
	Status Status `json:"status"`
}

// HasRole reports whether the user holds the given role.
func (u User) HasRole(role Role) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// IsAdmin reports whether the user holds the admin role.
func (u User) IsAdmin() bool {
	return u.HasRole(RoleAdmin)
}

// RoleStrings returns the role set as plain strings, for JWT claims.
func (u User) RoleStrings() []string {
	roles := make([]string, 0, len(u.Roles))
	for _, r := range u.Roles {
		roles = append(roles, r.String())
	}
	return roles
}
