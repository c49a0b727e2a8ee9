package navigation

import (
	"travelplans/constants"
	"travelplans/models/user"
)

// NavLink is one sidebar entry in the portal the principal lands in.
type NavLink struct {
	Label string `json:"label"`
	Path  string `json:"path"`
}

// For resolves the navigation set for a role set. Roles are evaluated
// against a fixed priority order, admin > agent > relationship manager >
// customer, and the first held role decides the whole set: navigation is
// never the union across roles, only data access is. A principal with both
// admin and customer roles therefore sees the admin navigation exclusively.
// An empty role set yields an empty list, which callers must treat as
// "no access" rather than an error.
func For(roles []user.Role) []NavLink {
	hold := make(map[user.Role]bool, len(roles))
	for _, r := range roles {
		hold[r] = true
	}

	switch {
	case hold[user.RoleAdmin]:
		return []NavLink{
			{Label: "Dashboard", Path: constants.PathDashboard},
			{Label: "User Management", Path: constants.PathUsers},
			{Label: "All Customers", Path: constants.PathCustomers},
			{Label: "Itineraries", Path: constants.PathItineraries},
			{Label: "Bookings", Path: constants.PathBookings},
			{Label: "Compliance", Path: constants.PathCompliance},
			{Label: "Documents", Path: constants.PathDocuments},
		}
	case hold[user.RoleAgent]:
		return []NavLink{
			{Label: "Dashboard", Path: constants.PathDashboard},
			{Label: "All Customers", Path: constants.PathCustomers},
			{Label: "Itineraries", Path: constants.PathItineraries},
			{Label: "Bookings", Path: constants.PathBookings},
		}
	case hold[user.RoleRelationshipManager]:
		return []NavLink{
			{Label: "Dashboard", Path: constants.PathDashboard},
			{Label: "All Customers", Path: constants.PathCustomers},
		}
	case hold[user.RoleCustomer]:
		return []NavLink{
			{Label: "My Dashboard", Path: constants.PathDashboard},
			{Label: "Documents", Path: constants.PathDocuments},
		}
	default:
		return []NavLink{}
	}
}
