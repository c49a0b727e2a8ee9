package navigation

import (
	"testing"

	"travelplans/models/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func paths(links []NavLink) []string {
	out := make([]string, len(links))
	for i, l := range links {
		out[i] = l.Path
	}
	return out
}

func TestForAdmin(t *testing.T) {
	links := For([]user.Role{user.RoleAdmin})
	assert.Equal(t, []string{"/", "/users", "/customers", "/itineraries", "/bookings", "/compliance", "/documents"}, paths(links))
}

func TestForAgent(t *testing.T) {
	links := For([]user.Role{user.RoleAgent})
	assert.Equal(t, []string{"/", "/customers", "/itineraries", "/bookings"}, paths(links))
}

func TestForRelationshipManager(t *testing.T) {
	links := For([]user.Role{user.RoleRelationshipManager})
	assert.Equal(t, []string{"/", "/customers"}, paths(links))
}

func TestForCustomer(t *testing.T) {
	links := For([]user.Role{user.RoleCustomer})
	require.Len(t, links, 2)
	assert.Equal(t, "My Dashboard", links[0].Label)
	assert.Equal(t, []string{"/", "/documents"}, paths(links))
}

// A multi-role principal gets the single highest-priority set, never a
// union.
func TestForMultiRolePriority(t *testing.T) {
	both := For([]user.Role{user.RoleCustomer, user.RoleAdmin})
	assert.Equal(t, For([]user.Role{user.RoleAdmin}), both)

	agentRM := For([]user.Role{user.RoleRelationshipManager, user.RoleAgent})
	assert.Equal(t, For([]user.Role{user.RoleAgent}), agentRM)
}

func TestForNoRoles(t *testing.T) {
	links := For(nil)
	assert.NotNil(t, links)
	assert.Empty(t, links)
}
