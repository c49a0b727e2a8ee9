package constants

// Portal roles
const (
	RoleAdmin               = "admin"
	RoleAgent               = "agent"
	RoleRelationshipManager = "relationship_manager"
	RoleCustomer            = "customer"

	// Special role matcher: any authenticated principal
	RoleAny = "any"
)

// Navigation paths consumed by the front-end router. The navigation
// service must emit these literal values.
const (
	PathDashboard   = "/"
	PathUsers       = "/users"
	PathCustomers   = "/customers"
	PathItineraries = "/itineraries"
	PathBookings    = "/bookings"
	PathCompliance  = "/compliance"
	PathDocuments   = "/documents"
)

// Environment keys for the demo auth setup
const (
	EnvJWTSecret    = "JWT_SECRET"
	EnvDemoPassword = "DEMO_PASSWORD"

	// Shared credential for every seeded account when DEMO_PASSWORD is unset
	DefaultDemoPassword = "password123"
)
