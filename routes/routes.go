package routes

import (
	"travelplans/constants"
	"travelplans/controllers/auth"
	"travelplans/controllers/booking"
	"travelplans/controllers/compliance"
	"travelplans/controllers/customer"
	"travelplans/controllers/itinerary"
	"travelplans/controllers/user"
	"travelplans/logger"
	"travelplans/middleware"
	"travelplans/services/ai"
	"travelplans/services/session"
	"travelplans/store"
	"travelplans/types"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, s *store.Store, db *gorm.DB) {
	sessions := session.New(s)
	assistant := ai.FromEnv()
	asyncLogger := logger.NewAsyncLogger(db)

	authController := auth.NewAuthController(s, sessions, asyncLogger)
	userController := user.NewUserController(s, asyncLogger)
	itineraryController := itinerary.NewItineraryController(s, asyncLogger)
	customerController := customer.NewCustomerController(s, assistant, asyncLogger)
	bookingController := booking.NewBookingController(s, asyncLogger)
	complianceController := compliance.NewComplianceController(s, assistant, asyncLogger)

	// Start the async logger processing goroutine
	go asyncLogger.ProcessLog()

	// Index route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
			Message: "Travel plans API is running",
			Status:  fiber.StatusOK,
		})
	})

	/*=============================================================================
	| Public Routes
	===============================================================================*/
	api := app.Group("/api")
	api.Post("/login", authController.Login)

	/*=============================================================================
	| Session Routes
	===============================================================================*/
	authGroup := api.Group("/auth").Use(middleware.RequireAuthentication())
	authGroup.Get("/profile", authController.Profile)
	authGroup.Get("/navigation", authController.Navigation)
	authGroup.Post("/logout", authController.LogOut)

	/*=============================================================================
	| User Management Routes (admin only)
	===============================================================================*/
	userGroup := api.Group("/users").Use(middleware.RequireRoles(constants.RoleAdmin))
	userGroup.Get("/", userController.Index)
	userGroup.Post("/", userController.Store)
	userGroup.Put("/:id", userController.Update)
	userGroup.Patch("/:id/toggle-status", userController.ToggleStatus)
	userGroup.Delete("/:id", userController.Destroy)

	/*=============================================================================
	| Itinerary Routes
	===============================================================================*/
	itineraryGroup := api.Group("/itineraries").Use(middleware.RequireRoles(
		constants.RoleAdmin,
		constants.RoleAgent,
	))
	itineraryGroup.Get("/", itineraryController.Index)
	itineraryGroup.Get("/:id", itineraryController.Show)
	itineraryGroup.Post("/", itineraryController.Store)
	itineraryGroup.Put("/:id", itineraryController.Update)
	itineraryGroup.Delete("/:id", itineraryController.Destroy)

	itineraryGroup.Post("/:id/collaterals", itineraryController.AddCollateral)
	itineraryGroup.Put("/:id/collaterals/:collateralId", itineraryController.UpdateCollateral)
	itineraryGroup.Delete("/:id/collaterals/:collateralId", itineraryController.DeleteCollateral)

	/*=============================================================================
	| Customer Routes
	===============================================================================*/
	// Staff manage the roster; customers reach their own record, its
	// documents and recommendations, scoped inside the handlers.
	customerStaff := middleware.RequireRoles(
		constants.RoleAdmin,
		constants.RoleAgent,
		constants.RoleRelationshipManager,
	)
	customerSelf := middleware.RequireRoles(
		constants.RoleAdmin,
		constants.RoleAgent,
		constants.RoleRelationshipManager,
		constants.RoleCustomer,
	)
	customerGroup := api.Group("/customers")
	customerGroup.Get("/", customerStaff, customerController.Index)
	customerGroup.Get("/documents/roster", customerSelf, customerController.DocumentsRoster)
	customerGroup.Get("/:id", customerSelf, customerController.Show)
	customerGroup.Post("/", customerStaff, customerController.Store)
	customerGroup.Put("/:id", customerStaff, customerController.Update)
	customerGroup.Delete("/:id", customerStaff, customerController.Destroy)

	customerGroup.Post("/:id/documents", customerSelf, customerController.AddDocument)
	customerGroup.Post("/:id/documents/:docId/verify", customerSelf, customerController.VerifyDocument)
	customerGroup.Get("/:id/summary", customerStaff, customerController.Summary)
	customerGroup.Get("/:id/recommendations", customerSelf, customerController.Recommendations)

	/*=============================================================================
	| Booking Routes
	===============================================================================*/
	bookingGroup := api.Group("/bookings").Use(middleware.RequireRoles(
		constants.RoleAdmin,
		constants.RoleAgent,
	))
	bookingGroup.Get("/", bookingController.Index)
	bookingGroup.Get("/counts", bookingController.Counts)
	bookingGroup.Post("/", bookingController.Store)
	bookingGroup.Put("/:id", bookingController.Update)
	bookingGroup.Delete("/:id", bookingController.Destroy)

	/*=============================================================================
	| Compliance Routes (admin only)
	===============================================================================*/
	complianceGroup := api.Group("/compliance").Use(middleware.RequireRoles(constants.RoleAdmin))
	complianceGroup.Get("/pending", complianceController.Pending)
	complianceGroup.Post("/:itineraryId/collaterals/:collateralId/approve", complianceController.Approve)
	complianceGroup.Post("/:itineraryId/collaterals/:collateralId/reject", complianceController.Reject)
	complianceGroup.Post("/:itineraryId/collaterals/:collateralId/review", complianceController.Review)
}
