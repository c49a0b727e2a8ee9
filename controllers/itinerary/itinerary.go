package itinerary

import (
	"errors"

	"travelplans/constants"
	"travelplans/logger"
	"travelplans/middleware"
	itineraryModel "travelplans/models/itinerary"
	"travelplans/services/aggregate"
	"travelplans/store"
	"travelplans/types"
	itineraryTypes "travelplans/types/itinerary"
	"travelplans/utils"

	"github.com/gofiber/fiber/v2"
)

// ItineraryController handles itinerary and collateral management.
type ItineraryController struct {
	store          *store.Store
	loggerInstance *logger.AsyncLogger
}

func NewItineraryController(s *store.Store, asyncLogger *logger.AsyncLogger) *ItineraryController {
	return &ItineraryController{store: s, loggerInstance: asyncLogger}
}

// Index lists itineraries. An admin sees everything; an agent sees the
// ones assigned to them plus every unassigned one.
func (ic *ItineraryController) Index(c *fiber.Ctx) error {
	snap := ic.store.Read()
	itins := snap.Itineraries

	roles := middleware.PrincipalRoles(c)
	if !roles[constants.RoleAdmin] && roles[constants.RoleAgent] {
		if agentID, ok := middleware.PrincipalID(c); ok {
			itins = aggregate.ItinerariesVisibleToAgent(agentID, itins)
		}
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Itineraries fetched successfully",
		Status:  fiber.StatusOK,
		Data:    itins,
	})
}

// Show returns one itinerary with its booking counts.
func (ic *ItineraryController) Show(c *fiber.Ctx) error {
	id := c.Params("id")
	it, found := ic.store.FindItineraryByID(id)
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
			Message: "Itinerary not found",
			Status:  fiber.StatusNotFound,
		})
	}

	snap := ic.store.Read()
	counts := aggregate.BookingCountsByItinerary(snap.Itineraries, snap.Bookings)

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Itinerary fetched successfully",
		Status:  fiber.StatusOK,
		Data: fiber.Map{
			"itinerary":     it,
			"bookingCounts": counts[it.ID],
		},
	})
}

// Store creates a new itinerary.
func (ic *ItineraryController) Store(c *fiber.Ctx) error {
	var req itineraryTypes.ItineraryCreateRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "Invalid request body",
			Status:  fiber.StatusBadRequest,
		})
	}
	if err := req.Validate(); err != nil {
		logger.Error(err.Error(), nil)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: err.Error(),
			Status:  fiber.StatusBadRequest,
		})
	}

	created, err := ic.store.CreateItinerary(c.Context(), store.NewItinerary{
		Title:           req.Title,
		Destination:     req.Destination,
		Duration:        req.Duration,
		Price:           req.Price,
		Description:     req.Description,
		ImageURL:        req.ImageURL,
		AssignedAgentID: req.AssignedAgentID,
	})
	if err != nil {
		return ic.storeError(c, "Failed to create itinerary", err)
	}

	logger.Success("Itinerary created successfully. id: " + created.ID)
	return ic.sendResponseWithLog(c, fiber.StatusCreated, types.ApiResponse{
		Message: "Itinerary created successfully",
		Status:  fiber.StatusCreated,
		Data:    created,
	})
}

// Update replaces an itinerary by id. Collaterals are managed through
// their own endpoints, so a payload that omits them keeps the stored
// list instead of wiping it.
func (ic *ItineraryController) Update(c *fiber.Ctx) error {
	id := c.Params("id")

	existing, found := ic.store.FindItineraryByID(id)
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
			Message: "Itinerary not found",
			Status:  fiber.StatusNotFound,
		})
	}

	var updated itineraryModel.Itinerary
	if err := c.BodyParser(&updated); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "Invalid request body",
			Status:  fiber.StatusBadRequest,
		})
	}
	updated.ID = id
	if updated.Collaterals == nil {
		updated.Collaterals = existing.Collaterals
	}

	if err := ic.store.UpdateItinerary(c.Context(), updated); err != nil {
		return ic.storeError(c, "Failed to update itinerary", err)
	}

	return ic.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Message: "Itinerary updated successfully",
		Status:  fiber.StatusOK,
		Data:    updated,
	})
}

// Destroy removes an itinerary and its collaterals.
func (ic *ItineraryController) Destroy(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := ic.store.DeleteItinerary(c.Context(), id); err != nil {
		return ic.storeError(c, "Failed to delete itinerary", err)
	}

	return ic.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Message: "Itinerary deleted successfully",
		Status:  fiber.StatusOK,
	})
}

// AddCollateral attaches a collateral to an itinerary. Assets created by
// an admin skip the compliance queue.
func (ic *ItineraryController) AddCollateral(c *fiber.Ctx) error {
	itineraryID := c.Params("id")

	var req itineraryTypes.CollateralCreateRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "Invalid request body",
			Status:  fiber.StatusBadRequest,
		})
	}
	if err := req.Validate(); err != nil {
		logger.Error(err.Error(), nil)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: err.Error(),
			Status:  fiber.StatusBadRequest,
		})
	}

	creatorIsAdmin := middleware.PrincipalRoles(c)[constants.RoleAdmin]
	created, err := ic.store.AddCollateral(c.Context(), itineraryID, store.NewCollateral{
		Name: req.Name,
		Type: itineraryModel.CollateralType(req.Type),
		URL:  req.URL,
	}, creatorIsAdmin)
	if err != nil {
		return ic.storeError(c, "Failed to add collateral", err)
	}

	return ic.sendResponseWithLog(c, fiber.StatusCreated, types.ApiResponse{
		Message: "Collateral added successfully",
		Status:  fiber.StatusCreated,
		Data:    created,
	})
}

// UpdateCollateral merges a patch into one collateral.
func (ic *ItineraryController) UpdateCollateral(c *fiber.Ctx) error {
	itineraryID := c.Params("id")
	collateralID := c.Params("collateralId")

	var req itineraryTypes.CollateralUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "Invalid request body",
			Status:  fiber.StatusBadRequest,
		})
	}

	patch := store.CollateralPatch{
		Name:     req.Name,
		URL:      req.URL,
		Approved: req.Approved,
	}
	if req.Type != nil {
		t := itineraryModel.CollateralType(*req.Type)
		patch.Type = &t
	}

	if err := ic.store.UpdateCollateral(c.Context(), itineraryID, collateralID, patch); err != nil {
		return ic.storeError(c, "Failed to update collateral", err)
	}

	return ic.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Message: "Collateral updated successfully",
		Status:  fiber.StatusOK,
	})
}

// DeleteCollateral removes a collateral from an itinerary.
func (ic *ItineraryController) DeleteCollateral(c *fiber.Ctx) error {
	itineraryID := c.Params("id")
	collateralID := c.Params("collateralId")

	if err := ic.store.DeleteCollateral(c.Context(), itineraryID, collateralID); err != nil {
		return ic.storeError(c, "Failed to delete collateral", err)
	}

	return ic.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Message: "Collateral deleted successfully",
		Status:  fiber.StatusOK,
	})
}

func (ic *ItineraryController) storeError(c *fiber.Ctx, message string, err error) error {
	logger.Error(message, err)
	status := fiber.StatusInternalServerError
	if errors.Is(err, store.ErrNotFound) {
		status = fiber.StatusNotFound
	} else if errors.Is(err, store.ErrValidation) {
		status = fiber.StatusBadRequest
	}
	return c.Status(status).JSON(types.ApiResponse{
		Message: err.Error(),
		Status:  status,
	})
}

func (ic *ItineraryController) sendResponseWithLog(c *fiber.Ctx, status int, response types.ApiResponse) error {
	err := c.Status(status).JSON(response)
	ic.loggerInstance.Log(utils.CreateSanitizedLogEntry(c))
	return err
}
