package compliance

import (
	"errors"

	"travelplans/logger"
	"travelplans/models/itinerary"
	"travelplans/services/aggregate"
	"travelplans/services/ai"
	"travelplans/store"
	"travelplans/types"
	"travelplans/utils"

	"github.com/gofiber/fiber/v2"
)

// ComplianceController handles the marketing-collateral approval queue.
type ComplianceController struct {
	store          *store.Store
	assistant      ai.Assistant
	loggerInstance *logger.AsyncLogger
}

func NewComplianceController(s *store.Store, assistant ai.Assistant, asyncLogger *logger.AsyncLogger) *ComplianceController {
	return &ComplianceController{store: s, assistant: assistant, loggerInstance: asyncLogger}
}

// Pending lists every unapproved collateral across all itineraries.
func (cc *ComplianceController) Pending(c *fiber.Ctx) error {
	snap := cc.store.Read()
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Pending collaterals fetched successfully",
		Status:  fiber.StatusOK,
		Data:    aggregate.PendingCollaterals(snap.Itineraries),
	})
}

// Approve marks one collateral as approved.
func (cc *ComplianceController) Approve(c *fiber.Ctx) error {
	itineraryID := c.Params("itineraryId")
	collateralID := c.Params("collateralId")

	approved := true
	patch := store.CollateralPatch{Approved: &approved}
	if err := cc.store.UpdateCollateral(c.Context(), itineraryID, collateralID, patch); err != nil {
		return cc.storeError(c, "Failed to approve collateral", err)
	}

	logger.Success("Collateral approved. id: " + collateralID)
	return cc.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Message: "Collateral approved successfully",
		Status:  fiber.StatusOK,
	})
}

// Reject removes the collateral outright. Rejected material does not stay
// behind in a terminal state.
func (cc *ComplianceController) Reject(c *fiber.Ctx) error {
	itineraryID := c.Params("itineraryId")
	collateralID := c.Params("collateralId")

	if err := cc.store.DeleteCollateral(c.Context(), itineraryID, collateralID); err != nil {
		return cc.storeError(c, "Failed to reject collateral", err)
	}

	logger.Success("Collateral rejected and removed. id: " + collateralID)
	return cc.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Message: "Collateral rejected successfully",
		Status:  fiber.StatusOK,
	})
}

// Review runs the AI compliance check on one collateral and stores the
// feedback alongside it.
func (cc *ComplianceController) Review(c *fiber.Ctx) error {
	itineraryID := c.Params("itineraryId")
	collateralID := c.Params("collateralId")

	it, ok := cc.store.FindItineraryByID(itineraryID)
	if !ok {
		return cc.storeError(c, "Failed to review collateral", store.ErrNotFound)
	}
	var target *itinerary.Collateral
	for i := range it.Collaterals {
		if it.Collaterals[i].ID == collateralID {
			target = &it.Collaterals[i]
			break
		}
	}
	if target == nil {
		return cc.storeError(c, "Failed to review collateral", store.ErrNotFound)
	}

	feedback, err := cc.assistant.ReviewCollateral(c.Context(), *target)
	if err != nil {
		logger.Error("AI collateral review failed", err)
		return c.Status(fiber.StatusBadGateway).JSON(types.ApiResponse{
			Message: "AI review is unavailable right now",
			Status:  fiber.StatusBadGateway,
		})
	}

	result := itinerary.AiReviewResult{IssuesFound: feedback.IssuesFound, Feedback: feedback.Feedback}
	patch := store.CollateralPatch{AiFeedback: &result}
	if err := cc.store.UpdateCollateral(c.Context(), itineraryID, collateralID, patch); err != nil {
		return cc.storeError(c, "Failed to store review feedback", err)
	}

	return cc.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Message: "Collateral reviewed successfully",
		Status:  fiber.StatusOK,
		Data:    result,
	})
}

func (cc *ComplianceController) storeError(c *fiber.Ctx, message string, err error) error {
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

func (cc *ComplianceController) sendResponseWithLog(c *fiber.Ctx, status int, response types.ApiResponse) error {
	err := c.Status(status).JSON(response)
	cc.loggerInstance.Log(utils.CreateSanitizedLogEntry(c))
	return err
}
