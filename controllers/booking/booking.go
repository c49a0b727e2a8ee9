package booking

import (
	"errors"

	"travelplans/logger"
	bookingModel "travelplans/models/booking"
	"travelplans/services/aggregate"
	"travelplans/store"
	"travelplans/types"
	bookingTypes "travelplans/types/booking"
	"travelplans/utils"

	"github.com/gofiber/fiber/v2"
)

// BookingController handles booking-related HTTP requests.
type BookingController struct {
	store          *store.Store
	loggerInstance *logger.AsyncLogger
}

func NewBookingController(s *store.Store, asyncLogger *logger.AsyncLogger) *BookingController {
	return &BookingController{store: s, loggerInstance: asyncLogger}
}

// Index lists every booking.
func (bc *BookingController) Index(c *fiber.Ctx) error {
	snap := bc.store.Read()
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Bookings fetched successfully",
		Status:  fiber.StatusOK,
		Data:    snap.Bookings,
	})
}

// Counts returns booking tallies per itinerary, optionally filtered by
// status via the ?status query parameter.
func (bc *BookingController) Counts(c *fiber.Ctx) error {
	snap := bc.store.Read()

	var filter []bookingModel.Status
	if q := c.Query("status"); q != "" {
		status := bookingModel.Status(q)
		if !status.IsValid() {
			return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
				Message: "Unknown booking status: " + q,
				Status:  fiber.StatusBadRequest,
			})
		}
		filter = append(filter, status)
	}

	counts := aggregate.BookingCountsByItinerary(snap.Itineraries, snap.Bookings, filter...)
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Booking counts fetched successfully",
		Status:  fiber.StatusOK,
		Data:    counts,
	})
}

// Store creates a new booking. Status and payment status always start
// Pending/Unpaid no matter what the caller sends.
func (bc *BookingController) Store(c *fiber.Ctx) error {
	var req bookingTypes.BookingCreateRequest
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

	created, err := bc.store.CreateBooking(c.Context(), store.NewBooking{
		CustomerID:  req.CustomerID,
		ItineraryID: req.ItineraryID,
	})
	if err != nil {
		return bc.storeError(c, "Failed to create booking", err)
	}

	logger.Success("Booking created successfully. id: " + created.ID)
	return bc.sendResponseWithLog(c, fiber.StatusCreated, types.ApiResponse{
		Message: "Booking created successfully",
		Status:  fiber.StatusCreated,
		Data:    created,
	})
}

// Update merges a patch into one booking.
func (bc *BookingController) Update(c *fiber.Ctx) error {
	id := c.Params("id")

	var req bookingTypes.BookingUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "Invalid request body",
			Status:  fiber.StatusBadRequest,
		})
	}

	patch := store.BookingPatch{ItineraryID: req.ItineraryID}
	if req.Status != nil {
		status := bookingModel.Status(*req.Status)
		patch.Status = &status
	}
	if req.PaymentStatus != nil {
		payment := bookingModel.PaymentStatus(*req.PaymentStatus)
		patch.PaymentStatus = &payment
	}

	if err := bc.store.UpdateBooking(c.Context(), id, patch); err != nil {
		return bc.storeError(c, "Failed to update booking", err)
	}

	return bc.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Message: "Booking updated successfully",
		Status:  fiber.StatusOK,
	})
}

// Destroy removes a booking.
func (bc *BookingController) Destroy(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := bc.store.DeleteBooking(c.Context(), id); err != nil {
		return bc.storeError(c, "Failed to delete booking", err)
	}

	return bc.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Message: "Booking deleted successfully",
		Status:  fiber.StatusOK,
	})
}

func (bc *BookingController) storeError(c *fiber.Ctx, message string, err error) error {
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

func (bc *BookingController) sendResponseWithLog(c *fiber.Ctx, status int, response types.ApiResponse) error {
	err := c.Status(status).JSON(response)
	bc.loggerInstance.Log(utils.CreateSanitizedLogEntry(c))
	return err
}
