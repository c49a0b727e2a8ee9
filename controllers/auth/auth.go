package auth

import (
	"errors"
	"fmt"
	"os"
	"time"

	"travelplans/logger"
	"travelplans/middleware"
	"travelplans/models/user"
	"travelplans/services/navigation"
	"travelplans/services/session"
	"travelplans/store"
	"travelplans/types"
	authTypes "travelplans/types/auth"
	"travelplans/utils"

	"github.com/gofiber/fiber/v2"
)

type AuthController struct {
	store          *store.Store
	sessions       *session.Service
	loggerInstance *logger.AsyncLogger
}

func NewAuthController(s *store.Store, sessions *session.Service, asyncLogger *logger.AsyncLogger) *AuthController {
	return &AuthController{store: s, sessions: sessions, loggerInstance: asyncLogger}
}

// Helper function to set secure cookies based on environment
func (h *AuthController) setSecureCookie(c *fiber.Ctx, name, value string, maxAge int) {
	isProduction := os.Getenv("APP_ENV") == "production"

	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    value,
		HTTPOnly: false,
		Secure:   isProduction, // Only secure in production (HTTPS)
		SameSite: "Strict",
		MaxAge:   maxAge,
		Path:     "/",
	})
}

// Login validates the demo credentials and issues a session token. The
// failure response never distinguishes unknown email from wrong password.
func (h *AuthController) Login(c *fiber.Ctx) error {
	var req authTypes.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Error parsing request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
			Message: fmt.Sprintf("Error parsing request body: %v", err),
			Status:  fiber.StatusBadRequest,
		})
	}

	if err := req.Validate(); err != nil {
		logger.Error(err.Error(), nil)
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
			Message: err.Error(),
			Status:  fiber.StatusBadRequest,
		})
	}

	principal, token, err := h.sessions.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, session.ErrInvalidCredentials) {
			return h.sendResponseWithLog(c, fiber.StatusUnauthorized, types.ApiResponse{
				Message: session.ErrInvalidCredentials.Error(),
				Status:  fiber.StatusUnauthorized,
			})
		}
		logger.Error("Failed to issue session token", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to login user",
			Status:  fiber.StatusInternalServerError,
		})
	}

	h.setSecureCookie(c, "access", token, int(session.TokenTTL.Seconds()))

	currentTime := time.Now().Format("2006-01-02 03:04:05 PM")
	logger.Success("User logged in successfully. id: " + principal.ID + " at " + currentTime)

	return h.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Message: "Login successful",
		Status:  fiber.StatusOK,
		Token:   token,
		Data: fiber.Map{
			"user":       principal,
			"navigation": navigation.For(principal.Roles),
		},
	})
}

// LogOut clears the session principal and expires the access cookie.
func (h *AuthController) LogOut(c *fiber.Ctx) error {
	h.sessions.Logout()
	h.setSecureCookie(c, "access", "", -1) // Expire immediately

	logger.Success("Logout successful")
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Logout successful",
		Status:  fiber.StatusOK,
	})
}

// Profile returns the authenticated principal's user record.
func (h *AuthController) Profile(c *fiber.Ctx) error {
	id, ok := middleware.PrincipalID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Message: "Invalid user claims",
			Status:  fiber.StatusUnauthorized,
		})
	}

	principal, found := h.store.FindUserByID(id)
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
			Message: "User not found",
			Status:  fiber.StatusNotFound,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "User fetched successfully",
		Status:  fiber.StatusOK,
		Data:    principal,
	})
}

// Navigation returns the sidebar entries for the principal's role set.
func (h *AuthController) Navigation(c *fiber.Ctx) error {
	roleSet := middleware.PrincipalRoles(c)
	roles := make([]user.Role, 0, len(roleSet))
	for _, r := range user.GetAllRoles() {
		if roleSet[r.String()] {
			roles = append(roles, r)
		}
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Navigation fetched successfully",
		Status:  fiber.StatusOK,
		Data:    navigation.For(roles),
	})
}

func (h *AuthController) sendResponseWithLog(c *fiber.Ctx, status int, response types.ApiResponse) error {
	err := c.Status(status).JSON(response)
	h.loggerInstance.Log(utils.CreateSanitizedLogEntry(c))
	return err
}
