package user

import (
	"errors"

	"travelplans/logger"
	userModel "travelplans/models/user"
	"travelplans/store"
	"travelplans/types"
	userTypes "travelplans/types/user"
	"travelplans/utils"

	"github.com/gofiber/fiber/v2"
)

// UserController handles back-office account management.
type UserController struct {
	store          *store.Store
	loggerInstance *logger.AsyncLogger
}

func NewUserController(s *store.Store, asyncLogger *logger.AsyncLogger) *UserController {
	return &UserController{store: s, loggerInstance: asyncLogger}
}

// Index lists every account.
func (uc *UserController) Index(c *fiber.Ctx) error {
	snap := uc.store.Read()
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Users fetched successfully",
		Status:  fiber.StatusOK,
		Data:    snap.Users,
	})
}

// Store creates a new account.
func (uc *UserController) Store(c *fiber.Ctx) error {
	var req userTypes.UserCreateRequest
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

	created, err := uc.store.CreateUser(c.Context(), store.NewUser{
		Name:   req.Name,
		Email:  req.Email,
		Roles:  toRoles(req.Roles),
		Status: userModel.Status(req.Status),
	})
	if err != nil {
		return uc.storeError(c, "Failed to create user", err)
	}

	logger.Success("User created successfully. id: " + created.ID)
	return uc.sendResponseWithLog(c, fiber.StatusCreated, types.ApiResponse{
		Message: "User created successfully",
		Status:  fiber.StatusCreated,
		Data:    created,
	})
}

// Update replaces an account by id.
func (uc *UserController) Update(c *fiber.Ctx) error {
	id := c.Params("id")

	var req userTypes.UserUpdateRequest
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

	updated := userModel.User{
		ID:     id,
		Name:   req.Name,
		Email:  req.Email,
		Roles:  toRoles(req.Roles),
		Status: userModel.Status(req.Status),
	}
	if err := uc.store.UpdateUser(c.Context(), updated); err != nil {
		return uc.storeError(c, "Failed to update user", err)
	}

	return uc.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Message: "User updated successfully",
		Status:  fiber.StatusOK,
		Data:    updated,
	})
}

// ToggleStatus flips an account between Active and Suspended.
func (uc *UserController) ToggleStatus(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := uc.store.ToggleUserStatus(c.Context(), id); err != nil {
		return uc.storeError(c, "Failed to toggle user status", err)
	}

	updated, _ := uc.store.FindUserByID(id)
	return uc.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Message: "User status updated successfully",
		Status:  fiber.StatusOK,
		Data:    updated,
	})
}

// Destroy removes an account.
func (uc *UserController) Destroy(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := uc.store.DeleteUser(c.Context(), id); err != nil {
		return uc.storeError(c, "Failed to delete user", err)
	}

	return uc.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Message: "User deleted successfully",
		Status:  fiber.StatusOK,
	})
}

func (uc *UserController) storeError(c *fiber.Ctx, message string, err error) error {
	logger.Error(message, err)
	status := fiber.StatusInternalServerError
	if errors.Is(err, store.ErrNotFound) {
		status = fiber.StatusNotFound
	} else if errors.Is(err, store.ErrValidation) || errors.Is(err, store.ErrNoRoles) {
		status = fiber.StatusBadRequest
	}
	return c.Status(status).JSON(types.ApiResponse{
		Message: err.Error(),
		Status:  status,
	})
}

func (uc *UserController) sendResponseWithLog(c *fiber.Ctx, status int, response types.ApiResponse) error {
	err := c.Status(status).JSON(response)
	uc.loggerInstance.Log(utils.CreateSanitizedLogEntry(c))
	return err
}

func toRoles(roles []string) []userModel.Role {
	out := make([]userModel.Role, 0, len(roles))
	for _, r := range roles {
		out = append(out, userModel.Role(r))
	}
	return out
}
