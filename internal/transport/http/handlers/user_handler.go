package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/atlaserp/backend/internal/core/ports"
	"github.com/atlaserp/backend/internal/core/services"
	"github.com/atlaserp/backend/internal/domain"
	"github.com/atlaserp/backend/internal/infrastructure/logger"
	"github.com/atlaserp/backend/internal/transport/http/dto"
	"github.com/atlaserp/backend/internal/transport/http/middleware"
)

type UserHandler struct {
	identity ports.IdentityService
	logger   *logger.Logger
}

func NewUserHandler(identity ports.IdentityService, logger *logger.Logger) *UserHandler {
	return &UserHandler{identity: identity, logger: logger}
}

// CreateUser provisions a new user. Admin only; the router guards the route
// with the AdminOnly middleware.
func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "invalid request body",
			Code:  dto.CodeMalformedRequest,
		})
	}

	created, err := h.identity.CreateUser(ports.CreateUserInput{
		Username:   req.Username,
		Credential: req.Password,
		Modules:    req.ModuleKeys(),
		Department: req.Department,
		Role:       domain.Role(req.Role),
	})
	if err != nil {
		if errors.Is(err, services.ErrUserAlreadyExists) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: err.Error(),
			})
		}
		h.logger.Errorw("user_create_failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: "failed to create user",
		})
	}

	admin := middleware.CurrentUser(c)
	h.logger.Infow("user_create_ok", "created", created, "by", admin.Username)
	return c.JSON(dto.CreateUserResponse{OK: true, Created: created})
}

// GrantModules overwrites a user's granted module set. Admin only.
func (h *UserHandler) GrantModules(c *fiber.Ctx) error {
	username := c.Params("username")

	var req dto.GrantModulesRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "invalid request body",
			Code:  dto.CodeMalformedRequest,
		})
	}

	if err := h.identity.GrantModules(username, req.ModuleKeys()); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: err.Error(),
			})
		}
		h.logger.Errorw("grant_modules_failed", "username", username, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: "failed to update modules",
		})
	}

	return c.JSON(dto.SuccessResponse{OK: true})
}
