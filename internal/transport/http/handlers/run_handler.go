package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/atlaserp/backend/internal/core/ports"
	"github.com/atlaserp/backend/internal/domain"
	"github.com/atlaserp/backend/internal/infrastructure/logger"
	"github.com/atlaserp/backend/internal/transport/http/dto"
	"github.com/atlaserp/backend/internal/transport/http/middleware"
)

// RunHandler is the dispatch endpoint: it validates the requested batch
// through the permission gate, fans it out across the worker pool and maps
// the index-keyed results back to task ids in request order.
type RunHandler struct {
	registry   ports.TaskRegistry
	dispatcher ports.Dispatcher
	logger     *logger.Logger
}

func NewRunHandler(registry ports.TaskRegistry, dispatcher ports.Dispatcher, logger *logger.Logger) *RunHandler {
	return &RunHandler{registry: registry, dispatcher: dispatcher, logger: logger}
}

func (h *RunHandler) RunBatch(c *fiber.Ctx) error {
	var req dto.RunBatchRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "invalid request body",
			Code:  dto.CodeMalformedRequest,
		})
	}

	user := middleware.CurrentUser(c)

	// Validation is atomic and completes before anything runs. A rejected
	// batch executes nothing, including its valid entries.
	descriptors, err := h.registry.ValidateBatch(req.Tasks, user)
	if err != nil {
		var unknown *domain.UnknownTasksError
		if errors.As(err, &unknown) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error:   unknown.Error(),
				Code:    dto.CodeUnknownTasks,
				TaskIDs: unknown.IDs,
			})
		}
		var forbidden *domain.ForbiddenTasksError
		if errors.As(err, &forbidden) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error:   forbidden.Error(),
				Code:    dto.CodeForbiddenTasks,
				TaskIDs: forbidden.IDs,
			})
		}
		h.logger.Errorw("batch_validate_failed", "user", user.Username, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: "batch validation failed",
		})
	}

	items := make([]domain.WorkItem, len(descriptors))
	for i, d := range descriptors {
		items[i] = d.Work
	}

	results, err := h.dispatcher.Run(c.UserContext(), items)
	if err != nil {
		h.logger.Errorw("batch_dispatch_failed", "user", user.Username, "tasks", len(items), "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: "batch dispatch failed",
			Code:  dto.CodeDispatchFailed,
		})
	}

	// Re-key by task id in request order. Duplicate ids each ran once; the
	// later occurrence wins the map slot.
	ordered := make(map[string]any, len(req.Tasks))
	for idx, id := range req.Tasks {
		ordered[id] = results[idx]
	}

	h.logger.Infow("batch_dispatched", "user", user.Username, "tasks", len(req.Tasks))
	return c.JSON(dto.RunBatchResponse{Results: ordered, User: user.Username})
}
