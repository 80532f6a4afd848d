package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pulsekit/pulsekit/internal/models"
)

// ListSessions returns the recorded sessions available for analysis
func (h *Handler) ListSessions(c *fiber.Ctx) error {
	sessions, err := h.store.ListSessions()
	if err != nil {
		h.logger.Error("Failed to list sessions", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "SESSION_LIST_FAILED",
				Message: err.Error(),
			},
		})
	}
	return c.JSON(models.SessionListResponse{Sessions: sessions})
}

// SessionReport runs the offline analysis for one recorded session
func (h *Handler) SessionReport(c *fiber.Ctx) error {
	sessionID := c.Params("session")

	channels, marks, err := h.store.ReadSession(sessionID)
	if err != nil {
		h.logger.Error("Failed to read session", "session", sessionID, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "SESSION_READ_FAILED",
				Message: err.Error(),
			},
		})
	}
	if len(channels) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "SESSION_NOT_FOUND",
				Message: "No recordings found for session",
				Path:    c.Path(),
			},
		})
	}

	return c.JSON(h.analyzer.AnalyzeSession(sessionID, channels, marks))
}
