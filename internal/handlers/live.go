package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pulsekit/pulsekit/internal/models"
)

// Live returns the current BPM and beat history snapshot
func (h *Handler) Live(c *fiber.Ctx) error {
	if h.monitor == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "LIVE_DISABLED",
				Message: "Live monitoring is not running on this instance",
			},
		})
	}

	snapshot := h.monitor.Snapshot()

	resp := models.LiveResponse{
		BPM:       snapshot.BPM,
		BeatCount: len(snapshot.History),
		History:   snapshot.History,
	}
	if len(snapshot.History) > 0 {
		resp.LastBeatTime = snapshot.History[len(snapshot.History)-1]
	}
	return c.JSON(resp)
}
