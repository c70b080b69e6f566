package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/edusuite/attendance-api/internal/dto"
	"github.com/edusuite/attendance-api/internal/service"
	"github.com/edusuite/attendance-api/internal/utils"
)

// DashboardHandler wires the dashboard statistics endpoint.
type DashboardHandler struct {
	service service.DashboardService
	logger  zerolog.Logger
}

// NewDashboardHandler constructs the handler.
func NewDashboardHandler(service service.DashboardService, logger zerolog.Logger) *DashboardHandler {
	return &DashboardHandler{
		service: service,
		logger:  logger.With().Str("component", "dashboard_handler").Logger(),
	}
}

// Register attaches dashboard routes to the router group.
func (h *DashboardHandler) Register(router fiber.Router) {
	router.Get("/stats", h.stats)
}

func (h *DashboardHandler) stats(c *fiber.Ctx) error {
	req := dto.DashboardStatsRequest{
		From:       c.Query("from"),
		To:         c.Query("to"),
		Department: c.Query("department"),
	}

	response, err := h.service.Stats(c.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidDateRange) {
			// Suggest the current month so the client can retry.
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success":      false,
				"message":      "invalid date range provided, using defaults",
				"defaultRange": h.service.DefaultRange(),
			})
		}
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to build dashboard stats")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to fetch dashboard statistics")
	}

	return utils.SendSuccess(c, "dashboard statistics retrieved", response)
}
