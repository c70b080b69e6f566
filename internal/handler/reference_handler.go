package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/edusuite/attendance-api/internal/service"
	"github.com/edusuite/attendance-api/internal/utils"
)

// ReferenceHandler wires the lookup endpoints backing the filter dropdowns.
type ReferenceHandler struct {
	service service.ReferenceService
	logger  zerolog.Logger
}

// NewReferenceHandler constructs the handler.
func NewReferenceHandler(service service.ReferenceService, logger zerolog.Logger) *ReferenceHandler {
	return &ReferenceHandler{
		service: service,
		logger:  logger.With().Str("component", "reference_handler").Logger(),
	}
}

// Register attaches the reference routes directly under the API group.
func (h *ReferenceHandler) Register(router fiber.Router) {
	router.Get("/campuses", h.campuses)
	router.Get("/departments", h.departments)
	router.Get("/levels", h.levels)
	router.Get("/levels/full", h.levelsFull)
}

func (h *ReferenceHandler) campuses(c *fiber.Ctx) error {
	campuses, err := h.service.Campuses(c.Context())
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to fetch campuses")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to fetch campuses")
	}

	return utils.SendSuccess(c, "campuses retrieved", campuses)
}

func (h *ReferenceHandler) departments(c *fiber.Ctx) error {
	departments, err := h.service.Departments(c.Context())
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to fetch departments")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to fetch departments")
	}

	return utils.SendSuccess(c, "departments retrieved", departments)
}

func (h *ReferenceHandler) levels(c *fiber.Ctx) error {
	options, err := h.service.LevelOptions(c.Context())
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to fetch levels")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to fetch levels")
	}

	return utils.SendSuccess(c, "levels retrieved", options)
}

func (h *ReferenceHandler) levelsFull(c *fiber.Ctx) error {
	levels, err := h.service.Levels(c.Context())
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to fetch levels")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to fetch levels")
	}

	return utils.SendSuccess(c, "levels retrieved", levels)
}
