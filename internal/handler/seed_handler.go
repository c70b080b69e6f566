package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/edusuite/attendance-api/internal/service"
	"github.com/edusuite/attendance-api/internal/utils"
)

// SeedHandler exposes the token-gated demo-data endpoint.
type SeedHandler struct {
	service service.SeedService
	logger  zerolog.Logger
}

// NewSeedHandler constructs the handler.
func NewSeedHandler(service service.SeedService, logger zerolog.Logger) *SeedHandler {
	return &SeedHandler{
		service: service,
		logger:  logger.With().Str("component", "seed_handler").Logger(),
	}
}

// Register attaches the seed route to the router group.
func (h *SeedHandler) Register(router fiber.Router) {
	router.Post("", h.seed)
}

func (h *SeedHandler) seed(c *fiber.Ctx) error {
	token := c.Get("X-Seed-Token")

	summary, err := h.service.Seed(c.Context(), token)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSeedDisabled):
			return utils.SendError(c, fiber.StatusForbidden, "seeding is disabled")
		case errors.Is(err, service.ErrSeedUnauthorized):
			return utils.SendError(c, fiber.StatusUnauthorized, "invalid seed token")
		default:
			requestLogger(h.logger, c).Error().Err(err).Msg("failed to seed demo data")
			return utils.SendError(c, fiber.StatusInternalServerError, "failed to seed demo data")
		}
	}

	return utils.SendSuccess(c, "demo data seeded", summary)
}
