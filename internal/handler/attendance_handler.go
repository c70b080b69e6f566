package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/edusuite/attendance-api/internal/dto"
	"github.com/edusuite/attendance-api/internal/service"
	"github.com/edusuite/attendance-api/internal/utils"
)

// AttendanceHandler wires the attendance endpoints.
type AttendanceHandler struct {
	service service.AttendanceService
	logger  zerolog.Logger
}

// NewAttendanceHandler constructs the handler.
func NewAttendanceHandler(service service.AttendanceService, logger zerolog.Logger) *AttendanceHandler {
	return &AttendanceHandler{
		service: service,
		logger:  logger.With().Str("component", "attendance_handler").Logger(),
	}
}

// Register attaches attendance routes to the router group.
func (h *AttendanceHandler) Register(router fiber.Router) {
	router.Get("", h.list)
	router.Post("", h.mark)
	router.Delete("", h.unmark)
}

func (h *AttendanceHandler) list(c *fiber.Ctx) error {
	query := dto.AttendanceQuery{
		StudentName:  c.Query("studentName"),
		Level:        c.Query("level"),
		DepartmentID: c.Query("departmentId"),
		CampusID:     c.Query("campusId"),
		Month:        c.Query("month"),
		Year:         c.Query("year"),
	}

	rows, err := h.service.List(c.Context(), query)
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to list attendance")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to list attendance")
	}

	return utils.SendSuccess(c, "attendance retrieved", rows)
}

func (h *AttendanceHandler) mark(c *fiber.Ctx) error {
	var payload dto.MarkAttendanceRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	record, err := h.service.Mark(c.Context(), payload)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrStudentNotFound):
			return utils.SendError(c, fiber.StatusNotFound, "student not found")
		case isValidationError(err):
			return utils.SendError(c, fiber.StatusBadRequest, "missing required fields")
		default:
			requestLogger(h.logger, c).Error().Err(err).Msg("failed to mark attendance")
			return utils.SendError(c, fiber.StatusInternalServerError, "failed to mark attendance")
		}
	}

	return utils.SendSuccess(c, "attendance marked", record)
}

func (h *AttendanceHandler) unmark(c *fiber.Ctx) error {
	req := dto.UnmarkAttendanceRequest{
		ID:        c.Query("id"),
		StudentID: c.Query("studentId"),
		Day:       c.Query("day"),
		Date:      c.Query("date"),
	}

	if err := h.service.Unmark(c.Context(), req); err != nil {
		switch {
		case errors.Is(err, service.ErrAttendanceNotFound):
			return utils.SendError(c, fiber.StatusNotFound, "attendance record not found")
		case errors.Is(err, service.ErrDeleteTargetRequired), errors.Is(err, service.ErrInvalidDateFormat):
			return utils.SendError(c, fiber.StatusBadRequest, err.Error())
		default:
			requestLogger(h.logger, c).Error().Err(err).Msg("failed to delete attendance")
			return utils.SendError(c, fiber.StatusInternalServerError, "failed to delete attendance")
		}
	}

	return utils.SendSuccess(c, "attendance record deleted successfully", nil)
}
