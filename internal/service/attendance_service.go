package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/edusuite/attendance-api/internal/dto"
	"github.com/edusuite/attendance-api/internal/models"
	"github.com/edusuite/attendance-api/internal/repository"
)

var (
	// ErrStudentNotFound indicates the referenced student does not exist.
	ErrStudentNotFound = errors.New("student not found")
	// ErrAttendanceNotFound indicates no record matched the delete target.
	ErrAttendanceNotFound = errors.New("attendance record not found")
	// ErrDeleteTargetRequired indicates neither addressing mode was usable.
	ErrDeleteTargetRequired = errors.New("either attendance id or combination of studentId, day, and date is required")
	// ErrInvalidDateFormat indicates the triple's date was not MM/YYYY.
	ErrInvalidDateFormat = errors.New("invalid date format, expected MM/YYYY")
)

const (
	unknownDepartment = "Unknown Department"
	unknownCampus     = "Unknown Campus"
)

// AttendanceService reconciles attendance records against the filtered
// roster and applies single-cell presence mutations.
type AttendanceService interface {
	List(ctx context.Context, query dto.AttendanceQuery) ([]dto.ReconciledAttendanceRow, error)
	Mark(ctx context.Context, req dto.MarkAttendanceRequest) (dto.AttendanceRecordResponse, error)
	Unmark(ctx context.Context, req dto.UnmarkAttendanceRequest) error
}

type attendanceService struct {
	roster     repository.RosterRepository
	attendance repository.AttendanceRepository
	students   repository.StudentRepository
	validator  *validator.Validate
	logger     zerolog.Logger
}

// NewAttendanceService constructs the attendance service.
func NewAttendanceService(roster repository.RosterRepository, attendance repository.AttendanceRepository, students repository.StudentRepository, validate *validator.Validate, logger zerolog.Logger) AttendanceService {
	return &attendanceService{
		roster:     roster,
		attendance: attendance,
		students:   students,
		validator:  validate,
		logger:     logger.With().Str("component", "attendance_service").Logger(),
	}
}

// List resolves the roster for the compiled filter, fetches its records for
// the period, and merges in one placeholder row per student without any
// record. Record-backed rows come first; ordering beyond that is up to the
// caller.
func (s *attendanceService) List(ctx context.Context, query dto.AttendanceQuery) ([]dto.ReconciledAttendanceRow, error) {
	compiled := CompileFilter(query, s.logger)

	roster, err := s.roster.List(ctx, compiled.Roster)
	if err != nil {
		return nil, err
	}
	if len(roster) == 0 {
		return []dto.ReconciledAttendanceRow{}, nil
	}

	ids := make([]uint, 0, len(roster))
	byID := make(map[uint]repository.RosterEntry, len(roster))
	for _, entry := range roster {
		ids = append(ids, entry.ID)
		byID[entry.ID] = entry
	}

	var period *repository.AttendancePeriod
	if compiled.Period != nil {
		period = &repository.AttendancePeriod{Month: compiled.Period.Month, Year: compiled.Period.Year}
	}

	records, err := s.attendance.ListForStudents(ctx, ids, period)
	if err != nil {
		return nil, err
	}

	rows := make([]dto.ReconciledAttendanceRow, 0, len(records)+len(roster))
	recorded := make(map[uint]struct{}, len(roster))

	for _, record := range records {
		entry, ok := byID[record.StudentID]
		if !ok {
			// Roster and attendance queries are not transactional, so a
			// concurrent roster mutation can leave a record behind.
			s.logger.Warn().Uint("student_id", record.StudentID).Uint("record_id", record.ID).
				Msg("dropping attendance record without matching roster student")
			continue
		}

		recorded[record.StudentID] = struct{}{}
		recordID := record.ID
		day := record.Day
		present := record.Present
		rows = append(rows, dto.ReconciledAttendanceRow{
			ID:             &recordID,
			StudentID:      entry.ID,
			Name:           entry.Name,
			Matricule:      entry.Matricule,
			Level:          entry.Level,
			DepartmentID:   entry.DepartmentID,
			DepartmentName: entry.DepartmentName,
			CampusID:       entry.CampusID,
			CampusName:     entry.CampusName,
			Day:            &day,
			Present:        &present,
			Month:          record.Month,
			Year:           record.Year,
		})
	}

	// placeholders = roster − recorded
	for _, entry := range roster {
		if _, ok := recorded[entry.ID]; ok {
			continue
		}
		rows = append(rows, dto.ReconciledAttendanceRow{
			StudentID:      entry.ID,
			Name:           entry.Name,
			Matricule:      entry.Matricule,
			Level:          entry.Level,
			DepartmentID:   entry.DepartmentID,
			DepartmentName: entry.DepartmentName,
			CampusID:       entry.CampusID,
			CampusName:     entry.CampusName,
			Month:          compiled.Month,
			Year:           compiled.Year,
		})
	}

	return rows, nil
}

// Mark upserts the record for (studentId, day, month, year). The student is
// resolved first so a missing student never leaves an orphaned record, and
// the response is decorated from that fresh roster data.
func (s *attendanceService) Mark(ctx context.Context, req dto.MarkAttendanceRequest) (dto.AttendanceRecordResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return dto.AttendanceRecordResponse{}, err
	}

	student, err := s.students.GetDetailed(ctx, req.StudentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.AttendanceRecordResponse{}, ErrStudentNotFound
		}
		return dto.AttendanceRecordResponse{}, err
	}

	day := strings.TrimSpace(req.Day)
	key := repository.AttendanceKey{
		StudentID: req.StudentID,
		Day:       day,
		Month:     req.Month,
		Year:      req.Year,
	}

	record, err := s.attendance.Upsert(ctx, key, *req.Present, formatRecordDate(req.Year, req.Month, day))
	if err != nil {
		return dto.AttendanceRecordResponse{}, err
	}

	s.logger.Info().Uint("student_id", req.StudentID).Str("day", day).
		Int("month", req.Month).Int("year", req.Year).Bool("present", record.Present).
		Msg("attendance marked")

	return decorateRecord(record, student), nil
}

// Unmark deletes a record either by its identifier or by the
// (studentId, day, MM/YYYY) triple. A miss reports not-found; a repeated
// delete of the same record is therefore not idempotent.
func (s *attendanceService) Unmark(ctx context.Context, req dto.UnmarkAttendanceRequest) error {
	switch {
	case strings.TrimSpace(req.ID) != "":
		// An unparsable id can never match a record, so it reports the same
		// not-found as a numeric miss.
		id, err := strconv.ParseUint(strings.TrimSpace(req.ID), 10, 32)
		if err != nil {
			return ErrAttendanceNotFound
		}
		err = s.attendance.DeleteByID(ctx, uint(id))
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAttendanceNotFound
		}
		return err

	case req.StudentID != "" && req.Day != "" && req.Date != "":
		studentID, err := strconv.ParseUint(strings.TrimSpace(req.StudentID), 10, 32)
		if err != nil {
			return ErrDeleteTargetRequired
		}

		month, year, err := parseMonthYear(req.Date)
		if err != nil {
			return err
		}

		key := repository.AttendanceKey{
			StudentID: uint(studentID),
			Day:       strings.TrimSpace(req.Day),
			Month:     month,
			Year:      year,
		}
		err = s.attendance.DeleteByKey(ctx, key)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAttendanceNotFound
		}
		return err

	default:
		return ErrDeleteTargetRequired
	}
}

// formatRecordDate renders the display date as YYYY-MM-DD with zero
// padding. It is informational only and never part of the record key.
func formatRecordDate(year, month int, day string) string {
	if len(day) == 1 {
		day = "0" + day
	}
	return fmt.Sprintf("%04d-%02d-%s", year, month, day)
}

func parseMonthYear(date string) (int, int, error) {
	parts := strings.Split(strings.TrimSpace(date), "/")
	if len(parts) != 2 {
		return 0, 0, ErrInvalidDateFormat
	}

	month, err := strconv.Atoi(parts[0])
	if err != nil || month <= 0 {
		return 0, 0, ErrInvalidDateFormat
	}
	year, err := strconv.Atoi(parts[1])
	if err != nil || year <= 0 {
		return 0, 0, ErrInvalidDateFormat
	}

	return month, year, nil
}

func decorateRecord(record models.AttendanceRecord, student repository.StudentDetail) dto.AttendanceRecordResponse {
	departmentName := unknownDepartment
	if student.DepartmentName != nil {
		departmentName = *student.DepartmentName
	}
	campusName := unknownCampus
	if student.CampusName != nil {
		campusName = *student.CampusName
	}

	return dto.AttendanceRecordResponse{
		ID:             record.ID,
		StudentID:      student.ID,
		Name:           student.Name,
		Matricule:      student.Matricule,
		Level:          student.Level,
		DepartmentID:   student.DepartmentID,
		DepartmentName: departmentName,
		CampusID:       student.CampusID,
		CampusName:     campusName,
		Day:            record.Day,
		Present:        record.Present,
		Month:          record.Month,
		Year:           record.Year,
	}
}
