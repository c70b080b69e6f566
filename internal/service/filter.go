package service

import (
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/edusuite/attendance-api/internal/dto"
	"github.com/edusuite/attendance-api/internal/repository"
)

// FilterAll is the sentinel dropdowns send when a filter is not narrowed.
const FilterAll = "all"

// Period scopes an attendance query to a single month of a year.
type Period struct {
	Month int
	Year  int
}

// CompiledFilter is the normalized form of an attendance query. Roster
// predicates apply to the student query only; the period applies to the
// attendance sub-query and is set only when month and year are both valid.
// Month and Year are carried individually for placeholder rows, which copy
// whatever the caller supplied even when the pair is incomplete.
type CompiledFilter struct {
	Roster repository.RosterFilter
	Period *Period
	Month  *int
	Year   *int
}

// CompileFilter turns the raw option bag into a compiled filter. It never
// fails: malformed numeric values are logged and the filter is skipped, so
// an invalid departmentId behaves exactly like an absent one.
func CompileFilter(opts dto.AttendanceQuery, logger zerolog.Logger) CompiledFilter {
	var compiled CompiledFilter

	if name := strings.TrimSpace(opts.StudentName); name != "" {
		compiled.Roster.Name = name
	}
	if level := strings.TrimSpace(opts.Level); level != "" && level != FilterAll {
		compiled.Roster.Level = level
	}
	compiled.Roster.DepartmentID = compileIDFilter(opts.DepartmentID, "departmentId", logger)
	compiled.Roster.CampusID = compileIDFilter(opts.CampusID, "campusId", logger)

	compiled.Month = compileIntFilter(opts.Month, "month", logger)
	compiled.Year = compileIntFilter(opts.Year, "year", logger)
	if compiled.Month != nil && compiled.Year != nil {
		compiled.Period = &Period{Month: *compiled.Month, Year: *compiled.Year}
	}

	return compiled
}

func compileIDFilter(raw, field string, logger zerolog.Logger) *uint {
	value := strings.TrimSpace(raw)
	if value == "" || value == FilterAll {
		return nil
	}

	parsed, err := strconv.ParseUint(value, 10, 32)
	if err != nil {
		logger.Warn().Str("field", field).Str("value", value).Msg("ignoring non-numeric filter value")
		return nil
	}

	id := uint(parsed)
	return &id
}

func compileIntFilter(raw, field string, logger zerolog.Logger) *int {
	value := strings.TrimSpace(raw)
	if value == "" || value == FilterAll {
		return nil
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		logger.Warn().Str("field", field).Str("value", value).Msg("ignoring non-numeric filter value")
		return nil
	}
	if parsed <= 0 {
		return nil
	}

	return &parsed
}
