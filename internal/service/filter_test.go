package service

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/edusuite/attendance-api/internal/dto"
)

func TestCompileFilterSkipsSentinelAndBlank(t *testing.T) {
	compiled := CompileFilter(dto.AttendanceQuery{
		Level:        "all",
		DepartmentID: "all",
		CampusID:     "",
		StudentName:  "  ",
	}, zerolog.Nop())

	require.Empty(t, compiled.Roster.Name)
	require.Empty(t, compiled.Roster.Level)
	require.Nil(t, compiled.Roster.DepartmentID)
	require.Nil(t, compiled.Roster.CampusID)
	require.Nil(t, compiled.Period)
}

func TestCompileFilterParsesConcreteValues(t *testing.T) {
	compiled := CompileFilter(dto.AttendanceQuery{
		StudentName:  "Ngwa",
		Level:        "300",
		DepartmentID: "4",
		CampusID:     "2",
		Month:        "3",
		Year:         "2024",
	}, zerolog.Nop())

	require.Equal(t, "Ngwa", compiled.Roster.Name)
	require.Equal(t, "300", compiled.Roster.Level)
	require.NotNil(t, compiled.Roster.DepartmentID)
	require.EqualValues(t, 4, *compiled.Roster.DepartmentID)
	require.NotNil(t, compiled.Roster.CampusID)
	require.EqualValues(t, 2, *compiled.Roster.CampusID)
	require.NotNil(t, compiled.Period)
	require.Equal(t, Period{Month: 3, Year: 2024}, *compiled.Period)
}

func TestCompileFilterIgnoresMalformedNumbers(t *testing.T) {
	compiled := CompileFilter(dto.AttendanceQuery{
		DepartmentID: "abc",
		CampusID:     "-3",
		Month:        "March",
		Year:         "2024",
	}, zerolog.Nop())

	require.Nil(t, compiled.Roster.DepartmentID)
	require.Nil(t, compiled.Roster.CampusID)
	require.Nil(t, compiled.Month)
	// Year alone never forms a period.
	require.NotNil(t, compiled.Year)
	require.Nil(t, compiled.Period)
}

func TestCompileFilterRequiresMonthAndYearTogether(t *testing.T) {
	monthOnly := CompileFilter(dto.AttendanceQuery{Month: "5"}, zerolog.Nop())
	require.Nil(t, monthOnly.Period)
	require.NotNil(t, monthOnly.Month)

	yearOnly := CompileFilter(dto.AttendanceQuery{Year: "2024"}, zerolog.Nop())
	require.Nil(t, yearOnly.Period)
	require.NotNil(t, yearOnly.Year)
}
