package service

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/edusuite/attendance-api/internal/dto"
	"github.com/edusuite/attendance-api/internal/models"
	"github.com/edusuite/attendance-api/internal/repository"
)

func intPtr(v int) *int { return &v }

func seedDashboardData(t *testing.T, db *gorm.DB) {
	t.Helper()

	studentA, studentB := seedRoster(t, db)

	require.NoError(t, db.Create(&models.AttendanceRecord{
		StudentID: studentA.ID, Present: true, Day: "5", Date: "2024-03-05",
		Month: intPtr(3), Year: intPtr(2024),
	}).Error)
	require.NoError(t, db.Create(&models.AttendanceRecord{
		StudentID: studentB.ID, Present: false, Day: "5", Date: "2024-03-05",
		Month: intPtr(3), Year: intPtr(2024),
	}).Error)
}

func TestDashboardServiceStats(t *testing.T) {
	db := newTestDB(t)
	seedDashboardData(t, db)

	svc := NewDashboardService(repository.NewStatsRepository(db), nil, time.Minute, zerolog.Nop())

	response, err := svc.Stats(context.Background(), dto.DashboardStatsRequest{
		From: "2024-03-01", To: "2024-03-31", Department: "all",
	})
	require.NoError(t, err)

	require.EqualValues(t, 2, response.TotalStudents)
	require.EqualValues(t, 1, response.TodayStats.Present)
	require.EqualValues(t, 1, response.TodayStats.Late)
	require.EqualValues(t, 2, response.TodayStats.Total)

	require.Len(t, response.TrendData, 1)
	require.Equal(t, "2024-03-05", response.TrendData[0].Date)
	require.EqualValues(t, 1, response.TrendData[0].Present)
	require.EqualValues(t, 1, response.TrendData[0].Absent)
	require.EqualValues(t, 2, response.TrendData[0].Total)

	require.Len(t, response.DepartmentStats, 1)
	dept := response.DepartmentStats[0]
	require.Equal(t, "Software Engineering", dept.Department)
	require.EqualValues(t, 2, dept.Total)
	require.EqualValues(t, 1, dept.Present)
	require.EqualValues(t, 1, dept.TotalDays)
	require.InDelta(t, 50.0, dept.AttendanceRate, 0.001)

	require.Len(t, response.CampusStats, 1)
	require.Equal(t, "Bonaberi", response.CampusStats[0].Campus)
	require.EqualValues(t, 2, response.CampusStats[0].Total)
	require.EqualValues(t, 1, response.CampusStats[0].Present)
}

func TestDashboardServiceDepartmentFilter(t *testing.T) {
	db := newTestDB(t)
	seedDashboardData(t, db)

	svc := NewDashboardService(repository.NewStatsRepository(db), nil, time.Minute, zerolog.Nop())

	response, err := svc.Stats(context.Background(), dto.DashboardStatsRequest{
		From: "2024-03-01", To: "2024-03-31", Department: "Medicine",
	})
	require.NoError(t, err)
	require.EqualValues(t, 0, response.TotalStudents)
	require.EqualValues(t, 0, response.TodayStats.Present)
	require.Empty(t, response.TrendData)
}

func TestDashboardServiceCachesResponses(t *testing.T) {
	db := newTestDB(t)
	seedDashboardData(t, db)

	server := miniredis.RunT(t)
	cache := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = cache.Close() })

	svc := NewDashboardService(repository.NewStatsRepository(db), cache, time.Minute, zerolog.Nop())
	req := dto.DashboardStatsRequest{From: "2024-03-01", To: "2024-03-31"}

	first, err := svc.Stats(context.Background(), req)
	require.NoError(t, err)
	require.EqualValues(t, 2, first.TotalStudents)

	// Wipe the tables; the cached payload must still be served.
	require.NoError(t, db.Where("1 = 1").Delete(&models.AttendanceRecord{}).Error)
	require.NoError(t, db.Where("1 = 1").Delete(&models.Student{}).Error)

	second, err := svc.Stats(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestDashboardServiceRejectsMissingRange(t *testing.T) {
	svc := NewDashboardService(nil, nil, time.Minute, zerolog.Nop())

	_, err := svc.Stats(context.Background(), dto.DashboardStatsRequest{From: "2024-03-01"})
	require.ErrorIs(t, err, ErrInvalidDateRange)

	_, err = svc.Stats(context.Background(), dto.DashboardStatsRequest{From: "yesterday", To: "today"})
	require.ErrorIs(t, err, ErrInvalidDateRange)

	defaults := svc.DefaultRange()
	require.Len(t, defaults.From, 10)
	require.Len(t, defaults.To, 10)
	require.Less(t, defaults.From, defaults.To)
}
