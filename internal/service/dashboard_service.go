package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/edusuite/attendance-api/internal/dto"
	"github.com/edusuite/attendance-api/internal/repository"
)

// ErrInvalidDateRange indicates from/to were missing or malformed.
var ErrInvalidDateRange = errors.New("invalid date range provided")

// DashboardService aggregates the attendance trends shown on the dashboard.
type DashboardService interface {
	Stats(ctx context.Context, req dto.DashboardStatsRequest) (dto.DashboardStatsResponse, error)
	DefaultRange() dto.DateRange
}

type dashboardService struct {
	stats    repository.StatsRepository
	cache    *redis.Client
	cacheTTL time.Duration
	logger   zerolog.Logger
	now      func() time.Time
}

// NewDashboardService builds the dashboard aggregator. The redis client is
// optional; without it every call hits the database directly.
func NewDashboardService(stats repository.StatsRepository, cache *redis.Client, ttl time.Duration, logger zerolog.Logger) DashboardService {
	return &dashboardService{
		stats:    stats,
		cache:    cache,
		cacheTTL: ttl,
		logger:   logger.With().Str("component", "dashboard_service").Logger(),
		now:      time.Now,
	}
}

// DefaultRange suggests the current calendar month to callers that omitted
// a date range.
func (s *dashboardService) DefaultRange() dto.DateRange {
	now := s.now()
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	return dto.DateRange{
		From: first.Format("2006-01-02"),
		To:   last.Format("2006-01-02"),
	}
}

func (s *dashboardService) Stats(ctx context.Context, req dto.DashboardStatsRequest) (dto.DashboardStatsResponse, error) {
	from := strings.TrimSpace(req.From)
	to := strings.TrimSpace(req.To)
	if from == "" || to == "" {
		return dto.DashboardStatsResponse{}, ErrInvalidDateRange
	}
	if _, err := time.Parse("2006-01-02", from); err != nil {
		return dto.DashboardStatsResponse{}, ErrInvalidDateRange
	}
	if _, err := time.Parse("2006-01-02", to); err != nil {
		return dto.DashboardStatsResponse{}, ErrInvalidDateRange
	}

	department := strings.TrimSpace(req.Department)
	if department == FilterAll {
		department = ""
	}

	cacheKey := fmt.Sprintf("dashboard:stats:%s:%s:%s", from, to, department)

	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, cacheKey).Result(); err == nil {
			var response dto.DashboardStatsResponse
			if unmarshalErr := json.Unmarshal([]byte(cached), &response); unmarshalErr == nil {
				s.logger.Debug().Str("key", cacheKey).Msg("dashboard cache hit")
				return response, nil
			}
		} else if err != redis.Nil {
			s.logger.Warn().Err(err).Msg("failed to read dashboard cache")
		}
	}

	response, err := s.buildStats(ctx, from, to, department)
	if err != nil {
		return dto.DashboardStatsResponse{}, err
	}

	if s.cache != nil {
		if payload, err := json.Marshal(response); err == nil {
			if err := s.cache.Set(ctx, cacheKey, payload, s.cacheTTL).Err(); err != nil {
				s.logger.Warn().Err(err).Msg("failed to store dashboard cache")
			}
		}
	}

	return response, nil
}

func (s *dashboardService) buildStats(ctx context.Context, from, to, department string) (dto.DashboardStatsResponse, error) {
	totalStudents, err := s.stats.CountStudents(ctx, department)
	if err != nil {
		return dto.DashboardStatsResponse{}, err
	}

	presence, err := s.stats.Presence(ctx, from, to, department)
	if err != nil {
		return dto.DashboardStatsResponse{}, err
	}

	trend, err := s.stats.Trend(ctx, from, to, department)
	if err != nil {
		return dto.DashboardStatsResponse{}, err
	}

	departmentRows, err := s.stats.DepartmentStats(ctx, from, to)
	if err != nil {
		return dto.DashboardStatsResponse{}, err
	}

	campusRows, err := s.stats.CampusStats(ctx, from, to)
	if err != nil {
		return dto.DashboardStatsResponse{}, err
	}

	response := dto.DashboardStatsResponse{
		TotalStudents: totalStudents,
		TodayStats: dto.PresenceSummary{
			Present: presence.Present,
			Total:   presence.Total,
			Late:    presence.Late,
		},
		TrendData:       make([]dto.TrendPoint, 0, len(trend)),
		DepartmentStats: make([]dto.DepartmentStat, 0, len(departmentRows)),
		CampusStats:     make([]dto.CampusStat, 0, len(campusRows)),
	}

	for _, row := range trend {
		response.TrendData = append(response.TrendData, dto.TrendPoint{
			Date:    row.Date,
			Present: row.Present,
			Absent:  row.Absent,
			Total:   row.Total,
		})
	}

	for _, row := range departmentRows {
		totalDays := row.TotalDays
		if totalDays == 0 {
			totalDays = 1
		}

		rate := 0.0
		if row.Total > 0 {
			rate = float64(row.Present) / (float64(row.Total) * float64(totalDays)) * 100
		}

		response.DepartmentStats = append(response.DepartmentStats, dto.DepartmentStat{
			Department:     row.Department,
			Category:       row.Category,
			Total:          row.Total,
			Present:        row.Present,
			TotalDays:      totalDays,
			AttendanceRate: rate,
		})
	}

	for _, row := range campusRows {
		response.CampusStats = append(response.CampusStats, dto.CampusStat{
			Campus:  row.Campus,
			Total:   row.Total,
			Present: row.Present,
		})
	}

	return response, nil
}
