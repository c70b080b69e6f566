package repository

import (
	"context"

	"gorm.io/gorm"
)

// PresenceRow aggregates presence marks for a population and date range.
type PresenceRow struct {
	Present int64
	Total   int64
	Late    int64
}

// TrendRow is one calendar day's aggregated marks.
type TrendRow struct {
	Date    string
	Present int64
	Absent  int64
	Total   int64
}

// DepartmentStatRow aggregates marks per department over a date range.
type DepartmentStatRow struct {
	Department string
	Category   string
	Total      int64
	Present    int64
	TotalDays  int64
}

// CampusStatRow aggregates marks per campus over a date range.
type CampusStatRow struct {
	Campus  string
	Total   int64
	Present int64
}

// StatsRepository supplies the aggregate counts behind the dashboard.
type StatsRepository interface {
	CountStudents(ctx context.Context, department string) (int64, error)
	Presence(ctx context.Context, from, to, department string) (PresenceRow, error)
	Trend(ctx context.Context, from, to, department string) ([]TrendRow, error)
	DepartmentStats(ctx context.Context, from, to string) ([]DepartmentStatRow, error)
	CampusStats(ctx context.Context, from, to string) ([]CampusStatRow, error)
}

type statsRepository struct {
	db *gorm.DB
}

// NewStatsRepository constructs a stats repository.
func NewStatsRepository(db *gorm.DB) StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) CountStudents(ctx context.Context, department string) (int64, error) {
	query := r.db.WithContext(ctx).
		Table("students").
		Joins("LEFT JOIN departments ON departments.id = students.department_id")
	if department != "" {
		query = query.Where("departments.name = ?", department)
	}

	var count int64
	err := query.Count(&count).Error
	return count, err
}

func (r *statsRepository) Presence(ctx context.Context, from, to, department string) (PresenceRow, error) {
	query := r.db.WithContext(ctx).
		Table("students").
		Select("COUNT(CASE WHEN attendance.present = ? THEN 1 END) AS present, "+
			"COUNT(DISTINCT students.id) AS total, "+
			"COUNT(CASE WHEN attendance.present = ? THEN 1 END) AS late", true, false).
		Joins("LEFT JOIN departments ON departments.id = students.department_id").
		Joins("LEFT JOIN attendance ON attendance.student_id = students.id AND attendance.date BETWEEN ? AND ?", from, to)
	if department != "" {
		query = query.Where("departments.name = ?", department)
	}

	var row PresenceRow
	err := query.Scan(&row).Error
	return row, err
}

func (r *statsRepository) Trend(ctx context.Context, from, to, department string) ([]TrendRow, error) {
	query := r.db.WithContext(ctx).
		Table("attendance").
		Select("attendance.date AS date, "+
			"COUNT(CASE WHEN attendance.present = ? THEN 1 END) AS present, "+
			"COUNT(CASE WHEN attendance.present = ? THEN 1 END) AS absent, "+
			"COUNT(DISTINCT students.id) AS total", true, false).
		Joins("JOIN students ON students.id = attendance.student_id").
		Joins("LEFT JOIN departments ON departments.id = students.department_id").
		Where("attendance.date BETWEEN ? AND ?", from, to)
	if department != "" {
		query = query.Where("departments.name = ?", department)
	}

	rows := make([]TrendRow, 0)
	err := query.Group("attendance.date").Order("attendance.date ASC").Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	return rows, nil
}

func (r *statsRepository) DepartmentStats(ctx context.Context, from, to string) ([]DepartmentStatRow, error) {
	rows := make([]DepartmentStatRow, 0)
	err := r.db.WithContext(ctx).
		Table("departments").
		Select("departments.name AS department, departments.category AS category, "+
			"COUNT(DISTINCT students.id) AS total, "+
			"COUNT(CASE WHEN attendance.present = ? THEN 1 END) AS present, "+
			"COUNT(DISTINCT attendance.date) AS total_days", true).
		Joins("LEFT JOIN students ON students.department_id = departments.id").
		Joins("LEFT JOIN attendance ON attendance.student_id = students.id AND attendance.date BETWEEN ? AND ?", from, to).
		Group("departments.id, departments.name, departments.category").
		Order("departments.name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	return rows, nil
}

func (r *statsRepository) CampusStats(ctx context.Context, from, to string) ([]CampusStatRow, error) {
	rows := make([]CampusStatRow, 0)
	err := r.db.WithContext(ctx).
		Table("campuses").
		Select("campuses.name AS campus, "+
			"COUNT(DISTINCT students.id) AS total, "+
			"COUNT(CASE WHEN attendance.present = ? THEN 1 END) AS present", true).
		Joins("LEFT JOIN students ON students.campus_id = campuses.id").
		Joins("LEFT JOIN attendance ON attendance.student_id = students.id AND attendance.date BETWEEN ? AND ?", from, to).
		Group("campuses.id, campuses.name").
		Order("campuses.name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	return rows, nil
}
