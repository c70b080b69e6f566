package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/edusuite/attendance-api/internal/models"
)

// AttendancePeriod scopes a record query to a single month.
type AttendancePeriod struct {
	Month int
	Year  int
}

// AttendanceKey is the composite key a mark addresses. Day stays a string
// to match the stored column.
type AttendanceKey struct {
	StudentID uint
	Day       string
	Month     int
	Year      int
}

// AttendanceRepository persists presence marks.
type AttendanceRepository interface {
	ListForStudents(ctx context.Context, studentIDs []uint, period *AttendancePeriod) ([]models.AttendanceRecord, error)
	Upsert(ctx context.Context, key AttendanceKey, present bool, date string) (models.AttendanceRecord, error)
	DeleteByID(ctx context.Context, id uint) error
	DeleteByKey(ctx context.Context, key AttendanceKey) error
}

type attendanceRepository struct {
	db *gorm.DB
}

// NewAttendanceRepository constructs an attendance repository.
func NewAttendanceRepository(db *gorm.DB) AttendanceRepository {
	return &attendanceRepository{db: db}
}

func (r *attendanceRepository) ListForStudents(ctx context.Context, studentIDs []uint, period *AttendancePeriod) ([]models.AttendanceRecord, error) {
	if len(studentIDs) == 0 {
		return []models.AttendanceRecord{}, nil
	}

	query := r.db.WithContext(ctx).Model(&models.AttendanceRecord{})

	// Single-value equality lets the planner use the index directly; the
	// set-membership form is semantically identical.
	if len(studentIDs) == 1 {
		query = query.Where("student_id = ?", studentIDs[0])
	} else {
		query = query.Where("student_id IN ?", studentIDs)
	}

	if period != nil {
		query = query.Where("month = ? AND year = ?", period.Month, period.Year)
	}

	records := make([]models.AttendanceRecord, 0)
	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}

	return records, nil
}

// Upsert updates the present flag of the record matching the key, or inserts
// a new record when none exists. The lookup and write run in one transaction
// so concurrent marks for the same key cannot produce duplicate rows.
func (r *attendanceRepository) Upsert(ctx context.Context, key AttendanceKey, present bool, date string) (models.AttendanceRecord, error) {
	var record models.AttendanceRecord

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("student_id = ? AND day = ? AND month = ? AND year = ?",
			key.StudentID, key.Day, key.Month, key.Year).
			First(&record).Error

		switch {
		case err == nil:
			record.Present = present
			return tx.Model(&record).Update("present", present).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			month := key.Month
			year := key.Year
			record = models.AttendanceRecord{
				StudentID: key.StudentID,
				Present:   present,
				Day:       key.Day,
				Date:      date,
				Month:     &month,
				Year:      &year,
			}
			return tx.Create(&record).Error
		default:
			return err
		}
	})
	if err != nil {
		return models.AttendanceRecord{}, err
	}

	return record, nil
}

func (r *attendanceRepository) DeleteByID(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.AttendanceRecord{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *attendanceRepository) DeleteByKey(ctx context.Context, key AttendanceKey) error {
	result := r.db.WithContext(ctx).
		Where("student_id = ? AND day = ? AND month = ? AND year = ?",
			key.StudentID, key.Day, key.Month, key.Year).
		Delete(&models.AttendanceRecord{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
