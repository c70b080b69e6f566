package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/edusuite/attendance-api/internal/models"
)

// StudentDetail is a student row decorated with department and campus
// names for list and detail views.
type StudentDetail struct {
	ID                 uint    `json:"id"`
	Matricule          string  `json:"matricule"`
	Name               string  `json:"name"`
	Level              string  `json:"level"`
	Address            string  `json:"address"`
	Contact            string  `json:"contact"`
	DepartmentID       uint    `json:"departmentId"`
	CampusID           uint    `json:"campusId"`
	DepartmentName     *string `json:"departmentName"`
	DepartmentCategory *string `json:"departmentCategory"`
	CampusName         *string `json:"campusName"`
}

// StudentRepository provides access to the student collection.
type StudentRepository interface {
	ListDetailed(ctx context.Context) ([]StudentDetail, error)
	GetDetailed(ctx context.Context, id uint) (StudentDetail, error)
	GetByID(ctx context.Context, id uint) (models.Student, error)
	FindByMatricule(ctx context.Context, matricule string) (models.Student, error)
	Create(ctx context.Context, student *models.Student) error
	Update(ctx context.Context, id uint, updates map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
}

type studentRepository struct {
	db *gorm.DB
}

// NewStudentRepository constructs a student repository.
func NewStudentRepository(db *gorm.DB) StudentRepository {
	return &studentRepository{db: db}
}

func (r *studentRepository) detailQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("students").
		Select("students.id, students.matricule, students.name, students.level, " +
			"students.address, students.contact, students.department_id, students.campus_id, " +
			"departments.name AS department_name, departments.category AS department_category, " +
			"campuses.name AS campus_name").
		Joins("LEFT JOIN departments ON departments.id = students.department_id").
		Joins("LEFT JOIN campuses ON campuses.id = students.campus_id")
}

func (r *studentRepository) ListDetailed(ctx context.Context) ([]StudentDetail, error) {
	details := make([]StudentDetail, 0)
	if err := r.detailQuery(ctx).Order("students.name ASC").Scan(&details).Error; err != nil {
		return nil, err
	}

	return details, nil
}

func (r *studentRepository) GetDetailed(ctx context.Context, id uint) (StudentDetail, error) {
	var detail StudentDetail
	result := r.detailQuery(ctx).Where("students.id = ?", id).Limit(1).Scan(&detail)
	if result.Error != nil {
		return StudentDetail{}, result.Error
	}
	if result.RowsAffected == 0 {
		return StudentDetail{}, gorm.ErrRecordNotFound
	}

	return detail, nil
}

func (r *studentRepository) GetByID(ctx context.Context, id uint) (models.Student, error) {
	var student models.Student
	if err := r.db.WithContext(ctx).First(&student, id).Error; err != nil {
		return models.Student{}, err
	}

	return student, nil
}

func (r *studentRepository) FindByMatricule(ctx context.Context, matricule string) (models.Student, error) {
	var student models.Student
	if err := r.db.WithContext(ctx).Where("matricule = ?", matricule).First(&student).Error; err != nil {
		return models.Student{}, err
	}

	return student, nil
}

func (r *studentRepository) Create(ctx context.Context, student *models.Student) error {
	return r.db.WithContext(ctx).Create(student).Error
}

func (r *studentRepository) Update(ctx context.Context, id uint, updates map[string]interface{}) error {
	result := r.db.WithContext(ctx).
		Model(&models.Student{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

// Delete removes the student and any attendance rows referencing them in one
// transaction, so no orphaned marks survive the deletion.
func (r *studentRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("student_id = ?", id).Delete(&models.AttendanceRecord{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.Student{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		return nil
	})
}
