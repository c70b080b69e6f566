package service

import (
	"context"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/edusuite/attendance-api/internal/dto"
	"github.com/edusuite/attendance-api/internal/models"
	"github.com/edusuite/attendance-api/internal/repository"
)

func newStudentService(t *testing.T, db *gorm.DB) StudentService {
	t.Helper()

	validate := validator.New(validator.WithRequiredStructEnabled())
	return NewStudentService(repository.NewStudentRepository(db), validate, zerolog.Nop())
}

func strPtr(v string) *string { return &v }

func TestStudentServiceCreateRejectsDuplicateMatricule(t *testing.T) {
	db := newTestDB(t)
	svc := newStudentService(t, db)
	seedRoster(t, db)

	req := dto.CreateStudentRequest{
		Matricule: "CM00001", Name: "Someone Else", Level: "100",
		Address: "Yaounde", Contact: "+237650000009",
		DepartmentID: 1, CampusID: 1,
	}
	_, err := svc.Create(context.Background(), req)
	require.ErrorIs(t, err, ErrMatriculeTaken)

	var count int64
	require.NoError(t, db.Model(&models.Student{}).Where("matricule = ?", "CM00001").Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestStudentServiceCreateSanitizesFreeText(t *testing.T) {
	db := newTestDB(t)
	svc := newStudentService(t, db)
	seedRoster(t, db)

	created, err := svc.Create(context.Background(), dto.CreateStudentRequest{
		Matricule: "CM00042",
		Name:      "<script>alert(1)</script>Clean Name",
		Level:     "100",
		Address:   "<b>Bonaberi</b>",
		Contact:   "+237650000042",
		DepartmentID: 1, CampusID: 1,
	})
	require.NoError(t, err)
	require.Equal(t, "Clean Name", created.Name)
	require.Equal(t, "Bonaberi", created.Address)
}

func TestStudentServiceCreateValidation(t *testing.T) {
	db := newTestDB(t)
	svc := newStudentService(t, db)

	_, err := svc.Create(context.Background(), dto.CreateStudentRequest{Name: "No Matricule"})
	var validationErrors validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrors)
}

func TestStudentServiceUpdatePartialPatch(t *testing.T) {
	db := newTestDB(t)
	svc := newStudentService(t, db)
	studentA, studentB := seedRoster(t, db)

	updated, err := svc.Update(context.Background(), studentA.ID, dto.UpdateStudentRequest{
		Level:   strPtr("400"),
		Contact: strPtr("+237651111111"),
	})
	require.NoError(t, err)
	require.Equal(t, "400", updated.Level)
	require.Equal(t, "+237651111111", updated.Contact)
	require.Equal(t, studentA.Name, updated.Name)

	// Claiming another student's matricule is a conflict.
	_, err = svc.Update(context.Background(), studentA.ID, dto.UpdateStudentRequest{
		Matricule: strPtr(studentB.Matricule),
	})
	require.ErrorIs(t, err, ErrMatriculeTaken)

	// Re-submitting the student's own matricule is not.
	_, err = svc.Update(context.Background(), studentA.ID, dto.UpdateStudentRequest{
		Matricule: strPtr(studentA.Matricule),
	})
	require.NoError(t, err)
}

func TestStudentServiceUpdateMissingStudent(t *testing.T) {
	db := newTestDB(t)
	svc := newStudentService(t, db)

	_, err := svc.Update(context.Background(), 404, dto.UpdateStudentRequest{Name: strPtr("Ghost")})
	require.ErrorIs(t, err, ErrStudentNotFound)
}

func TestStudentServiceDeletePurgesAttendance(t *testing.T) {
	db := newTestDB(t)
	svc := newStudentService(t, db)
	attendanceSvc := newAttendanceService(t, db)
	studentA, _ := seedRoster(t, db)

	_, err := attendanceSvc.Mark(context.Background(), dto.MarkAttendanceRequest{
		StudentID: studentA.ID, Day: "5", Month: 3, Year: 2024, Present: boolPtr(true),
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), studentA.ID))

	var records int64
	require.NoError(t, db.Model(&models.AttendanceRecord{}).Where("student_id = ?", studentA.ID).Count(&records).Error)
	require.EqualValues(t, 0, records)

	require.ErrorIs(t, svc.Delete(context.Background(), studentA.ID), ErrStudentNotFound)
}

func TestStudentServiceListDecorated(t *testing.T) {
	db := newTestDB(t)
	svc := newStudentService(t, db)
	seedRoster(t, db)

	students, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, students, 2)
	// Sorted by name ascending, decorated via left joins.
	require.Equal(t, "Student A", students[0].Name)
	require.NotNil(t, students[0].DepartmentName)
	require.Equal(t, "Software Engineering", *students[0].DepartmentName)
	require.NotNil(t, students[0].DepartmentCategory)
	require.Equal(t, "Engineering", *students[0].DepartmentCategory)
	require.NotNil(t, students[0].CampusName)
	require.Equal(t, "Bonaberi", *students[0].CampusName)
}
