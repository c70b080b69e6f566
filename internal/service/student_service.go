package service

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/edusuite/attendance-api/internal/dto"
	"github.com/edusuite/attendance-api/internal/models"
	"github.com/edusuite/attendance-api/internal/repository"
)

// ErrMatriculeTaken indicates the matricule is already assigned to another student.
var ErrMatriculeTaken = errors.New("matricule already exists, please use a different matricule")

// StudentService manages the student collection.
type StudentService interface {
	List(ctx context.Context) ([]dto.StudentResponse, error)
	Get(ctx context.Context, id uint) (dto.StudentResponse, error)
	Create(ctx context.Context, req dto.CreateStudentRequest) (dto.StudentResponse, error)
	Update(ctx context.Context, id uint, req dto.UpdateStudentRequest) (dto.StudentResponse, error)
	Delete(ctx context.Context, id uint) error
}

type studentService struct {
	repo      repository.StudentRepository
	validator *validator.Validate
	sanitizer *bluemonday.Policy
	logger    zerolog.Logger
}

// NewStudentService constructs the student service.
func NewStudentService(repo repository.StudentRepository, validate *validator.Validate, logger zerolog.Logger) StudentService {
	return &studentService{
		repo:      repo,
		validator: validate,
		sanitizer: bluemonday.StrictPolicy(),
		logger:    logger.With().Str("component", "student_service").Logger(),
	}
}

func (s *studentService) List(ctx context.Context) ([]dto.StudentResponse, error) {
	details, err := s.repo.ListDetailed(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.StudentResponse, 0, len(details))
	for _, detail := range details {
		responses = append(responses, studentResponse(detail))
	}

	return responses, nil
}

func (s *studentService) Get(ctx context.Context, id uint) (dto.StudentResponse, error) {
	detail, err := s.repo.GetDetailed(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.StudentResponse{}, ErrStudentNotFound
		}
		return dto.StudentResponse{}, err
	}

	return studentResponse(detail), nil
}

func (s *studentService) Create(ctx context.Context, req dto.CreateStudentRequest) (dto.StudentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return dto.StudentResponse{}, err
	}

	matricule := strings.TrimSpace(req.Matricule)
	if _, err := s.repo.FindByMatricule(ctx, matricule); err == nil {
		return dto.StudentResponse{}, ErrMatriculeTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return dto.StudentResponse{}, err
	}

	student := models.Student{
		Matricule:    matricule,
		Name:         s.clean(req.Name),
		Level:        strings.TrimSpace(req.Level),
		Address:      s.clean(req.Address),
		Contact:      s.clean(req.Contact),
		DepartmentID: req.DepartmentID,
		CampusID:     req.CampusID,
	}
	if err := s.repo.Create(ctx, &student); err != nil {
		return dto.StudentResponse{}, err
	}

	s.logger.Info().Uint("student_id", student.ID).Str("matricule", student.Matricule).Msg("student created")

	return s.Get(ctx, student.ID)
}

func (s *studentService) Update(ctx context.Context, id uint, req dto.UpdateStudentRequest) (dto.StudentResponse, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.StudentResponse{}, ErrStudentNotFound
		}
		return dto.StudentResponse{}, err
	}

	updates := make(map[string]interface{})

	if req.Matricule != nil {
		matricule := strings.TrimSpace(*req.Matricule)
		existing, err := s.repo.FindByMatricule(ctx, matricule)
		if err == nil && existing.ID != id {
			return dto.StudentResponse{}, ErrMatriculeTaken
		}
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.StudentResponse{}, err
		}
		updates["matricule"] = matricule
	}
	if req.Name != nil {
		updates["name"] = s.clean(*req.Name)
	}
	if req.Level != nil {
		updates["level"] = strings.TrimSpace(*req.Level)
	}
	if req.Address != nil {
		updates["address"] = s.clean(*req.Address)
	}
	if req.Contact != nil {
		updates["contact"] = s.clean(*req.Contact)
	}
	if req.DepartmentID != nil {
		updates["department_id"] = *req.DepartmentID
	}
	if req.CampusID != nil {
		updates["campus_id"] = *req.CampusID
	}

	if len(updates) > 0 {
		if err := s.repo.Update(ctx, id, updates); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return dto.StudentResponse{}, ErrStudentNotFound
			}
			return dto.StudentResponse{}, err
		}
	}

	return s.Get(ctx, id)
}

func (s *studentService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrStudentNotFound
		}
		return err
	}

	s.logger.Info().Uint("student_id", id).Msg("student deleted with attendance purged")

	return nil
}

// clean strips any markup from free-text input before it reaches the store.
func (s *studentService) clean(value string) string {
	return strings.TrimSpace(s.sanitizer.Sanitize(value))
}

func studentResponse(detail repository.StudentDetail) dto.StudentResponse {
	return dto.StudentResponse{
		ID:                 detail.ID,
		Matricule:          detail.Matricule,
		Name:               detail.Name,
		Level:              detail.Level,
		Address:            detail.Address,
		Contact:            detail.Contact,
		DepartmentID:       detail.DepartmentID,
		CampusID:           detail.CampusID,
		DepartmentName:     detail.DepartmentName,
		DepartmentCategory: detail.DepartmentCategory,
		CampusName:         detail.CampusName,
	}
}
