package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/edusuite/attendance-api/internal/dto"
	"github.com/edusuite/attendance-api/internal/models"
)

var (
	// ErrSeedDisabled indicates the seeding endpoint is disabled by configuration.
	ErrSeedDisabled = errors.New("seeding is disabled")
	// ErrSeedUnauthorized indicates the provided token is invalid.
	ErrSeedUnauthorized = errors.New("invalid seed token")
)

// SeedService installs the demo dataset used for local development and
// evaluation environments.
type SeedService interface {
	Seed(ctx context.Context, token string) (dto.SeedSummary, error)
}

type seedService struct {
	db      *gorm.DB
	enabled bool
	token   string
	logger  zerolog.Logger
}

// NewSeedService constructs the seeding service.
func NewSeedService(db *gorm.DB, enabled bool, token string, logger zerolog.Logger) SeedService {
	return &seedService{
		db:      db,
		enabled: enabled,
		token:   token,
		logger:  logger.With().Str("component", "seed_service").Logger(),
	}
}

var seedCampuses = []models.Campus{
	{Name: "Bonaberi", Address: "Bonaberi, Douala"},
	{Name: "Bonamousadi", Address: "Kamga Area, Bonamousadi"},
	{Name: "Yaounde", Address: "Yaounde Central"},
	{Name: "Bamenda", Address: "Bamenda Main Campus"},
}

var seedDepartments = map[string][]string{
	"Engineering": {"Software Engineering", "Network and Security", "MIT", "EPS"},
	"Medical":     {"Medicine", "Pharmacy", "Nursing", "Laboratory Science"},
}

var seedLevels = []string{"100", "200", "300", "400", "Masters 1", "Masters 2"}

var seedStudentNames = []string{
	"Achu Terence", "Bih Claudine", "Chi Emmanuel", "Diane Mbango", "Ekema Paul",
	"Fon Larissa", "Gwan Collins", "Halima Sadia", "Itoe Bertrand", "Juliette Ngwa",
	"Kange Maxwell", "Limunga Esther", "Mbah Derick", "Ndi Vanessa", "Ojong Brice",
	"Penn Melanie", "Quinta Ashu", "Ransom Tabe", "Sirri Gladys", "Tanyi Godlove",
	"Ude Prosper", "Vera Anyangwe", "Wirba Joel", "Yaah Blessing", "Zang Aurelien",
	"Abang Rita", "Besong Kevin", "Che Noela", "Doh Cedric", "Enow Marcelle",
	"Fru Delphine", "Gana Stephen", "Akame Lionel", "Injoh Patience", "Jua Raymond",
	"Koge Adeline", "Lobe Herman", "Mofor Brenda", "Njie Solange", "Orock Fabrice",
}

// Seed wipes and repopulates the reference tables and students. Attendance
// is left empty so marking starts from a clean slate.
func (s *seedService) Seed(ctx context.Context, token string) (dto.SeedSummary, error) {
	if !s.enabled {
		return dto.SeedSummary{}, ErrSeedDisabled
	}
	if token == "" || token != s.token {
		return dto.SeedSummary{}, ErrSeedUnauthorized
	}

	var summary dto.SeedSummary

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, table := range []interface{}{
			&models.AttendanceRecord{}, &models.Student{}, &models.CampusDepartment{},
			&models.Level{}, &models.Department{}, &models.Campus{},
		} {
			if err := tx.Where("1 = 1").Delete(table).Error; err != nil {
				return err
			}
		}

		campuses := make([]models.Campus, len(seedCampuses))
		copy(campuses, seedCampuses)
		if err := tx.Create(&campuses).Error; err != nil {
			return err
		}
		summary.Campuses = len(campuses)

		departments := make([]models.Department, 0)
		for category, names := range seedDepartments {
			for _, name := range names {
				departments = append(departments, models.Department{Name: name, Category: category})
			}
		}
		if err := tx.Create(&departments).Error; err != nil {
			return err
		}
		summary.Departments = len(departments)

		// Every campus offers every seeded department.
		links := make([]models.CampusDepartment, 0, len(campuses)*len(departments))
		for _, campus := range campuses {
			for _, department := range departments {
				links = append(links, models.CampusDepartment{CampusID: campus.ID, DepartmentID: department.ID})
			}
		}
		if err := tx.Create(&links).Error; err != nil {
			return err
		}

		levels := make([]models.Level, 0, len(seedLevels))
		for _, label := range seedLevels {
			levels = append(levels, models.Level{Level: label})
		}
		if err := tx.Create(&levels).Error; err != nil {
			return err
		}
		summary.Levels = len(levels)

		students := make([]models.Student, 0, len(seedStudentNames))
		for i, name := range seedStudentNames {
			campus := campuses[i%len(campuses)]
			department := departments[i%len(departments)]
			level := seedLevels[i%len(seedLevels)]
			students = append(students, models.Student{
				Matricule:    fmt.Sprintf("CM%05d", i+1),
				Name:         name,
				Level:        level,
				Address:      campus.Address,
				Contact:      fmt.Sprintf("+2376%08d", 70000000+i),
				DepartmentID: department.ID,
				CampusID:     campus.ID,
			})
		}
		if err := tx.Create(&students).Error; err != nil {
			return err
		}
		summary.Students = len(students)

		return nil
	})
	if err != nil {
		return dto.SeedSummary{}, err
	}

	s.logger.Info().
		Int("campuses", summary.Campuses).
		Int("departments", summary.Departments).
		Int("levels", summary.Levels).
		Int("students", summary.Students).
		Msg("demo dataset seeded")

	return summary, nil
}
