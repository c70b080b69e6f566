package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"
)

// RosterEntry is a student decorated with department and campus names via
// left joins. The names are nil when the referenced row does not exist.
type RosterEntry struct {
	ID             uint    `json:"id"`
	Name           string  `json:"name"`
	Matricule      string  `json:"matricule"`
	Level          string  `json:"level"`
	DepartmentID   uint    `json:"departmentId"`
	CampusID       uint    `json:"campusId"`
	DepartmentName *string `json:"departmentName"`
	CampusName     *string `json:"campusName"`
}

// RosterFilter is the normalized output of the filter compiler. Zero-value
// fields mean "not filtered"; the compiler has already discarded malformed
// input, so every set field is safe to apply.
type RosterFilter struct {
	Name         string
	Level        string
	DepartmentID *uint
	CampusID     *uint
}

type rosterPredicate struct {
	expr string
	args []interface{}
}

// predicates expands the filter into its conjunctive conditions. Each
// builder contributes at most one predicate; the query folds them with AND.
func (f RosterFilter) predicates() []rosterPredicate {
	var preds []rosterPredicate

	if f.Name != "" {
		like := "%" + strings.ToLower(f.Name) + "%"
		preds = append(preds, rosterPredicate{expr: "LOWER(students.name) LIKE ?", args: []interface{}{like}})
	}
	if f.Level != "" {
		preds = append(preds, rosterPredicate{expr: "students.level = ?", args: []interface{}{f.Level}})
	}
	if f.DepartmentID != nil {
		preds = append(preds, rosterPredicate{expr: "students.department_id = ?", args: []interface{}{*f.DepartmentID}})
	}
	if f.CampusID != nil {
		preds = append(preds, rosterPredicate{expr: "students.campus_id = ?", args: []interface{}{*f.CampusID}})
	}

	return preds
}

// RosterRepository resolves the filtered student population that attendance
// queries run against.
type RosterRepository interface {
	List(ctx context.Context, filter RosterFilter) ([]RosterEntry, error)
}

type rosterRepository struct {
	db *gorm.DB
}

// NewRosterRepository constructs a roster repository.
func NewRosterRepository(db *gorm.DB) RosterRepository {
	return &rosterRepository{db: db}
}

func (r *rosterRepository) List(ctx context.Context, filter RosterFilter) ([]RosterEntry, error) {
	query := r.db.WithContext(ctx).
		Table("students").
		Select("students.id, students.name, students.matricule, students.level, " +
			"students.department_id, students.campus_id, " +
			"departments.name AS department_name, campuses.name AS campus_name").
		Joins("LEFT JOIN departments ON departments.id = students.department_id").
		Joins("LEFT JOIN campuses ON campuses.id = students.campus_id")

	for _, pred := range filter.predicates() {
		query = query.Where(pred.expr, pred.args...)
	}

	entries := make([]RosterEntry, 0)
	if err := query.Order("students.name ASC").Scan(&entries).Error; err != nil {
		return nil, err
	}

	return entries, nil
}
