package models

// Department groups students by field of study, e.g. "Software Engineering".
type Department struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"size:255;not null" json:"name"`
	Category string `gorm:"size:255;not null" json:"category"`
}

// CampusDepartment links a department to a campus offering it.
type CampusDepartment struct {
	ID           uint `gorm:"primaryKey" json:"id"`
	CampusID     uint `gorm:"not null;index" json:"campusId"`
	DepartmentID uint `gorm:"not null;index" json:"departmentId"`
}

// TableName pins the join table name used by the legacy schema.
func (CampusDepartment) TableName() string {
	return "campus_departments"
}
