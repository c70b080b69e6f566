package models

// Student is an enrolled learner whose presence is tracked per day.
// Matricule is the business key and must stay globally unique.
type Student struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Matricule    string `gorm:"size:64;uniqueIndex;not null" json:"matricule"`
	Name         string `gorm:"size:255;not null" json:"name"`
	Level        string `gorm:"size:64;not null" json:"level"`
	Address      string `gorm:"size:255;not null" json:"address"`
	Contact      string `gorm:"size:64;not null" json:"contact"`
	DepartmentID uint   `gorm:"not null;index" json:"departmentId"`
	CampusID     uint   `gorm:"not null;index" json:"campusId"`
}
