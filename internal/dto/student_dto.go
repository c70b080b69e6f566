package dto

// StudentResponse decorates a student with department and campus names.
// The decoration comes from left joins, so the names are null when the
// referenced row is missing.
type StudentResponse struct {
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

// CreateStudentRequest is the payload for enrolling a new student.
type CreateStudentRequest struct {
	Matricule    string `json:"matricule" validate:"required"`
	Name         string `json:"name" validate:"required"`
	Level        string `json:"level" validate:"required"`
	Address      string `json:"address" validate:"required"`
	Contact      string `json:"contact" validate:"required"`
	DepartmentID uint   `json:"departmentId" validate:"required"`
	CampusID     uint   `json:"campusId" validate:"required"`
}

// UpdateStudentRequest patches a subset of student fields.
type UpdateStudentRequest struct {
	Matricule    *string `json:"matricule"`
	Name         *string `json:"name"`
	Level        *string `json:"level"`
	Address      *string `json:"address"`
	Contact      *string `json:"contact"`
	DepartmentID *uint   `json:"departmentId"`
	CampusID     *uint   `json:"campusId"`
}
