package dto

// AttendanceQuery carries the raw, unvalidated filter values from the query
// string. Every field is optional and may hold the sentinel "all".
type AttendanceQuery struct {
	StudentName  string
	Level        string
	DepartmentID string
	CampusID     string
	Month        string
	Year         string
}

// ReconciledAttendanceRow is one roster member's attendance state for a
// period. Record-backed rows carry ID/Day/Present; placeholder rows for
// students without any record in the period leave them null.
type ReconciledAttendanceRow struct {
	ID             *uint   `json:"id,omitempty"`
	StudentID      uint    `json:"studentId"`
	Name           string  `json:"name"`
	Matricule      string  `json:"matricule"`
	Level          string  `json:"level"`
	DepartmentID   uint    `json:"departmentId"`
	DepartmentName *string `json:"departmentName"`
	CampusID       uint    `json:"campusId"`
	CampusName     *string `json:"campusName"`
	Day            *string `json:"day"`
	Present        *bool   `json:"present"`
	Month          *int    `json:"month"`
	Year           *int    `json:"year"`
}

// MarkAttendanceRequest is the payload for marking a single student's
// presence on a single day. Present is a pointer so an explicit false
// still satisfies the required rule.
type MarkAttendanceRequest struct {
	StudentID uint   `json:"studentId" validate:"required"`
	Day       string `json:"day" validate:"required"`
	Month     int    `json:"month" validate:"required,min=1,max=12"`
	Year      int    `json:"year" validate:"required"`
	Present   *bool  `json:"present" validate:"required"`
}

// UnmarkAttendanceRequest addresses a record either directly by ID or by
// the (student, day, MM/YYYY date) triple.
type UnmarkAttendanceRequest struct {
	ID        string
	StudentID string
	Day       string
	Date      string
}

// AttendanceRecordResponse is the decorated record returned after a mark,
// reflecting the student's current roster data.
type AttendanceRecordResponse struct {
	ID             uint   `json:"id"`
	StudentID      uint   `json:"studentId"`
	Name           string `json:"name"`
	Matricule      string `json:"matricule"`
	Level          string `json:"level"`
	DepartmentID   uint   `json:"departmentId"`
	DepartmentName string `json:"departmentName"`
	CampusID       uint   `json:"campusId"`
	CampusName     string `json:"campusName"`
	Day            string `json:"day"`
	Present        bool   `json:"present"`
	Month          *int   `json:"month"`
	Year           *int   `json:"year"`
}
