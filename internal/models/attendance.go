package models

// AttendanceRecord stores one presence mark for a student on a given day.
// Day is kept as text to match the legacy store ("5" and "05" are distinct
// keys there); Date is a display string and never part of the key.
// The composite unique index makes the one-record-per-key invariant
// database-enforced rather than advisory.
type AttendanceRecord struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	StudentID uint   `gorm:"not null;uniqueIndex:idx_attendance_key" json:"studentId"`
	Present   bool   `gorm:"not null;default:false" json:"present"`
	Day       string `gorm:"size:8;not null;uniqueIndex:idx_attendance_key" json:"day"`
	Date      string `gorm:"size:16;not null" json:"date"`
	Month     *int   `gorm:"uniqueIndex:idx_attendance_key" json:"month"`
	Year      *int   `gorm:"uniqueIndex:idx_attendance_key" json:"year"`
}

// TableName pins the singular table name used by the legacy schema.
func (AttendanceRecord) TableName() string {
	return "attendance"
}
