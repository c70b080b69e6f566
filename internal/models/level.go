package models

// Level enumerates the academic levels offered (100, 200, ...).
// Students reference the label as plain text, not by foreign key, so
// level filters are opaque string matches.
type Level struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Level string `gorm:"size:64;not null" json:"level"`
}
