package models

// Campus is a physical school site students are enrolled at.
type Campus struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"size:255;not null" json:"name"`
	Address string `gorm:"size:255;not null" json:"address"`
}

// TableName pins the plural table name used by the legacy schema.
func (Campus) TableName() string {
	return "campuses"
}
