package dto

// LevelOption is the shape filter dropdowns expect for academic levels.
type LevelOption struct {
	Level string `json:"level"`
}

// SeedSummary reports how many rows each seeded table received.
type SeedSummary struct {
	Campuses    int `json:"campuses"`
	Departments int `json:"departments"`
	Levels      int `json:"levels"`
	Students    int `json:"students"`
}
