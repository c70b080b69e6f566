package dto

// DashboardStatsRequest scopes the dashboard aggregates to a date range and
// an optional department name ("all" means no department filter).
type DashboardStatsRequest struct {
	From       string
	To         string
	Department string
}

// PresenceSummary aggregates presence marks over the requested range.
type PresenceSummary struct {
	Present int64 `json:"present"`
	Total   int64 `json:"total"`
	Late    int64 `json:"late"`
}

// TrendPoint is one day's presence totals.
type TrendPoint struct {
	Date    string `json:"date"`
	Present int64  `json:"present"`
	Absent  int64  `json:"absent"`
	Total   int64  `json:"total"`
}

// DepartmentStat summarises one department over the range.
type DepartmentStat struct {
	Department     string  `json:"department"`
	Category       string  `json:"category"`
	Total          int64   `json:"total"`
	Present        int64   `json:"present"`
	TotalDays      int64   `json:"total_days"`
	AttendanceRate float64 `json:"attendance_rate"`
}

// CampusStat summarises one campus over the range.
type CampusStat struct {
	Campus  string `json:"campus"`
	Total   int64  `json:"total"`
	Present int64  `json:"present"`
}

// DashboardStatsResponse is the full dashboard payload.
type DashboardStatsResponse struct {
	TotalStudents   int64            `json:"totalStudents"`
	TodayStats      PresenceSummary  `json:"todayStats"`
	TrendData       []TrendPoint     `json:"trendData"`
	DepartmentStats []DepartmentStat `json:"departmentStats"`
	CampusStats     []CampusStat     `json:"campusStats"`
}

// DateRange names a default period suggested to callers that omitted one.
type DateRange struct {
	From string `json:"from"`
	To   string `json:"to"`
}
