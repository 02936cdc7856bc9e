package models

// Overview holds the global figures over the whole task set.
// Percentages are truncated to whole numbers, 0 when Total is 0.
type Overview struct {
	Total              int `json:"total"`
	Completed          int `json:"completed"`
	Uncompleted        int `json:"uncompleted"`
	UncompletedOverdue int `json:"uncompleted_overdue"`
	UncompletedPct     int `json:"uncompleted_pct"`
	OverduePct         int `json:"overdue_pct"`
}

// UserStats holds one user's figures. AssignedPct is that user's share of
// ALL tasks; the remaining percentages are rates within the user's own
// assigned count. The asymmetry is deliberate and preserved from the
// original report design.
type UserStats struct {
	Username           string `json:"username"`
	Assigned           int    `json:"assigned"`
	Completed          int    `json:"completed"`
	Uncompleted        int    `json:"uncompleted"`
	UncompletedOverdue int    `json:"uncompleted_overdue"`
	AssignedPct        int    `json:"assigned_pct"`
	CompletedPct       int    `json:"completed_pct"`
	UncompletedPct     int    `json:"uncompleted_pct"`
	OverduePct         int    `json:"overdue_pct"`
}
