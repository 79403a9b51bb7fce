// Package entity defines data structures shared by the web layer of the
// staffdir panel.
package entity

// Msg is the standard JSON response shape.
type Msg struct {
	Success bool   `json:"success"`
	Msg     string `json:"msg"`
	Obj     any    `json:"obj"`
}

// ChartData is the payload consumed by the dashboard chart: Data[i] is
// the employee count for the department named Labels[i].
type ChartData struct {
	Labels []string `json:"labels"`
	Data   []int64  `json:"data"`
}

// DashboardSnapshot carries the dashboard totals plus the chart payload.
type DashboardSnapshot struct {
	TotalEmployees   int64     `json:"totalEmployees"`
	TotalDepartments int64     `json:"totalDepartments"`
	ChartData        ChartData `json:"chartData"`
}
