package dashboard

import "github.com/shopspring/decimal"

// DashboardStatsResponse aggregates today's state of the company,
// computed from the live record store.
type DashboardStatsResponse struct {
	TotalEmployees    int             `json:"totalEmployees"`
	PresentToday      int             `json:"presentToday"`
	AbsentToday       int             `json:"absentToday"`
	PendingLeaves     int             `json:"pendingLeaves"`
	TotalDepartments  int             `json:"totalDepartments"`
	AverageAttendance int             `json:"averageAttendance"` // percent of active employees present today
	MonthlySalary     decimal.Decimal `json:"monthlySalary"`     // net total for the current period
}
