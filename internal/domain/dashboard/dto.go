package dashboard

import (
	"context"
	"time"

	"github.com/zenstaff/attendance-backend-go/internal/domain/report"
)

// DayStats summarizes a single day across every tracked employee. Unlike the
// period engine, unmarked past working days fold into AbsentCount here: the
// dashboard shows who is missing, the reports show who was marked.
type DayStats struct {
	Date         string  `json:"date"`
	IsHoliday    bool    `json:"isHoliday"`
	HolidayName  *string `json:"holidayName,omitempty"`
	TotalTracked int     `json:"totalTracked"`
	PresentCount int     `json:"presentCount"`
	LateCount    int     `json:"lateCount"`
	AbsentCount  int     `json:"absentCount"`
}

// EmployeeRow pairs an employee with their month-to-date summary.
type EmployeeRow struct {
	EmployeeID   string               `json:"employeeId"`
	EmployeeName string               `json:"employeeName"`
	Summary      report.PeriodSummary `json:"summary"`
}

type DashboardResponse struct {
	Day       DayStats      `json:"day"`
	Employees []EmployeeRow `json:"employees"`
}

// DashboardService defines the admin landing-page aggregate.
type DashboardService interface {
	GetDashboard(ctx context.Context, date string, now time.Time) (DashboardResponse, error)
}
