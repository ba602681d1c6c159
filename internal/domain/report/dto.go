package report

import "github.com/shopspring/decimal"

// Period selects the aggregation window, always ending at the reference
// "now" date.
type Period string

const (
	PeriodMonth   Period = "month"
	PeriodQuarter Period = "quarter"
	PeriodYear    Period = "year"
)

func (p Period) IsValid() bool {
	switch p {
	case PeriodMonth, PeriodQuarter, PeriodYear:
		return true
	}
	return false
}

// PeriodSummary rolls one employee's records over a [periodStart, now]
// window. AbsentCount covers explicit Absent records only; days with no
// record at all (or a Not Marked one) are surfaced as UnmarkedCount and it
// is the caller's choice whether to fold them into an absence bucket.
type PeriodSummary struct {
	PresentCount     int     `json:"presentCount"`
	LateCount        int     `json:"lateCount"`
	AbsentCount      int     `json:"absentCount"`
	UnmarkedCount    int     `json:"unmarkedCount"`
	TotalWorkingDays int     `json:"totalWorkingDays"`
	DaysToPay        float64 `json:"daysToPay"`
	LateStreak       int     `json:"lateStreak"`
}

// PaySummary is the monthly pay computation for one employee.
type PaySummary struct {
	TotalPresentDays int             `json:"totalPresentDays"`
	TotalLateHours   float64         `json:"totalLateHours"`
	DeductedLateDays int             `json:"deductedLateDays"`
	TotalAbsentDays  int             `json:"totalAbsentDays"`
	NetPayableDays   int             `json:"netPayableDays"`
	GrossPay         decimal.Decimal `json:"grossPay"`
}

// SummaryResponse is the period summary as served per employee.
type SummaryResponse struct {
	EmployeeID  string        `json:"employeeId"`
	Period      Period        `json:"period"`
	PeriodStart string        `json:"periodStart"`
	Now         string        `json:"now"`
	Summary     PeriodSummary `json:"summary"`
}

// PayslipResponse is the monthly pay summary as served per employee.
type PayslipResponse struct {
	EmployeeID    string           `json:"employeeId"`
	EmployeeName  string           `json:"employeeName"`
	Month         string           `json:"month"`
	HourlyPayRate *decimal.Decimal `json:"hourlyPayRate,omitempty"`
	Pay           PaySummary       `json:"pay"`
}
