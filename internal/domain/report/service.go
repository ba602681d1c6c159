package report

import (
	"context"
	"time"
)

// ReportService derives period summaries and pay from attendance snapshots.
// The reference now is always explicit so the same request replays
// identically; handlers default it to the current date.
type ReportService interface {
	// GetSummary aggregates one employee's window ending at now.
	GetSummary(ctx context.Context, employeeID string, period Period, now time.Time) (SummaryResponse, error)

	// GetPayslip computes the monthly pay summary. month is "YYYY-MM"; days
	// after now never count.
	GetPayslip(ctx context.Context, employeeID string, month string, now time.Time) (PayslipResponse, error)
}
