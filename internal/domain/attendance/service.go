package attendance

import (
	"context"
)

// AttendanceService defines the daily attendance workflow.
type AttendanceService interface {
	// GetDaySheet returns the attendance-entry view for one date.
	GetDaySheet(ctx context.Context, date string) (DaySheetResponse, error)

	// SaveDay validates and upserts one day's records as a unit.
	SaveDay(ctx context.Context, date string, req SaveDayRequest) (DaySheetResponse, error)

	// MarkAbsent forces an employee's day to Absent, resetting both times.
	MarkAbsent(ctx context.Context, date string, req MarkAbsentRequest) (RecordResponse, error)

	// ListRecords returns records matching the filter.
	ListRecords(ctx context.Context, filter RecordFilter) ([]RecordResponse, error)
}
