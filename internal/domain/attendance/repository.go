package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access for attendance records. Records
// are keyed by (employee_id, date); Upsert is last-write-wins on that key and
// never duplicates.
type AttendanceRepository interface {
	// Upsert inserts or replaces the record for (EmployeeID, Date).
	Upsert(ctx context.Context, record Record) (Record, error)

	// GetByEmployeeAndDate returns nil (not an error) when no record exists.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Record, error)

	// ListByDate returns every record for one calendar date.
	ListByDate(ctx context.Context, date time.Time) ([]Record, error)

	// ListByEmployee returns an employee's records in [from, to], ordered by date.
	ListByEmployee(ctx context.Context, employeeID string, from, to time.Time) ([]Record, error)

	// List returns records matching the filter (employee, single date or
	// date range, all optional), with employee names joined in, ordered by
	// date then employee.
	List(ctx context.Context, filter RecordFilter) ([]Record, error)
}
