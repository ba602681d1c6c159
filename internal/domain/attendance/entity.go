package attendance

import (
	"time"
)

type Status string

const (
	StatusPresent   Status = "Present"
	StatusLate      Status = "Late"
	StatusAbsent    Status = "Absent"
	StatusNotMarked Status = "Not Marked"
)

// IsValid reports whether s is one of the four known statuses.
func (s Status) IsValid() bool {
	switch s {
	case StatusPresent, StatusLate, StatusAbsent, StatusNotMarked:
		return true
	}
	return false
}

// Record is one employee's attendance for one calendar date. The pair
// (EmployeeID, Date) is the key: writes are upserts, later writes replace
// earlier ones. CheckIn and CheckOut hold "HH:mm" strings or the sentinel
// "--:--"; an Absent record carries the sentinel on both sides.
type Record struct {
	EmployeeID string
	Date       time.Time
	Status     Status
	CheckIn    string
	CheckOut   string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// EmployeeName is the employee's display name joined in for listings;
	// only List populates it.
	EmployeeName *string
}
