package attendance

import "errors"

// Attendance domain errors
var (
	ErrEmployeeNotTracked = errors.New("attendance is not tracked for this employee")
	ErrHolidayLocked      = errors.New("attendance cannot be edited on a holiday")
)
