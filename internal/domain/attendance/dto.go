package attendance

import (
	"fmt"

	"github.com/zenstaff/attendance-backend-go/internal/pkg/clock"
	"github.com/zenstaff/attendance-backend-go/internal/pkg/validator"
)

// RecordPayload is the wire shape of one attendance record. Dates are
// "YYYY-MM-DD", times are "HH:mm" or the sentinel "--:--".
type RecordPayload struct {
	EmployeeID   string `json:"employeeId"`
	Date         string `json:"date"`
	Status       Status `json:"status"`
	CheckInTime  string `json:"checkInTime"`
	CheckOutTime string `json:"checkOutTime"`
}

// SaveDayRequest carries one day's worth of edited records, submitted as a
// unit from the daily-edit workflow.
type SaveDayRequest struct {
	Records []RecordPayload `json:"records"`
}

// Validate checks the whole batch against the day being saved. Failures are
// reported per employee so the caller can show which record is incomplete;
// nothing from a failing batch is persisted.
func (r SaveDayRequest) Validate(date string) error {
	var errs validator.ValidationErrors

	if len(r.Records) == 0 {
		errs = append(errs, validator.ValidationError{Field: "records", Message: "at least one record is required"})
		return errs
	}

	for i, rec := range r.Records {
		field := func(name string) string {
			if rec.EmployeeID != "" {
				return fmt.Sprintf("records[%s].%s", rec.EmployeeID, name)
			}
			return fmt.Sprintf("records[%d].%s", i, name)
		}

		if validator.IsEmpty(rec.EmployeeID) {
			errs = append(errs, validator.ValidationError{Field: field("employeeId"), Message: "employeeId is required"})
		}
		if rec.Date != "" && rec.Date != date {
			errs = append(errs, validator.ValidationError{Field: field("date"), Message: "date does not match the day being saved"})
		}
		if rec.Status != "" && !rec.Status.IsValid() {
			errs = append(errs, validator.ValidationError{Field: field("status"), Message: "unknown status"})
			continue
		}

		inSet := rec.CheckInTime != "" && rec.CheckInTime != clock.Sentinel
		outSet := rec.CheckOutTime != "" && rec.CheckOutTime != clock.Sentinel

		if inSet && !validator.IsValidClock(rec.CheckInTime) {
			errs = append(errs, validator.ValidationError{Field: field("checkInTime"), Message: "must be HH:mm or --:--"})
			continue
		}
		if outSet && !validator.IsValidClock(rec.CheckOutTime) {
			errs = append(errs, validator.ValidationError{Field: field("checkOutTime"), Message: "must be HH:mm or --:--"})
			continue
		}

		if rec.Status == StatusAbsent {
			// Absent rows must carry the sentinel on both sides.
			if inSet || outSet {
				errs = append(errs, validator.ValidationError{Field: field("status"), Message: "an Absent record cannot carry check-in or check-out times"})
			}
			continue
		}

		if inSet && !outSet {
			errs = append(errs, validator.ValidationError{Field: field("checkOutTime"), Message: "missing check-out time"})
		}
		if !inSet && outSet {
			errs = append(errs, validator.ValidationError{Field: field("checkInTime"), Message: "check-in time is required when a check-out is set"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// MarkAbsentRequest forces a day's status to Absent and resets both times
// to the sentinel.
type MarkAbsentRequest struct {
	EmployeeID string `json:"employeeId"`
}

func (r MarkAbsentRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employeeId", Message: "employeeId is required"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// RecordResponse is one attendance record as served to clients and to the
// CSV exporter.
type RecordResponse struct {
	EmployeeID   string `json:"employeeId"`
	EmployeeName string `json:"employeeName"`
	Date         string `json:"date"`
	Status       Status `json:"status"`
	CheckInTime  string `json:"checkInTime"`
	CheckOutTime string `json:"checkOutTime"`
}

// DayRow is one employee's line on the daily attendance sheet.
type DayRow struct {
	EmployeeID   string `json:"employeeId"`
	EmployeeName string `json:"employeeName"`
	Role         string `json:"role"`
	Status       Status `json:"status"`
	CheckInTime  string `json:"checkInTime"`
	CheckOutTime string `json:"checkOutTime"`
	WorkedHours  string `json:"workedHours"`
}

// DaySheetResponse is the attendance-entry view for one date: a row per
// tracked employee plus the holiday flag that disables all inputs.
type DaySheetResponse struct {
	Date        string   `json:"date"`
	IsHoliday   bool     `json:"isHoliday"`
	HolidayName string   `json:"holidayName,omitempty"`
	Rows        []DayRow `json:"rows"`
}

// RecordFilter narrows ListRecords; all fields are optional and combinable.
type RecordFilter struct {
	EmployeeID *string
	Date       *string
	StartDate  *string
	EndDate    *string
}

func (f RecordFilter) Validate() error {
	var errs validator.ValidationErrors
	check := func(field string, v *string) {
		if v != nil && *v != "" {
			if _, ok := validator.IsValidDate(*v); !ok {
				errs = append(errs, validator.ValidationError{Field: field, Message: "must be YYYY-MM-DD"})
			}
		}
	}
	check("date", f.Date)
	check("startDate", f.StartDate)
	check("endDate", f.EndDate)
	if len(errs) > 0 {
		return errs
	}
	return nil
}
