package holiday

import (
	"github.com/zenstaff/attendance-backend-go/internal/pkg/validator"
)

// HolidayPayload is the wire shape of a holiday.
type HolidayPayload struct {
	Date string `json:"date"`
	Name string `json:"name"`
}

func (p HolidayPayload) Validate() error {
	var errs validator.ValidationErrors
	if _, ok := validator.IsValidDate(p.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be YYYY-MM-DD"})
	}
	if validator.IsEmpty(p.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "holiday name is required"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type HolidayResponse struct {
	Date string `json:"date"`
	Name string `json:"name"`
}
