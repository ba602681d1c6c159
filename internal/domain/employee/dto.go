package employee

import (
	"github.com/shopspring/decimal"
	"github.com/zenstaff/attendance-backend-go/internal/pkg/validator"
)

// EmployeePayload is the wire shape for staff-add and edit.
type EmployeePayload struct {
	ID            string           `json:"id,omitempty"`
	Name          string           `json:"name"`
	Role          string           `json:"role"`
	Employed      bool             `json:"employed"`
	HourlyPayRate *decimal.Decimal `json:"hourlyPayRate,omitempty"`
	Birthday      *string          `json:"birthday,omitempty"`
}

func (p EmployeePayload) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(p.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if validator.IsEmpty(p.Role) {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "role is required"})
	}
	if p.HourlyPayRate != nil && p.HourlyPayRate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "hourlyPayRate", Message: "must not be negative"})
	}
	if p.Birthday != nil && *p.Birthday != "" {
		if _, ok := validator.IsValidDate(*p.Birthday); !ok {
			errs = append(errs, validator.ValidationError{Field: "birthday", Message: "must be YYYY-MM-DD"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// EmployeeResponse is an employee as served to clients.
type EmployeeResponse struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Role          string           `json:"role"`
	Employed      bool             `json:"employed"`
	HourlyPayRate *decimal.Decimal `json:"hourlyPayRate,omitempty"`
	Birthday      *string          `json:"birthday,omitempty"`
	Tracked       bool             `json:"tracked"`
}
