package response

import (
	"errors"
	"net/http"

	"github.com/zenstaff/attendance-backend-go/internal/domain/attendance"
	"github.com/zenstaff/attendance-backend-go/internal/domain/auth"
	"github.com/zenstaff/attendance-backend-go/internal/domain/employee"
	"github.com/zenstaff/attendance-backend-go/internal/domain/holiday"
	"github.com/zenstaff/attendance-backend-go/internal/domain/report"
	"github.com/zenstaff/attendance-backend-go/internal/domain/user"
	"github.com/zenstaff/attendance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrUserNotFound), errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeNotActive):
		BadRequest(w, "Employee is no longer employed", nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrEmployeeNotTracked):
		BadRequest(w, "Attendance is not tracked for this employee", nil)
	case errors.Is(err, attendance.ErrHolidayLocked):
		Conflict(w, "Attendance cannot be marked on a holiday")

	// Holiday domain errors
	case errors.Is(err, holiday.ErrHolidayNotFound):
		NotFound(w, "Holiday not found")

	// Report domain errors
	case errors.Is(err, report.ErrInvalidPeriod):
		BadRequest(w, "Period must be month, quarter or year", nil)
	case errors.Is(err, report.ErrNoPayRate):
		BadRequest(w, "Employee has no hourly pay rate configured", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
