package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID            string
	Name          string
	Role          Role
	Employed      bool
	HourlyPayRate *decimal.Decimal
	Birthday      *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type Role string

const (
	RoleTSE       Role = "TSE"
	RoleLogistics Role = "Logistics"
	RoleMIS       Role = "MIS"
	RoleFounder   Role = "Founder & CEO"
	RoleOwner     Role = "Owner"
)

// TrackedRoles are the roles the attendance rules apply to. Founders and
// owners appear on the staff list but never in attendance aggregates.
var TrackedRoles = []Role{RoleTSE, RoleLogistics, RoleMIS}

// Tracked reports whether attendance is recorded for this employee: they
// must still be employed and hold a tracked role.
func (e Employee) Tracked() bool {
	if !e.Employed {
		return false
	}
	for _, r := range TrackedRoles {
		if e.Role == r {
			return true
		}
	}
	return false
}
