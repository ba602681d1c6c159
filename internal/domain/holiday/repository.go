package holiday

import (
	"context"
	"time"
)

// HolidayRepository defines data access for the holiday calendar. Date is
// the key, so Upsert can never conflict with itself and Delete is by date.
type HolidayRepository interface {
	Upsert(ctx context.Context, holiday Holiday) (Holiday, error)
	Delete(ctx context.Context, date time.Time) error
	GetByDate(ctx context.Context, date time.Time) (*Holiday, error)
	List(ctx context.Context) ([]Holiday, error)
	ListRange(ctx context.Context, from, to time.Time) ([]Holiday, error)
}
