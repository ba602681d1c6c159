package holiday

import "context"

// HolidayService defines holiday calendar operations.
type HolidayService interface {
	List(ctx context.Context) ([]HolidayResponse, error)
	Upsert(ctx context.Context, req HolidayPayload) (HolidayResponse, error)
	Delete(ctx context.Context, date string) error
}
