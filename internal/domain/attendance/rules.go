package attendance

import (
	"math"
	"strconv"

	"github.com/zenstaff/attendance-backend-go/internal/pkg/clock"
)

// WorkedHoursCap is the most a single day contributes to aggregation.
const WorkedHoursCap = 8.0

// DeriveStatus derives the attendance status from a check-in time. The
// sentinel (or anything unparseable) means the day has not been marked;
// arriving at or before the cutoff is Present, after it is Late. Absent is
// never derived here, it is only set through an explicit mark-absent action.
func DeriveStatus(checkIn string) Status {
	in, ok := clock.Parse(checkIn)
	if !ok {
		return StatusNotMarked
	}
	if in <= clock.Cutoff {
		return StatusPresent
	}
	return StatusLate
}

// WorkedHours returns the hours worked between checkIn and checkOut, capped
// at WorkedHoursCap, uncapped values never reach aggregation. ok=false when
// either time is missing or the interval is invalid.
func WorkedHours(checkIn, checkOut string) (float64, bool) {
	elapsed, ok := clock.ElapsedHours(checkIn, checkOut)
	if !ok {
		return 0, false
	}
	return math.Min(elapsed, WorkedHoursCap), true
}

// DisplayHours renders the worked hours for the daily table: "--" when the
// interval is missing or invalid, otherwise the elapsed hours rounded to the
// nearest whole hour and clamped at "9". The rounding happens before the
// clamp, so a 12-hour interval shows "9" while aggregation still uses the
// capped 8. This display policy is intentionally separate from WorkedHours.
func DisplayHours(checkIn, checkOut string) string {
	elapsed, ok := clock.ElapsedHours(checkIn, checkOut)
	if !ok {
		return "--"
	}
	rounded := int(math.Round(elapsed))
	if rounded > 9 {
		rounded = 9
	}
	return strconv.Itoa(rounded)
}

// LateMinutes returns how many minutes the check-in is past the cutoff,
// or 0 when the time is missing or at/before the cutoff.
func LateMinutes(checkIn string) int {
	in, ok := clock.Parse(checkIn)
	if !ok {
		return 0
	}
	return clock.MinutesAfter(in, clock.Cutoff)
}
