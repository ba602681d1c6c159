package clock

import (
	"fmt"
	"strconv"
	"strings"
)

// Sentinel is the literal value meaning "no time recorded".
const Sentinel = "--:--"

// Minutes is a time of day expressed as minutes since midnight.
type Minutes int

// Cutoff separates on-time check-ins from late ones. Arriving at exactly
// 11:00 still counts as on time.
const Cutoff = Minutes(11 * 60)

// Parse parses an "HH:mm" string. The sentinel and anything malformed
// return ok=false.
func Parse(s string) (Minutes, bool) {
	if s == "" || s == Sentinel {
		return 0, false
	}

	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, false
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, false
	}
	mins, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, false
	}

	if hours < 0 || hours > 23 || mins < 0 || mins > 59 {
		return 0, false
	}

	return Minutes(hours*60 + mins), true
}

// String formats the time of day back to zero-padded "HH:mm".
func (m Minutes) String() string {
	return fmt.Sprintf("%02d:%02d", int(m)/60, int(m)%60)
}

// ElapsedHours returns the hours between checkIn and checkOut. It returns
// ok=false when either side is the sentinel or unparseable, or when
// checkOut is before checkIn (treated as invalid, never as an overnight
// shift).
func ElapsedHours(checkIn, checkOut string) (float64, bool) {
	in, ok := Parse(checkIn)
	if !ok {
		return 0, false
	}
	out, ok := Parse(checkOut)
	if !ok {
		return 0, false
	}
	if out < in {
		return 0, false
	}
	return float64(out-in) / 60.0, true
}

// MinutesAfter returns how many minutes t is strictly past the cutoff,
// or 0 when t is at or before it.
func MinutesAfter(t, cutoff Minutes) int {
	if t <= cutoff {
		return 0
	}
	return int(t - cutoff)
}
