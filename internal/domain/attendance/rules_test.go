package attendance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveStatus(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  string
		expected Status
	}{
		{name: "Well before cutoff", checkIn: "09:00", expected: StatusPresent},
		{name: "Minute before cutoff", checkIn: "10:59", expected: StatusPresent},
		{name: "Exactly at cutoff", checkIn: "11:00", expected: StatusPresent},
		{name: "Minute after cutoff", checkIn: "11:01", expected: StatusLate},
		{name: "Afternoon", checkIn: "14:30", expected: StatusLate},
		{name: "Sentinel", checkIn: "--:--", expected: StatusNotMarked},
		{name: "Empty", checkIn: "", expected: StatusNotMarked},
		{name: "Malformed", checkIn: "11am", expected: StatusNotMarked},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DeriveStatus(tt.checkIn))
		})
	}
}

func TestWorkedHours(t *testing.T) {
	tests := []struct {
		name     string
		in, out  string
		expected float64
		ok       bool
	}{
		{name: "Full day", in: "09:00", out: "17:00", expected: 8, ok: true},
		{name: "Short day", in: "09:00", out: "13:30", expected: 4.5, ok: true},
		{name: "Capped at 8", in: "09:00", out: "21:00", expected: 8, ok: true},
		{name: "Just over cap", in: "09:00", out: "17:24", expected: 8, ok: true},
		{name: "Checkout before checkin", in: "17:00", out: "09:00", ok: false},
		{name: "Sentinel checkin", in: "--:--", out: "17:00", ok: false},
		{name: "Sentinel checkout", in: "09:00", out: "--:--", ok: false},
		{name: "Both sentinel", in: "--:--", out: "--:--", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := WorkedHours(tt.in, tt.out)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.InDelta(t, tt.expected, got, 1e-9)
			}
		})
	}
}

// The daily table rounds before clamping, so a 12h interval shows "9" even
// though aggregation only ever counts 8. The two policies disagree around the
// cap on purpose.
func TestDisplayHours(t *testing.T) {
	tests := []struct {
		name     string
		in, out  string
		expected string
	}{
		{name: "Full day", in: "09:00", out: "17:00", expected: "8"},
		{name: "Rounds down below cap", in: "09:00", out: "17:24", expected: "8"},
		{name: "Rounds up past cap", in: "09:00", out: "17:36", expected: "9"},
		{name: "Twelve hours clamps to 9", in: "09:00", out: "21:00", expected: "9"},
		{name: "Half rounds up", in: "09:00", out: "13:30", expected: "5"},
		{name: "Invalid interval", in: "17:00", out: "09:00", expected: "--"},
		{name: "Sentinel", in: "--:--", out: "--:--", expected: "--"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DisplayHours(tt.in, tt.out))
		})
	}
}

func TestLateMinutes(t *testing.T) {
	assert.Equal(t, 0, LateMinutes("10:00"))
	assert.Equal(t, 0, LateMinutes("11:00"))
	assert.Equal(t, 1, LateMinutes("11:01"))
	assert.Equal(t, 95, LateMinutes("12:35"))
	assert.Equal(t, 0, LateMinutes("--:--"))
}
