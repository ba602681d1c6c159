package report

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zenstaff/attendance-backend-go/internal/domain/attendance"
	"github.com/zenstaff/attendance-backend-go/internal/domain/holiday"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func rec(employeeID, date string, status attendance.Status, in, out string) attendance.Record {
	return attendance.Record{
		EmployeeID: employeeID,
		Date:       day(date),
		Status:     status,
		CheckIn:    in,
		CheckOut:   out,
	}
}

func TestSummarizeHolidayOverride(t *testing.T) {
	calc := NewCalculator()

	// 2025-08-27 is a Wednesday holiday with no stored record for anyone.
	cal := holiday.NewCalendar([]holiday.Holiday{
		{Date: day("2025-08-27"), Name: "Ganesh Chaturthi"},
	})

	// Window 2025-08-25 (Mon) .. 2025-08-29 (Fri), records on every
	// non-holiday weekday.
	records := []attendance.Record{
		rec("1", "2025-08-25", attendance.StatusPresent, "09:00", "17:00"),
		rec("1", "2025-08-26", attendance.StatusPresent, "09:30", "17:30"),
		rec("1", "2025-08-28", attendance.StatusLate, "11:30", "18:00"),
		rec("1", "2025-08-29", attendance.StatusPresent, "10:00", "18:00"),
	}

	summary := calc.Summarize(records, cal, day("2025-08-25"), day("2025-08-29"))

	// Four recorded days plus the holiday credit.
	assert.Equal(t, 5, summary.PresentCount)
	assert.Equal(t, 1, summary.LateCount)
	assert.Equal(t, 0, summary.AbsentCount)
	// The holiday is excluded from working days: Mon, Tue, Thu, Fri.
	assert.Equal(t, 4, summary.TotalWorkingDays)
	assert.Equal(t, 0, summary.UnmarkedCount)
}

func TestSummarizeHolidayRecordSuppressed(t *testing.T) {
	calc := NewCalculator()
	cal := holiday.NewCalendar([]holiday.Holiday{
		{Date: day("2025-08-27"), Name: "Ganesh Chaturthi"},
	})

	// A stray record stored on the holiday date must not double-count.
	records := []attendance.Record{
		rec("1", "2025-08-27", attendance.StatusLate, "12:00", "18:00"),
	}

	summary := calc.Summarize(records, cal, day("2025-08-25"), day("2025-08-29"))
	assert.Equal(t, 1, summary.PresentCount)
	assert.Equal(t, 0, summary.LateCount)
}

func TestSummarizeLateStreak(t *testing.T) {
	calc := NewCalculator()
	cal := holiday.NewCalendar(nil)

	// Late, Absent, Present, Late with now on the last day.
	records := []attendance.Record{
		rec("1", "2025-09-10", attendance.StatusLate, "11:30", "18:00"),
		rec("1", "2025-09-11", attendance.StatusAbsent, "--:--", "--:--"),
		rec("1", "2025-09-12", attendance.StatusPresent, "09:00", "17:00"),
		rec("1", "2025-09-13", attendance.StatusLate, "11:15", "18:00"),
	}

	summary := calc.Summarize(records, cal, day("2025-09-01"), day("2025-09-13"))
	// Only 09-13 counts: the Present on 09-12 stops the walk before the
	// earlier Late/Absent pair.
	assert.Equal(t, 1, summary.LateStreak)
}

func TestSummarizeLateStreakRunsToStart(t *testing.T) {
	calc := NewCalculator()
	cal := holiday.NewCalendar(nil)

	records := []attendance.Record{
		rec("1", "2025-09-11", attendance.StatusAbsent, "--:--", "--:--"),
		rec("1", "2025-09-12", attendance.StatusLate, "11:30", "18:00"),
		rec("1", "2025-09-13", attendance.StatusLate, "12:00", "18:00"),
	}

	summary := calc.Summarize(records, cal, day("2025-09-01"), day("2025-09-13"))
	assert.Equal(t, 3, summary.LateStreak)
}

func TestSummarizeUnmarkedSeparateFromAbsent(t *testing.T) {
	calc := NewCalculator()
	cal := holiday.NewCalendar(nil)

	// Week of Mon 2025-09-08 .. Fri 2025-09-12: one explicit Absent, one
	// recorded day, three days with nothing at all.
	records := []attendance.Record{
		rec("1", "2025-09-08", attendance.StatusPresent, "09:00", "17:00"),
		rec("1", "2025-09-09", attendance.StatusAbsent, "--:--", "--:--"),
	}

	summary := calc.Summarize(records, cal, day("2025-09-08"), day("2025-09-12"))
	assert.Equal(t, 1, summary.AbsentCount)
	assert.Equal(t, 3, summary.UnmarkedCount)
	assert.Equal(t, 5, summary.TotalWorkingDays)
}

func TestSummarizeSkipsSundaysAndDedupes(t *testing.T) {
	calc := NewCalculator()
	cal := holiday.NewCalendar(nil)

	// 2025-09-07 is a Sunday. The duplicate record for 09-08 must collapse
	// to a single day (upsert semantics), with the later entry winning.
	records := []attendance.Record{
		rec("1", "2025-09-08", attendance.StatusLate, "11:30", "18:00"),
		rec("1", "2025-09-08", attendance.StatusLate, "11:30", "18:00"),
	}

	summary := calc.Summarize(records, cal, day("2025-09-07"), day("2025-09-08"))
	assert.Equal(t, 1, summary.PresentCount)
	assert.Equal(t, 1, summary.LateCount)
	assert.Equal(t, 1, summary.TotalWorkingDays)
}

func TestSummarizeDaysToPayUsesCappedHours(t *testing.T) {
	calc := NewCalculator()
	cal := holiday.NewCalendar(nil)

	records := []attendance.Record{
		// 12 elapsed hours aggregate as 8 despite displaying "9".
		rec("1", "2025-09-08", attendance.StatusPresent, "09:00", "21:00"),
		// 4 hours.
		rec("1", "2025-09-09", attendance.StatusPresent, "09:00", "13:00"),
	}

	summary := calc.Summarize(records, cal, day("2025-09-08"), day("2025-09-09"))
	assert.InDelta(t, 1.5, summary.DaysToPay, 1e-9)
}

func TestComputePayEndToEnd(t *testing.T) {
	calc := NewCalculator()
	cal := holiday.NewCalendar(nil)

	// Sathish: 20 on-time days of exactly 8 capped hours in September 2025,
	// rate 250. No late minutes, so nothing is deducted.
	var records []attendance.Record
	count := 0
	for d := day("2025-09-01"); count < 20; d = d.AddDate(0, 0, 1) {
		if d.Weekday() == time.Sunday {
			continue
		}
		records = append(records, rec("8", d.Format("2006-01-02"), attendance.StatusPresent, "09:00", "17:00"))
		count++
	}

	pay := calc.ComputePay(records, cal, day("2025-09-01"), day("2025-09-30"), decimal.NewFromInt(250))

	assert.Equal(t, 20, pay.TotalPresentDays)
	assert.Equal(t, 0, pay.DeductedLateDays)
	assert.InDelta(t, 0, pay.TotalLateHours, 1e-9)
	assert.Equal(t, 20, pay.NetPayableDays)
	assert.True(t, pay.GrossPay.Equal(decimal.NewFromInt(40000)), "grossPay = %s", pay.GrossPay)
}

func TestComputePayLateDeduction(t *testing.T) {
	calc := NewCalculator()
	cal := holiday.NewCalendar(nil)

	// Ten late days at two hours past the cutoff each: 20 late hours,
	// floor(20/8) = 2 deducted days.
	var records []attendance.Record
	count := 0
	for d := day("2025-09-01"); count < 10; d = d.AddDate(0, 0, 1) {
		if d.Weekday() == time.Sunday {
			continue
		}
		records = append(records, rec("3", d.Format("2006-01-02"), attendance.StatusLate, "13:00", "19:00"))
		count++
	}

	pay := calc.ComputePay(records, cal, day("2025-09-01"), day("2025-09-30"), decimal.NewFromInt(100))

	assert.Equal(t, 10, pay.TotalPresentDays)
	assert.InDelta(t, 20, pay.TotalLateHours, 1e-9)
	assert.Equal(t, 2, pay.DeductedLateDays)
	assert.Equal(t, 8, pay.NetPayableDays)
	assert.True(t, pay.GrossPay.Equal(decimal.NewFromInt(6400)), "grossPay = %s", pay.GrossPay)
}

func TestComputePayHolidayCredited(t *testing.T) {
	calc := NewCalculator()
	cal := holiday.NewCalendar([]holiday.Holiday{
		{Date: day("2025-09-10"), Name: "Founders Day"},
	})

	records := []attendance.Record{
		rec("1", "2025-09-08", attendance.StatusPresent, "09:00", "17:00"),
	}

	pay := calc.ComputePay(records, cal, day("2025-09-01"), day("2025-09-12"), decimal.NewFromInt(250))
	require.Equal(t, 2, pay.TotalPresentDays)
	assert.True(t, pay.GrossPay.Equal(decimal.NewFromInt(4000)))
}

func TestSummarizeIdempotentUpsert(t *testing.T) {
	calc := NewCalculator()
	cal := holiday.NewCalendar(nil)

	once := []attendance.Record{
		rec("1", "2025-09-08", attendance.StatusPresent, "09:00", "17:00"),
		rec("1", "2025-09-09", attendance.StatusLate, "11:30", "18:00"),
	}
	twice := append(append([]attendance.Record{}, once...), once...)

	window := []time.Time{day("2025-09-08"), day("2025-09-09")}
	assert.Equal(t,
		calc.Summarize(once, cal, window[0], window[1]),
		calc.Summarize(twice, cal, window[0], window[1]),
	)
}
