package report

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
	"github.com/zenstaff/attendance-backend-go/internal/domain/attendance"
	"github.com/zenstaff/attendance-backend-go/internal/domain/holiday"
	"github.com/zenstaff/attendance-backend-go/internal/domain/report"
)

// Calculator rolls one employee's attendance records into period summaries
// and pay. It is pure: snapshots are never mutated, no I/O happens here, and
// the reference now is always an explicit argument.
type Calculator struct {
}

func NewCalculator() *Calculator {
	return &Calculator{}
}

const dayKey = "2006-01-02"

// truncateDay drops the time-of-day component.
func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// snapshot dedupes records by date (last write wins, matching upsert
// semantics) and restricts them to [periodStart, now]. Records on holiday
// dates are dropped entirely: the holiday override suppresses per-record
// status for those days.
func (c *Calculator) snapshot(records []attendance.Record, cal holiday.Calendar, periodStart, now time.Time) map[string]attendance.Record {
	start, end := truncateDay(periodStart), truncateDay(now)

	byDate := make(map[string]attendance.Record)
	for _, rec := range records {
		day := truncateDay(rec.Date)
		if day.Before(start) || day.After(end) {
			continue
		}
		if cal.Contains(day) {
			continue
		}
		byDate[day.Format(dayKey)] = rec
	}
	return byDate
}

// Summarize rolls the records into a PeriodSummary for [periodStart, now].
func (c *Calculator) Summarize(records []attendance.Record, cal holiday.Calendar, periodStart, now time.Time) report.PeriodSummary {
	start, end := truncateDay(periodStart), truncateDay(now)
	byDate := c.snapshot(records, cal, periodStart, now)

	var summary report.PeriodSummary
	var cappedHours float64

	for _, rec := range byDate {
		switch rec.Status {
		case attendance.StatusPresent, attendance.StatusLate:
			summary.PresentCount++
			if rec.Status == attendance.StatusLate {
				summary.LateCount++
			}
			if hours, ok := attendance.WorkedHours(rec.CheckIn, rec.CheckOut); ok {
				cappedHours += hours
			}
		case attendance.StatusAbsent:
			summary.AbsentCount++
		}
	}

	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		if cal.Contains(day) {
			// Holidays auto-credit every tracked employee as present and
			// never count as working days.
			summary.PresentCount++
			continue
		}
		if day.Weekday() == time.Sunday {
			continue
		}
		summary.TotalWorkingDays++
		rec, ok := byDate[day.Format(dayKey)]
		if !ok || rec.Status == attendance.StatusNotMarked {
			summary.UnmarkedCount++
		}
	}

	summary.DaysToPay = cappedHours / attendance.WorkedHoursCap
	summary.LateStreak = c.lateStreak(byDate, start, end)

	return summary
}

// lateStreak counts consecutive trailing Late/Absent records walking back
// from now; the first Present record stops the walk unconditionally. Days
// without a record (holidays included) are skipped rather than counted.
func (c *Calculator) lateStreak(byDate map[string]attendance.Record, start, end time.Time) int {
	streak := 0
	for day := end; !day.Before(start); day = day.AddDate(0, 0, -1) {
		rec, ok := byDate[day.Format(dayKey)]
		if !ok {
			continue
		}
		switch rec.Status {
		case attendance.StatusLate, attendance.StatusAbsent:
			streak++
		case attendance.StatusPresent:
			return streak
		}
	}
	return streak
}

// ComputePay derives the monthly pay summary: present days (Present + Late
// records plus holiday credits), late minutes past the cutoff converted to
// deducted days at 8 hours apiece, and gross pay from the net payable days.
func (c *Calculator) ComputePay(records []attendance.Record, cal holiday.Calendar, periodStart, now time.Time, hourlyRate decimal.Decimal) report.PaySummary {
	start, end := truncateDay(periodStart), truncateDay(now)
	byDate := c.snapshot(records, cal, periodStart, now)

	var pay report.PaySummary
	lateMinutes := 0

	for _, rec := range byDate {
		switch rec.Status {
		case attendance.StatusPresent:
			pay.TotalPresentDays++
		case attendance.StatusLate:
			pay.TotalPresentDays++
			lateMinutes += attendance.LateMinutes(rec.CheckIn)
		case attendance.StatusAbsent:
			pay.TotalAbsentDays++
		}
	}

	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		if cal.Contains(day) {
			pay.TotalPresentDays++
		}
	}

	pay.TotalLateHours = float64(lateMinutes) / 60.0
	pay.DeductedLateDays = int(math.Floor(pay.TotalLateHours / 8.0))
	pay.NetPayableDays = pay.TotalPresentDays - pay.DeductedLateDays
	pay.GrossPay = decimal.NewFromInt(int64(pay.NetPayableDays * 8)).Mul(hourlyRate)

	return pay
}
