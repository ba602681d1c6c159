package holiday

import "time"

// Holiday is a calendar exception keyed by date: at most one per date. When
// a date is a holiday, every tracked employee is credited as Present for it
// and no attendance record is required or consulted.
type Holiday struct {
	Date      time.Time
	Name      string
	CreatedAt time.Time
}

// Calendar is a date-keyed lookup over a holiday snapshot. Dates are keyed
// by "YYYY-MM-DD" so lookups ignore the time-of-day component.
type Calendar map[string]string

func NewCalendar(holidays []Holiday) Calendar {
	cal := make(Calendar, len(holidays))
	for _, h := range holidays {
		cal[h.Date.Format("2006-01-02")] = h.Name
	}
	return cal
}

// Name returns the holiday name for a date, if any.
func (c Calendar) Name(date time.Time) (string, bool) {
	name, ok := c[date.Format("2006-01-02")]
	return name, ok
}

// Contains reports whether the date is a holiday.
func (c Calendar) Contains(date time.Time) bool {
	_, ok := c.Name(date)
	return ok
}
