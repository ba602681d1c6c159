package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/zenstaff/attendance-backend-go/internal/domain/attendance"
	"github.com/zenstaff/attendance-backend-go/internal/domain/dashboard"
	"github.com/zenstaff/attendance-backend-go/internal/domain/employee"
	"github.com/zenstaff/attendance-backend-go/internal/domain/holiday"
	"github.com/zenstaff/attendance-backend-go/internal/pkg/validator"
	"github.com/zenstaff/attendance-backend-go/internal/service/report"
)

type DashboardServiceImpl struct {
	attendance.AttendanceRepository
	employee.EmployeeRepository
	holiday.HolidayRepository
	calculator *report.Calculator
}

func NewDashboardService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	holidayRepo holiday.HolidayRepository,
) dashboard.DashboardService {
	return &DashboardServiceImpl{
		AttendanceRepository: attendanceRepo,
		EmployeeRepository:   employeeRepo,
		HolidayRepository:    holidayRepo,
		calculator:           report.NewCalculator(),
	}
}

// GetDashboard implements dashboard.DashboardService.
func (s *DashboardServiceImpl) GetDashboard(ctx context.Context, dateStr string, now time.Time) (dashboard.DashboardResponse, error) {
	day, ok := validator.IsValidDate(dateStr)
	if !ok {
		return dashboard.DashboardResponse{}, validator.ValidationErrors{
			{Field: "date", Message: "must be YYYY-MM-DD"},
		}
	}

	tracked, err := s.EmployeeRepository.ListTracked(ctx)
	if err != nil {
		return dashboard.DashboardResponse{}, fmt.Errorf("failed to list tracked employees: %w", err)
	}

	stats, err := s.dayStats(ctx, day, now, tracked)
	if err != nil {
		return dashboard.DashboardResponse{}, err
	}

	rows, err := s.monthRows(ctx, day, now, tracked)
	if err != nil {
		return dashboard.DashboardResponse{}, err
	}

	return dashboard.DashboardResponse{Day: stats, Employees: rows}, nil
}

func (s *DashboardServiceImpl) dayStats(ctx context.Context, day, now time.Time, tracked []employee.Employee) (dashboard.DayStats, error) {
	stats := dashboard.DayStats{
		Date:         day.Format("2006-01-02"),
		TotalTracked: len(tracked),
	}

	h, err := s.HolidayRepository.GetByDate(ctx, day)
	if err != nil {
		return dashboard.DayStats{}, fmt.Errorf("failed to get holiday: %w", err)
	}
	if h != nil {
		stats.IsHoliday = true
		stats.HolidayName = &h.Name
		stats.PresentCount = len(tracked)
		return stats, nil
	}

	records, err := s.AttendanceRepository.ListByDate(ctx, day)
	if err != nil {
		return dashboard.DayStats{}, fmt.Errorf("failed to list attendance: %w", err)
	}

	marked := 0
	for _, rec := range records {
		switch rec.Status {
		case attendance.StatusPresent:
			stats.PresentCount++
			marked++
		case attendance.StatusLate:
			stats.LateCount++
			marked++
		case attendance.StatusAbsent:
			stats.AbsentCount++
			marked++
		}
	}

	// Past working days fold the unmarked remainder into Absent. Future
	// days and Sundays stay as-is: nobody is missing yet.
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if !day.After(today) && day.Weekday() != time.Sunday {
		if unmarked := len(tracked) - marked; unmarked > 0 {
			stats.AbsentCount += unmarked
		}
	}

	return stats, nil
}

func (s *DashboardServiceImpl) monthRows(ctx context.Context, day, now time.Time, tracked []employee.Employee) ([]dashboard.EmployeeRow, error) {
	monthStart := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, -1)
	// Future days never count, so a dashboard for the current month only
	// summarizes up to now.
	end := monthEnd
	if now.Before(end) {
		end = now
	}

	holidays, err := s.HolidayRepository.ListRange(ctx, monthStart, monthEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	cal := holiday.NewCalendar(holidays)

	rows := make([]dashboard.EmployeeRow, 0, len(tracked))
	for _, emp := range tracked {
		records, err := s.AttendanceRepository.ListByEmployee(ctx, emp.ID, monthStart, monthEnd)
		if err != nil {
			return nil, fmt.Errorf("failed to list attendance for %s: %w", emp.ID, err)
		}
		rows = append(rows, dashboard.EmployeeRow{
			EmployeeID:   emp.ID,
			EmployeeName: emp.Name,
			Summary:      s.calculator.Summarize(records, cal, monthStart, end),
		})
	}
	return rows, nil
}
