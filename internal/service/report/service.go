package report

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/zenstaff/attendance-backend-go/internal/domain/attendance"
	"github.com/zenstaff/attendance-backend-go/internal/domain/employee"
	"github.com/zenstaff/attendance-backend-go/internal/domain/holiday"
	"github.com/zenstaff/attendance-backend-go/internal/domain/report"
	"github.com/zenstaff/attendance-backend-go/internal/pkg/validator"
)

type ReportServiceImpl struct {
	employee.EmployeeRepository
	attendance.AttendanceRepository
	holiday.HolidayRepository
	calculator *Calculator
}

func NewReportService(
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	holidayRepo holiday.HolidayRepository,
	calculator *Calculator,
) report.ReportService {
	return &ReportServiceImpl{
		EmployeeRepository:   employeeRepo,
		AttendanceRepository: attendanceRepo,
		HolidayRepository:    holidayRepo,
		calculator:           calculator,
	}
}

// periodStart returns the first day of the month, quarter or year that
// contains now.
func periodStart(period report.Period, now time.Time) (time.Time, error) {
	switch period {
	case report.PeriodMonth:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()), nil
	case report.PeriodQuarter:
		quarterMonth := time.Month(((int(now.Month())-1)/3)*3 + 1)
		return time.Date(now.Year(), quarterMonth, 1, 0, 0, 0, 0, now.Location()), nil
	case report.PeriodYear:
		return time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location()), nil
	}
	return time.Time{}, report.ErrInvalidPeriod
}

// GetSummary implements report.ReportService.
func (s *ReportServiceImpl) GetSummary(ctx context.Context, employeeID string, period report.Period, now time.Time) (report.SummaryResponse, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return report.SummaryResponse{}, employee.ErrEmployeeNotFound
		}
		return report.SummaryResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	start, err := periodStart(period, now)
	if err != nil {
		return report.SummaryResponse{}, err
	}

	records, err := s.AttendanceRepository.ListByEmployee(ctx, emp.ID, start, now)
	if err != nil {
		return report.SummaryResponse{}, fmt.Errorf("failed to list attendance: %w", err)
	}

	holidays, err := s.HolidayRepository.ListRange(ctx, start, now)
	if err != nil {
		return report.SummaryResponse{}, fmt.Errorf("failed to list holidays: %w", err)
	}

	summary := s.calculator.Summarize(records, holiday.NewCalendar(holidays), start, now)

	return report.SummaryResponse{
		EmployeeID:  emp.ID,
		Period:      period,
		PeriodStart: start.Format("2006-01-02"),
		Now:         now.Format("2006-01-02"),
		Summary:     summary,
	}, nil
}

// GetPayslip implements report.ReportService.
func (s *ReportServiceImpl) GetPayslip(ctx context.Context, employeeID string, month string, now time.Time) (report.PayslipResponse, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return report.PayslipResponse{}, employee.ErrEmployeeNotFound
		}
		return report.PayslipResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	if emp.HourlyPayRate == nil {
		return report.PayslipResponse{}, report.ErrNoPayRate
	}

	monthStart, ok := validator.IsValidMonth(month)
	if !ok {
		return report.PayslipResponse{}, validator.ValidationErrors{
			{Field: "month", Message: "must be YYYY-MM"},
		}
	}

	// The window never reaches past now: a payslip for the current month
	// covers month-to-date.
	end := monthStart.AddDate(0, 1, -1)
	if now.Before(end) {
		end = now
	}

	records, err := s.AttendanceRepository.ListByEmployee(ctx, emp.ID, monthStart, end)
	if err != nil {
		return report.PayslipResponse{}, fmt.Errorf("failed to list attendance: %w", err)
	}

	holidays, err := s.HolidayRepository.ListRange(ctx, monthStart, end)
	if err != nil {
		return report.PayslipResponse{}, fmt.Errorf("failed to list holidays: %w", err)
	}

	pay := s.calculator.ComputePay(records, holiday.NewCalendar(holidays), monthStart, end, *emp.HourlyPayRate)

	return report.PayslipResponse{
		EmployeeID:    emp.ID,
		EmployeeName:  emp.Name,
		Month:         month,
		HourlyPayRate: emp.HourlyPayRate,
		Pay:           pay,
	}, nil
}
