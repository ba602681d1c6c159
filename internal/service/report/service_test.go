package report

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zenstaff/attendance-backend-go/internal/domain/attendance"
	"github.com/zenstaff/attendance-backend-go/internal/domain/employee"
	"github.com/zenstaff/attendance-backend-go/internal/domain/holiday"
	"github.com/zenstaff/attendance-backend-go/internal/domain/report"
	"github.com/zenstaff/attendance-backend-go/internal/pkg/validator"
)

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (f *fakeEmployeeRepo) Create(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	f.employees[emp.ID] = emp
	return emp, nil
}

func (f *fakeEmployeeRepo) Update(_ context.Context, emp employee.Employee) error {
	f.employees[emp.ID] = emp
	return nil
}

func (f *fakeEmployeeRepo) Delete(_ context.Context, id string) error {
	delete(f.employees, id)
	return nil
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	emp, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) List(_ context.Context) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, emp := range f.employees {
		out = append(out, emp)
	}
	return out, nil
}

func (f *fakeEmployeeRepo) ListTracked(_ context.Context) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, emp := range f.employees {
		if emp.Tracked() {
			out = append(out, emp)
		}
	}
	return out, nil
}

type fakeAttendanceRepo struct {
	records []attendance.Record
}

func (f *fakeAttendanceRepo) Upsert(_ context.Context, rec attendance.Record) (attendance.Record, error) {
	f.records = append(f.records, rec)
	return rec, nil
}

func (f *fakeAttendanceRepo) GetByEmployeeAndDate(_ context.Context, employeeID string, date time.Time) (*attendance.Record, error) {
	for i := len(f.records) - 1; i >= 0; i-- {
		rec := f.records[i]
		if rec.EmployeeID == employeeID && rec.Date.Equal(date) {
			return &rec, nil
		}
	}
	return nil, nil
}

func (f *fakeAttendanceRepo) ListByDate(_ context.Context, date time.Time) ([]attendance.Record, error) {
	var out []attendance.Record
	for _, rec := range f.records {
		if rec.Date.Equal(date) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) ListByEmployee(_ context.Context, employeeID string, from, to time.Time) ([]attendance.Record, error) {
	var out []attendance.Record
	for _, rec := range f.records {
		if rec.EmployeeID == employeeID && !rec.Date.Before(from) && !rec.Date.After(to) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) List(_ context.Context, _ attendance.RecordFilter) ([]attendance.Record, error) {
	return f.records, nil
}

type fakeHolidayRepo struct {
	holidays []holiday.Holiday
}

func (f *fakeHolidayRepo) Upsert(_ context.Context, h holiday.Holiday) (holiday.Holiday, error) {
	f.holidays = append(f.holidays, h)
	return h, nil
}

func (f *fakeHolidayRepo) Delete(_ context.Context, _ time.Time) error { return nil }

func (f *fakeHolidayRepo) GetByDate(_ context.Context, date time.Time) (*holiday.Holiday, error) {
	for _, h := range f.holidays {
		if h.Date.Equal(date) {
			return &h, nil
		}
	}
	return nil, nil
}

func (f *fakeHolidayRepo) List(_ context.Context) ([]holiday.Holiday, error) {
	return f.holidays, nil
}

func (f *fakeHolidayRepo) ListRange(_ context.Context, from, to time.Time) ([]holiday.Holiday, error) {
	var out []holiday.Holiday
	for _, h := range f.holidays {
		if !h.Date.Before(from) && !h.Date.After(to) {
			out = append(out, h)
		}
	}
	return out, nil
}

func newTestReportService() (report.ReportService, *fakeAttendanceRepo, *fakeHolidayRepo) {
	rate := decimal.NewFromInt(250)
	empRepo := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"1": {ID: "1", Name: "Sathish", Role: employee.RoleTSE, Employed: true, HourlyPayRate: &rate},
		"9": {ID: "9", Name: "Boss", Role: employee.RoleOwner, Employed: true},
	}}
	attRepo := &fakeAttendanceRepo{}
	holRepo := &fakeHolidayRepo{}

	return NewReportService(empRepo, attRepo, holRepo, NewCalculator()), attRepo, holRepo
}

func TestGetSummaryMonthWindow(t *testing.T) {
	svc, attRepo, _ := newTestReportService()
	ctx := context.Background()

	// Mon Aug 25 and Tue Aug 26, 2025.
	for day := 25; day <= 26; day++ {
		attRepo.records = append(attRepo.records, attendance.Record{
			EmployeeID: "1",
			Date:       time.Date(2025, 8, day, 0, 0, 0, 0, time.UTC),
			Status:     attendance.StatusPresent,
			CheckIn:    "09:00",
			CheckOut:   "17:00",
		})
	}

	now := time.Date(2025, 8, 26, 0, 0, 0, 0, time.UTC)
	resp, err := svc.GetSummary(ctx, "1", report.PeriodMonth, now)
	require.NoError(t, err)

	assert.Equal(t, "2025-08-01", resp.PeriodStart)
	assert.Equal(t, 2, resp.Summary.PresentCount)
	assert.Equal(t, 2.0, resp.Summary.DaysToPay)
}

func TestGetSummaryQuarterStart(t *testing.T) {
	svc, _, _ := newTestReportService()

	now := time.Date(2025, 8, 26, 0, 0, 0, 0, time.UTC)
	resp, err := svc.GetSummary(context.Background(), "1", report.PeriodQuarter, now)
	require.NoError(t, err)
	assert.Equal(t, "2025-07-01", resp.PeriodStart)
}

func TestGetSummaryInvalidPeriod(t *testing.T) {
	svc, _, _ := newTestReportService()

	_, err := svc.GetSummary(context.Background(), "1", report.Period("week"), time.Now())
	assert.ErrorIs(t, err, report.ErrInvalidPeriod)
}

func TestGetSummaryUnknownEmployee(t *testing.T) {
	svc, _, _ := newTestReportService()

	_, err := svc.GetSummary(context.Background(), "nobody", report.PeriodMonth, time.Now())
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestGetPayslipNoPayRate(t *testing.T) {
	svc, _, _ := newTestReportService()

	_, err := svc.GetPayslip(context.Background(), "9", "2025-08", time.Date(2025, 8, 31, 0, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, report.ErrNoPayRate)
}

func TestGetPayslipInvalidMonth(t *testing.T) {
	svc, _, _ := newTestReportService()

	_, err := svc.GetPayslip(context.Background(), "1", "08-2025", time.Now())
	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}

func TestGetPayslipMonthToDate(t *testing.T) {
	svc, attRepo, _ := newTestReportService()
	ctx := context.Background()

	attRepo.records = append(attRepo.records, attendance.Record{
		EmployeeID: "1",
		Date:       time.Date(2025, 8, 25, 0, 0, 0, 0, time.UTC),
		Status:     attendance.StatusPresent,
		CheckIn:    "09:00",
		CheckOut:   "17:00",
	})
	// A record after now never counts.
	attRepo.records = append(attRepo.records, attendance.Record{
		EmployeeID: "1",
		Date:       time.Date(2025, 8, 28, 0, 0, 0, 0, time.UTC),
		Status:     attendance.StatusPresent,
		CheckIn:    "09:00",
		CheckOut:   "17:00",
	})

	now := time.Date(2025, 8, 26, 0, 0, 0, 0, time.UTC)
	resp, err := svc.GetPayslip(ctx, "1", "2025-08", now)
	require.NoError(t, err)

	assert.Equal(t, 1, resp.Pay.TotalPresentDays)
	assert.Equal(t, 1, resp.Pay.NetPayableDays)
	assert.True(t, resp.Pay.GrossPay.Equal(decimal.NewFromInt(2000)))
}
