package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/zenstaff/attendance-backend-go/internal/domain/attendance"
	"github.com/zenstaff/attendance-backend-go/internal/domain/employee"
	"github.com/zenstaff/attendance-backend-go/internal/domain/holiday"
	"github.com/zenstaff/attendance-backend-go/internal/pkg/clock"
	"github.com/zenstaff/attendance-backend-go/internal/pkg/database"
	"github.com/zenstaff/attendance-backend-go/internal/pkg/validator"
	"github.com/zenstaff/attendance-backend-go/internal/repository/postgresql"
)

type AttendanceServiceImpl struct {
	db *database.DB
	attendance.AttendanceRepository
	employee.EmployeeRepository
	holiday.HolidayRepository
}

func NewAttendanceService(
	db *database.DB,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	holidayRepo holiday.HolidayRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:                   db,
		AttendanceRepository: attendanceRepo,
		EmployeeRepository:   employeeRepo,
		HolidayRepository:    holidayRepo,
	}
}

// parseDay rejects malformed dates as a validation error so callers get a
// 4xx, not a generic failure.
func parseDay(date string) (time.Time, error) {
	day, ok := validator.IsValidDate(date)
	if !ok {
		return time.Time{}, validator.ValidationErrors{
			{Field: "date", Message: "must be YYYY-MM-DD"},
		}
	}
	return day, nil
}

// normalizeTime maps an empty string onto the sentinel so stored records
// always carry either "HH:mm" or "--:--".
func normalizeTime(s string) string {
	if s == "" {
		return clock.Sentinel
	}
	return s
}

// GetDaySheet implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetDaySheet(ctx context.Context, date string) (attendance.DaySheetResponse, error) {
	day, err := parseDay(date)
	if err != nil {
		return attendance.DaySheetResponse{}, err
	}

	hol, err := s.HolidayRepository.GetByDate(ctx, day)
	if err != nil {
		return attendance.DaySheetResponse{}, fmt.Errorf("failed to look up holiday: %w", err)
	}

	staff, err := s.EmployeeRepository.ListTracked(ctx)
	if err != nil {
		return attendance.DaySheetResponse{}, fmt.Errorf("failed to list tracked employees: %w", err)
	}

	records, err := s.AttendanceRepository.ListByDate(ctx, day)
	if err != nil {
		return attendance.DaySheetResponse{}, fmt.Errorf("failed to list attendance: %w", err)
	}

	byEmployee := make(map[string]attendance.Record, len(records))
	for _, rec := range records {
		byEmployee[rec.EmployeeID] = rec
	}

	sheet := attendance.DaySheetResponse{
		Date: date,
		Rows: make([]attendance.DayRow, 0, len(staff)),
	}
	if hol != nil {
		sheet.IsHoliday = true
		sheet.HolidayName = hol.Name
	}

	for _, emp := range staff {
		row := attendance.DayRow{
			EmployeeID:   emp.ID,
			EmployeeName: emp.Name,
			Role:         string(emp.Role),
			Status:       attendance.StatusNotMarked,
			CheckInTime:  clock.Sentinel,
			CheckOutTime: clock.Sentinel,
			WorkedHours:  "--",
		}

		if hol != nil {
			// A holiday forces everyone to Present and suppresses whatever
			// record might be stored for that date.
			row.Status = attendance.StatusPresent
		} else if rec, ok := byEmployee[emp.ID]; ok {
			row.Status = rec.Status
			row.CheckInTime = rec.CheckIn
			row.CheckOutTime = rec.CheckOut
			row.WorkedHours = attendance.DisplayHours(rec.CheckIn, rec.CheckOut)
		}

		sheet.Rows = append(sheet.Rows, row)
	}

	return sheet, nil
}

// SaveDay implements attendance.AttendanceService. The batch is validated as
// a whole before any record is written; a single incomplete record rejects
// the entire save so the caller can correct it.
func (s *AttendanceServiceImpl) SaveDay(ctx context.Context, date string, req attendance.SaveDayRequest) (attendance.DaySheetResponse, error) {
	day, err := parseDay(date)
	if err != nil {
		return attendance.DaySheetResponse{}, err
	}

	hol, err := s.HolidayRepository.GetByDate(ctx, day)
	if err != nil {
		return attendance.DaySheetResponse{}, fmt.Errorf("failed to look up holiday: %w", err)
	}
	if hol != nil {
		return attendance.DaySheetResponse{}, attendance.ErrHolidayLocked
	}

	if err := req.Validate(date); err != nil {
		return attendance.DaySheetResponse{}, err
	}

	toSave := make([]attendance.Record, 0, len(req.Records))
	for _, payload := range req.Records {
		emp, err := s.EmployeeRepository.GetByID(ctx, payload.EmployeeID)
		if err != nil {
			if errors.Is(err, employee.ErrEmployeeNotFound) {
				return attendance.DaySheetResponse{}, employee.ErrEmployeeNotFound
			}
			return attendance.DaySheetResponse{}, fmt.Errorf("failed to get employee: %w", err)
		}
		if !emp.Employed {
			return attendance.DaySheetResponse{}, employee.ErrEmployeeNotActive
		}
		if !emp.Tracked() {
			return attendance.DaySheetResponse{}, attendance.ErrEmployeeNotTracked
		}

		rec := attendance.Record{
			EmployeeID: emp.ID,
			Date:       day,
			CheckIn:    normalizeTime(payload.CheckInTime),
			CheckOut:   normalizeTime(payload.CheckOutTime),
		}
		if payload.Status == attendance.StatusAbsent {
			// Explicit mark-absent wins and resets both times.
			rec.Status = attendance.StatusAbsent
			rec.CheckIn = clock.Sentinel
			rec.CheckOut = clock.Sentinel
		} else {
			rec.Status = attendance.DeriveStatus(rec.CheckIn)
			if rec.Status == attendance.StatusNotMarked {
				rec.CheckOut = clock.Sentinel
			}
		}
		toSave = append(toSave, rec)
	}

	if err := s.saveRecords(ctx, toSave); err != nil {
		return attendance.DaySheetResponse{}, err
	}

	return s.GetDaySheet(ctx, date)
}

// saveRecords writes the batch atomically; a failed upsert rolls back the
// whole day. In-memory repositories carry no pool and write directly.
func (s *AttendanceServiceImpl) saveRecords(ctx context.Context, records []attendance.Record) error {
	upsertAll := func(ctx context.Context) error {
		for _, rec := range records {
			if _, err := s.AttendanceRepository.Upsert(ctx, rec); err != nil {
				return fmt.Errorf("failed to upsert attendance record: %w", err)
			}
		}
		return nil
	}

	if s.db == nil {
		return upsertAll(ctx)
	}
	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		return upsertAll(context.WithValue(ctx, "tx", tx))
	})
}

// MarkAbsent implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) MarkAbsent(ctx context.Context, date string, req attendance.MarkAbsentRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	day, err := parseDay(date)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	hol, err := s.HolidayRepository.GetByDate(ctx, day)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to look up holiday: %w", err)
	}
	if hol != nil {
		return attendance.RecordResponse{}, attendance.ErrHolidayLocked
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return attendance.RecordResponse{}, employee.ErrEmployeeNotFound
		}
		return attendance.RecordResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}
	if !emp.Employed {
		return attendance.RecordResponse{}, employee.ErrEmployeeNotActive
	}
	if !emp.Tracked() {
		return attendance.RecordResponse{}, attendance.ErrEmployeeNotTracked
	}

	rec, err := s.AttendanceRepository.Upsert(ctx, attendance.Record{
		EmployeeID: emp.ID,
		Date:       day,
		Status:     attendance.StatusAbsent,
		CheckIn:    clock.Sentinel,
		CheckOut:   clock.Sentinel,
	})
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to upsert attendance record: %w", err)
	}

	return attendance.RecordResponse{
		EmployeeID:   rec.EmployeeID,
		EmployeeName: emp.Name,
		Date:         date,
		Status:       rec.Status,
		CheckInTime:  rec.CheckIn,
		CheckOutTime: rec.CheckOut,
	}, nil
}

// ListRecords implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListRecords(ctx context.Context, filter attendance.RecordFilter) ([]attendance.RecordResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	records, err := s.AttendanceRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}

	responses := make([]attendance.RecordResponse, 0, len(records))
	for _, rec := range records {
		var name string
		if rec.EmployeeName != nil {
			name = *rec.EmployeeName
		}
		responses = append(responses, attendance.RecordResponse{
			EmployeeID:   rec.EmployeeID,
			EmployeeName: name,
			Date:         rec.Date.Format("2006-01-02"),
			Status:       rec.Status,
			CheckInTime:  rec.CheckIn,
			CheckOutTime: rec.CheckOut,
		})
	}

	return responses, nil
}
