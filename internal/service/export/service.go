package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/zenstaff/attendance-backend-go/internal/domain/attendance"
)

// ExportService streams attendance data in flat formats for offline use.
type ExportService interface {
	WriteAttendanceCSV(ctx context.Context, w io.Writer, filter attendance.RecordFilter) error
}

type ExportServiceImpl struct {
	attendanceService attendance.AttendanceService
}

func NewExportService(attendanceService attendance.AttendanceService) ExportService {
	return &ExportServiceImpl{
		attendanceService: attendanceService,
	}
}

var csvHeader = []string{"employeeId", "employeeName", "date", "status", "checkInTime", "checkOutTime"}

// WriteAttendanceCSV implements ExportService. One row per stored record;
// days without a record are not emitted.
func (s *ExportServiceImpl) WriteAttendanceCSV(ctx context.Context, w io.Writer, filter attendance.RecordFilter) error {
	records, err := s.attendanceService.ListRecords(ctx, filter)
	if err != nil {
		return err
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, rec := range records {
		row := []string{
			rec.EmployeeID,
			rec.EmployeeName,
			rec.Date,
			string(rec.Status),
			rec.CheckInTime,
			rec.CheckOutTime,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
