package http

import (
	"log/slog"
	"net/http"

	"github.com/zenstaff/attendance-backend-go/internal/handler/http/response"
	"github.com/zenstaff/attendance-backend-go/internal/service/export"
)

type ExportHandler interface {
	ExportAttendanceCSV(w http.ResponseWriter, r *http.Request)
}

type exportHandlerImpl struct {
	exportService export.ExportService
}

func NewExportHandler(exportService export.ExportService) ExportHandler {
	return &exportHandlerImpl{
		exportService: exportService,
	}
}

// ExportAttendanceCSV handles GET /export/attendance.csv
func (h *exportHandlerImpl) ExportAttendanceCSV(w http.ResponseWriter, r *http.Request) {
	filter := recordFilterFromQuery(r)
	if err := filter.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="attendance.csv"`)

	if err := h.exportService.WriteAttendanceCSV(r.Context(), w, filter); err != nil {
		// Headers are already out; all we can do is log.
		slog.Error("ExportAttendanceCSV write error", "error", err)
	}
}
