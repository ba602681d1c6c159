package http

import (
	"net/http"
	"time"

	"github.com/zenstaff/attendance-backend-go/internal/domain/report"
	"github.com/zenstaff/attendance-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	GetSummary(w http.ResponseWriter, r *http.Request)
	GetPayslip(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// referenceNow reads the optional now=YYYY-MM-DD query parameter. Pinning
// now makes report responses reproducible; without it reports use today.
func referenceNow(r *http.Request) (time.Time, bool) {
	nowStr := r.URL.Query().Get("now")
	if nowStr == "" {
		return time.Now(), true
	}
	now, err := time.Parse("2006-01-02", nowStr)
	if err != nil {
		return time.Time{}, false
	}
	return now, true
}

// GetSummary handles GET /reports/summary
func (h *reportHandlerImpl) GetSummary(w http.ResponseWriter, r *http.Request) {
	employeeID := r.URL.Query().Get("employeeId")
	if employeeID == "" {
		response.BadRequest(w, "employeeId parameter is required", nil)
		return
	}

	period := report.Period(r.URL.Query().Get("period"))
	if period == "" {
		period = report.PeriodMonth
	}
	if !period.IsValid() {
		response.HandleError(w, report.ErrInvalidPeriod)
		return
	}

	now, ok := referenceNow(r)
	if !ok {
		response.BadRequest(w, "invalid now parameter", nil)
		return
	}

	result, err := h.reportService.GetSummary(r.Context(), employeeID, period, now)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetPayslip handles GET /reports/payslip
func (h *reportHandlerImpl) GetPayslip(w http.ResponseWriter, r *http.Request) {
	employeeID := r.URL.Query().Get("employeeId")
	if employeeID == "" {
		response.BadRequest(w, "employeeId parameter is required", nil)
		return
	}

	month := r.URL.Query().Get("month")
	if month == "" {
		month = time.Now().Format("2006-01")
	}

	now, ok := referenceNow(r)
	if !ok {
		response.BadRequest(w, "invalid now parameter", nil)
		return
	}

	result, err := h.reportService.GetPayslip(r.Context(), employeeID, month, now)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
