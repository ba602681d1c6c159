package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/zenstaff/attendance-backend-go/internal/domain/attendance"
	"github.com/zenstaff/attendance-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	GetDaySheet(w http.ResponseWriter, r *http.Request)
	SaveDay(w http.ResponseWriter, r *http.Request)
	MarkAbsent(w http.ResponseWriter, r *http.Request)
	ListRecords(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// GetDaySheet handles GET /attendance?date=YYYY-MM-DD. The date defaults to
// today so the entry screen opens on the current day.
func (h *attendanceHandlerImpl) GetDaySheet(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	result, err := h.attendanceService.GetDaySheet(r.Context(), date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// SaveDay handles PUT /attendance/{date}
func (h *attendanceHandlerImpl) SaveDay(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")

	var req attendance.SaveDayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.SaveDay(r.Context(), date, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// MarkAbsent handles POST /attendance/{date}/absent
func (h *attendanceHandlerImpl) MarkAbsent(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")

	var req attendance.MarkAbsentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.MarkAbsent(r.Context(), date, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListRecords handles GET /attendance/records
func (h *attendanceHandlerImpl) ListRecords(w http.ResponseWriter, r *http.Request) {
	filter := recordFilterFromQuery(r)

	result, err := h.attendanceService.ListRecords(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func recordFilterFromQuery(r *http.Request) attendance.RecordFilter {
	var filter attendance.RecordFilter
	q := r.URL.Query()

	if v := q.Get("employeeId"); v != "" {
		filter.EmployeeID = &v
	}
	if v := q.Get("date"); v != "" {
		filter.Date = &v
	}
	if v := q.Get("from"); v != "" {
		filter.StartDate = &v
	}
	if v := q.Get("to"); v != "" {
		filter.EndDate = &v
	}

	return filter
}
