package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/asistencia-qr/attendance-backend-go/internal/domain/attendance"
	"github.com/asistencia-qr/attendance-backend-go/internal/handler/http/middleware"
	"github.com/asistencia-qr/attendance-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type AttendanceHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	UpdateSlots(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

// List implements AttendanceHandler.
func (a *AttendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	companyID, err := middleware.CompanyIDFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	filter := parseAttendanceFilter(r)
	list, err := a.attendanceService.ListAttendance(r.Context(), filter, companyID)
	if err != nil {
		slog.Error("Attendance list service error", "error", err)
		response.HandleError(w, err)
		return
	}

	totalPages := 0
	if filter.Limit > 0 {
		totalPages = int((list.Total + int64(filter.Limit) - 1) / int64(filter.Limit))
	}
	response.SuccessWithMeta(w, list.Items, &response.Meta{
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalItems: list.Total,
		TotalPages: totalPages,
	})
}

// GetByID implements AttendanceHandler.
func (a *AttendanceHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	companyID, err := middleware.CompanyIDFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	found, err := a.attendanceService.GetAttendance(r.Context(), chi.URLParam(r, "id"), companyID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance retrieved successfully", found)
}

// UpdateSlots implements AttendanceHandler.
func (a *AttendanceHandlerImpl) UpdateSlots(w http.ResponseWriter, r *http.Request) {
	companyID, err := middleware.CompanyIDFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var updateReq attendance.UpdateSlotsRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update attendance decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")
	updateReq.CompanyID = companyID

	if err := updateReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	updated, err := a.attendanceService.UpdateSlots(r.Context(), updateReq)
	if err != nil {
		slog.Error("Update attendance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance updated successfully", updated)
}

// Delete implements AttendanceHandler.
func (a *AttendanceHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	companyID, err := middleware.CompanyIDFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if err := a.attendanceService.DeleteAttendance(r.Context(), chi.URLParam(r, "id"), companyID); err != nil {
		slog.Error("Delete attendance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance deleted successfully", nil)
}

func parseAttendanceFilter(r *http.Request) attendance.Filter {
	q := r.URL.Query()

	filter := attendance.Filter{
		SortBy:    q.Get("sort_by"),
		SortOrder: q.Get("sort_order"),
	}
	if v := q.Get("employee_id"); v != "" {
		filter.EmployeeID = &v
	}
	if v := q.Get("date"); v != "" {
		filter.Date = &v
	}
	if v := q.Get("start_date"); v != "" {
		filter.StartDate = &v
	}
	if v := q.Get("end_date"); v != "" {
		filter.EndDate = &v
	}
	if v := q.Get("day_status"); v != "" {
		filter.DayStatus = &v
	}
	if page, err := strconv.Atoi(q.Get("page")); err == nil {
		filter.Page = page
	}
	if limit, err := strconv.Atoi(q.Get("limit")); err == nil {
		filter.Limit = limit
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}
	return filter
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}
