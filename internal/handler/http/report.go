package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/asistencia-qr/attendance-backend-go/internal/domain/notification"
	"github.com/asistencia-qr/attendance-backend-go/internal/domain/report"
	"github.com/asistencia-qr/attendance-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ReportHandler interface {
	Monthly(w http.ResponseWriter, r *http.Request)
	Employee(w http.ResponseWriter, r *http.Request)
	Summary(w http.ResponseWriter, r *http.Request)
	ExportExcel(w http.ResponseWriter, r *http.Request)
	DispatchWeekly(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService       report.ReportService
	notificationService notification.NotificationService
}

// Monthly implements ReportHandler.
func (h *ReportHandlerImpl) Monthly(w http.ResponseWriter, r *http.Request) {
	req := parseMonthlyRequest(r)
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	monthly, err := h.reportService.MonthlyCompanyReport(r.Context(), req)
	if err != nil {
		slog.Error("Monthly report service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Monthly report generated successfully", monthly)
}

// Employee implements ReportHandler.
func (h *ReportHandlerImpl) Employee(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := &report.EmployeeReportRequest{
		EmployeeID: chi.URLParam(r, "id"),
	}
	req.Month, _ = strconv.Atoi(q.Get("month"))
	req.Year, _ = strconv.Atoi(q.Get("year"))

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	detail, err := h.reportService.EmployeeDetailReport(r.Context(), req)
	if err != nil {
		slog.Error("Employee report service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee report generated successfully", detail)
}

// Summary implements ReportHandler.
func (h *ReportHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := &report.RangeSummaryRequest{
		CompanyID: q.Get("company_id"),
		StartDate: q.Get("start_date"),
		EndDate:   q.Get("end_date"),
	}
	if raw := q.Get("week_offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil {
			response.BadRequest(w, "week_offset must be an integer", nil)
			return
		}
		req.WeekOffset = &offset
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	summary, err := h.reportService.RangeSummary(r.Context(), req)
	if err != nil {
		slog.Error("Range summary service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Summary generated successfully", summary)
}

// ExportExcel implements ReportHandler.
func (h *ReportHandlerImpl) ExportExcel(w http.ResponseWriter, r *http.Request) {
	req := parseMonthlyRequest(r)
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	workbook, filename, err := h.reportService.MonthlyExcel(r.Context(), req)
	if err != nil {
		slog.Error("Excel export service error", "error", err)
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(workbook)))
	w.WriteHeader(http.StatusOK)
	w.Write(workbook)
}

// DispatchWeekly implements ReportHandler.
func (h *ReportHandlerImpl) DispatchWeekly(w http.ResponseWriter, r *http.Request) {
	result, err := h.notificationService.DispatchWeeklyDigest(r.Context())
	if err != nil {
		slog.Error("Weekly digest dispatch error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Weekly digest dispatched manually",
		"companies", result.CompaniesProcessed,
		"sent", result.EmailsSent,
		"failed", result.EmailsFailed)
	response.SuccessWithMessage(w, "Weekly digest dispatched", result)
}

func parseMonthlyRequest(r *http.Request) *report.MonthlyReportRequest {
	q := r.URL.Query()
	req := &report.MonthlyReportRequest{CompanyID: q.Get("company_id")}
	req.Month, _ = strconv.Atoi(q.Get("month"))
	req.Year, _ = strconv.Atoi(q.Get("year"))
	return req
}

func NewReportHandler(reportService report.ReportService, notificationService notification.NotificationService) ReportHandler {
	return &ReportHandlerImpl{
		reportService:       reportService,
		notificationService: notificationService,
	}
}
