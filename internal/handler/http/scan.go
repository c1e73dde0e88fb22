package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/asistencia-qr/attendance-backend-go/internal/domain/attendance"
	"github.com/asistencia-qr/attendance-backend-go/internal/handler/http/response"
)

type ScanHandler interface {
	Scan(w http.ResponseWriter, r *http.Request)
}

type ScanHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

// Scan implements ScanHandler.
func (s *ScanHandlerImpl) Scan(w http.ResponseWriter, r *http.Request) {
	var scanReq attendance.ScanRequest

	if err := json.NewDecoder(r.Body).Decode(&scanReq); err != nil {
		slog.Error("Scan decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := scanReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	scanReq.IPAddress = clientIP(r)
	scanResponse, err := s.attendanceService.ProcessScan(r.Context(), scanReq)
	if err != nil {
		slog.Error("Scan service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, scanResponse.Message, scanResponse)
}

// clientIP prefers the first X-Forwarded-For hop so kiosks behind the
// reverse proxy are tracked by their real address.
func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		return strings.TrimSpace(strings.Split(forwarded, ",")[0])
	}
	host := r.RemoteAddr
	if idx := strings.LastIndex(host, ":"); idx > 0 {
		host = host[:idx]
	}
	return host
}

func NewScanHandler(attendanceService attendance.AttendanceService) ScanHandler {
	return &ScanHandlerImpl{attendanceService: attendanceService}
}
