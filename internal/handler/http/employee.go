package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/asistencia-qr/attendance-backend-go/internal/domain/employee"
	"github.com/asistencia-qr/attendance-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type EmployeeHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Register(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	ToggleActive(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	QRImage(w http.ResponseWriter, r *http.Request)
	QRImageBase64(w http.ResponseWriter, r *http.Request)
}

type EmployeeHandlerImpl struct {
	employeeService employee.EmployeeService
}

// List implements EmployeeHandler.
func (e *EmployeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	companyID := r.URL.Query().Get("company_id")

	employees, err := e.employeeService.ListByCompany(r.Context(), companyID)
	if err != nil {
		slog.Error("Employee list service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employees retrieved successfully", employees)
}

// Register implements EmployeeHandler.
func (e *EmployeeHandlerImpl) Register(w http.ResponseWriter, r *http.Request) {
	var registerReq employee.RegisterEmployeeRequest

	if err := json.NewDecoder(r.Body).Decode(&registerReq); err != nil {
		slog.Error("Register employee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := registerReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	registered, err := e.employeeService.Register(r.Context(), registerReq)
	if err != nil {
		slog.Error("Register employee service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employee registered successfully", registered)
}

// GetByID implements EmployeeHandler.
func (e *EmployeeHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	found, err := e.employeeService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee retrieved successfully", found)
}

// Update implements EmployeeHandler.
func (e *EmployeeHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var updateReq employee.UpdateEmployeeRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update employee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	if err := updateReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	updated, err := e.employeeService.Update(r.Context(), updateReq)
	if err != nil {
		slog.Error("Update employee service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee updated successfully", updated)
}

// ToggleActive implements EmployeeHandler.
func (e *EmployeeHandlerImpl) ToggleActive(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	toggled, err := e.employeeService.ToggleActive(r.Context(), id)
	if err != nil {
		slog.Error("Toggle employee service error", "error", err)
		response.HandleError(w, err)
		return
	}

	message := "Employee deactivated successfully"
	if toggled.Active {
		message = "Employee activated successfully"
	}
	response.SuccessWithMessage(w, message, toggled)
}

// Delete implements EmployeeHandler.
func (e *EmployeeHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := e.employeeService.Delete(r.Context(), id); err != nil {
		slog.Error("Delete employee service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee and attendance history deleted", nil)
}

// QRImage implements EmployeeHandler.
func (e *EmployeeHandlerImpl) QRImage(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	png, filename, err := e.employeeService.QRImagePNG(r.Context(), id)
	if err != nil {
		slog.Error("QR image service error", "error", err)
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(png)))
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

// QRImageBase64 implements EmployeeHandler.
func (e *EmployeeHandlerImpl) QRImageBase64(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	image, err := e.employeeService.QRImageBase64(r.Context(), id)
	if err != nil {
		slog.Error("QR base64 service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "QR image generated successfully", image)
}

func NewEmployeeHandler(employeeService employee.EmployeeService) EmployeeHandler {
	return &EmployeeHandlerImpl{employeeService: employeeService}
}
