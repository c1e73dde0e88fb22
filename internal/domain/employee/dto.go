package employee

import (
	"github.com/asistencia-qr/attendance-backend-go/internal/pkg/validator"
)

type RegisterEmployeeRequest struct {
	CompanyID string `json:"company_id"`
	FullName  string `json:"full_name"`
	DNI       string `json:"dni"`
	Phone     string `json:"phone,omitempty"`
	Email     string `json:"email,omitempty"`
}

func (r *RegisterEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.CompanyID) {
		errs = append(errs, validator.ValidationError{
			Field:   "company_id",
			Message: "company_id is required",
		})
	}
	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	}
	if !validator.IsValidDNI(r.DNI) {
		errs = append(errs, validator.ValidationError{
			Field:   "dni",
			Message: "dni must be 8-12 digits",
		})
	}
	if r.Email != "" && !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "invalid email address",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID string `json:"-"`

	FullName *string `json:"full_name,omitempty"`
	DNI      *string `json:"dni,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Email    *string `json:"email,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FullName == nil && r.DNI == nil && r.Phone == nil && r.Email == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "body",
			Message: "nothing to update",
		})
	}
	if r.FullName != nil && validator.IsEmpty(*r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name cannot be empty",
		})
	}
	if r.DNI != nil && !validator.IsValidDNI(*r.DNI) {
		errs = append(errs, validator.ValidationError{
			Field:   "dni",
			Message: "dni must be 8-12 digits",
		})
	}
	if r.Email != nil && *r.Email != "" && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "invalid email address",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID           string  `json:"id"`
	CompanyID    string  `json:"company_id"`
	CompanyName  *string `json:"company_name,omitempty"`
	FullName     string  `json:"full_name"`
	DNI          string  `json:"dni"`
	QRToken      string  `json:"qr_token"`
	Phone        string  `json:"phone,omitempty"`
	Email        string  `json:"email,omitempty"`
	Active       bool    `json:"active"`
	RegisteredAt string  `json:"registered_at"`
}

func NewEmployeeResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:           e.ID,
		CompanyID:    e.CompanyID,
		CompanyName:  e.CompanyName,
		FullName:     e.FullName,
		DNI:          e.DNI,
		QRToken:      e.QRToken,
		Phone:        e.Phone,
		Email:        e.Email,
		Active:       e.Active,
		RegisteredAt: e.RegisteredAt.Format("2006-01-02 15:04:05"),
	}
}

type QRImageResponse struct {
	EmployeeID string `json:"employee_id"`
	QRToken    string `json:"qr_token"`
	// ImageDataURI is a base64 PNG data URI renderable in an <img> tag.
	ImageDataURI string `json:"qr_code_image"`
}
