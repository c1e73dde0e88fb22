package company

import (
	"github.com/asistencia-qr/attendance-backend-go/internal/pkg/validator"
)

type CreateCompanyRequest struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

func (r *CreateCompanyRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if !validator.IsValidCompanyCode(r.Code) {
		errs = append(errs, validator.ValidationError{
			Field:   "code",
			Message: "code must be 2-20 characters: A-Z, 0-9, dash",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateCompanyRequest struct {
	ID   string  `json:"-"`
	Name *string `json:"name,omitempty"`
	Code *string `json:"code,omitempty"`
}

func (r *UpdateCompanyRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name == nil && r.Code == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "body",
			Message: "nothing to update",
		})
	}
	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name cannot be empty",
		})
	}
	if r.Code != nil && !validator.IsValidCompanyCode(*r.Code) {
		errs = append(errs, validator.ValidationError{
			Field:   "code",
			Message: "code must be 2-20 characters: A-Z, 0-9, dash",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CompanyResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Code          string `json:"code"`
	EmployeeCount *int64 `json:"employee_count,omitempty"`
	CreatedAt     string `json:"created_at"`
}

func NewCompanyResponse(c Company) CompanyResponse {
	return CompanyResponse{
		ID:            c.ID,
		Name:          c.Name,
		Code:          c.Code,
		EmployeeCount: c.EmployeeCount,
		CreatedAt:     c.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
