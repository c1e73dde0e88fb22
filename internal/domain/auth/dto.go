package auth

import (
	"github.com/asistencia-qr/attendance-backend-go/internal/pkg/validator"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username is required",
		})
	}
	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LoginResponse struct {
	AccessToken  string        `json:"access_token"`
	ExpiresAt    int64         `json:"expires_at"`
	RefreshToken string        `json:"-"`
	RefreshExp   int64         `json:"-"`
	Admin        AdminResponse `json:"admin"`
}

type AdminResponse struct {
	ID        string `json:"id"`
	CompanyID string `json:"company_id"`
	Name      string `json:"name"`
	Username  string `json:"username"`
	Email     string `json:"email,omitempty"`
	Role      string `json:"role"`
}

func NewAdminResponse(a Administrator) AdminResponse {
	return AdminResponse{
		ID:        a.ID,
		CompanyID: a.CompanyID,
		Name:      a.Name,
		Username:  a.Username,
		Email:     a.Email,
		Role:      string(a.Role),
	}
}
