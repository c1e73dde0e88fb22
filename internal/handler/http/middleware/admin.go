package middleware

import (
	"net/http"

	"github.com/asistencia-qr/attendance-backend-go/internal/domain/auth"
	"github.com/asistencia-qr/attendance-backend-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		role, ok := claims["role"].(string)
		if !ok {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}
		if role != string(auth.RoleCompanyAdmin) && role != string(auth.RoleSuperAdmin) {
			response.Forbidden(w, "administrator role required")
			return
		}

		next.ServeHTTP(w, r)
	})
}
