package http

import (
	"log/slog"
	"os"

	"github.com/asistencia-qr/attendance-backend-go/internal/handler/http/middleware"
	"github.com/asistencia-qr/attendance-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type RouterConfig struct {
	Env         string
	FrontendURL string
}

func NewRouter(
	cfg RouterConfig,
	jwtService jwt.Service,
	scanHandler ScanHandler,
	authHandler AuthHandler,
	companyHandler CompanyHandler,
	employeeHandler EmployeeHandler,
	attendanceHandler AttendanceHandler,
	reportHandler ReportHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "asistencia-qr"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		// Kiosk endpoint, no auth
		r.Post("/scan", scanHandler.Scan)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
			r.Route("/oauth/callback", func(r chi.Router) {
				r.Get("/google", authHandler.OAuthCallbackGoogle)
			})

			r.Route("/login", func(r chi.Router) {
				r.Post("/", authHandler.Login)
				r.Route("/oauth", func(r chi.Router) {
					r.Get("/google", authHandler.LoginWithGoogle)
				})
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService))
			r.Use(middleware.AdminOnly)

			r.Route("/companies", func(r chi.Router) {
				r.Get("/", companyHandler.List)
				r.Post("/", companyHandler.Create)

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", companyHandler.GetByID)
					r.Put("/", companyHandler.Update)
					r.Delete("/", companyHandler.Delete)

					r.Get("/schedule", companyHandler.GetSchedule)
					r.Put("/schedule", companyHandler.UpdateSchedule)
				})
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", employeeHandler.List)
				r.Post("/", employeeHandler.Register)

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", employeeHandler.GetByID)
					r.Put("/", employeeHandler.Update)
					r.Delete("/", employeeHandler.Delete)
					r.Post("/toggle", employeeHandler.ToggleActive)

					r.Get("/qr", employeeHandler.QRImage)
					r.Get("/qr/base64", employeeHandler.QRImageBase64)
				})
			})

			r.Route("/attendances", func(r chi.Router) {
				r.Get("/", attendanceHandler.List)

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", attendanceHandler.GetByID)
					r.Put("/", attendanceHandler.UpdateSlots)
					r.Delete("/", attendanceHandler.Delete)
				})
			})

			r.Route("/reports", func(r chi.Router) {
				r.Get("/monthly", reportHandler.Monthly)
				r.Get("/employee/{id}", reportHandler.Employee)
				r.Get("/summary", reportHandler.Summary)
				r.Get("/export/excel", reportHandler.ExportExcel)
				r.Post("/weekly/dispatch", reportHandler.DispatchWeekly)
			})
		})
	})
	return r
}
