package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/asistencia-qr/attendance-backend-go/internal/config"
	"github.com/asistencia-qr/attendance-backend-go/internal/domain/schedule"
	appHTTP "github.com/asistencia-qr/attendance-backend-go/internal/handler/http"
	"github.com/asistencia-qr/attendance-backend-go/internal/pkg/cron"
	"github.com/asistencia-qr/attendance-backend-go/internal/pkg/database"
	"github.com/asistencia-qr/attendance-backend-go/internal/pkg/email"
	"github.com/asistencia-qr/attendance-backend-go/internal/pkg/jwt"
	"github.com/asistencia-qr/attendance-backend-go/internal/pkg/oauth"
	"github.com/asistencia-qr/attendance-backend-go/internal/pkg/qr"
	"github.com/asistencia-qr/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/asistencia-qr/attendance-backend-go/internal/service/attendance"
	serviceAuth "github.com/asistencia-qr/attendance-backend-go/internal/service/auth"
	serviceCompany "github.com/asistencia-qr/attendance-backend-go/internal/service/company"
	employeeService "github.com/asistencia-qr/attendance-backend-go/internal/service/employee"
	notificationService "github.com/asistencia-qr/attendance-backend-go/internal/service/notification"
	reportService "github.com/asistencia-qr/attendance-backend-go/internal/service/report"
	scheduleService "github.com/asistencia-qr/attendance-backend-go/internal/service/schedule"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}
	loc := cfg.Location()

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	companyRepo := postgresql.NewCompanyRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	scheduleRepo := postgresql.NewScheduleRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	scanRepo := postgresql.NewScanTrackingRepository(db)
	adminRepo := postgresql.NewAdministratorRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	GoogleService := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)
	qrGenerator := qr.NewGenerator()
	emailService, err := email.NewEmailService(cfg.SMTP)
	if err != nil {
		log.Fatal("Failed to initialize email service:", err)
	}

	scheduleDefaults := schedule.Thresholds{
		MorningLateMinute:   cfg.Attendance.MorningLateMinute,
		AfternoonLateMinute: cfg.Attendance.AfternoonLateMinute,
	}
	scheduleSvc := scheduleService.NewScheduleService(scheduleRepo, companyRepo, scheduleDefaults)
	slotResolver := attendanceService.NewSlotResolver(cfg.Attendance.AfternoonStartMinute, cfg.Attendance.MinShiftGap)

	authSvc := serviceAuth.NewAuthService(adminRepo, JWTService)
	companySvc := serviceCompany.NewCompanyService(db, companyRepo, scheduleRepo, scheduleSvc)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo, companyRepo, scanRepo, qrGenerator)
	attendanceSvc := attendanceService.NewAttendanceService(
		db,
		attendanceRepo,
		scanRepo,
		employeeRepo,
		scheduleSvc,
		slotResolver,
		cfg.Attendance.ScanCooldown,
		loc,
	)
	reportSvc := reportService.NewReportService(companyRepo, employeeRepo, attendanceRepo, loc, cfg.Attendance.TopRankSize)
	notificationSvc := notificationService.NewNotificationService(
		companyRepo,
		employeeRepo,
		adminRepo,
		attendanceRepo,
		reportSvc,
		emailService,
		cfg.SMTP.AdminEmail,
		loc,
	)

	scanHandler := appHTTP.NewScanHandler(attendanceSvc)
	authHandler := appHTTP.NewAuthHandler(JWTService, authSvc, GoogleService, cfg.App.FrontendURL)
	companyHandler := appHTTP.NewCompanyHandler(companySvc, scheduleSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc, notificationSvc)

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{Env: cfg.App.Env, FrontendURL: cfg.App.FrontendURL},
		JWTService,
		scanHandler,
		authHandler,
		companyHandler,
		employeeHandler,
		attendanceHandler,
		reportHandler,
	)

	scheduler := cron.NewScheduler()
	weeklyJobs := cron.NewWeeklyReportJobs(notificationSvc, cfg.Attendance.WeeklyReportWeekday, cfg.Attendance.WeeklyReportHour, loc)
	weeklyJobs.RegisterJobs(scheduler)
	scheduler.Start()

	port := fmt.Sprintf(":%d", cfg.App.Port)
	server := &http.Server{
		Addr:    port,
		Handler: router,
	}

	go func() {
		fmt.Printf("Server running at http://localhost%s\n", port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server error:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("Shutting down...")
	scheduler.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		fmt.Println("Forced shutdown:", err)
	}
	db.Close()
}
