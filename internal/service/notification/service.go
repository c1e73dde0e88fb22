package notification

import (
	"context"
	"log/slog"
	"time"

	"github.com/asistencia-qr/attendance-backend-go/internal/domain/attendance"
	"github.com/asistencia-qr/attendance-backend-go/internal/domain/auth"
	"github.com/asistencia-qr/attendance-backend-go/internal/domain/company"
	"github.com/asistencia-qr/attendance-backend-go/internal/domain/employee"
	"github.com/asistencia-qr/attendance-backend-go/internal/domain/notification"
	"github.com/asistencia-qr/attendance-backend-go/internal/domain/report"
	"github.com/asistencia-qr/attendance-backend-go/internal/pkg/email"
)

type NotificationServiceImpl struct {
	companyRepo    company.CompanyRepository
	employeeRepo   employee.EmployeeRepository
	adminRepo      auth.AdministratorRepository
	attendanceRepo attendance.AttendanceRepository
	reportSvc      report.ReportService
	emailSvc       email.EmailService

	fallbackAdminEmail string
	loc                *time.Location
	now                func() time.Time
}

func NewNotificationService(
	companyRepo company.CompanyRepository,
	employeeRepo employee.EmployeeRepository,
	adminRepo auth.AdministratorRepository,
	attendanceRepo attendance.AttendanceRepository,
	reportSvc report.ReportService,
	emailSvc email.EmailService,
	fallbackAdminEmail string,
	loc *time.Location,
) notification.NotificationService {
	return &NotificationServiceImpl{
		companyRepo:        companyRepo,
		employeeRepo:       employeeRepo,
		adminRepo:          adminRepo,
		attendanceRepo:     attendanceRepo,
		reportSvc:          reportSvc,
		emailSvc:           emailSvc,
		fallbackAdminEmail: fallbackAdminEmail,
		loc:                loc,
		now:                time.Now,
	}
}

// DispatchWeeklyDigest implements notification.NotificationService. A failed
// send is recorded and skipped; one unreachable mailbox never blocks the
// rest of the dispatch.
func (s *NotificationServiceImpl) DispatchWeeklyDigest(ctx context.Context) (*notification.DispatchResult, error) {
	start, end := previousWeek(s.now().In(s.loc))
	startStr := start.Format("2006-01-02")
	endStr := end.Format("2006-01-02")

	companies, err := s.companyRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	result := &notification.DispatchResult{}
	for _, co := range companies {
		result.CompaniesProcessed++

		summary, err := s.reportSvc.RangeSummary(ctx, &report.RangeSummaryRequest{
			CompanyID: co.ID,
			StartDate: startStr,
			EndDate:   endStr,
		})
		if err != nil {
			slog.Error("Weekly digest: summary failed", "company_id", co.ID, "error", err)
			result.EmailsFailed++
			result.Failures = append(result.Failures, notification.DispatchFailure{
				CompanyID: co.ID,
				Reason:    err.Error(),
			})
			continue
		}

		employeeDigests, emails := s.collectEmployeeDigests(ctx, co, startStr, endStr, start, end, result)

		digest := buildCompanyDigest(co.Name, summary, employeeDigests)
		if len(digest.Incidents) == 0 {
			slog.Info("Weekly digest: no incidents, skipping company", "company_id", co.ID)
			continue
		}

		s.sendCompanyDigest(ctx, co.ID, digest, result)
		s.sendEmployeeDigests(co.ID, employeeDigests, emails, result)
	}

	slog.Info("Weekly digest dispatch finished",
		"companies", result.CompaniesProcessed,
		"sent", result.EmailsSent,
		"failed", result.EmailsFailed,
	)
	return result, nil
}

func (s *NotificationServiceImpl) sendCompanyDigest(ctx context.Context, companyID string, digest notification.CompanyDigest, result *notification.DispatchResult) {
	recipients := s.adminRecipients(ctx, companyID)
	for _, to := range recipients {
		if err := s.emailSvc.SendCompanyDigest(to, digest); err != nil {
			result.EmailsFailed++
			result.Failures = append(result.Failures, notification.DispatchFailure{
				CompanyID: companyID,
				Recipient: to,
				Reason:    err.Error(),
			})
			continue
		}
		result.EmailsSent++
	}
}

func (s *NotificationServiceImpl) adminRecipients(ctx context.Context, companyID string) []string {
	admins, err := s.adminRepo.GetByCompanyID(ctx, companyID)
	if err != nil {
		slog.Error("Weekly digest: failed to load administrators", "company_id", companyID, "error", err)
	}

	var recipients []string
	for _, admin := range admins {
		if admin.Email != "" {
			recipients = append(recipients, admin.Email)
		}
	}
	if len(recipients) == 0 && s.fallbackAdminEmail != "" {
		recipients = append(recipients, s.fallbackAdminEmail)
	}
	return recipients
}

// collectEmployeeDigests builds the weekly digest for every active employee
// of the company. The parallel email slice keeps the registered address (or
// "") for each digest.
func (s *NotificationServiceImpl) collectEmployeeDigests(ctx context.Context, co company.Company, startStr, endStr string, start, end time.Time, result *notification.DispatchResult) ([]notification.EmployeeDigest, []string) {
	employees, err := s.employeeRepo.GetActiveByCompanyID(ctx, co.ID)
	if err != nil {
		slog.Error("Weekly digest: failed to load employees", "company_id", co.ID, "error", err)
		return nil, nil
	}
	businessDays := businessDaysBetween(start, end)

	var digests []notification.EmployeeDigest
	var emails []string
	for _, emp := range employees {
		records, err := s.attendanceRepo.GetByEmployeeAndRange(ctx, emp.ID, start, end)
		if err != nil {
			result.EmailsFailed++
			result.Failures = append(result.Failures, notification.DispatchFailure{
				CompanyID: co.ID,
				Recipient: emp.Email,
				Reason:    err.Error(),
			})
			continue
		}
		digests = append(digests, buildEmployeeDigest(emp.FullName, co.Name, startStr, endStr, businessDays, records))
		emails = append(emails, emp.Email)
	}
	return digests, emails
}

// sendEmployeeDigests emails each affected employee with a registered
// address. Clean weeks and missing addresses are skipped silently.
func (s *NotificationServiceImpl) sendEmployeeDigests(companyID string, digests []notification.EmployeeDigest, emails []string, result *notification.DispatchResult) {
	for i, digest := range digests {
		if !digest.HasIncident() || emails[i] == "" {
			continue
		}
		if err := s.emailSvc.SendEmployeeDigest(emails[i], digest); err != nil {
			result.EmailsFailed++
			result.Failures = append(result.Failures, notification.DispatchFailure{
				CompanyID: companyID,
				Recipient: emails[i],
				Reason:    err.Error(),
			})
			continue
		}
		result.EmailsSent++
	}
}

// previousWeek returns the Monday through Sunday block before the given day.
func previousWeek(today time.Time) (time.Time, time.Time) {
	midnight := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)

	daysSinceMonday := (int(midnight.Weekday()) + 6) % 7
	thisMonday := midnight.AddDate(0, 0, -daysSinceMonday)
	lastMonday := thisMonday.AddDate(0, 0, -7)
	return lastMonday, lastMonday.AddDate(0, 0, 6)
}
