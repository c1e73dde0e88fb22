package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/asistencia-qr/attendance-backend-go/internal/domain/notification"
)

// WeeklyReportJobs drives the weekly digest dispatch. The job is registered
// hourly and self-gates on the configured weekday and hour, so exactly one
// tick per week passes the gate.
type WeeklyReportJobs struct {
	notificationSvc notification.NotificationService
	weekday         time.Weekday
	hour            int
	loc             *time.Location
}

func NewWeeklyReportJobs(notificationSvc notification.NotificationService, weekday time.Weekday, hour int, loc *time.Location) *WeeklyReportJobs {
	return &WeeklyReportJobs{
		notificationSvc: notificationSvc,
		weekday:         weekday,
		hour:            hour,
		loc:             loc,
	}
}

func (j *WeeklyReportJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("weekly_attendance_digest", 1*time.Hour, j.DispatchWeeklyDigest)
}

func (j *WeeklyReportJobs) DispatchWeeklyDigest(ctx context.Context) error {
	now := time.Now().In(j.loc)
	if now.Weekday() != j.weekday || now.Hour() != j.hour {
		return nil
	}

	slog.Info("Cron: Starting weekly attendance digest dispatch")

	result, err := j.notificationSvc.DispatchWeeklyDigest(ctx)
	if err != nil {
		return err
	}

	slog.Info("Cron: Weekly attendance digest dispatched",
		"companies", result.CompaniesProcessed,
		"sent", result.EmailsSent,
		"failed", result.EmailsFailed,
	)
	return nil
}
