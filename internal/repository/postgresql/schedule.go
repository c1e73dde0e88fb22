package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/asistencia-qr/attendance-backend-go/internal/domain/schedule"
	"github.com/asistencia-qr/attendance-backend-go/internal/pkg/database"
)

type scheduleRepositoryImpl struct {
	db *database.DB
}

func NewScheduleRepository(db *database.DB) schedule.ScheduleRepository {
	return &scheduleRepositoryImpl{db: db}
}

// GetByCompanyID implements schedule.ScheduleRepository.
func (r *scheduleRepositoryImpl) GetByCompanyID(ctx context.Context, companyID string) (schedule.StandardSchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id,
		       morning_in_minute, morning_out_minute,
		       afternoon_in_minute, afternoon_out_minute,
		       created_at, updated_at
		FROM standard_schedules
		WHERE company_id = $1
	`

	var s schedule.StandardSchedule
	err := q.QueryRow(ctx, query, companyID).Scan(
		&s.ID, &s.CompanyID,
		&s.MorningInMinute, &s.MorningOutMinute,
		&s.AfternoonInMinute, &s.AfternoonOutMinute,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return schedule.StandardSchedule{}, schedule.ErrScheduleNotFound
		}
		return schedule.StandardSchedule{}, fmt.Errorf("failed to get schedule: %w", err)
	}
	return s, nil
}

// Create implements schedule.ScheduleRepository.
func (r *scheduleRepositoryImpl) Create(ctx context.Context, s schedule.StandardSchedule) (schedule.StandardSchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO standard_schedules
			(company_id, morning_in_minute, morning_out_minute, afternoon_in_minute, afternoon_out_minute)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		s.CompanyID,
		s.MorningInMinute, s.MorningOutMinute,
		s.AfternoonInMinute, s.AfternoonOutMinute,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return schedule.StandardSchedule{}, fmt.Errorf("failed to create schedule: %w", err)
	}
	return s, nil
}

// Update implements schedule.ScheduleRepository.
func (r *scheduleRepositoryImpl) Update(ctx context.Context, s schedule.StandardSchedule) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE standard_schedules
		SET morning_in_minute = $1, morning_out_minute = $2,
		    afternoon_in_minute = $3, afternoon_out_minute = $4,
		    updated_at = $5
		WHERE company_id = $6
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		s.MorningInMinute, s.MorningOutMinute,
		s.AfternoonInMinute, s.AfternoonOutMinute,
		time.Now(), s.CompanyID,
	).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return schedule.ErrScheduleNotFound
		}
		return fmt.Errorf("failed to update schedule: %w", err)
	}
	return nil
}
