package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/asistencia-qr/attendance-backend-go/internal/domain/attendance"
	"github.com/asistencia-qr/attendance-backend-go/internal/pkg/database"
)

type scanTrackingRepositoryImpl struct {
	db *database.DB
}

func NewScanTrackingRepository(db *database.DB) attendance.ScanTrackingRepository {
	return &scanTrackingRepositoryImpl{db: db}
}

// Create implements attendance.ScanTrackingRepository.
func (r *scanTrackingRepositoryImpl) Create(ctx context.Context, token string, ipAddress string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `
		INSERT INTO scan_tracking (qr_token, ip_address)
		VALUES ($1, NULLIF($2, ''))
	`, token, ipAddress)
	if err != nil {
		return fmt.Errorf("failed to record scan: %w", err)
	}
	return nil
}

// HasRecentScan implements attendance.ScanTrackingRepository.
func (r *scanTrackingRepositoryImpl) HasRecentScan(ctx context.Context, token string, window time.Duration) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS(
			SELECT 1 FROM scan_tracking
			WHERE qr_token = $1 AND scanned_at > now() - $2::interval
		)
	`

	var exists bool
	err := q.QueryRow(ctx, query, token, window.String()).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check recent scans: %w", err)
	}
	return exists, nil
}

// DeleteByToken implements attendance.ScanTrackingRepository.
func (r *scanTrackingRepositoryImpl) DeleteByToken(ctx context.Context, token string) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM scan_tracking WHERE qr_token = $1`, token); err != nil {
		return fmt.Errorf("failed to delete scan tracking: %w", err)
	}
	return nil
}
