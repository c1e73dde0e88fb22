package schedule

import (
	"context"
	"errors"
)

var ErrScheduleNotFound = errors.New("standard schedule not found")

type ScheduleRepository interface {
	// GetByCompanyID returns ErrScheduleNotFound when the company has no
	// schedule row; callers fall back to configured defaults.
	GetByCompanyID(ctx context.Context, companyID string) (StandardSchedule, error)

	Create(ctx context.Context, s StandardSchedule) (StandardSchedule, error)

	Update(ctx context.Context, s StandardSchedule) error
}

// ThresholdResolver resolves the lateness cutoffs for one company. The scan
// flow and the report aggregator both go through this single interface.
type ThresholdResolver interface {
	Thresholds(ctx context.Context, companyID string) (Thresholds, error)
}
