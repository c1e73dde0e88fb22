package schedule

import "context"

type ScheduleService interface {
	// Get returns the company schedule, falling back to configured defaults
	// when no row exists yet.
	Get(ctx context.Context, companyID string) (ScheduleResponse, error)

	// Update upserts the company schedule.
	Update(ctx context.Context, req UpdateScheduleRequest) (ScheduleResponse, error)
}
