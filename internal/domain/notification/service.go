package notification

import "context"

type NotificationService interface {
	// DispatchWeeklyDigest builds last week's summary for every company and
	// emails it to that company's administrators and active employees.
	DispatchWeeklyDigest(ctx context.Context) (*DispatchResult, error)
}
