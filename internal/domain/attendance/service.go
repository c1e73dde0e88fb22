package attendance

import (
	"context"
)

// AttendanceService defines the scan flow and administrative corrections.
type AttendanceService interface {
	// ProcessScan runs the full scan pipeline: duplicate suppression,
	// employee resolution, slot assignment, metric recompute, persistence.
	ProcessScan(ctx context.Context, req ScanRequest) (ScanResponse, error)

	GetAttendance(ctx context.Context, id string, companyID string) (AttendanceResponse, error)

	ListAttendance(ctx context.Context, filter Filter, companyID string) (ListAttendanceResponse, error)

	// UpdateSlots applies an administrative slot correction and recomputes
	// every derived field before persisting.
	UpdateSlots(ctx context.Context, req UpdateSlotsRequest) (AttendanceResponse, error)

	DeleteAttendance(ctx context.Context, id string, companyID string) error
}
