package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access for attendance records.
// Uniqueness of (employee_id, date) is enforced at the data layer; the
// lookup-then-create path in the scan flow relies on it.
type AttendanceRepository interface {
	Create(ctx context.Context, att Attendance) (Attendance, error)

	GetByID(ctx context.Context, id string, companyID string) (Attendance, error)

	// GetByEmployeeAndDate returns nil when no record exists for the day.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error)

	// GetByEmployeeAndDateForUpdate is GetByEmployeeAndDate with a row lock.
	// Must be called inside a transaction; guards the read-modify-write of
	// the scan flow against lost updates.
	GetByEmployeeAndDateForUpdate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error)

	GetByEmployeeAndRange(ctx context.Context, employeeID string, start, end time.Time) ([]Attendance, error)

	GetByCompanyAndRange(ctx context.Context, companyID string, start, end time.Time) ([]Attendance, error)

	Update(ctx context.Context, att Attendance) error

	List(ctx context.Context, filter Filter, companyID string) ([]Attendance, int64, error)

	Delete(ctx context.Context, id string, companyID string) error
}

// ScanTrackingRepository records raw QR scans for duplicate suppression.
type ScanTrackingRepository interface {
	Create(ctx context.Context, token string, ipAddress string) error

	// HasRecentScan reports whether the token was scanned within the window.
	HasRecentScan(ctx context.Context, token string, window time.Duration) (bool, error)

	DeleteByToken(ctx context.Context, token string) error
}
