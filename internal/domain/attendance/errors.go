package attendance

import "errors"

// Attendance domain errors. Business-rule rejections in the scan flow (shift
// complete, anti-bounce wait) are NOT errors; they come back as a normal
// ScanResponse with Updated=false.
var (
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrEmployeeNotFound   = errors.New("employee not found for QR token")
	ErrEmployeeInactive   = errors.New("employee is deactivated")
)
