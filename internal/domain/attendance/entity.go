package attendance

import (
	"time"
)

// Slot identifies one of the four daily check marks.
type Slot string

const (
	SlotMorningIn    Slot = "morning_in"
	SlotMorningOut   Slot = "morning_out"
	SlotAfternoonIn  Slot = "afternoon_in"
	SlotAfternoonOut Slot = "afternoon_out"
)

type DayStatus string

const (
	DayComplete   DayStatus = "COMPLETE"
	DayIncomplete DayStatus = "INCOMPLETE"
	DayAbsent     DayStatus = "ABSENT"
)

// Attendance is one row per (employee, date). The four slots are full
// timestamps in the application timezone; only their time-of-day matters for
// the rules. Minute totals are canonical; decimal hours and "H:MM" strings
// are derived in DTOs.
type Attendance struct {
	ID         string
	EmployeeID string
	CompanyID  string
	Date       time.Time

	MorningIn    *time.Time
	MorningOut   *time.Time
	AfternoonIn  *time.Time
	AfternoonOut *time.Time

	WorkedMinutes   int
	NormalMinutes   int
	OvertimeMinutes int
	DayStatus       DayStatus

	AttendedMorning   bool
	AttendedAfternoon bool
	LateMorning       bool
	LateAfternoon     bool

	CreatedAt time.Time
	UpdatedAt time.Time

	// DTO
	EmployeeName *string
}

// ScanEntry is one accepted or attempted QR scan, kept only to suppress
// duplicate scans of the same token within the cooldown window.
type ScanEntry struct {
	ID        string
	QRToken   string
	IPAddress string
	ScannedAt time.Time
}
