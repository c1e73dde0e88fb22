package attendance

import (
	"fmt"
	"math"
	"time"

	"github.com/asistencia-qr/attendance-backend-go/internal/pkg/validator"
)

// ========================================
// SCAN
// ========================================

type ScanRequest struct {
	QRToken   string `json:"qr_token"`
	IPAddress string `json:"-"`
}

func (r *ScanRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.QRToken) {
		errs = append(errs, validator.ValidationError{
			Field:   "qr_token",
			Message: "qr_token is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ScanStatus string

const (
	ScanStatusSuccess   ScanStatus = "success"
	ScanStatusDuplicate ScanStatus = "duplicate"
	ScanStatusError     ScanStatus = "error"
)

type ScanResponse struct {
	Status  ScanStatus `json:"status"`
	Message string     `json:"message"`
	// Updated is false for business-rule rejections (shift complete,
	// anti-bounce wait) and duplicates; the record is untouched then.
	Updated bool              `json:"updated"`
	Data    *ScanResponseData `json:"data,omitempty"`
}

type ScanResponseData struct {
	Employee   ScanEmployee       `json:"employee"`
	Attendance AttendanceResponse `json:"attendance"`
}

type ScanEmployee struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ========================================
// ATTENDANCE RECORD
// ========================================

type AttendanceResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	Date         string  `json:"date"`

	MorningIn    *string `json:"morning_in"`
	MorningOut   *string `json:"morning_out"`
	AfternoonIn  *string `json:"afternoon_in"`
	AfternoonOut *string `json:"afternoon_out"`

	WorkedMinutes   int     `json:"worked_minutes"`
	NormalMinutes   int     `json:"normal_minutes"`
	OvertimeMinutes int     `json:"overtime_minutes"`
	TotalHours      float64 `json:"total_hours"`
	NormalHours     float64 `json:"normal_hours"`
	OvertimeHours   float64 `json:"overtime_hours"`
	DayStatus       string  `json:"day_status"`

	AttendedMorning   bool `json:"attended_morning"`
	AttendedAfternoon bool `json:"attended_afternoon"`
	LateMorning       bool `json:"late_morning"`
	LateAfternoon     bool `json:"late_afternoon"`
}

// clockString renders a slot as "HH:MM:SS" or nil.
func clockString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("15:04:05")
	return &s
}

// hours converts canonical minutes to hours rounded to 2 decimals.
func hours(minutes int) float64 {
	return math.Round(float64(minutes)/60*100) / 100
}

func NewAttendanceResponse(a Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:           a.ID,
		EmployeeID:   a.EmployeeID,
		EmployeeName: a.EmployeeName,
		Date:         a.Date.Format("2006-01-02"),

		MorningIn:    clockString(a.MorningIn),
		MorningOut:   clockString(a.MorningOut),
		AfternoonIn:  clockString(a.AfternoonIn),
		AfternoonOut: clockString(a.AfternoonOut),

		WorkedMinutes:   a.WorkedMinutes,
		NormalMinutes:   a.NormalMinutes,
		OvertimeMinutes: a.OvertimeMinutes,
		TotalHours:      hours(a.WorkedMinutes),
		NormalHours:     hours(a.NormalMinutes),
		OvertimeHours:   hours(a.OvertimeMinutes),
		DayStatus:       string(a.DayStatus),

		AttendedMorning:   a.AttendedMorning,
		AttendedAfternoon: a.AttendedAfternoon,
		LateMorning:       a.LateMorning,
		LateAfternoon:     a.LateAfternoon,
	}
}

// ========================================
// ADMIN LIST / EDIT
// ========================================

type Filter struct {
	EmployeeID *string
	Date       *string
	StartDate  *string
	EndDate    *string
	DayStatus  *string
	Page       int
	Limit      int
	SortBy     string
	SortOrder  string
}

type ListAttendanceResponse struct {
	Items []AttendanceResponse `json:"items"`
	Total int64                `json:"total"`
}

// UpdateSlotsRequest is the administrative correction: slot values as
// "HH:MM:SS" strings; a nil pointer leaves the slot untouched, an empty
// string clears it. Derived fields are always recomputed afterwards.
type UpdateSlotsRequest struct {
	ID        string `json:"-"`
	CompanyID string `json:"-"`

	MorningIn    *string `json:"morning_in,omitempty"`
	MorningOut   *string `json:"morning_out,omitempty"`
	AfternoonIn  *string `json:"afternoon_in,omitempty"`
	AfternoonOut *string `json:"afternoon_out,omitempty"`
}

func (r *UpdateSlotsRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "attendance id is required",
		})
	}

	if r.MorningIn == nil && r.MorningOut == nil && r.AfternoonIn == nil && r.AfternoonOut == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "slots",
			Message: "at least one slot value is required",
		})
	}

	for field, value := range map[string]*string{
		"morning_in":    r.MorningIn,
		"morning_out":   r.MorningOut,
		"afternoon_in":  r.AfternoonIn,
		"afternoon_out": r.AfternoonOut,
	} {
		if value == nil || *value == "" {
			continue
		}
		if _, err := time.Parse("15:04:05", *value); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: fmt.Sprintf("%q is not a valid HH:MM:SS time", *value),
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
