package report

import (
	"fmt"
	"time"

	"github.com/asistencia-qr/attendance-backend-go/internal/pkg/validator"
)

// ========================================
// MONTHLY COMPANY REPORT
// ========================================

type MonthlyReportRequest struct {
	CompanyID string
	Month     int
	Year      int
}

func (r *MonthlyReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.CompanyID) {
		errs = append(errs, validator.ValidationError{
			Field:   "company_id",
			Message: "company_id is required",
		})
	}
	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}
	currentYear := time.Now().Year()
	if r.Year < 2020 || r.Year > currentYear+1 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: fmt.Sprintf("year must be between 2020 and %d", currentYear+1),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CompanyInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}

type Period struct {
	Month    int    `json:"month,omitempty"`
	Year     int    `json:"year,omitempty"`
	FirstDay string `json:"first_day"`
	LastDay  string `json:"last_day"`
}

// EmployeeStats are derived from one employee's attendance rows over a period.
type EmployeeStats struct {
	CompleteDays      int     `json:"complete_days"`
	IncompleteDays    int     `json:"incomplete_days"`
	Absences          int     `json:"absences"`
	MorningShifts     int     `json:"morning_shifts"`
	AfternoonShifts   int     `json:"afternoon_shifts"`
	MorningAbsences   int     `json:"morning_absences"`
	AfternoonAbsences int     `json:"afternoon_absences"`
	MorningLates      int     `json:"morning_lates"`
	AfternoonLates    int     `json:"afternoon_lates"`
	NormalMinutes     int     `json:"normal_minutes"`
	OvertimeMinutes   int     `json:"overtime_minutes"`
	AttendancePct     float64 `json:"attendance_pct"`
}

type MonthlyEmployeeRow struct {
	EmployeeID    string `json:"employee_id"`
	FullName      string `json:"full_name"`
	DNI           string `json:"dni"`
	Attendances   int    `json:"attendances"`
	Absences      int    `json:"absences"`
	NormalHours   string `json:"normal_hours"`
	OvertimeHours string `json:"overtime_hours"`
	Lates         int    `json:"lates"`

	Stats EmployeeStats `json:"stats"`
}

type MonthlyTotals struct {
	TotalEmployees    int    `json:"total_employees"`
	BusinessDays      int    `json:"business_days"`
	NormalHours       string `json:"normal_hours"`
	OvertimeHours     string `json:"overtime_hours"`
	TotalAbsences     int    `json:"total_absences"`
	MorningShifts     int    `json:"morning_shifts"`
	AfternoonShifts   int    `json:"afternoon_shifts"`
	MorningAbsences   int    `json:"morning_absences"`
	AfternoonAbsences int    `json:"afternoon_absences"`
	MorningLates      int    `json:"morning_lates"`
	AfternoonLates    int    `json:"afternoon_lates"`
}

type MonthlyCompanyReport struct {
	Company     CompanyInfo          `json:"company"`
	Period      Period               `json:"period"`
	Totals      MonthlyTotals        `json:"totals"`
	Employees   []MonthlyEmployeeRow `json:"employees"`
	GeneratedAt string               `json:"generated_at"`
}

// ========================================
// EMPLOYEE DETAIL REPORT
// ========================================

type EmployeeReportRequest struct {
	EmployeeID string
	Month      int
	Year       int
}

func (r *EmployeeReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DailyLog struct {
	Date          string  `json:"date"`
	MorningIn     *string `json:"morning_in"`
	MorningOut    *string `json:"morning_out"`
	AfternoonIn   *string `json:"afternoon_in"`
	AfternoonOut  *string `json:"afternoon_out"`
	TotalHours    string  `json:"total_hours"`
	OvertimeHours string  `json:"overtime_hours"`
	DayStatus     string  `json:"day_status"`
}

type EmployeeDetailReport struct {
	Employee    EmployeeInfo  `json:"employee"`
	Period      Period        `json:"period"`
	Stats       EmployeeStats `json:"stats"`
	DailyLogs   []DailyLog    `json:"daily_logs"`
	TotalDays   int           `json:"total_days"`
	GeneratedAt string        `json:"generated_at"`
}

type EmployeeInfo struct {
	ID      string      `json:"id"`
	Name    string      `json:"name"`
	DNI     string      `json:"dni"`
	Company CompanyInfo `json:"company"`
}

// ========================================
// RANGE SUMMARY
// ========================================

// RangeSummaryRequest accepts either an explicit date range or a week offset
// relative to today (0 = trailing 7 days, 1 = the week before, ...).
type RangeSummaryRequest struct {
	CompanyID  string
	StartDate  string
	EndDate    string
	WeekOffset *int
}

func (r *RangeSummaryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.CompanyID) {
		errs = append(errs, validator.ValidationError{
			Field:   "company_id",
			Message: "company_id is required",
		})
	}
	if r.WeekOffset == nil {
		if _, ok := validator.IsValidDate(r.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be YYYY-MM-DD",
			})
		}
		if _, ok := validator.IsValidDate(r.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be YYYY-MM-DD",
			})
		}
	} else if *r.WeekOffset < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "week_offset",
			Message: "week_offset must be >= 0",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RankedEmployee struct {
	EmployeeID string `json:"employee_id"`
	FullName   string `json:"full_name"`
	Shifts     int    `json:"shifts"`
	Lates      int    `json:"lates"`
}

type DayCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type RangeSummary struct {
	Company CompanyInfo `json:"company"`
	Period  Period      `json:"period"`

	TotalEmployees int `json:"total_employees"`
	// ExpectedSlots is employees x calendar days x 2 shifts. Every calendar
	// day counts; the Mon-Fri business-day figure is a separate statistic.
	ExpectedSlots  int     `json:"expected_slots"`
	FilledSlots    int     `json:"filled_slots"`
	PunctualityPct float64 `json:"punctuality_pct"`
	AttendancePct  float64 `json:"attendance_pct"`
	MorningLates   int     `json:"morning_lates"`
	AfternoonLates int     `json:"afternoon_lates"`
	Absences       int     `json:"absences"`
	OvertimeHours  string  `json:"overtime_hours"`

	TopPunctual      []RankedEmployee `json:"top_punctual"`
	TopLate          []RankedEmployee `json:"top_late"`
	BusiestDay       *DayCount        `json:"busiest_day"`
	LeastAttendedDay *DayCount        `json:"least_attended_day"`
	// ModalCheckInHour is the most common morning check-in hour, when any.
	ModalCheckInHour *int `json:"modal_check_in_hour"`

	GeneratedAt string `json:"generated_at"`
}
