package schedule

import (
	"fmt"

	"github.com/asistencia-qr/attendance-backend-go/internal/pkg/validator"
)

type UpdateScheduleRequest struct {
	CompanyID string `json:"-"`

	MorningIn    string `json:"morning_in"`
	MorningOut   string `json:"morning_out"`
	AfternoonIn  string `json:"afternoon_in"`
	AfternoonOut string `json:"afternoon_out"`
}

func (r *UpdateScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	for field, value := range map[string]string{
		"morning_in":    r.MorningIn,
		"morning_out":   r.MorningOut,
		"afternoon_in":  r.AfternoonIn,
		"afternoon_out": r.AfternoonOut,
	} {
		if _, ok := validator.ParseMinuteOfDay(value); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: fmt.Sprintf("%q is not a valid HH:MM time", value),
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ScheduleResponse struct {
	CompanyID    string `json:"company_id"`
	MorningIn    string `json:"morning_in"`
	MorningOut   string `json:"morning_out"`
	AfternoonIn  string `json:"afternoon_in"`
	AfternoonOut string `json:"afternoon_out"`
}

func minuteString(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

func NewScheduleResponse(s StandardSchedule) ScheduleResponse {
	return ScheduleResponse{
		CompanyID:    s.CompanyID,
		MorningIn:    minuteString(s.MorningInMinute),
		MorningOut:   minuteString(s.MorningOutMinute),
		AfternoonIn:  minuteString(s.AfternoonInMinute),
		AfternoonOut: minuteString(s.AfternoonOutMinute),
	}
}
