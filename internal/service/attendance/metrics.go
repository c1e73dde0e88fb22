package attendance

import (
	"time"

	"github.com/asistencia-qr/attendance-backend-go/internal/domain/attendance"
	"github.com/asistencia-qr/attendance-backend-go/internal/domain/schedule"
)

// standardWorkdayMinutes caps the normal-hours bucket; everything above it is
// overtime.
const standardWorkdayMinutes = 480

// Recompute rebuilds every derived field of the record from its four slots
// and the company's lateness thresholds. It is the single recompute path:
// scans and administrative slot edits both end here, so the stored metrics
// can never drift from the slots.
func Recompute(att *attendance.Attendance, th schedule.Thresholds) {
	morning := windowMinutes(att.MorningIn, att.MorningOut)
	afternoon := windowMinutes(att.AfternoonIn, att.AfternoonOut)

	att.WorkedMinutes = morning + afternoon
	att.OvertimeMinutes = att.WorkedMinutes - standardWorkdayMinutes
	if att.OvertimeMinutes < 0 {
		att.OvertimeMinutes = 0
	}
	att.NormalMinutes = att.WorkedMinutes - att.OvertimeMinutes

	att.AttendedMorning = att.MorningIn != nil && att.MorningOut != nil
	att.AttendedAfternoon = att.AfternoonIn != nil && att.AfternoonOut != nil
	att.LateMorning = att.MorningIn != nil && afterCutoff(*att.MorningIn, th.MorningLateMinute)
	att.LateAfternoon = att.AfternoonIn != nil && afterCutoff(*att.AfternoonIn, th.AfternoonLateMinute)

	att.DayStatus = dayStatus(att)
}

// afterCutoff compares at second resolution, so 06:50:30 is already past a
// 06:50 cutoff even though both share the same minute-of-day.
func afterCutoff(t time.Time, cutoffMinute int) bool {
	return minuteOfDay(t)*60+t.Second() > cutoffMinute*60
}

// windowMinutes is the whole-minute span of one half-day. Partial windows
// contribute zero; a clock anomaly putting the exit before the entry clamps
// to zero instead of going negative.
func windowMinutes(in, out *time.Time) int {
	if in == nil || out == nil {
		return 0
	}
	minutes := int(out.Sub(*in).Minutes())
	if minutes < 0 {
		return 0
	}
	return minutes
}

func dayStatus(att *attendance.Attendance) attendance.DayStatus {
	switch {
	case att.AttendedMorning && att.AttendedAfternoon:
		return attendance.DayComplete
	case att.AttendedMorning || att.AttendedAfternoon:
		return attendance.DayIncomplete
	default:
		return attendance.DayAbsent
	}
}
