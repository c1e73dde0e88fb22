package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/asistencia-qr/attendance-backend-go/internal/domain/attendance"
	"github.com/asistencia-qr/attendance-backend-go/internal/domain/schedule"
)

var testThresholds = schedule.Thresholds{
	MorningLateMinute:   6*60 + 50,  // 06:50
	AfternoonLateMinute: 14*60 + 50, // 14:50
}

func at(hour, minute int) *time.Time {
	t := time.Date(2026, 3, 2, hour, minute, 0, 0, time.UTC)
	return &t
}

func TestRecompute_FullDayWithOvertime(t *testing.T) {
	att := &attendance.Attendance{
		MorningIn:    at(6, 45),
		MorningOut:   at(12, 50),
		AfternoonIn:  at(14, 55),
		AfternoonOut: at(18, 50),
	}

	Recompute(att, testThresholds)

	assert.Equal(t, 600, att.WorkedMinutes)
	assert.Equal(t, 480, att.NormalMinutes)
	assert.Equal(t, 120, att.OvertimeMinutes)
	assert.Equal(t, attendance.DayComplete, att.DayStatus)
	assert.True(t, att.AttendedMorning)
	assert.True(t, att.AttendedAfternoon)
	assert.False(t, att.LateMorning, "06:45 is before the 06:50 cutoff")
	assert.True(t, att.LateAfternoon, "14:55 is after the 14:50 cutoff")
}

func TestRecompute_UnderEightHoursHasNoOvertime(t *testing.T) {
	att := &attendance.Attendance{
		MorningIn:    at(7, 0),
		MorningOut:   at(12, 0),
		AfternoonIn:  at(14, 0),
		AfternoonOut: at(16, 0),
	}

	Recompute(att, testThresholds)

	assert.Equal(t, 420, att.WorkedMinutes)
	assert.Equal(t, 420, att.NormalMinutes)
	assert.Equal(t, 0, att.OvertimeMinutes)
}

func TestRecompute_ExactlyEightHours(t *testing.T) {
	att := &attendance.Attendance{
		MorningIn:    at(7, 0),
		MorningOut:   at(12, 0),
		AfternoonIn:  at(14, 0),
		AfternoonOut: at(17, 0),
	}

	Recompute(att, testThresholds)

	assert.Equal(t, 480, att.WorkedMinutes)
	assert.Equal(t, 480, att.NormalMinutes)
	assert.Equal(t, 0, att.OvertimeMinutes)
}

func TestRecompute_PartialWindowContributesZero(t *testing.T) {
	att := &attendance.Attendance{
		MorningIn:   at(6, 48),
		AfternoonIn: at(14, 2),
	}

	Recompute(att, testThresholds)

	assert.Equal(t, 0, att.WorkedMinutes)
	assert.Equal(t, 0, att.NormalMinutes)
	assert.Equal(t, 0, att.OvertimeMinutes)
	assert.Equal(t, attendance.DayAbsent, att.DayStatus, "entries without exits never complete a shift")
	assert.False(t, att.AttendedMorning)
	assert.False(t, att.AttendedAfternoon)
}

func TestRecompute_EntryWithoutExitDoesNotCountAsAttended(t *testing.T) {
	att := &attendance.Attendance{MorningIn: at(6, 45)}

	Recompute(att, testThresholds)

	assert.False(t, att.AttendedMorning)
	assert.Equal(t, attendance.DayAbsent, att.DayStatus)
}

func TestRecompute_InvertedWindowClampsToZero(t *testing.T) {
	att := &attendance.Attendance{
		MorningIn:    at(12, 0),
		MorningOut:   at(8, 0),
		AfternoonIn:  at(14, 0),
		AfternoonOut: at(17, 0),
	}

	Recompute(att, testThresholds)

	assert.Equal(t, 180, att.WorkedMinutes, "inverted morning window must not subtract")
}

func TestRecompute_SecondsAreTruncated(t *testing.T) {
	in := time.Date(2026, 3, 2, 7, 0, 30, 0, time.UTC)
	out := time.Date(2026, 3, 2, 12, 0, 15, 0, time.UTC)
	att := &attendance.Attendance{MorningIn: &in, MorningOut: &out}

	Recompute(att, testThresholds)

	assert.Equal(t, 299, att.WorkedMinutes)
}

func TestRecompute_EmptyDayIsAbsent(t *testing.T) {
	att := &attendance.Attendance{}

	Recompute(att, testThresholds)

	assert.Equal(t, attendance.DayAbsent, att.DayStatus)
	assert.False(t, att.AttendedMorning)
	assert.False(t, att.AttendedAfternoon)
	assert.False(t, att.LateMorning)
	assert.False(t, att.LateAfternoon)
}

func TestRecompute_MorningOnlyIsIncomplete(t *testing.T) {
	att := &attendance.Attendance{
		MorningIn:  at(6, 50),
		MorningOut: at(12, 0),
	}

	Recompute(att, testThresholds)

	assert.Equal(t, attendance.DayIncomplete, att.DayStatus)
	assert.Equal(t, 310, att.WorkedMinutes)
	assert.True(t, att.AttendedMorning)
	assert.False(t, att.AttendedAfternoon)
	assert.False(t, att.LateMorning, "arriving exactly at the cutoff is not late")
}

func TestRecompute_LatenessUsesCustomThresholds(t *testing.T) {
	th := schedule.Thresholds{
		MorningLateMinute:   8 * 60,     // 08:00
		AfternoonLateMinute: 15*60 + 30, // 15:30
	}
	att := &attendance.Attendance{
		MorningIn:   at(7, 59),
		AfternoonIn: at(15, 31),
	}

	Recompute(att, th)

	assert.False(t, att.LateMorning)
	assert.True(t, att.LateAfternoon)
}

func TestRecompute_LatenessComparesSeconds(t *testing.T) {
	in := time.Date(2026, 3, 2, 6, 50, 30, 0, time.UTC)
	att := &attendance.Attendance{MorningIn: &in}

	Recompute(att, testThresholds)

	assert.True(t, att.LateMorning, "06:50:30 is already past the 06:50 cutoff")
}

func TestRecompute_IsIdempotent(t *testing.T) {
	att := &attendance.Attendance{
		MorningIn:    at(6, 45),
		MorningOut:   at(12, 50),
		AfternoonIn:  at(14, 55),
		AfternoonOut: at(18, 50),
	}

	Recompute(att, testThresholds)
	first := *att
	Recompute(att, testThresholds)

	assert.Equal(t, first, *att)
}
