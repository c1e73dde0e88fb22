package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asistencia-qr/attendance-backend-go/internal/domain/attendance"
)

func day(dayOfMonth int) time.Time {
	return time.Date(2026, 3, dayOfMonth, 0, 0, 0, 0, time.UTC)
}

func slotAt(dayOfMonth, hour, minute int) *time.Time {
	t := time.Date(2026, 3, dayOfMonth, hour, minute, 0, 0, time.UTC)
	return &t
}

func TestMinutesToHHMM(t *testing.T) {
	cases := []struct {
		minutes int
		want    string
	}{
		{0, "0:00"},
		{59, "0:59"},
		{60, "1:00"},
		{480, "8:00"},
		{605, "10:05"},
		{-10, "0:00"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, minutesToHHMM(c.minutes))
	}
}

func TestCountBusinessDays(t *testing.T) {
	// March 2026: the 1st is a Sunday, 31 calendar days, 22 weekdays.
	assert.Equal(t, 22, countBusinessDays(day(1), day(31)))
	// A single Saturday.
	assert.Equal(t, 0, countBusinessDays(day(7), day(7)))
	// Monday through Sunday.
	assert.Equal(t, 5, countBusinessDays(day(2), day(8)))
}

func TestEmployeeStats(t *testing.T) {
	records := []attendance.Attendance{
		{
			Date:              day(2),
			DayStatus:         attendance.DayComplete,
			AttendedMorning:   true,
			AttendedAfternoon: true,
			LateMorning:       true,
			NormalMinutes:     480,
			OvertimeMinutes:   30,
		},
		{
			Date:            day(3),
			DayStatus:       attendance.DayIncomplete,
			AttendedMorning: true,
			NormalMinutes:   300,
		},
		{
			Date:      day(4),
			DayStatus: attendance.DayAbsent,
		},
	}

	stats := employeeStats(records, 5)

	assert.Equal(t, 1, stats.CompleteDays)
	assert.Equal(t, 1, stats.IncompleteDays)
	assert.Equal(t, 3, stats.Absences, "5 business days minus 2 attended")
	assert.Equal(t, 2, stats.MorningShifts)
	assert.Equal(t, 1, stats.AfternoonShifts)
	assert.Equal(t, 3, stats.MorningAbsences)
	assert.Equal(t, 4, stats.AfternoonAbsences)
	assert.Equal(t, 1, stats.MorningLates)
	assert.Equal(t, 0, stats.AfternoonLates)
	assert.Equal(t, 780, stats.NormalMinutes)
	assert.Equal(t, 30, stats.OvertimeMinutes)
	assert.Equal(t, 66.7, stats.AttendancePct, "2 attended out of 3 recorded days")
}

func TestEmployeeStats_PercentageIgnoresBusinessDays(t *testing.T) {
	records := []attendance.Attendance{
		{
			Date:              day(2),
			DayStatus:         attendance.DayComplete,
			AttendedMorning:   true,
			AttendedAfternoon: true,
		},
	}

	stats := employeeStats(records, 22)

	assert.Equal(t, 100.0, stats.AttendancePct, "one recorded day, fully attended")
	assert.Equal(t, 21, stats.Absences, "absences still count against business days")
}

func TestEmployeeStats_EmptyPeriod(t *testing.T) {
	stats := employeeStats(nil, 0)

	assert.Equal(t, 0, stats.Absences)
	assert.Equal(t, 0.0, stats.AttendancePct)
}

func rankingRecords() []attendance.Attendance {
	return []attendance.Attendance{
		// ana: 4 shifts, 0 lates
		{EmployeeID: "ana", Date: day(2), AttendedMorning: true, AttendedAfternoon: true},
		{EmployeeID: "ana", Date: day(3), AttendedMorning: true, AttendedAfternoon: true},
		// bruno: 2 shifts, 0 lates
		{EmployeeID: "bruno", Date: day(2), AttendedMorning: true, AttendedAfternoon: true},
		// carla: 3 shifts, 2 lates
		{EmployeeID: "carla", Date: day(2), AttendedMorning: true, AttendedAfternoon: true, LateMorning: true, LateAfternoon: true},
		{EmployeeID: "carla", Date: day(3), AttendedMorning: true},
	}
}

func rankingNames() map[string]string {
	return map[string]string{"ana": "Ana", "bruno": "Bruno", "carla": "Carla"}
}

func TestTopPunctual_RanksByShiftCount(t *testing.T) {
	tallies := tallyByEmployee(rankingRecords(), rankingNames())
	ranked := topPunctual(tallies, 3)

	// Carla's two lates disqualify her outright; Ana worked more shifts
	// than Bruno.
	require.Len(t, ranked, 2)
	assert.Equal(t, "ana", ranked[0].EmployeeID)
	assert.Equal(t, 4, ranked[0].Shifts)
	assert.Equal(t, "bruno", ranked[1].EmployeeID)
}

func TestTopPunctual_ExcludesAnyoneLate(t *testing.T) {
	tallies := tallyByEmployee(rankingRecords(), rankingNames())
	ranked := topPunctual(tallies, 10)

	for _, r := range ranked {
		assert.NotEqual(t, "carla", r.EmployeeID, "one late arrival disqualifies")
		assert.Zero(t, r.Lates)
	}
}

func TestTopLate_TieBreaksOnShiftCount(t *testing.T) {
	records := append(rankingRecords(),
		// diego: 2 shifts, 2 lates, same lates as carla but fewer shifts.
		attendance.Attendance{EmployeeID: "diego", Date: day(2), AttendedMorning: true, AttendedAfternoon: true, LateMorning: true, LateAfternoon: true},
	)
	names := rankingNames()
	names["diego"] = "Diego"

	ranked := topLate(tallyByEmployee(records, names), 3)

	require.Len(t, ranked, 2)
	assert.Equal(t, "carla", ranked[0].EmployeeID, "3 shifts beat 2 at equal lates")
	assert.Equal(t, "diego", ranked[1].EmployeeID)
}

func TestTopLate_ExcludesPunctual(t *testing.T) {
	tallies := tallyByEmployee(rankingRecords(), rankingNames())
	ranked := topLate(tallies, 3)

	require.Len(t, ranked, 1)
	assert.Equal(t, "carla", ranked[0].EmployeeID)
	assert.Equal(t, 2, ranked[0].Lates)
}

func TestTopPunctual_LimitApplies(t *testing.T) {
	tallies := tallyByEmployee(rankingRecords(), rankingNames())
	ranked := topPunctual(tallies, 1)

	require.Len(t, ranked, 1)
	assert.Equal(t, "ana", ranked[0].EmployeeID)
}

func TestDayCounts(t *testing.T) {
	records := []attendance.Attendance{
		{EmployeeID: "ana", Date: day(2), AttendedMorning: true, AttendedAfternoon: true},
		{EmployeeID: "bruno", Date: day(2), AttendedMorning: true},
		{EmployeeID: "ana", Date: day(3), AttendedMorning: true},
	}

	busiest, least := dayCounts(records)

	require.NotNil(t, busiest)
	require.NotNil(t, least)
	assert.Equal(t, "2026-03-02", busiest.Date)
	assert.Equal(t, 3, busiest.Count)
	assert.Equal(t, "2026-03-03", least.Date)
	assert.Equal(t, 1, least.Count)
}

func TestDayCounts_NoRecords(t *testing.T) {
	busiest, least := dayCounts(nil)
	assert.Nil(t, busiest)
	assert.Nil(t, least)
}

func TestModalCheckInHour(t *testing.T) {
	records := []attendance.Attendance{
		{MorningIn: slotAt(2, 6, 45)},
		{MorningIn: slotAt(3, 6, 55)},
		{MorningIn: slotAt(4, 7, 10)},
	}

	modal := modalCheckInHour(records)
	require.NotNil(t, modal)
	assert.Equal(t, 6, *modal)
}

func TestModalCheckInHour_NoMorningEntries(t *testing.T) {
	records := []attendance.Attendance{
		{AfternoonIn: slotAt(2, 15, 0)},
	}
	assert.Nil(t, modalCheckInHour(records))
}
