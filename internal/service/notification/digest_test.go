package notification

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/asistencia-qr/attendance-backend-go/internal/domain/attendance"
	"github.com/asistencia-qr/attendance-backend-go/internal/domain/notification"
	"github.com/asistencia-qr/attendance-backend-go/internal/domain/report"
)

func TestPreviousWeek(t *testing.T) {
	// Monday 2026-03-09 -> previous Monday through Sunday.
	monday := time.Date(2026, 3, 9, 7, 0, 0, 0, time.UTC)
	start, end := previousWeek(monday)
	assert.Equal(t, "2026-03-02", start.Format("2006-01-02"))
	assert.Equal(t, "2026-03-08", end.Format("2006-01-02"))

	// Mid-week dispatches still cover the same closed week.
	thursday := time.Date(2026, 3, 12, 18, 30, 0, 0, time.UTC)
	start, end = previousWeek(thursday)
	assert.Equal(t, "2026-03-02", start.Format("2006-01-02"))
	assert.Equal(t, "2026-03-08", end.Format("2006-01-02"))

	// Sunday belongs to the running week, not the closed one.
	sunday := time.Date(2026, 3, 8, 23, 59, 0, 0, time.UTC)
	start, end = previousWeek(sunday)
	assert.Equal(t, "2026-02-23", start.Format("2006-01-02"))
	assert.Equal(t, "2026-03-01", end.Format("2006-01-02"))
}

func TestBusinessDaysBetween(t *testing.T) {
	// Monday through Sunday always holds five business days.
	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 5, businessDaysBetween(start, end))

	// Saturday through Sunday holds none.
	sat := time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 0, businessDaysBetween(sat, sat.AddDate(0, 0, 1)))
}

func TestBuildCompanyDigest(t *testing.T) {
	summary := &report.RangeSummary{
		Period:         report.Period{FirstDay: "2026-03-02", LastDay: "2026-03-08"},
		TotalEmployees: 4,
		ExpectedSlots:  56,
		FilledSlots:    40,
		AttendancePct:  71.4,
		PunctualityPct: 90.0,
		MorningLates:   3,
		AfternoonLates: 1,
		Absences:       2,
		OvertimeHours:  "5:30",
		TopPunctual: []report.RankedEmployee{
			{EmployeeID: "ana", FullName: "Ana", Shifts: 10, Lates: 0},
		},
		TopLate: []report.RankedEmployee{
			{EmployeeID: "carla", FullName: "Carla", Shifts: 8, Lates: 4},
		},
	}

	digest := buildCompanyDigest("Acme", summary, nil)

	assert.Equal(t, "Acme", digest.CompanyName)
	assert.Equal(t, "2026-03-02", digest.PeriodStart)
	assert.Equal(t, "2026-03-08", digest.PeriodEnd)
	assert.Equal(t, 40, digest.FilledSlots)
	assert.Equal(t, 56, digest.ExpectedSlots)
	assert.Equal(t, 71.4, digest.AttendancePct)
	assert.Len(t, digest.TopPunctual, 1)
	assert.Equal(t, "Ana", digest.TopPunctual[0].FullName)
	assert.Len(t, digest.TopLate, 1)
	assert.Equal(t, 4, digest.TopLate[0].Lates)
}

func TestBuildCompanyDigest_SplitsIncidents(t *testing.T) {
	summary := &report.RangeSummary{
		Period: report.Period{FirstDay: "2026-03-02", LastDay: "2026-03-08"},
	}
	employeeDigests := []notification.EmployeeDigest{
		{FullName: "Ana", Lates: 0, Absences: 0},
		{FullName: "Bruno", Lates: 2, Absences: 0},
		{FullName: "Carla", Lates: 0, Absences: 1},
	}

	digest := buildCompanyDigest("Acme", summary, employeeDigests)

	// Clean weeks appear by name only; everyone else lands in the table.
	assert.Equal(t, []string{"Ana"}, digest.NoIncident)
	assert.Len(t, digest.Incidents, 2)
	assert.Equal(t, "Bruno", digest.Incidents[0].FullName)
	assert.Equal(t, 2, digest.Incidents[0].Lates)
	assert.Equal(t, "Carla", digest.Incidents[1].FullName)
	assert.Equal(t, 1, digest.Incidents[1].Absences)
}

func TestBuildEmployeeDigest(t *testing.T) {
	records := []attendance.Attendance{
		{
			DayStatus:         attendance.DayComplete,
			AttendedMorning:   true,
			AttendedAfternoon: true,
			LateMorning:       true,
			WorkedMinutes:     510,
			OvertimeMinutes:   30,
		},
		{
			DayStatus:       attendance.DayIncomplete,
			AttendedMorning: true,
			WorkedMinutes:   300,
		},
		{
			DayStatus: attendance.DayAbsent,
		},
	}

	digest := buildEmployeeDigest("Ana", "Acme", "2026-03-02", "2026-03-08", 5, records)

	assert.Equal(t, 2, digest.DaysAttended)
	assert.Equal(t, 1, digest.CompleteDays)
	assert.Equal(t, 1, digest.IncompleteDays)
	assert.Equal(t, 1, digest.Lates)
	assert.Equal(t, 3, digest.Absences)
	assert.True(t, digest.HasIncident())
	assert.Equal(t, "13:30", digest.WorkedHours)
	assert.Equal(t, "0:30", digest.OvertimeHours)
}

func TestBuildEmployeeDigest_CleanWeek(t *testing.T) {
	records := make([]attendance.Attendance, 5)
	for i := range records {
		records[i] = attendance.Attendance{
			DayStatus:         attendance.DayComplete,
			AttendedMorning:   true,
			AttendedAfternoon: true,
			WorkedMinutes:     480,
		}
	}

	digest := buildEmployeeDigest("Ana", "Acme", "2026-03-02", "2026-03-08", 5, records)

	assert.Equal(t, 0, digest.Lates)
	assert.Equal(t, 0, digest.Absences)
	assert.False(t, digest.HasIncident())
}

func TestBuildEmployeeDigest_NoRecords(t *testing.T) {
	digest := buildEmployeeDigest("Ana", "Acme", "2026-03-02", "2026-03-08", 5, nil)

	assert.Equal(t, 0, digest.DaysAttended)
	assert.Equal(t, 5, digest.Absences)
	assert.Equal(t, "0:00", digest.WorkedHours)
	assert.Equal(t, "0:00", digest.OvertimeHours)
}

func TestBuildEmployeeDigest_WeekendWorkNeverGoesNegative(t *testing.T) {
	records := make([]attendance.Attendance, 6)
	for i := range records {
		records[i] = attendance.Attendance{AttendedMorning: true}
	}

	digest := buildEmployeeDigest("Ana", "Acme", "2026-03-02", "2026-03-08", 5, records)

	assert.Equal(t, 6, digest.DaysAttended)
	assert.Equal(t, 0, digest.Absences)
}
