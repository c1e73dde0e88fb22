package report

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/asistencia-qr/attendance-backend-go/internal/domain/attendance"
	"github.com/asistencia-qr/attendance-backend-go/internal/domain/report"
)

// minutesToHHMM renders canonical minutes as "H:MM".
func minutesToHHMM(minutes int) string {
	if minutes < 0 {
		minutes = 0
	}
	return fmt.Sprintf("%d:%02d", minutes/60, minutes%60)
}

func round1(f float64) float64 {
	return math.Round(f*10) / 10
}

// countBusinessDays counts Monday through Friday in [start, end].
func countBusinessDays(start, end time.Time) int {
	days := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if wd := d.Weekday(); wd != time.Saturday && wd != time.Sunday {
			days++
		}
	}
	return days
}

// employeeStats derives one employee's period statistics from their rows.
// Absence counts compare against business days, but the attendance percentage
// is days-with-any-shift over recorded days: a month with a single fully
// attended record still reads 100%.
func employeeStats(records []attendance.Attendance, businessDays int) report.EmployeeStats {
	var stats report.EmployeeStats

	daysAttended := 0
	for _, rec := range records {
		switch rec.DayStatus {
		case attendance.DayComplete:
			stats.CompleteDays++
		case attendance.DayIncomplete:
			stats.IncompleteDays++
		}
		if rec.AttendedMorning {
			stats.MorningShifts++
		}
		if rec.AttendedAfternoon {
			stats.AfternoonShifts++
		}
		if rec.LateMorning {
			stats.MorningLates++
		}
		if rec.LateAfternoon {
			stats.AfternoonLates++
		}
		if rec.AttendedMorning || rec.AttendedAfternoon {
			daysAttended++
		}
		stats.NormalMinutes += rec.NormalMinutes
		stats.OvertimeMinutes += rec.OvertimeMinutes
	}

	stats.Absences = clampZero(businessDays - daysAttended)
	stats.MorningAbsences = clampZero(businessDays - stats.MorningShifts)
	stats.AfternoonAbsences = clampZero(businessDays - stats.AfternoonShifts)
	if len(records) > 0 {
		stats.AttendancePct = round1(float64(daysAttended) / float64(len(records)) * 100)
	}
	return stats
}

func clampZero(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

// employeeTally aggregates one employee's shifts and lates for rankings.
type employeeTally struct {
	EmployeeID string
	FullName   string
	Shifts     int
	Lates      int
}

func tallyByEmployee(records []attendance.Attendance, names map[string]string) []employeeTally {
	byEmployee := make(map[string]*employeeTally)
	for _, rec := range records {
		t, ok := byEmployee[rec.EmployeeID]
		if !ok {
			t = &employeeTally{EmployeeID: rec.EmployeeID, FullName: names[rec.EmployeeID]}
			byEmployee[rec.EmployeeID] = t
		}
		if rec.AttendedMorning {
			t.Shifts++
		}
		if rec.AttendedAfternoon {
			t.Shifts++
		}
		if rec.LateMorning {
			t.Lates++
		}
		if rec.LateAfternoon {
			t.Lates++
		}
	}

	tallies := make([]employeeTally, 0, len(byEmployee))
	for _, t := range byEmployee {
		tallies = append(tallies, *t)
	}
	// Stable base order keeps rankings deterministic across runs.
	sort.Slice(tallies, func(i, j int) bool { return tallies[i].EmployeeID < tallies[j].EmployeeID })
	return tallies
}

// topPunctual ranks employees who worked at least one shift and were never
// late, most shifts first. A single late arrival disqualifies.
func topPunctual(tallies []employeeTally, limit int) []report.RankedEmployee {
	punctual := make([]employeeTally, 0, len(tallies))
	for _, t := range tallies {
		if t.Shifts > 0 && t.Lates == 0 {
			punctual = append(punctual, t)
		}
	}
	sort.SliceStable(punctual, func(i, j int) bool {
		return punctual[i].Shifts > punctual[j].Shifts
	})
	return toRanked(punctual, limit)
}

// topLate ranks by most lates, breaking ties with more shifts worked;
// employees without lates are excluded.
func topLate(tallies []employeeTally, limit int) []report.RankedEmployee {
	withLates := make([]employeeTally, 0, len(tallies))
	for _, t := range tallies {
		if t.Lates > 0 {
			withLates = append(withLates, t)
		}
	}
	sort.SliceStable(withLates, func(i, j int) bool {
		if withLates[i].Lates != withLates[j].Lates {
			return withLates[i].Lates > withLates[j].Lates
		}
		return withLates[i].Shifts > withLates[j].Shifts
	})
	return toRanked(withLates, limit)
}

func toRanked(tallies []employeeTally, limit int) []report.RankedEmployee {
	if limit > 0 && len(tallies) > limit {
		tallies = tallies[:limit]
	}
	ranked := make([]report.RankedEmployee, 0, len(tallies))
	for _, t := range tallies {
		ranked = append(ranked, report.RankedEmployee{
			EmployeeID: t.EmployeeID,
			FullName:   t.FullName,
			Shifts:     t.Shifts,
			Lates:      t.Lates,
		})
	}
	return ranked
}

// dayCounts tallies filled shifts per recorded date and returns the busiest
// and least attended ones. Dates without any record do not participate.
func dayCounts(records []attendance.Attendance) (busiest, least *report.DayCount) {
	perDay := make(map[string]int)
	for _, rec := range records {
		key := rec.Date.Format("2006-01-02")
		if _, ok := perDay[key]; !ok {
			perDay[key] = 0
		}
		if rec.AttendedMorning {
			perDay[key]++
		}
		if rec.AttendedAfternoon {
			perDay[key]++
		}
	}
	if len(perDay) == 0 {
		return nil, nil
	}

	dates := make([]string, 0, len(perDay))
	for d := range perDay {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	for _, d := range dates {
		count := perDay[d]
		if busiest == nil || count > busiest.Count {
			busiest = &report.DayCount{Date: d, Count: count}
		}
		if least == nil || count < least.Count {
			least = &report.DayCount{Date: d, Count: count}
		}
	}
	return busiest, least
}

// modalCheckInHour finds the most common morning check-in hour, nil when no
// morning entries exist. Ties resolve to the earliest hour.
func modalCheckInHour(records []attendance.Attendance) *int {
	perHour := make(map[int]int)
	for _, rec := range records {
		if rec.MorningIn != nil {
			perHour[rec.MorningIn.Hour()]++
		}
	}
	if len(perHour) == 0 {
		return nil
	}

	var modal *int
	for hour := 0; hour < 24; hour++ {
		count, ok := perHour[hour]
		if !ok {
			continue
		}
		if modal == nil || count > perHour[*modal] {
			h := hour
			modal = &h
		}
	}
	return modal
}
