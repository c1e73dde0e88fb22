package notification

import (
	"fmt"
	"time"

	"github.com/asistencia-qr/attendance-backend-go/internal/domain/attendance"
	"github.com/asistencia-qr/attendance-backend-go/internal/domain/notification"
	"github.com/asistencia-qr/attendance-backend-go/internal/domain/report"
)

// buildCompanyDigest maps a range summary plus the per-employee weekly
// digests onto the admin email payload. Employees with at least one lateness
// or absence land in the incident table; the rest are listed by name only.
func buildCompanyDigest(companyName string, summary *report.RangeSummary, employeeDigests []notification.EmployeeDigest) notification.CompanyDigest {
	digest := notification.CompanyDigest{
		CompanyName:    companyName,
		PeriodStart:    summary.Period.FirstDay,
		PeriodEnd:      summary.Period.LastDay,
		TotalEmployees: summary.TotalEmployees,
		FilledSlots:    summary.FilledSlots,
		ExpectedSlots:  summary.ExpectedSlots,
		AttendancePct:  summary.AttendancePct,
		PunctualityPct: summary.PunctualityPct,
		MorningLates:   summary.MorningLates,
		AfternoonLates: summary.AfternoonLates,
		Absences:       summary.Absences,
		OvertimeHours:  summary.OvertimeHours,
	}
	for _, r := range summary.TopPunctual {
		digest.TopPunctual = append(digest.TopPunctual, notification.DigestRank{
			FullName: r.FullName,
			Shifts:   r.Shifts,
			Lates:    r.Lates,
		})
	}
	for _, r := range summary.TopLate {
		digest.TopLate = append(digest.TopLate, notification.DigestRank{
			FullName: r.FullName,
			Shifts:   r.Shifts,
			Lates:    r.Lates,
		})
	}
	for _, ed := range employeeDigests {
		if ed.HasIncident() {
			digest.Incidents = append(digest.Incidents, notification.EmployeeIncident{
				FullName: ed.FullName,
				Lates:    ed.Lates,
				Absences: ed.Absences,
			})
			continue
		}
		digest.NoIncident = append(digest.NoIncident, ed.FullName)
	}
	return digest
}

// buildEmployeeDigest condenses one employee's week into their email payload.
// Absences count the business days of the period the employee never showed
// up on, never going negative when someone also worked a weekend.
func buildEmployeeDigest(fullName, companyName, periodStart, periodEnd string, businessDays int, records []attendance.Attendance) notification.EmployeeDigest {
	digest := notification.EmployeeDigest{
		FullName:    fullName,
		CompanyName: companyName,
		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
	}

	workedMinutes, overtimeMinutes := 0, 0
	for _, rec := range records {
		if rec.AttendedMorning || rec.AttendedAfternoon {
			digest.DaysAttended++
		}
		switch rec.DayStatus {
		case attendance.DayComplete:
			digest.CompleteDays++
		case attendance.DayIncomplete:
			digest.IncompleteDays++
		}
		if rec.LateMorning {
			digest.Lates++
		}
		if rec.LateAfternoon {
			digest.Lates++
		}
		workedMinutes += rec.WorkedMinutes
		overtimeMinutes += rec.OvertimeMinutes
	}

	if digest.Absences = businessDays - digest.DaysAttended; digest.Absences < 0 {
		digest.Absences = 0
	}
	digest.WorkedHours = hhmm(workedMinutes)
	digest.OvertimeHours = hhmm(overtimeMinutes)
	return digest
}

// businessDaysBetween counts the Monday through Friday days in the inclusive
// range.
func businessDaysBetween(start, end time.Time) int {
	count := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if wd := d.Weekday(); wd != time.Saturday && wd != time.Sunday {
			count++
		}
	}
	return count
}

func hhmm(minutes int) string {
	if minutes < 0 {
		minutes = 0
	}
	return fmt.Sprintf("%d:%02d", minutes/60, minutes%60)
}
