package report

import (
	"context"
	"time"

	"github.com/asistencia-qr/attendance-backend-go/internal/domain/attendance"
	"github.com/asistencia-qr/attendance-backend-go/internal/domain/company"
	"github.com/asistencia-qr/attendance-backend-go/internal/domain/employee"
	"github.com/asistencia-qr/attendance-backend-go/internal/domain/report"
)

type ReportServiceImpl struct {
	companyRepo    company.CompanyRepository
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository

	loc         *time.Location
	topRankSize int
	now         func() time.Time
}

func NewReportService(
	companyRepo company.CompanyRepository,
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	loc *time.Location,
	topRankSize int,
) report.ReportService {
	return &ReportServiceImpl{
		companyRepo:    companyRepo,
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		loc:            loc,
		topRankSize:    topRankSize,
		now:            time.Now,
	}
}

func monthBounds(year, month int) (time.Time, time.Time) {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return first, last
}

// MonthlyCompanyReport implements report.ReportService.
func (s *ReportServiceImpl) MonthlyCompanyReport(ctx context.Context, req *report.MonthlyReportRequest) (*report.MonthlyCompanyReport, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	co, err := s.companyRepo.GetByID(ctx, req.CompanyID)
	if err != nil {
		return nil, err
	}
	employees, err := s.employeeRepo.GetByCompanyID(ctx, req.CompanyID)
	if err != nil {
		return nil, err
	}

	first, last := monthBounds(req.Year, req.Month)
	records, err := s.attendanceRepo.GetByCompanyAndRange(ctx, req.CompanyID, first, last)
	if err != nil {
		return nil, err
	}

	byEmployee := groupByEmployee(records)
	businessDays := countBusinessDays(first, last)

	result := &report.MonthlyCompanyReport{
		Company: companyInfo(co),
		Period: report.Period{
			Month:    req.Month,
			Year:     req.Year,
			FirstDay: first.Format("2006-01-02"),
			LastDay:  last.Format("2006-01-02"),
		},
		Employees:   make([]report.MonthlyEmployeeRow, 0, len(employees)),
		GeneratedAt: s.now().In(s.loc).Format(time.RFC3339),
	}

	totals := report.MonthlyTotals{
		TotalEmployees: len(employees),
		BusinessDays:   businessDays,
	}
	totalNormal, totalOvertime := 0, 0

	for _, emp := range employees {
		stats := employeeStats(byEmployee[emp.ID], businessDays)

		result.Employees = append(result.Employees, report.MonthlyEmployeeRow{
			EmployeeID:    emp.ID,
			FullName:      emp.FullName,
			DNI:           emp.DNI,
			Attendances:   stats.CompleteDays + stats.IncompleteDays,
			Absences:      stats.Absences,
			NormalHours:   minutesToHHMM(stats.NormalMinutes),
			OvertimeHours: minutesToHHMM(stats.OvertimeMinutes),
			Lates:         stats.MorningLates + stats.AfternoonLates,
			Stats:         stats,
		})

		totals.TotalAbsences += stats.Absences
		totals.MorningShifts += stats.MorningShifts
		totals.AfternoonShifts += stats.AfternoonShifts
		totals.MorningAbsences += stats.MorningAbsences
		totals.AfternoonAbsences += stats.AfternoonAbsences
		totals.MorningLates += stats.MorningLates
		totals.AfternoonLates += stats.AfternoonLates
		totalNormal += stats.NormalMinutes
		totalOvertime += stats.OvertimeMinutes
	}

	totals.NormalHours = minutesToHHMM(totalNormal)
	totals.OvertimeHours = minutesToHHMM(totalOvertime)
	result.Totals = totals
	return result, nil
}

// EmployeeDetailReport implements report.ReportService.
func (s *ReportServiceImpl) EmployeeDetailReport(ctx context.Context, req *report.EmployeeReportRequest) (*report.EmployeeDetailReport, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return nil, err
	}
	co, err := s.companyRepo.GetByID(ctx, emp.CompanyID)
	if err != nil {
		return nil, err
	}

	first, last := monthBounds(req.Year, req.Month)
	records, err := s.attendanceRepo.GetByEmployeeAndRange(ctx, emp.ID, first, last)
	if err != nil {
		return nil, err
	}

	logs := make([]report.DailyLog, 0, len(records))
	for _, rec := range records {
		logs = append(logs, report.DailyLog{
			Date:          rec.Date.Format("2006-01-02"),
			MorningIn:     clockString(rec.MorningIn),
			MorningOut:    clockString(rec.MorningOut),
			AfternoonIn:   clockString(rec.AfternoonIn),
			AfternoonOut:  clockString(rec.AfternoonOut),
			TotalHours:    minutesToHHMM(rec.WorkedMinutes),
			OvertimeHours: minutesToHHMM(rec.OvertimeMinutes),
			DayStatus:     string(rec.DayStatus),
		})
	}

	return &report.EmployeeDetailReport{
		Employee: report.EmployeeInfo{
			ID:      emp.ID,
			Name:    emp.FullName,
			DNI:     emp.DNI,
			Company: companyInfo(co),
		},
		Period: report.Period{
			Month:    req.Month,
			Year:     req.Year,
			FirstDay: first.Format("2006-01-02"),
			LastDay:  last.Format("2006-01-02"),
		},
		Stats:       employeeStats(records, countBusinessDays(first, last)),
		DailyLogs:   logs,
		TotalDays:   len(logs),
		GeneratedAt: s.now().In(s.loc).Format(time.RFC3339),
	}, nil
}

// RangeSummary implements report.ReportService.
func (s *ReportServiceImpl) RangeSummary(ctx context.Context, req *report.RangeSummaryRequest) (*report.RangeSummary, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	co, err := s.companyRepo.GetByID(ctx, req.CompanyID)
	if err != nil {
		return nil, err
	}

	start, end := s.resolveRange(req)
	if start.After(end) {
		return nil, report.ErrEmptyRange
	}

	employees, err := s.employeeRepo.GetByCompanyID(ctx, req.CompanyID)
	if err != nil {
		return nil, err
	}
	records, err := s.attendanceRepo.GetByCompanyAndRange(ctx, req.CompanyID, start, end)
	if err != nil {
		return nil, err
	}

	// Expected slots count only active employees; names cover everyone so
	// records from deactivated employees still rank under their name.
	activeCount := 0
	names := make(map[string]string, len(employees))
	for _, emp := range employees {
		names[emp.ID] = emp.FullName
		if emp.Active {
			activeCount++
		}
	}

	calendarDays := int(end.Sub(start).Hours()/24) + 1
	filled, morningLates, afternoonLates, overtime := 0, 0, 0, 0
	for _, rec := range records {
		if rec.AttendedMorning {
			filled++
		}
		if rec.AttendedAfternoon {
			filled++
		}
		if rec.LateMorning {
			morningLates++
		}
		if rec.LateAfternoon {
			afternoonLates++
		}
		overtime += rec.OvertimeMinutes
	}

	// An absence is any expected slot nobody filled, so days with no record
	// at all weigh in; counting ABSENT rows would miss them.
	expected := activeCount * calendarDays * 2
	summary := &report.RangeSummary{
		Company: companyInfo(co),
		Period: report.Period{
			FirstDay: start.Format("2006-01-02"),
			LastDay:  end.Format("2006-01-02"),
		},
		TotalEmployees: activeCount,
		ExpectedSlots:  expected,
		FilledSlots:    filled,
		MorningLates:   morningLates,
		AfternoonLates: afternoonLates,
		Absences:       clampZero(expected - filled),
		OvertimeHours:  minutesToHHMM(overtime),
		GeneratedAt:    s.now().In(s.loc).Format(time.RFC3339),
	}
	if expected > 0 {
		summary.AttendancePct = round1(float64(filled) / float64(expected) * 100)
	}
	if filled > 0 {
		punctual := filled - morningLates - afternoonLates
		summary.PunctualityPct = round1(float64(clampZero(punctual)) / float64(filled) * 100)
	}

	tallies := tallyByEmployee(records, names)
	summary.TopPunctual = topPunctual(tallies, s.topRankSize)
	summary.TopLate = topLate(tallies, s.topRankSize)
	summary.BusiestDay, summary.LeastAttendedDay = dayCounts(records)
	summary.ModalCheckInHour = modalCheckInHour(records)

	return summary, nil
}

// resolveRange turns a week offset into concrete dates: offset 0 is the
// trailing 7 days ending today, offset n shifts n weeks back.
func (s *ReportServiceImpl) resolveRange(req *report.RangeSummaryRequest) (time.Time, time.Time) {
	if req.WeekOffset != nil {
		today := s.now().In(s.loc)
		end := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
		end = end.AddDate(0, 0, -7**req.WeekOffset)
		return end.AddDate(0, 0, -6), end
	}

	start, _ := time.Parse("2006-01-02", req.StartDate)
	end, _ := time.Parse("2006-01-02", req.EndDate)
	return start, end
}

func groupByEmployee(records []attendance.Attendance) map[string][]attendance.Attendance {
	grouped := make(map[string][]attendance.Attendance)
	for _, rec := range records {
		grouped[rec.EmployeeID] = append(grouped[rec.EmployeeID], rec)
	}
	return grouped
}

func companyInfo(co company.Company) report.CompanyInfo {
	return report.CompanyInfo{ID: co.ID, Name: co.Name, Code: co.Code}
}

func clockString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("15:04:05")
	return &s
}
