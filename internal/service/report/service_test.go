package report

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asistencia-qr/attendance-backend-go/internal/domain/attendance"
	"github.com/asistencia-qr/attendance-backend-go/internal/domain/company"
	"github.com/asistencia-qr/attendance-backend-go/internal/domain/employee"
	"github.com/asistencia-qr/attendance-backend-go/internal/domain/report"
)

type stubCompanyRepo struct {
	company.CompanyRepository
	company company.Company
}

func (r *stubCompanyRepo) GetByID(ctx context.Context, id string) (company.Company, error) {
	return r.company, nil
}

type stubEmployeeRepo struct {
	employee.EmployeeRepository
	employees []employee.Employee
}

func (r *stubEmployeeRepo) GetByCompanyID(ctx context.Context, companyID string) ([]employee.Employee, error) {
	return r.employees, nil
}

type stubAttendanceRepo struct {
	attendance.AttendanceRepository
	records []attendance.Attendance
}

func (r *stubAttendanceRepo) GetByCompanyAndRange(ctx context.Context, companyID string, start, end time.Time) ([]attendance.Attendance, error) {
	return r.records, nil
}

func summaryService(employees []employee.Employee, records []attendance.Attendance) *ReportServiceImpl {
	return &ReportServiceImpl{
		companyRepo:    &stubCompanyRepo{company: company.Company{ID: "co-1", Name: "Acme", Code: "ACME"}},
		employeeRepo:   &stubEmployeeRepo{employees: employees},
		attendanceRepo: &stubAttendanceRepo{records: records},
		loc:            time.UTC,
		topRankSize:    5,
		now:            func() time.Time { return day(10) },
	}
}

func TestRangeSummary_AbsencesAreUnfilledSlots(t *testing.T) {
	employees := []employee.Employee{
		{ID: "ana", FullName: "Ana", Active: true},
		{ID: "bruno", FullName: "Bruno", Active: true},
	}
	records := []attendance.Attendance{
		{EmployeeID: "ana", Date: day(2), DayStatus: attendance.DayComplete, AttendedMorning: true, AttendedAfternoon: true},
		{EmployeeID: "ana", Date: day(3), DayStatus: attendance.DayIncomplete, AttendedMorning: true},
		// Bruno scanned nothing else all range; his single ABSENT row must
		// not be what drives the absence count.
		{EmployeeID: "bruno", Date: day(2), DayStatus: attendance.DayAbsent},
	}
	svc := summaryService(employees, records)

	summary, err := svc.RangeSummary(context.Background(), &report.RangeSummaryRequest{
		CompanyID: "co-1",
		StartDate: "2026-03-02",
		EndDate:   "2026-03-04",
	})
	require.NoError(t, err)

	// 2 employees x 3 days x 2 shifts = 12 expected, 3 filled.
	assert.Equal(t, 12, summary.ExpectedSlots)
	assert.Equal(t, 3, summary.FilledSlots)
	assert.Equal(t, 9, summary.Absences, "every unfilled slot is an absence, recorded or not")
	assert.Equal(t, 25.0, summary.AttendancePct)
}

func TestRangeSummary_NoRecordsMeansAllSlotsAbsent(t *testing.T) {
	employees := []employee.Employee{{ID: "ana", FullName: "Ana", Active: true}}
	svc := summaryService(employees, nil)

	summary, err := svc.RangeSummary(context.Background(), &report.RangeSummaryRequest{
		CompanyID: "co-1",
		StartDate: "2026-03-02",
		EndDate:   "2026-03-03",
	})
	require.NoError(t, err)

	assert.Equal(t, 4, summary.ExpectedSlots)
	assert.Equal(t, 0, summary.FilledSlots)
	assert.Equal(t, 4, summary.Absences)
}
