package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/asistencia-qr/attendance-backend-go/internal/domain/attendance"
	"github.com/asistencia-qr/attendance-backend-go/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

const attendanceColumns = `
	a.id, a.employee_id, a.company_id, a.date,
	a.morning_in, a.morning_out, a.afternoon_in, a.afternoon_out,
	a.worked_minutes, a.normal_minutes, a.overtime_minutes, a.day_status,
	a.attended_morning, a.attended_afternoon, a.late_morning, a.late_afternoon,
	a.created_at, a.updated_at
`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var a attendance.Attendance
	var status string
	err := row.Scan(
		&a.ID, &a.EmployeeID, &a.CompanyID, &a.Date,
		&a.MorningIn, &a.MorningOut, &a.AfternoonIn, &a.AfternoonOut,
		&a.WorkedMinutes, &a.NormalMinutes, &a.OvertimeMinutes, &status,
		&a.AttendedMorning, &a.AttendedAfternoon, &a.LateMorning, &a.LateAfternoon,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return attendance.Attendance{}, err
	}
	a.DayStatus = attendance.DayStatus(status)
	return a, nil
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendances (
			employee_id, company_id, date,
			morning_in, morning_out, afternoon_in, afternoon_out,
			worked_minutes, normal_minutes, overtime_minutes, day_status,
			attended_morning, attended_afternoon, late_morning, late_afternoon
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		att.EmployeeID, att.CompanyID, att.Date,
		att.MorningIn, att.MorningOut, att.AfternoonIn, att.AfternoonOut,
		att.WorkedMinutes, att.NormalMinutes, att.OvertimeMinutes, string(att.DayStatus),
		att.AttendedMorning, att.AttendedAfternoon, att.LateMorning, att.LateAfternoon,
	).Scan(&att.ID, &att.CreatedAt, &att.UpdatedAt)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}
	return att, nil
}

// GetByID implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByID(ctx context.Context, id string, companyID string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	row := q.QueryRow(ctx, `
		SELECT `+attendanceColumns+`
		FROM attendances a
		WHERE a.id = $1 AND a.company_id = $2
	`, id, companyID)

	att, err := scanAttendance(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance: %w", err)
	}
	return att, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	return r.getByEmployeeAndDate(ctx, employeeID, date, false)
}

// GetByEmployeeAndDateForUpdate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByEmployeeAndDateForUpdate(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	return r.getByEmployeeAndDate(ctx, employeeID, date, true)
}

func (r *attendanceRepositoryImpl) getByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time, forUpdate bool) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances a
		WHERE a.employee_id = $1 AND a.date = $2
	`
	if forUpdate {
		query += " FOR UPDATE"
	}

	att, err := scanAttendance(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance by date: %w", err)
	}
	return &att, nil
}

// GetByEmployeeAndRange implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByEmployeeAndRange(ctx context.Context, employeeID string, start, end time.Time) ([]attendance.Attendance, error) {
	return r.queryRange(ctx, `
		SELECT `+attendanceColumns+`
		FROM attendances a
		WHERE a.employee_id = $1 AND a.date BETWEEN $2 AND $3
		ORDER BY a.date
	`, employeeID, start, end)
}

// GetByCompanyAndRange implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByCompanyAndRange(ctx context.Context, companyID string, start, end time.Time) ([]attendance.Attendance, error) {
	return r.queryRange(ctx, `
		SELECT `+attendanceColumns+`
		FROM attendances a
		WHERE a.company_id = $1 AND a.date BETWEEN $2 AND $3
		ORDER BY a.employee_id, a.date
	`, companyID, start, end)
}

func (r *attendanceRepositoryImpl) queryRange(ctx context.Context, query string, args ...interface{}) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendances: %w", err)
	}
	defer rows.Close()

	var attendances []attendance.Attendance
	for rows.Next() {
		att, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		attendances = append(attendances, att)
	}
	return attendances, rows.Err()
}

// Update implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Update(ctx context.Context, att attendance.Attendance) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendances
		SET morning_in = $1, morning_out = $2, afternoon_in = $3, afternoon_out = $4,
		    worked_minutes = $5, normal_minutes = $6, overtime_minutes = $7,
		    day_status = $8, attended_morning = $9, attended_afternoon = $10,
		    late_morning = $11, late_afternoon = $12, updated_at = $13
		WHERE id = $14
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		att.MorningIn, att.MorningOut, att.AfternoonIn, att.AfternoonOut,
		att.WorkedMinutes, att.NormalMinutes, att.OvertimeMinutes,
		string(att.DayStatus), att.AttendedMorning, att.AttendedAfternoon,
		att.LateMorning, att.LateAfternoon, time.Now(), att.ID,
	).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.ErrAttendanceNotFound
		}
		return fmt.Errorf("failed to update attendance: %w", err)
	}
	return nil
}

var attendanceSortColumns = map[string]string{
	"date":           "a.date",
	"employee_name":  "e.full_name",
	"worked_minutes": "a.worked_minutes",
	"created_at":     "a.created_at",
}

// List implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) List(ctx context.Context, filter attendance.Filter, companyID string) ([]attendance.Attendance, int64, error) {
	q := GetQuerier(ctx, r.db)

	clauses := []string{"a.company_id = $1"}
	args := []interface{}{companyID}
	i := 2

	addClause := func(clause string, value interface{}) {
		clauses = append(clauses, fmt.Sprintf(clause, i))
		args = append(args, value)
		i++
	}

	if filter.EmployeeID != nil {
		addClause("a.employee_id = $%d", *filter.EmployeeID)
	}
	if filter.Date != nil {
		addClause("a.date = $%d", *filter.Date)
	}
	if filter.StartDate != nil {
		addClause("a.date >= $%d", *filter.StartDate)
	}
	if filter.EndDate != nil {
		addClause("a.date <= $%d", *filter.EndDate)
	}
	if filter.DayStatus != nil {
		addClause("a.day_status = $%d", *filter.DayStatus)
	}

	where := "WHERE " + strings.Join(clauses, " AND ")

	var total int64
	countQuery := "SELECT COUNT(*) FROM attendances a " + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendances: %w", err)
	}

	sortColumn, ok := attendanceSortColumns[filter.SortBy]
	if !ok {
		sortColumn = "a.date"
	}
	sortOrder := "DESC"
	if strings.EqualFold(filter.SortOrder, "asc") {
		sortOrder = "ASC"
	}

	query := fmt.Sprintf(`
		SELECT %s, e.full_name
		FROM attendances a
		JOIN employees e ON e.id = a.employee_id
		%s
		ORDER BY %s %s
		LIMIT $%d OFFSET $%d
	`, attendanceColumns, where, sortColumn, sortOrder, i, i+1)

	limit := filter.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	page := filter.Page
	if page < 1 {
		page = 1
	}
	args = append(args, limit, (page-1)*limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attendances: %w", err)
	}
	defer rows.Close()

	var attendances []attendance.Attendance
	for rows.Next() {
		var a attendance.Attendance
		var status, employeeName string
		err := rows.Scan(
			&a.ID, &a.EmployeeID, &a.CompanyID, &a.Date,
			&a.MorningIn, &a.MorningOut, &a.AfternoonIn, &a.AfternoonOut,
			&a.WorkedMinutes, &a.NormalMinutes, &a.OvertimeMinutes, &status,
			&a.AttendedMorning, &a.AttendedAfternoon, &a.LateMorning, &a.LateAfternoon,
			&a.CreatedAt, &a.UpdatedAt, &employeeName,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan attendance: %w", err)
		}
		a.DayStatus = attendance.DayStatus(status)
		a.EmployeeName = &employeeName
		attendances = append(attendances, a)
	}
	return attendances, total, rows.Err()
}

// Delete implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Delete(ctx context.Context, id string, companyID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM attendances WHERE id = $1 AND company_id = $2`, id, companyID)
	if err != nil {
		return fmt.Errorf("failed to delete attendance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}
	return nil
}
