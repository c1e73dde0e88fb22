package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/asistencia-qr/attendance-backend-go/internal/domain/employee"
	"github.com/asistencia-qr/attendance-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `
	e.id, e.company_id, e.full_name, e.dni, e.qr_token,
	COALESCE(e.phone, ''), COALESCE(e.email, ''), e.active,
	e.registered_at, e.updated_at, c.name, c.code
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	var companyName, companyCode string
	err := row.Scan(
		&e.ID, &e.CompanyID, &e.FullName, &e.DNI, &e.QRToken,
		&e.Phone, &e.Email, &e.Active,
		&e.RegisteredAt, &e.UpdatedAt, &companyName, &companyCode,
	)
	if err != nil {
		return employee.Employee{}, err
	}
	e.CompanyName = &companyName
	e.CompanyCode = &companyCode
	return e, nil
}

// GetAll implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetAll(ctx context.Context) ([]employee.Employee, error) {
	return r.query(ctx, `
		SELECT `+employeeColumns+`
		FROM employees e
		JOIN companies c ON c.id = e.company_id
		ORDER BY c.name, e.full_name
	`)
}

// GetByCompanyID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByCompanyID(ctx context.Context, companyID string) ([]employee.Employee, error) {
	return r.query(ctx, `
		SELECT `+employeeColumns+`
		FROM employees e
		JOIN companies c ON c.id = e.company_id
		WHERE e.company_id = $1
		ORDER BY e.full_name
	`, companyID)
}

// GetActiveByCompanyID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetActiveByCompanyID(ctx context.Context, companyID string) ([]employee.Employee, error) {
	return r.query(ctx, `
		SELECT `+employeeColumns+`
		FROM employees e
		JOIN companies c ON c.id = e.company_id
		WHERE e.company_id = $1 AND e.active
		ORDER BY e.full_name
	`, companyID)
}

func (r *employeeRepositoryImpl) query(ctx context.Context, query string, args ...interface{}) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	row := q.QueryRow(ctx, `
		SELECT `+employeeColumns+`
		FROM employees e
		JOIN companies c ON c.id = e.company_id
		WHERE e.id = $1
	`, id)

	e, err := scanEmployee(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return e, nil
}

// GetByQRToken implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByQRToken(ctx context.Context, token string) (*employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	row := q.QueryRow(ctx, `
		SELECT `+employeeColumns+`
		FROM employees e
		JOIN companies c ON c.id = e.company_id
		WHERE e.qr_token = $1
	`, token)

	e, err := scanEmployee(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get employee by token: %w", err)
	}
	return &e, nil
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	// The id is minted by the service so the QR token can embed it before
	// the row exists.
	query := `
		INSERT INTO employees (id, company_id, full_name, dni, qr_token, phone, email, active)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), NULLIF($7, ''), $8)
		RETURNING registered_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		e.ID, e.CompanyID, e.FullName, e.DNI, e.QRToken, e.Phone, e.Email, e.Active,
	).Scan(&e.RegisteredAt, &e.UpdatedAt)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}
	return e, nil
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Update(ctx context.Context, e employee.Employee) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET full_name = $1, dni = $2, qr_token = $3,
		    phone = NULLIF($4, ''), email = NULLIF($5, ''),
		    active = $6, updated_at = $7
		WHERE id = $8
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		e.FullName, e.DNI, e.QRToken, e.Phone, e.Email, e.Active, time.Now(), e.ID,
	).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to update employee: %w", err)
	}
	return nil
}

// Delete implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}
