package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/asistencia-qr/attendance-backend-go/internal/domain/company"
	"github.com/asistencia-qr/attendance-backend-go/internal/pkg/database"
)

type companyRepositoryImpl struct {
	db *database.DB
}

func NewCompanyRepository(db *database.DB) company.CompanyRepository {
	return &companyRepositoryImpl{db: db}
}

// List implements company.CompanyRepository.
func (c *companyRepositoryImpl) List(ctx context.Context) ([]company.Company, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		SELECT id, name, code, created_at, updated_at
		FROM companies
		ORDER BY name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	defer rows.Close()

	var companies []company.Company
	for rows.Next() {
		var co company.Company
		if err := rows.Scan(&co.ID, &co.Name, &co.Code, &co.CreatedAt, &co.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan company: %w", err)
		}
		companies = append(companies, co)
	}
	return companies, rows.Err()
}

// ListWithEmployeeCount implements company.CompanyRepository.
func (c *companyRepositoryImpl) ListWithEmployeeCount(ctx context.Context) ([]company.Company, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		SELECT c.id, c.name, c.code, c.created_at, c.updated_at,
		       COUNT(e.id) FILTER (WHERE e.active) AS employee_count
		FROM companies c
		LEFT JOIN employees e ON e.company_id = c.id
		GROUP BY c.id
		ORDER BY c.name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	defer rows.Close()

	var companies []company.Company
	for rows.Next() {
		var co company.Company
		var count int64
		if err := rows.Scan(&co.ID, &co.Name, &co.Code, &co.CreatedAt, &co.UpdatedAt, &count); err != nil {
			return nil, fmt.Errorf("failed to scan company: %w", err)
		}
		co.EmployeeCount = &count
		companies = append(companies, co)
	}
	return companies, rows.Err()
}

// GetByID implements company.CompanyRepository.
func (c *companyRepositoryImpl) GetByID(ctx context.Context, id string) (company.Company, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		SELECT id, name, code, created_at, updated_at
		FROM companies
		WHERE id = $1
	`

	var found company.Company
	err := q.QueryRow(ctx, query, id).
		Scan(&found.ID, &found.Name, &found.Code, &found.CreatedAt, &found.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return company.Company{}, company.ErrCompanyNotFound
		}
		return company.Company{}, fmt.Errorf("failed to get company: %w", err)
	}
	return found, nil
}

// GetByCode implements company.CompanyRepository.
func (c *companyRepositoryImpl) GetByCode(ctx context.Context, code string) (company.Company, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		SELECT id, name, code, created_at, updated_at
		FROM companies
		WHERE code = $1
	`

	var found company.Company
	err := q.QueryRow(ctx, query, code).
		Scan(&found.ID, &found.Name, &found.Code, &found.CreatedAt, &found.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return company.Company{}, company.ErrCompanyNotFound
		}
		return company.Company{}, fmt.Errorf("failed to get company by code: %w", err)
	}
	return found, nil
}

// Create implements company.CompanyRepository.
func (c *companyRepositoryImpl) Create(ctx context.Context, newCompany company.Company) (company.Company, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		INSERT INTO companies (name, code)
		VALUES ($1, $2)
		RETURNING id, name, code, created_at, updated_at
	`

	var created company.Company
	err := q.QueryRow(ctx, query, newCompany.Name, newCompany.Code).
		Scan(&created.ID, &created.Name, &created.Code, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return company.Company{}, fmt.Errorf("failed to create company: %w", err)
	}
	return created, nil
}

// Update implements company.CompanyRepository.
func (c *companyRepositoryImpl) Update(ctx context.Context, co company.Company) error {
	q := GetQuerier(ctx, c.db)

	query := `
		UPDATE companies
		SET name = $1, code = $2, updated_at = $3
		WHERE id = $4
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, co.Name, co.Code, time.Now(), co.ID).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return company.ErrCompanyNotFound
		}
		return fmt.Errorf("failed to update company: %w", err)
	}
	return nil
}

// Delete implements company.CompanyRepository.
func (c *companyRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, c.db)

	tag, err := q.Exec(ctx, `DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete company: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return company.ErrCompanyNotFound
	}
	return nil
}
