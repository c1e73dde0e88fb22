package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/asistencia-qr/attendance-backend-go/internal/domain/auth"
	"github.com/asistencia-qr/attendance-backend-go/internal/pkg/database"
)

type administratorRepositoryImpl struct {
	db *database.DB
}

func NewAdministratorRepository(db *database.DB) auth.AdministratorRepository {
	return &administratorRepositoryImpl{db: db}
}

const administratorColumns = `
	id, company_id, name, username, password_hash,
	COALESCE(phone, ''), COALESCE(email, ''), role, active, created_at
`

func scanAdministrator(row pgx.Row) (auth.Administrator, error) {
	var a auth.Administrator
	var role string
	err := row.Scan(
		&a.ID, &a.CompanyID, &a.Name, &a.Username, &a.PasswordHash,
		&a.Phone, &a.Email, &role, &a.Active, &a.CreatedAt,
	)
	if err != nil {
		return auth.Administrator{}, err
	}
	a.Role = auth.Role(role)
	return a, nil
}

// GetByID implements auth.AdministratorRepository.
func (r *administratorRepositoryImpl) GetByID(ctx context.Context, id string) (auth.Administrator, error) {
	q := GetQuerier(ctx, r.db)

	row := q.QueryRow(ctx, `
		SELECT `+administratorColumns+`
		FROM administrators
		WHERE id = $1
	`, id)

	admin, err := scanAdministrator(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return auth.Administrator{}, auth.ErrAdminNotFound
		}
		return auth.Administrator{}, fmt.Errorf("failed to get administrator: %w", err)
	}
	return admin, nil
}

// GetByUsername implements auth.AdministratorRepository.
func (r *administratorRepositoryImpl) GetByUsername(ctx context.Context, username string) (auth.Administrator, error) {
	q := GetQuerier(ctx, r.db)

	row := q.QueryRow(ctx, `
		SELECT `+administratorColumns+`
		FROM administrators
		WHERE username = $1
	`, username)

	admin, err := scanAdministrator(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return auth.Administrator{}, auth.ErrAdminNotFound
		}
		return auth.Administrator{}, fmt.Errorf("failed to get administrator: %w", err)
	}
	return admin, nil
}

// GetByEmail implements auth.AdministratorRepository.
func (r *administratorRepositoryImpl) GetByEmail(ctx context.Context, email string) (auth.Administrator, error) {
	q := GetQuerier(ctx, r.db)

	row := q.QueryRow(ctx, `
		SELECT `+administratorColumns+`
		FROM administrators
		WHERE email = $1
	`, email)

	admin, err := scanAdministrator(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return auth.Administrator{}, auth.ErrAdminNotFound
		}
		return auth.Administrator{}, fmt.Errorf("failed to get administrator by email: %w", err)
	}
	return admin, nil
}

// GetByCompanyID implements auth.AdministratorRepository.
func (r *administratorRepositoryImpl) GetByCompanyID(ctx context.Context, companyID string) ([]auth.Administrator, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT `+administratorColumns+`
		FROM administrators
		WHERE company_id = $1 AND active
		ORDER BY name
	`, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query administrators: %w", err)
	}
	defer rows.Close()

	var admins []auth.Administrator
	for rows.Next() {
		admin, err := scanAdministrator(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan administrator: %w", err)
		}
		admins = append(admins, admin)
	}
	return admins, rows.Err()
}

// Create implements auth.AdministratorRepository.
func (r *administratorRepositoryImpl) Create(ctx context.Context, admin auth.Administrator) (auth.Administrator, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO administrators (company_id, name, username, password_hash, phone, email, role, active)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), NULLIF($6, ''), $7, $8)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		admin.CompanyID, admin.Name, admin.Username, admin.PasswordHash,
		admin.Phone, admin.Email, string(admin.Role), admin.Active,
	).Scan(&admin.ID, &admin.CreatedAt)
	if err != nil {
		return auth.Administrator{}, fmt.Errorf("failed to create administrator: %w", err)
	}
	return admin, nil
}
