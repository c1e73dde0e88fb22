package auth

import "context"

type AdministratorRepository interface {
	GetByID(ctx context.Context, id string) (Administrator, error)

	GetByUsername(ctx context.Context, username string) (Administrator, error)

	GetByEmail(ctx context.Context, email string) (Administrator, error)

	GetByCompanyID(ctx context.Context, companyID string) ([]Administrator, error)

	Create(ctx context.Context, admin Administrator) (Administrator, error)
}
