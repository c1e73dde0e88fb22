package company

import "context"

type CompanyRepository interface {
	List(ctx context.Context) ([]Company, error)

	// ListWithEmployeeCount includes the active employee count per company.
	ListWithEmployeeCount(ctx context.Context) ([]Company, error)

	GetByID(ctx context.Context, id string) (Company, error)

	GetByCode(ctx context.Context, code string) (Company, error)

	Create(ctx context.Context, c Company) (Company, error)

	Update(ctx context.Context, c Company) error

	Delete(ctx context.Context, id string) error
}
