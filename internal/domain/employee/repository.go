package employee

import "context"

type EmployeeRepository interface {
	GetAll(ctx context.Context) ([]Employee, error)

	GetByID(ctx context.Context, id string) (Employee, error)

	GetByCompanyID(ctx context.Context, companyID string) ([]Employee, error)

	// GetActiveByCompanyID returns only employees with the active flag set.
	GetActiveByCompanyID(ctx context.Context, companyID string) ([]Employee, error)

	GetByQRToken(ctx context.Context, token string) (*Employee, error)

	Create(ctx context.Context, e Employee) (Employee, error)

	Update(ctx context.Context, e Employee) error

	// Delete removes only the employee row. The hard cascade (scan tracking,
	// attendance records, then the employee) is orchestrated by the service
	// inside one transaction.
	Delete(ctx context.Context, id string) error
}
