package employee

import "context"

type EmployeeService interface {
	// Register creates the employee and mints their unique QR token.
	Register(ctx context.Context, req RegisterEmployeeRequest) (EmployeeResponse, error)

	Get(ctx context.Context, id string) (EmployeeResponse, error)

	ListByCompany(ctx context.Context, companyID string) ([]EmployeeResponse, error)

	Update(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)

	// ToggleActive flips the soft-deactivation flag.
	ToggleActive(ctx context.Context, id string) (EmployeeResponse, error)

	// Delete is the hard cascade: scan tracking rows, attendance records,
	// then the employee row, in one transaction. Irreversible; admin only.
	Delete(ctx context.Context, id string) error

	// QRImagePNG renders the employee's QR token as a PNG.
	QRImagePNG(ctx context.Context, id string) ([]byte, string, error)

	// QRImageBase64 renders the QR token as a base64 PNG data URI.
	QRImageBase64(ctx context.Context, id string) (QRImageResponse, error)
}
