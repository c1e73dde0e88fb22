package company

import "time"

type Company struct {
	ID   string
	Name string
	// Code is the unique short company code embedded in employee QR tokens.
	Code      string
	CreatedAt time.Time
	UpdatedAt time.Time

	// DTO
	EmployeeCount *int64
}
