package employee

import "time"

type Employee struct {
	ID        string
	CompanyID string
	FullName  string
	// DNI is the national identity number.
	DNI string
	// QRToken is the sole scan credential, minted once at registration:
	// EMP_<companyCode>_<employeeID>_<unixSeconds>.
	QRToken      string
	Phone        string
	Email        string
	Active       bool
	RegisteredAt time.Time
	UpdatedAt    time.Time

	// DTO
	CompanyName *string
	CompanyCode *string
}
