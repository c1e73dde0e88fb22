package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrDNIExists        = errors.New("DNI already registered in this company")
	ErrInvalidEmail     = errors.New("invalid email address")
)
