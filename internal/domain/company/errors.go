package company

import "errors"

var (
	ErrCompanyNotFound = errors.New("company not found")
	ErrCodeExists      = errors.New("company code already exists")
)
