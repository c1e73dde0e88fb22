package auth

import "time"

type Administrator struct {
	ID           string
	CompanyID    string
	Name         string
	Username     string
	PasswordHash string
	Phone        string
	Email        string
	Role         Role
	Active       bool
	CreatedAt    time.Time
}

type Role string

const (
	RoleCompanyAdmin Role = "ADMIN_EMPRESA"
	RoleSuperAdmin   Role = "SUPER_ADMIN"
)
