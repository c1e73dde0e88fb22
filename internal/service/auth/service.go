package auth

import (
	"context"
	"errors"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/asistencia-qr/attendance-backend-go/internal/domain/auth"
	"github.com/asistencia-qr/attendance-backend-go/internal/pkg/jwt"
)

type AuthServiceImpl struct {
	adminRepo  auth.AdministratorRepository
	jwtService jwt.Service
}

func NewAuthService(adminRepo auth.AdministratorRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		adminRepo:  adminRepo,
		jwtService: jwtService,
	}
}

// Login implements auth.AuthService.
func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	admin, err := s.adminRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, auth.ErrAdminNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	return s.issueTokens(admin)
}

// LoginWithGoogle implements auth.AuthService.
func (s *AuthServiceImpl) LoginWithGoogle(ctx context.Context, email string, verified bool) (auth.LoginResponse, error) {
	if !verified {
		return auth.LoginResponse{}, auth.ErrEmailNotVerified
	}

	admin, err := s.adminRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, auth.ErrAdminNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, err
	}

	return s.issueTokens(admin)
}

// Refresh implements auth.AuthService.
func (s *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (auth.LoginResponse, error) {
	adminID, err := s.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidToken
	}

	// Refresh claims carry only the admin id; re-read the rest so role or
	// deactivation changes take effect on rotation.
	admin, err := s.lookupByID(ctx, adminID)
	if err != nil {
		return auth.LoginResponse{}, err
	}

	s.jwtService.RevokeToken(refreshToken)
	return s.issueTokens(admin)
}

func (s *AuthServiceImpl) lookupByID(ctx context.Context, adminID string) (auth.Administrator, error) {
	admin, err := s.adminRepo.GetByID(ctx, adminID)
	if err != nil {
		if errors.Is(err, auth.ErrAdminNotFound) {
			return auth.Administrator{}, auth.ErrInvalidToken
		}
		return auth.Administrator{}, err
	}
	return admin, nil
}

// Logout implements auth.AuthService.
func (s *AuthServiceImpl) Logout(ctx context.Context, token string) error {
	if token == "" {
		return auth.ErrInvalidToken
	}
	s.jwtService.RevokeToken(token)
	return nil
}

func (s *AuthServiceImpl) issueTokens(admin auth.Administrator) (auth.LoginResponse, error) {
	if !admin.Active {
		return auth.LoginResponse{}, auth.ErrAdminInactive
	}

	accessToken, expiresAt, err := s.jwtService.GenerateAccessToken(admin.ID, admin.CompanyID, admin.Username, admin.Role)
	if err != nil {
		return auth.LoginResponse{}, err
	}
	refreshToken, refreshExp, err := s.jwtService.GenerateRefreshToken(admin.ID)
	if err != nil {
		return auth.LoginResponse{}, err
	}

	slog.Info("Administrator authenticated", "admin_id", admin.ID, "role", string(admin.Role))
	return auth.LoginResponse{
		AccessToken:  accessToken,
		ExpiresAt:    expiresAt,
		RefreshToken: refreshToken,
		RefreshExp:   refreshExp,
		Admin:        auth.NewAdminResponse(admin),
	}, nil
}
