package company

import (
	"context"
	"errors"
	"log/slog"

	"github.com/asistencia-qr/attendance-backend-go/internal/domain/company"
	"github.com/asistencia-qr/attendance-backend-go/internal/domain/schedule"
	"github.com/asistencia-qr/attendance-backend-go/internal/pkg/database"
	"github.com/asistencia-qr/attendance-backend-go/internal/repository/postgresql"
	scheduleservice "github.com/asistencia-qr/attendance-backend-go/internal/service/schedule"
)

type CompanyServiceImpl struct {
	db           *database.DB
	companyRepo  company.CompanyRepository
	scheduleRepo schedule.ScheduleRepository
	scheduleSvc  *scheduleservice.ScheduleServiceImpl
}

func NewCompanyService(
	db *database.DB,
	companyRepo company.CompanyRepository,
	scheduleRepo schedule.ScheduleRepository,
	scheduleSvc *scheduleservice.ScheduleServiceImpl,
) company.CompanyService {
	return &CompanyServiceImpl{
		db:           db,
		companyRepo:  companyRepo,
		scheduleRepo: scheduleRepo,
		scheduleSvc:  scheduleSvc,
	}
}

// List implements company.CompanyService.
func (s *CompanyServiceImpl) List(ctx context.Context) ([]company.CompanyResponse, error) {
	companies, err := s.companyRepo.ListWithEmployeeCount(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]company.CompanyResponse, 0, len(companies))
	for _, co := range companies {
		responses = append(responses, company.NewCompanyResponse(co))
	}
	return responses, nil
}

// Get implements company.CompanyService.
func (s *CompanyServiceImpl) Get(ctx context.Context, id string) (company.CompanyResponse, error) {
	co, err := s.companyRepo.GetByID(ctx, id)
	if err != nil {
		return company.CompanyResponse{}, err
	}
	return company.NewCompanyResponse(co), nil
}

// Create implements company.CompanyService. The company and its default
// schedule row are created in one transaction.
func (s *CompanyServiceImpl) Create(ctx context.Context, req company.CreateCompanyRequest) (company.CompanyResponse, error) {
	if err := req.Validate(); err != nil {
		return company.CompanyResponse{}, err
	}

	if _, err := s.companyRepo.GetByCode(ctx, req.Code); err == nil {
		return company.CompanyResponse{}, company.ErrCodeExists
	} else if !errors.Is(err, company.ErrCompanyNotFound) {
		return company.CompanyResponse{}, err
	}

	var created company.Company
	err := postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		var err error
		created, err = s.companyRepo.Create(txCtx, company.Company{
			Name: req.Name,
			Code: req.Code,
		})
		if err != nil {
			return err
		}

		_, err = s.scheduleRepo.Create(txCtx, s.scheduleSvc.DefaultSchedule(created.ID))
		return err
	})
	if err != nil {
		return company.CompanyResponse{}, err
	}

	slog.Info("Company created", "company_id", created.ID, "code", created.Code)
	return company.NewCompanyResponse(created), nil
}

// Update implements company.CompanyService.
func (s *CompanyServiceImpl) Update(ctx context.Context, req company.UpdateCompanyRequest) (company.CompanyResponse, error) {
	if err := req.Validate(); err != nil {
		return company.CompanyResponse{}, err
	}

	co, err := s.companyRepo.GetByID(ctx, req.ID)
	if err != nil {
		return company.CompanyResponse{}, err
	}

	if req.Name != nil {
		co.Name = *req.Name
	}
	if req.Code != nil && *req.Code != co.Code {
		if _, err := s.companyRepo.GetByCode(ctx, *req.Code); err == nil {
			return company.CompanyResponse{}, company.ErrCodeExists
		} else if !errors.Is(err, company.ErrCompanyNotFound) {
			return company.CompanyResponse{}, err
		}
		co.Code = *req.Code
	}

	if err := s.companyRepo.Update(ctx, co); err != nil {
		return company.CompanyResponse{}, err
	}
	return company.NewCompanyResponse(co), nil
}

// Delete implements company.CompanyService.
func (s *CompanyServiceImpl) Delete(ctx context.Context, id string) error {
	return s.companyRepo.Delete(ctx, id)
}
