package employee

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/asistencia-qr/attendance-backend-go/internal/domain/attendance"
	"github.com/asistencia-qr/attendance-backend-go/internal/domain/company"
	"github.com/asistencia-qr/attendance-backend-go/internal/domain/employee"
	"github.com/asistencia-qr/attendance-backend-go/internal/pkg/database"
	"github.com/asistencia-qr/attendance-backend-go/internal/pkg/qr"
	"github.com/asistencia-qr/attendance-backend-go/internal/repository/postgresql"
)

type EmployeeServiceImpl struct {
	db           *database.DB
	employeeRepo employee.EmployeeRepository
	companyRepo  company.CompanyRepository
	scanRepo     attendance.ScanTrackingRepository
	qrGen        qr.Generator
}

func NewEmployeeService(
	db *database.DB,
	employeeRepo employee.EmployeeRepository,
	companyRepo company.CompanyRepository,
	scanRepo attendance.ScanTrackingRepository,
	qrGen qr.Generator,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		db:           db,
		employeeRepo: employeeRepo,
		companyRepo:  companyRepo,
		scanRepo:     scanRepo,
		qrGen:        qrGen,
	}
}

// mintQRToken builds the permanent scan credential. The embedded id lets the
// scan flow recover the employee even if the token row is ever re-issued.
func mintQRToken(companyCode, employeeID string) string {
	return fmt.Sprintf("EMP_%s_%s_%d", companyCode, employeeID, time.Now().Unix())
}

// Register implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Register(ctx context.Context, req employee.RegisterEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	co, err := s.companyRepo.GetByID(ctx, req.CompanyID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	id := uuid.NewString()
	newEmployee := employee.Employee{
		ID:        id,
		CompanyID: co.ID,
		FullName:  req.FullName,
		DNI:       req.DNI,
		QRToken:   mintQRToken(co.Code, id),
		Phone:     req.Phone,
		Email:     req.Email,
		Active:    true,
	}

	created, err := s.employeeRepo.Create(ctx, newEmployee)
	if err != nil {
		return employee.EmployeeResponse{}, classifyDNIError(err)
	}
	created.CompanyName = &co.Name
	created.CompanyCode = &co.Code

	slog.Info("Employee registered", "employee_id", created.ID, "company_id", co.ID)
	return employee.NewEmployeeResponse(created), nil
}

// classifyDNIError surfaces the unique-DNI violation as a domain error.
func classifyDNIError(err error) error {
	if err != nil && postgresql.IsUniqueViolation(err) {
		return employee.ErrDNIExists
	}
	return err
}

// Get implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.NewEmployeeResponse(emp), nil
}

// ListByCompany implements employee.EmployeeService. An empty companyID lists
// every employee across companies.
func (s *EmployeeServiceImpl) ListByCompany(ctx context.Context, companyID string) ([]employee.EmployeeResponse, error) {
	var (
		employees []employee.Employee
		err       error
	)
	if companyID == "" {
		employees, err = s.employeeRepo.GetAll(ctx)
	} else {
		employees, err = s.employeeRepo.GetByCompanyID(ctx, companyID)
	}
	if err != nil {
		return nil, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, employee.NewEmployeeResponse(emp))
	}
	return responses, nil
}

// Update implements employee.EmployeeService. The QR token never changes on
// update; it is minted once at registration.
func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.FullName != nil {
		emp.FullName = *req.FullName
	}
	if req.DNI != nil {
		emp.DNI = *req.DNI
	}
	if req.Phone != nil {
		emp.Phone = *req.Phone
	}
	if req.Email != nil {
		emp.Email = *req.Email
	}

	if err := s.employeeRepo.Update(ctx, emp); err != nil {
		return employee.EmployeeResponse{}, classifyDNIError(err)
	}
	return employee.NewEmployeeResponse(emp), nil
}

// ToggleActive implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ToggleActive(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp.Active = !emp.Active
	if err := s.employeeRepo.Update(ctx, emp); err != nil {
		return employee.EmployeeResponse{}, err
	}

	slog.Info("Employee active flag toggled", "employee_id", id, "active", emp.Active)
	return employee.NewEmployeeResponse(emp), nil
}

// Delete implements employee.EmployeeService. Scan tracking rows and
// attendance records go first, then the employee, all in one transaction.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	return postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if err := s.scanRepo.DeleteByToken(txCtx, emp.QRToken); err != nil {
			return err
		}
		if err := postgresql.DeleteAttendancesByEmployee(txCtx, s.db, emp.ID); err != nil {
			return err
		}
		if err := s.employeeRepo.Delete(txCtx, emp.ID); err != nil {
			return err
		}
		slog.Info("Employee deleted", "employee_id", emp.ID)
		return nil
	})
}

// QRImagePNG implements employee.EmployeeService.
func (s *EmployeeServiceImpl) QRImagePNG(ctx context.Context, id string) ([]byte, string, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, "", err
	}

	png, err := s.qrGen.PNG(emp.QRToken)
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("qr_%s.png", emp.DNI)
	return png, filename, nil
}

// QRImageBase64 implements employee.EmployeeService.
func (s *EmployeeServiceImpl) QRImageBase64(ctx context.Context, id string) (employee.QRImageResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.QRImageResponse{}, err
	}

	uri, err := s.qrGen.DataURI(emp.QRToken)
	if err != nil {
		return employee.QRImageResponse{}, err
	}

	return employee.QRImageResponse{
		EmployeeID:   emp.ID,
		QRToken:      emp.QRToken,
		ImageDataURI: uri,
	}, nil
}
