package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/asistencia-qr/attendance-backend-go/internal/domain/attendance"
	"github.com/asistencia-qr/attendance-backend-go/internal/domain/employee"
	"github.com/asistencia-qr/attendance-backend-go/internal/domain/schedule"
	"github.com/asistencia-qr/attendance-backend-go/internal/pkg/database"
	"github.com/asistencia-qr/attendance-backend-go/internal/repository/postgresql"
)

type AttendanceServiceImpl struct {
	db             *database.DB
	attendanceRepo attendance.AttendanceRepository
	scanRepo       attendance.ScanTrackingRepository
	employeeRepo   employee.EmployeeRepository
	thresholds     schedule.ThresholdResolver
	resolver       *SlotResolver

	scanCooldown time.Duration
	loc          *time.Location
	now          func() time.Time
}

func NewAttendanceService(
	db *database.DB,
	attendanceRepo attendance.AttendanceRepository,
	scanRepo attendance.ScanTrackingRepository,
	employeeRepo employee.EmployeeRepository,
	thresholds schedule.ThresholdResolver,
	resolver *SlotResolver,
	scanCooldown time.Duration,
	loc *time.Location,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:             db,
		attendanceRepo: attendanceRepo,
		scanRepo:       scanRepo,
		employeeRepo:   employeeRepo,
		thresholds:     thresholds,
		resolver:       resolver,
		scanCooldown:   scanCooldown,
		loc:            loc,
		now:            time.Now,
	}
}

// ProcessScan implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ProcessScan(ctx context.Context, req attendance.ScanRequest) (attendance.ScanResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.ScanResponse{}, err
	}

	recent, err := s.scanRepo.HasRecentScan(ctx, req.QRToken, s.scanCooldown)
	if err != nil {
		return attendance.ScanResponse{}, err
	}
	if recent {
		return attendance.ScanResponse{
			Status:  attendance.ScanStatusDuplicate,
			Message: "Escaneo duplicado. Espera unos segundos e intenta de nuevo.",
			Updated: false,
		}, nil
	}

	if err := s.scanRepo.Create(ctx, req.QRToken, req.IPAddress); err != nil {
		return attendance.ScanResponse{}, err
	}

	emp, err := s.resolveEmployee(ctx, req.QRToken)
	if err != nil {
		return attendance.ScanResponse{}, err
	}
	if !emp.Active {
		return attendance.ScanResponse{}, attendance.ErrEmployeeInactive
	}

	scannedAt := s.now().In(s.loc)
	today := time.Date(scannedAt.Year(), scannedAt.Month(), scannedAt.Day(), 0, 0, 0, 0, time.UTC)

	var resp attendance.ScanResponse
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		record, err := s.attendanceRepo.GetByEmployeeAndDateForUpdate(txCtx, emp.ID, today)
		if err != nil {
			return err
		}

		isNew := record == nil
		if isNew {
			record = &attendance.Attendance{
				EmployeeID: emp.ID,
				CompanyID:  emp.CompanyID,
				Date:       today,
				DayStatus:  attendance.DayAbsent,
			}
		}

		decision := s.resolver.Resolve(record, scannedAt)
		if !decision.Accepted {
			resp = attendance.ScanResponse{
				Status:  attendance.ScanStatusSuccess,
				Message: decision.Reason,
				Updated: false,
				Data:    s.scanData(*emp, *record),
			}
			return nil
		}

		Apply(record, decision.Slot, scannedAt)

		th, err := s.thresholds.Thresholds(txCtx, emp.CompanyID)
		if err != nil {
			return err
		}
		Recompute(record, th)

		if isNew {
			created, err := s.attendanceRepo.Create(txCtx, *record)
			if err != nil {
				return err
			}
			record = &created
		} else if err := s.attendanceRepo.Update(txCtx, *record); err != nil {
			return err
		}

		slog.Info("Scan accepted",
			"employee_id", emp.ID,
			"slot", string(decision.Slot),
			"date", today.Format("2006-01-02"),
		)

		resp = attendance.ScanResponse{
			Status:  attendance.ScanStatusSuccess,
			Message: scanMessage(decision.Slot, emp.FullName),
			Updated: true,
			Data:    s.scanData(*emp, *record),
		}
		return nil
	})
	if err != nil {
		return attendance.ScanResponse{}, err
	}
	return resp, nil
}

// resolveEmployee looks the token up directly, then falls back to parsing the
// embedded employee id for tokens whose row was re-minted.
func (s *AttendanceServiceImpl) resolveEmployee(ctx context.Context, token string) (*employee.Employee, error) {
	emp, err := s.employeeRepo.GetByQRToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if emp != nil {
		return emp, nil
	}

	if parts := strings.Split(token, "_"); len(parts) >= 4 && parts[0] == "EMP" {
		found, err := s.employeeRepo.GetByID(ctx, parts[2])
		if err == nil {
			return &found, nil
		}
	}
	return nil, attendance.ErrEmployeeNotFound
}

func (s *AttendanceServiceImpl) scanData(emp employee.Employee, record attendance.Attendance) *attendance.ScanResponseData {
	return &attendance.ScanResponseData{
		Employee: attendance.ScanEmployee{
			ID:   emp.ID,
			Name: emp.FullName,
		},
		Attendance: attendance.NewAttendanceResponse(record),
	}
}

func scanMessage(slot attendance.Slot, name string) string {
	switch slot {
	case attendance.SlotMorningIn:
		return fmt.Sprintf("Entrada de la mañana registrada. ¡Buenos días, %s!", name)
	case attendance.SlotMorningOut:
		return fmt.Sprintf("Salida de la mañana registrada. ¡Buen provecho, %s!", name)
	case attendance.SlotAfternoonIn:
		return fmt.Sprintf("Entrada de la tarde registrada. ¡Buenas tardes, %s!", name)
	default:
		return fmt.Sprintf("Salida de la tarde registrada. ¡Hasta mañana, %s!", name)
	}
}

// GetAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetAttendance(ctx context.Context, id string, companyID string) (attendance.AttendanceResponse, error) {
	record, err := s.attendanceRepo.GetByID(ctx, id, companyID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	return attendance.NewAttendanceResponse(record), nil
}

// ListAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListAttendance(ctx context.Context, filter attendance.Filter, companyID string) (attendance.ListAttendanceResponse, error) {
	records, total, err := s.attendanceRepo.List(ctx, filter, companyID)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	items := make([]attendance.AttendanceResponse, 0, len(records))
	for _, record := range records {
		items = append(items, attendance.NewAttendanceResponse(record))
	}
	return attendance.ListAttendanceResponse{Items: items, Total: total}, nil
}

// UpdateSlots implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) UpdateSlots(ctx context.Context, req attendance.UpdateSlotsRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	var updated attendance.Attendance
	err := postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		record, err := s.attendanceRepo.GetByID(txCtx, req.ID, req.CompanyID)
		if err != nil {
			return err
		}

		applySlotEdit(&record.MorningIn, req.MorningIn, record.Date, s.loc)
		applySlotEdit(&record.MorningOut, req.MorningOut, record.Date, s.loc)
		applySlotEdit(&record.AfternoonIn, req.AfternoonIn, record.Date, s.loc)
		applySlotEdit(&record.AfternoonOut, req.AfternoonOut, record.Date, s.loc)

		th, err := s.thresholds.Thresholds(txCtx, record.CompanyID)
		if err != nil {
			return err
		}
		Recompute(&record, th)

		if err := s.attendanceRepo.Update(txCtx, record); err != nil {
			return err
		}
		updated = record
		return nil
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	return attendance.NewAttendanceResponse(updated), nil
}

// applySlotEdit overwrites one slot from its "HH:MM:SS" form. A nil value
// leaves the slot alone; an empty string clears it. Values were validated
// upstream, so the parse cannot fail here.
func applySlotEdit(slot **time.Time, value *string, date time.Time, loc *time.Location) {
	if value == nil {
		return
	}
	if *value == "" {
		*slot = nil
		return
	}
	clock, _ := time.Parse("15:04:05", *value)
	t := time.Date(date.Year(), date.Month(), date.Day(),
		clock.Hour(), clock.Minute(), clock.Second(), 0, loc)
	*slot = &t
}

// DeleteAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) DeleteAttendance(ctx context.Context, id string, companyID string) error {
	return s.attendanceRepo.Delete(ctx, id, companyID)
}
