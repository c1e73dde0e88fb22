package schedule

import (
	"context"
	"errors"

	"github.com/asistencia-qr/attendance-backend-go/internal/domain/company"
	"github.com/asistencia-qr/attendance-backend-go/internal/domain/schedule"
	"github.com/asistencia-qr/attendance-backend-go/internal/pkg/validator"
)

// Default shift ends, used when a company has no schedule row. The entry
// minutes come from configuration; the exits only document the expected day
// shape and never drive the rules.
const (
	defaultMorningOutMinute   = 13 * 60 // 13:00
	defaultAfternoonOutMinute = 19 * 60 // 19:00
)

type ScheduleServiceImpl struct {
	scheduleRepo schedule.ScheduleRepository
	companyRepo  company.CompanyRepository
	defaults     schedule.Thresholds
}

func NewScheduleService(
	scheduleRepo schedule.ScheduleRepository,
	companyRepo company.CompanyRepository,
	defaults schedule.Thresholds,
) *ScheduleServiceImpl {
	return &ScheduleServiceImpl{
		scheduleRepo: scheduleRepo,
		companyRepo:  companyRepo,
		defaults:     defaults,
	}
}

// Thresholds implements schedule.ThresholdResolver. A company with a schedule
// row is judged against its own entry times; everyone else gets the
// configured defaults.
func (s *ScheduleServiceImpl) Thresholds(ctx context.Context, companyID string) (schedule.Thresholds, error) {
	row, err := s.scheduleRepo.GetByCompanyID(ctx, companyID)
	if err != nil {
		if errors.Is(err, schedule.ErrScheduleNotFound) {
			return s.defaults, nil
		}
		return schedule.Thresholds{}, err
	}
	return schedule.Thresholds{
		MorningLateMinute:   row.MorningInMinute,
		AfternoonLateMinute: row.AfternoonInMinute,
	}, nil
}

// DefaultSchedule is the schedule row seeded for a new company.
func (s *ScheduleServiceImpl) DefaultSchedule(companyID string) schedule.StandardSchedule {
	return schedule.StandardSchedule{
		CompanyID:          companyID,
		MorningInMinute:    s.defaults.MorningLateMinute,
		MorningOutMinute:   defaultMorningOutMinute,
		AfternoonInMinute:  s.defaults.AfternoonLateMinute,
		AfternoonOutMinute: defaultAfternoonOutMinute,
	}
}

// Get implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) Get(ctx context.Context, companyID string) (schedule.ScheduleResponse, error) {
	if _, err := s.companyRepo.GetByID(ctx, companyID); err != nil {
		return schedule.ScheduleResponse{}, err
	}

	row, err := s.scheduleRepo.GetByCompanyID(ctx, companyID)
	if err != nil {
		if errors.Is(err, schedule.ErrScheduleNotFound) {
			return schedule.NewScheduleResponse(s.DefaultSchedule(companyID)), nil
		}
		return schedule.ScheduleResponse{}, err
	}
	return schedule.NewScheduleResponse(row), nil
}

// Update implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) Update(ctx context.Context, req schedule.UpdateScheduleRequest) (schedule.ScheduleResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.ScheduleResponse{}, err
	}
	if _, err := s.companyRepo.GetByID(ctx, req.CompanyID); err != nil {
		return schedule.ScheduleResponse{}, err
	}

	morningIn, _ := validator.ParseMinuteOfDay(req.MorningIn)
	morningOut, _ := validator.ParseMinuteOfDay(req.MorningOut)
	afternoonIn, _ := validator.ParseMinuteOfDay(req.AfternoonIn)
	afternoonOut, _ := validator.ParseMinuteOfDay(req.AfternoonOut)

	row := schedule.StandardSchedule{
		CompanyID:          req.CompanyID,
		MorningInMinute:    morningIn,
		MorningOutMinute:   morningOut,
		AfternoonInMinute:  afternoonIn,
		AfternoonOutMinute: afternoonOut,
	}

	err := s.scheduleRepo.Update(ctx, row)
	if errors.Is(err, schedule.ErrScheduleNotFound) {
		row, err = s.scheduleRepo.Create(ctx, row)
	}
	if err != nil {
		return schedule.ScheduleResponse{}, err
	}
	return schedule.NewScheduleResponse(row), nil
}
