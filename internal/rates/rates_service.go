package rates

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Diome1804/Gestion-Salaire-sub000/internal/company"
	"github.com/Diome1804/Gestion-Salaire-sub000/internal/domain"
	"github.com/Diome1804/Gestion-Salaire-sub000/internal/employee"
	rateserrors "github.com/Diome1804/Gestion-Salaire-sub000/internal/rates/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const ratesKeyPrefix = "rates:effective:"

type Service interface {
	EffectiveRates(ctx context.Context, employeeID string) (EffectiveRates, error)
	EffectiveRatesFor(ctx context.Context, actor domain.Actor, companyID, employeeID string) (EffectiveRates, error)
	UpdateCompanyRates(ctx context.Context, actor domain.Actor, companyID string, req UpdateRatesRequest) error
	UpdateEmployeeRates(ctx context.Context, actor domain.Actor, companyID, employeeID string, req UpdateRatesRequest) error
}

type service struct {
	employeeRepo employee.Repository
	companyRepo  company.Repository
	rdb          *redis.Client
	sf           *singleflight.Group
	logger       *zap.Logger
}

func NewService(
	employeeRepo employee.Repository,
	companyRepo company.Repository,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("rates.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rates.service")
	}
	return &service{
		employeeRepo: employeeRepo,
		companyRepo:  companyRepo,
		rdb:          rdb,
		sf:           &singleflight.Group{},
		logger:       l,
	}
}

// EffectiveRates resolves the rate sheet applied to one employee: the
// per-employee override when set, else the company default. A stored
// zero override counts as set; only nil falls back.
func (s *service) EffectiveRates(ctx context.Context, employeeID string) (EffectiveRates, error) {
	cacheKey := ratesKeyPrefix + employeeID

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var rates EffectiveRates
			if json.Unmarshal([]byte(cached), &rates) == nil {
				return rates, nil
			}
		}
	}

	// Bulk payslip generation resolves many employees at once;
	// singleflight collapses concurrent lookups for the same employee.
	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		rates, err := s.resolve(ctx, employeeID)
		if err != nil {
			return EffectiveRates{}, err
		}

		if s.rdb != nil {
			if payload, err := json.Marshal(rates); err == nil {
				s.rdb.Set(ctx, cacheKey, payload, 10*time.Minute)
			}
		}

		return rates, nil
	})
	if err != nil {
		return EffectiveRates{}, err
	}

	return v.(EffectiveRates), nil
}

func (s *service) resolve(ctx context.Context, employeeID string) (EffectiveRates, error) {
	emp, err := s.employeeRepo.FindByID(ctx, employeeID)
	if err != nil {
		return EffectiveRates{}, mapEmployeeError(err)
	}

	comp, err := s.companyRepo.FindByID(ctx, emp.CompanyID.String())
	if err != nil {
		return EffectiveRates{}, mapCompanyError(err)
	}

	return EffectiveRates{
		HourlyRate:   pickRate(emp.CustomHourlyRate, comp.HourlyRate),
		DailyRate:    pickRate(emp.CustomDailyRate, comp.DailyRate),
		OvertimeRate: pickRate(emp.CustomOvertimeRate, comp.OvertimeRate),
	}, nil
}

func pickRate(override *int64, fallback int64) int64 {
	if override != nil {
		return *override
	}
	return fallback
}

func (s *service) EffectiveRatesFor(
	ctx context.Context,
	actor domain.Actor,
	companyID, employeeID string,
) (EffectiveRates, error) {
	if !domain.CanAccessCompany(actor, companyID) {
		return EffectiveRates{}, rateserrors.ErrRatesAccessDenied
	}

	if _, err := s.employeeRepo.FindByIDAndCompany(ctx, companyID, employeeID); err != nil {
		return EffectiveRates{}, mapEmployeeError(err)
	}

	return s.EffectiveRates(ctx, employeeID)
}

func (s *service) UpdateCompanyRates(
	ctx context.Context,
	actor domain.Actor,
	companyID string,
	req UpdateRatesRequest,
) error {
	if !domain.CanAccessCompany(actor, companyID) {
		return rateserrors.ErrRatesAccessDenied
	}
	if err := validateRates(req); err != nil {
		return err
	}
	if req.empty() {
		return nil
	}

	if _, err := s.companyRepo.FindByID(ctx, companyID); err != nil {
		return mapCompanyError(err)
	}

	fields := map[string]any{}
	if req.HourlyRate != nil {
		fields["hourly_rate"] = *req.HourlyRate
	}
	if req.DailyRate != nil {
		fields["daily_rate"] = *req.DailyRate
	}
	if req.OvertimeRate != nil {
		fields["overtime_rate"] = *req.OvertimeRate
	}

	if err := s.companyRepo.UpdateRates(ctx, companyID, fields); err != nil {
		return err
	}

	// Company defaults feed every employee's effective sheet; drop the
	// whole cache rather than tracking membership.
	s.invalidateCompany(ctx, companyID)

	s.logger.Info("company rates updated", zap.String("company_id", companyID))
	return nil
}

func (s *service) UpdateEmployeeRates(
	ctx context.Context,
	actor domain.Actor,
	companyID, employeeID string,
	req UpdateRatesRequest,
) error {
	if !domain.CanAccessCompany(actor, companyID) {
		return rateserrors.ErrRatesAccessDenied
	}
	if err := validateRates(req); err != nil {
		return err
	}
	if req.empty() {
		return nil
	}

	if _, err := s.employeeRepo.FindByIDAndCompany(ctx, companyID, employeeID); err != nil {
		return mapEmployeeError(err)
	}

	fields := map[string]any{}
	if req.HourlyRate != nil {
		fields["custom_hourly_rate"] = *req.HourlyRate
	}
	if req.DailyRate != nil {
		fields["custom_daily_rate"] = *req.DailyRate
	}
	if req.OvertimeRate != nil {
		fields["custom_overtime_rate"] = *req.OvertimeRate
	}

	if err := s.employeeRepo.UpdateRates(ctx, employeeID, fields); err != nil {
		return err
	}

	if s.rdb != nil {
		s.rdb.Del(ctx, ratesKeyPrefix+employeeID)
	}

	s.logger.Info("employee rates updated", zap.String("employee_id", employeeID))
	return nil
}

func (s *service) invalidateCompany(ctx context.Context, companyID string) {
	if s.rdb == nil {
		return
	}

	employees, err := s.employeeRepo.FindAllByCompany(ctx, companyID)
	if err != nil {
		s.logger.Warn("rates cache invalidation skipped", zap.Error(err))
		return
	}
	for _, e := range employees {
		s.rdb.Del(ctx, ratesKeyPrefix+e.ID.String())
	}
}

func validateRates(req UpdateRatesRequest) error {
	for _, v := range []*int64{req.HourlyRate, req.DailyRate, req.OvertimeRate} {
		if v != nil && *v < 0 {
			return rateserrors.ErrNegativeRate
		}
	}
	return nil
}
