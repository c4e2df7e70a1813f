package rates_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/Diome1804/Gestion-Salaire-sub000/internal/company"
	"github.com/Diome1804/Gestion-Salaire-sub000/internal/domain"
	"github.com/Diome1804/Gestion-Salaire-sub000/internal/employee"
	employeeerrors "github.com/Diome1804/Gestion-Salaire-sub000/internal/employee/errors"
	"github.com/Diome1804/Gestion-Salaire-sub000/internal/rates"
	rateserrors "github.com/Diome1804/Gestion-Salaire-sub000/internal/rates/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeEmployeeRepository struct {
	findByIDFn           func(ctx context.Context, id string) (*employee.Employee, error)
	findByIDAndCompanyFn func(ctx context.Context, companyID, id string) (*employee.Employee, error)
	findAllByCompanyFn   func(ctx context.Context, companyID string) ([]employee.Employee, error)
	updateRatesFn        func(ctx context.Context, id string, fields map[string]any) error
}

func (f *fakeEmployeeRepository) WithTx(tx *sql.Tx) employee.Repository { return f }

func (f *fakeEmployeeRepository) Create(ctx context.Context, e *employee.Employee) error { return nil }

func (f *fakeEmployeeRepository) FindAllByCompany(ctx context.Context, companyID string) ([]employee.Employee, error) {
	if f.findAllByCompanyFn != nil {
		return f.findAllByCompanyFn(ctx, companyID)
	}
	return nil, nil
}

func (f *fakeEmployeeRepository) FindActiveByCompany(ctx context.Context, companyID string) ([]employee.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeRepository) FindByID(ctx context.Context, id string) (*employee.Employee, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return &employee.Employee{}, nil
}

func (f *fakeEmployeeRepository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*employee.Employee, error) {
	if f.findByIDAndCompanyFn != nil {
		return f.findByIDAndCompanyFn(ctx, companyID, id)
	}
	return &employee.Employee{}, nil
}

func (f *fakeEmployeeRepository) Update(ctx context.Context, e *employee.Employee) error { return nil }

func (f *fakeEmployeeRepository) UpdateRates(ctx context.Context, id string, fields map[string]any) error {
	if f.updateRatesFn != nil {
		return f.updateRatesFn(ctx, id, fields)
	}
	return nil
}

func (f *fakeEmployeeRepository) SetActive(ctx context.Context, companyID, id string, active bool) error {
	return nil
}

func (f *fakeEmployeeRepository) HardDelete(ctx context.Context, id string) error { return nil }

type fakeCompanyRepository struct {
	findByIDFn    func(ctx context.Context, id string) (*company.Company, error)
	updateRatesFn func(ctx context.Context, id string, fields map[string]any) error
}

func (f *fakeCompanyRepository) WithTx(tx *sql.Tx) company.Repository { return f }

func (f *fakeCompanyRepository) Create(ctx context.Context, c *company.Company) error { return nil }

func (f *fakeCompanyRepository) FindAll(ctx context.Context) ([]company.Company, error) {
	return nil, nil
}

func (f *fakeCompanyRepository) FindByID(ctx context.Context, id string) (*company.Company, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return &company.Company{}, nil
}

func (f *fakeCompanyRepository) Update(ctx context.Context, c *company.Company) error { return nil }

func (f *fakeCompanyRepository) UpdateRates(ctx context.Context, id string, fields map[string]any) error {
	if f.updateRatesFn != nil {
		return f.updateRatesFn(ctx, id, fields)
	}
	return nil
}

func (f *fakeCompanyRepository) Delete(ctx context.Context, id string) error { return nil }

func int64Ptr(v int64) *int64 { return &v }

func TestRatesService_EffectiveRates(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()
	employeeID := uuid.New()

	comp := &company.Company{
		ID: companyID, HourlyRate: 1_500, DailyRate: 10_000, OvertimeRate: 2_000,
	}
	companyRepo := &fakeCompanyRepository{
		findByIDFn: func(ctx context.Context, id string) (*company.Company, error) {
			return comp, nil
		},
	}

	t.Run("no overrides fall back to company defaults", func(t *testing.T) {
		employeeRepo := &fakeEmployeeRepository{
			findByIDFn: func(ctx context.Context, id string) (*employee.Employee, error) {
				return &employee.Employee{ID: employeeID, CompanyID: companyID}, nil
			},
		}
		svc := rates.NewService(employeeRepo, companyRepo, nil)

		got, err := svc.EffectiveRates(ctx, employeeID.String())

		assert.NoError(t, err)
		assert.Equal(t, rates.EffectiveRates{HourlyRate: 1_500, DailyRate: 10_000, OvertimeRate: 2_000}, got)
	})

	t.Run("a zero override is an override, not a fallback", func(t *testing.T) {
		employeeRepo := &fakeEmployeeRepository{
			findByIDFn: func(ctx context.Context, id string) (*employee.Employee, error) {
				return &employee.Employee{
					ID: employeeID, CompanyID: companyID,
					CustomDailyRate:  int64Ptr(0),
					CustomHourlyRate: int64Ptr(2_500),
				}, nil
			},
		}
		svc := rates.NewService(employeeRepo, companyRepo, nil)

		got, err := svc.EffectiveRates(ctx, employeeID.String())

		assert.NoError(t, err)
		assert.Equal(t, int64(0), got.DailyRate)
		assert.Equal(t, int64(2_500), got.HourlyRate)
		assert.Equal(t, int64(2_000), got.OvertimeRate)
	})

	t.Run("unknown employee", func(t *testing.T) {
		employeeRepo := &fakeEmployeeRepository{
			findByIDFn: func(ctx context.Context, id string) (*employee.Employee, error) {
				return nil, gorm.ErrRecordNotFound
			},
		}
		svc := rates.NewService(employeeRepo, companyRepo, nil)

		_, err := svc.EffectiveRates(ctx, employeeID.String())
		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})
}

func TestRatesService_UpdateCompanyRates(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()
	admin := domain.Actor{ID: uuid.New().String(), Role: domain.RoleAdmin, CompanyID: companyID.String()}

	t.Run("only supplied columns are written", func(t *testing.T) {
		var gotFields map[string]any
		companyRepo := &fakeCompanyRepository{
			updateRatesFn: func(ctx context.Context, id string, fields map[string]any) error {
				gotFields = fields
				return nil
			},
		}
		svc := rates.NewService(&fakeEmployeeRepository{}, companyRepo, nil)

		err := svc.UpdateCompanyRates(ctx, admin, companyID.String(), rates.UpdateRatesRequest{
			DailyRate: int64Ptr(12_000),
		})

		assert.NoError(t, err)
		assert.Equal(t, map[string]any{"daily_rate": int64(12_000)}, gotFields)
	})

	t.Run("negative rate is rejected", func(t *testing.T) {
		svc := rates.NewService(&fakeEmployeeRepository{}, &fakeCompanyRepository{}, nil)

		err := svc.UpdateCompanyRates(ctx, admin, companyID.String(), rates.UpdateRatesRequest{
			HourlyRate: int64Ptr(-1),
		})

		assert.ErrorIs(t, err, rateserrors.ErrNegativeRate)
	})

	t.Run("other company is off limits", func(t *testing.T) {
		svc := rates.NewService(&fakeEmployeeRepository{}, &fakeCompanyRepository{}, nil)

		err := svc.UpdateCompanyRates(ctx, admin, uuid.New().String(), rates.UpdateRatesRequest{
			DailyRate: int64Ptr(12_000),
		})

		assert.ErrorIs(t, err, rateserrors.ErrRatesAccessDenied)
	})
}

func TestRatesService_UpdateEmployeeRates(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()
	employeeID := uuid.New()
	admin := domain.Actor{ID: uuid.New().String(), Role: domain.RoleAdmin, CompanyID: companyID.String()}

	t.Run("override columns are written", func(t *testing.T) {
		var gotFields map[string]any
		employeeRepo := &fakeEmployeeRepository{
			updateRatesFn: func(ctx context.Context, id string, fields map[string]any) error {
				gotFields = fields
				return nil
			},
		}
		svc := rates.NewService(employeeRepo, &fakeCompanyRepository{}, nil)

		err := svc.UpdateEmployeeRates(ctx, admin, companyID.String(), employeeID.String(), rates.UpdateRatesRequest{
			DailyRate:    int64Ptr(15_000),
			OvertimeRate: int64Ptr(3_000),
		})

		assert.NoError(t, err)
		assert.Equal(t, map[string]any{
			"custom_daily_rate":    int64(15_000),
			"custom_overtime_rate": int64(3_000),
		}, gotFields)
	})

	t.Run("employee outside the company", func(t *testing.T) {
		employeeRepo := &fakeEmployeeRepository{
			findByIDAndCompanyFn: func(ctx context.Context, cID, id string) (*employee.Employee, error) {
				return nil, gorm.ErrRecordNotFound
			},
		}
		svc := rates.NewService(employeeRepo, &fakeCompanyRepository{}, nil)

		err := svc.UpdateEmployeeRates(ctx, admin, companyID.String(), employeeID.String(), rates.UpdateRatesRequest{
			DailyRate: int64Ptr(15_000),
		})

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})

	t.Run("empty request is a no-op", func(t *testing.T) {
		called := false
		employeeRepo := &fakeEmployeeRepository{
			updateRatesFn: func(ctx context.Context, id string, fields map[string]any) error {
				called = true
				return nil
			},
		}
		svc := rates.NewService(employeeRepo, &fakeCompanyRepository{}, nil)

		err := svc.UpdateEmployeeRates(ctx, admin, companyID.String(), employeeID.String(), rates.UpdateRatesRequest{})

		assert.NoError(t, err)
		assert.False(t, called)
	})
}
