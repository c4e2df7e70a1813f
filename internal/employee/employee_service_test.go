package employee_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/Diome1804/Gestion-Salaire-sub000/internal/domain"
	"github.com/Diome1804/Gestion-Salaire-sub000/internal/employee"
	employeeerrors "github.com/Diome1804/Gestion-Salaire-sub000/internal/employee/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeEmployeeRepository struct {
	createFn             func(ctx context.Context, e *employee.Employee) error
	findAllByCompanyFn   func(ctx context.Context, companyID string) ([]employee.Employee, error)
	findActiveByCompany  func(ctx context.Context, companyID string) ([]employee.Employee, error)
	findByIDFn           func(ctx context.Context, id string) (*employee.Employee, error)
	findByIDAndCompanyFn func(ctx context.Context, companyID, id string) (*employee.Employee, error)
	updateFn             func(ctx context.Context, e *employee.Employee) error
	updateRatesFn        func(ctx context.Context, id string, fields map[string]any) error
	setActiveFn          func(ctx context.Context, companyID, id string, active bool) error
	hardDeleteFn         func(ctx context.Context, id string) error
}

func (f *fakeEmployeeRepository) WithTx(tx *sql.Tx) employee.Repository { return f }

func (f *fakeEmployeeRepository) Create(ctx context.Context, e *employee.Employee) error {
	if f.createFn != nil {
		return f.createFn(ctx, e)
	}
	return nil
}

func (f *fakeEmployeeRepository) FindAllByCompany(ctx context.Context, companyID string) ([]employee.Employee, error) {
	if f.findAllByCompanyFn != nil {
		return f.findAllByCompanyFn(ctx, companyID)
	}
	return nil, nil
}

func (f *fakeEmployeeRepository) FindActiveByCompany(ctx context.Context, companyID string) ([]employee.Employee, error) {
	if f.findActiveByCompany != nil {
		return f.findActiveByCompany(ctx, companyID)
	}
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

func (f *fakeEmployeeRepository) Update(ctx context.Context, e *employee.Employee) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, e)
	}
	return nil
}

func (f *fakeEmployeeRepository) UpdateRates(ctx context.Context, id string, fields map[string]any) error {
	if f.updateRatesFn != nil {
		return f.updateRatesFn(ctx, id, fields)
	}
	return nil
}

func (f *fakeEmployeeRepository) SetActive(ctx context.Context, companyID, id string, active bool) error {
	if f.setActiveFn != nil {
		return f.setActiveFn(ctx, companyID, id, active)
	}
	return nil
}

func (f *fakeEmployeeRepository) HardDelete(ctx context.Context, id string) error {
	if f.hardDeleteFn != nil {
		return f.hardDeleteFn(ctx, id)
	}
	return nil
}

type employeeServiceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	service employee.Service
	repo    *fakeEmployeeRepository
}

func setupEmployeeServiceTest(t *testing.T) *employeeServiceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	repo := &fakeEmployeeRepository{}
	svc := employee.NewService(db, repo)

	return &employeeServiceDeps{db: db, sqlMock: sqlMock, service: svc, repo: repo}
}

func TestEmployeeService_Create(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()
	admin := domain.Actor{ID: uuid.New().String(), Role: domain.RoleAdmin, CompanyID: companyID.String()}

	t.Run("admin hires into own company", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)
		defer deps.db.Close()

		var created *employee.Employee
		deps.repo.createFn = func(ctx context.Context, e *employee.Employee) error {
			created = e
			return nil
		}

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()

		resp, err := deps.service.Create(ctx, admin, companyID.String(), employee.CreateEmployeeRequest{
			FullName:     "Ibrahima Diop",
			Email:        "ibrahima@acme.sn",
			ContractType: employee.ContractDaily,
			RateOrSalary: 0,
		})

		assert.NoError(t, err)
		assert.Equal(t, employee.ContractDaily, resp.ContractType)
		assert.True(t, resp.IsActive)
		assert.Equal(t, companyID, created.CompanyID)
		assert.Nil(t, created.CustomDailyRate)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("other company is off limits", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.Create(ctx, admin, uuid.New().String(), employee.CreateEmployeeRequest{
			FullName: "Intrus", ContractType: employee.ContractFixed,
		})

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeAccessDenied)
	})
}

func TestEmployeeService_Update(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()
	employeeID := uuid.New()
	admin := domain.Actor{ID: uuid.New().String(), Role: domain.RoleAdmin, CompanyID: companyID.String()}

	t.Run("contract switch is validated", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)
		defer deps.db.Close()

		deps.repo.findByIDAndCompanyFn = func(ctx context.Context, cID, id string) (*employee.Employee, error) {
			return &employee.Employee{
				ID: employeeID, CompanyID: companyID,
				FullName: "Ibrahima Diop", ContractType: employee.ContractDaily, IsActive: true,
			}, nil
		}

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()

		bogus := "STAGIAIRE"
		_, err := deps.service.Update(ctx, admin, companyID.String(), employeeID.String(), employee.UpdateEmployeeRequest{
			ContractType: &bogus,
		})

		assert.ErrorIs(t, err, employeeerrors.ErrInvalidContractType)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("salary change sticks", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)
		defer deps.db.Close()

		deps.repo.findByIDAndCompanyFn = func(ctx context.Context, cID, id string) (*employee.Employee, error) {
			return &employee.Employee{
				ID: employeeID, CompanyID: companyID,
				ContractType: employee.ContractFixed, RateOrSalary: 450_000, IsActive: true,
			}, nil
		}
		var saved *employee.Employee
		deps.repo.updateFn = func(ctx context.Context, e *employee.Employee) error {
			saved = e
			return nil
		}

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()

		raise := int64(500_000)
		resp, err := deps.service.Update(ctx, admin, companyID.String(), employeeID.String(), employee.UpdateEmployeeRequest{
			RateOrSalary: &raise,
		})

		assert.NoError(t, err)
		assert.Equal(t, int64(500_000), resp.RateOrSalary)
		assert.Equal(t, int64(500_000), saved.RateOrSalary)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("unknown employee maps to not found", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)
		defer deps.db.Close()

		deps.repo.findByIDAndCompanyFn = func(ctx context.Context, cID, id string) (*employee.Employee, error) {
			return nil, gorm.ErrRecordNotFound
		}

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()

		name := "Rename"
		_, err := deps.service.Update(ctx, admin, companyID.String(), employeeID.String(), employee.UpdateEmployeeRequest{
			FullName: &name,
		})

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestEmployeeService_ActiveFlag(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()
	employeeID := uuid.New()
	admin := domain.Actor{ID: uuid.New().String(), Role: domain.RoleAdmin, CompanyID: companyID.String()}

	t.Run("deactivate passes the flag down", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)
		defer deps.db.Close()

		var gotActive *bool
		deps.repo.setActiveFn = func(ctx context.Context, cID, id string, active bool) error {
			gotActive = &active
			return nil
		}

		err := deps.service.Deactivate(ctx, admin, companyID.String(), employeeID.String())

		assert.NoError(t, err)
		assert.NotNil(t, gotActive)
		assert.False(t, *gotActive)
	})

	t.Run("activate on a missing row maps to not found", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)
		defer deps.db.Close()

		deps.repo.setActiveFn = func(ctx context.Context, cID, id string, active bool) error {
			return gorm.ErrRecordNotFound
		}

		err := deps.service.Activate(ctx, admin, companyID.String(), employeeID.String())
		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})
}

func TestEmployeeService_HardDelete(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New()

	t.Run("superadmin only", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)
		defer deps.db.Close()

		admin := domain.Actor{ID: uuid.New().String(), Role: domain.RoleAdmin, CompanyID: uuid.New().String()}
		err := deps.service.HardDelete(ctx, admin, employeeID.String())

		assert.ErrorIs(t, err, employeeerrors.ErrHardDeleteRestricted)
	})

	t.Run("superadmin purges the row", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)
		defer deps.db.Close()

		var deleted string
		deps.repo.hardDeleteFn = func(ctx context.Context, id string) error {
			deleted = id
			return nil
		}

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()

		superadmin := domain.Actor{ID: uuid.New().String(), Role: domain.RoleSuperAdmin}
		err := deps.service.HardDelete(ctx, superadmin, employeeID.String())

		assert.NoError(t, err)
		assert.Equal(t, employeeID.String(), deleted)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}
