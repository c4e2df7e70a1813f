package payrun_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"github.com/Diome1804/Gestion-Salaire-sub000/internal/company"
	companyerrors "github.com/Diome1804/Gestion-Salaire-sub000/internal/company/errors"
	"github.com/Diome1804/Gestion-Salaire-sub000/internal/domain"
	"github.com/Diome1804/Gestion-Salaire-sub000/internal/employee"
	"github.com/Diome1804/Gestion-Salaire-sub000/internal/events"
	"github.com/Diome1804/Gestion-Salaire-sub000/internal/messaging/kafka"
	"github.com/Diome1804/Gestion-Salaire-sub000/internal/payrun"
	payrunerrors "github.com/Diome1804/Gestion-Salaire-sub000/internal/payrun/errors"
	"github.com/Diome1804/Gestion-Salaire-sub000/internal/payslip"
	paysliperrors "github.com/Diome1804/Gestion-Salaire-sub000/internal/payslip/errors"
	"github.com/Diome1804/Gestion-Salaire-sub000/internal/rates"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakePayRunRepository struct {
	createFn               func(ctx context.Context, run *payrun.PayRun) error
	findByIDFn             func(ctx context.Context, id string) (*payrun.PayRun, error)
	findAllByCompanyFn     func(ctx context.Context, companyID string) ([]payrun.PayRun, error)
	findAllFn              func(ctx context.Context) ([]payrun.PayRun, error)
	hasOverlappingPeriodFn func(ctx context.Context, companyID string, periodStart, periodEnd time.Time, excludeID *string) (bool, error)
	updateTotalsFn         func(ctx context.Context, id string, totalGross, totalDeductions, totalNet int64) error
	updateStatusFn         func(ctx context.Context, id, fromStatus, toStatus string, approvedAt, closedAt *time.Time) error
	renameFn               func(ctx context.Context, id, name string) error
	deleteFn               func(ctx context.Context, id string) error
}

func (f *fakePayRunRepository) WithTx(tx *sql.Tx) payrun.Repository { return f }

func (f *fakePayRunRepository) Create(ctx context.Context, run *payrun.PayRun) error {
	if f.createFn != nil {
		return f.createFn(ctx, run)
	}
	return nil
}

func (f *fakePayRunRepository) FindByID(ctx context.Context, id string) (*payrun.PayRun, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return &payrun.PayRun{}, nil
}

func (f *fakePayRunRepository) FindAllByCompany(ctx context.Context, companyID string) ([]payrun.PayRun, error) {
	if f.findAllByCompanyFn != nil {
		return f.findAllByCompanyFn(ctx, companyID)
	}
	return nil, nil
}

func (f *fakePayRunRepository) FindAll(ctx context.Context) ([]payrun.PayRun, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx)
	}
	return nil, nil
}

func (f *fakePayRunRepository) HasOverlappingPeriod(ctx context.Context, companyID string, periodStart, periodEnd time.Time, excludeID *string) (bool, error) {
	if f.hasOverlappingPeriodFn != nil {
		return f.hasOverlappingPeriodFn(ctx, companyID, periodStart, periodEnd, excludeID)
	}
	return false, nil
}

func (f *fakePayRunRepository) UpdateTotals(ctx context.Context, id string, totalGross, totalDeductions, totalNet int64) error {
	if f.updateTotalsFn != nil {
		return f.updateTotalsFn(ctx, id, totalGross, totalDeductions, totalNet)
	}
	return nil
}

func (f *fakePayRunRepository) UpdateStatus(ctx context.Context, id, fromStatus, toStatus string, approvedAt, closedAt *time.Time) error {
	if f.updateStatusFn != nil {
		return f.updateStatusFn(ctx, id, fromStatus, toStatus, approvedAt, closedAt)
	}
	return nil
}

func (f *fakePayRunRepository) Rename(ctx context.Context, id, name string) error {
	if f.renameFn != nil {
		return f.renameFn(ctx, id, name)
	}
	return nil
}

func (f *fakePayRunRepository) Delete(ctx context.Context, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

type fakePayslipRepository struct {
	createBatchFn     func(ctx context.Context, payslips []payslip.Payslip) error
	findAllByPayRunFn func(ctx context.Context, companyID, payRunID string) ([]payslip.Payslip, error)
}

func (f *fakePayslipRepository) WithTx(tx *sql.Tx) payslip.Repository { return f }

func (f *fakePayslipRepository) CreateBatch(ctx context.Context, payslips []payslip.Payslip) error {
	if f.createBatchFn != nil {
		return f.createBatchFn(ctx, payslips)
	}
	return nil
}

func (f *fakePayslipRepository) FindByID(ctx context.Context, id string) (*payslip.Payslip, error) {
	return &payslip.Payslip{}, nil
}

func (f *fakePayslipRepository) FindAllByPayRun(ctx context.Context, companyID, payRunID string) ([]payslip.Payslip, error) {
	if f.findAllByPayRunFn != nil {
		return f.findAllByPayRunFn(ctx, companyID, payRunID)
	}
	return nil, nil
}

func (f *fakePayslipRepository) OwnerState(ctx context.Context, payslipID string) (payslip.OwnerState, error) {
	return payslip.OwnerState{}, nil
}

func (f *fakePayslipRepository) ReplaceDeductions(ctx context.Context, payslipID string, rows []payslip.Deduction) error {
	return nil
}

func (f *fakePayslipRepository) UpdateTotals(ctx context.Context, payslipID string, totalDeductions, netSalary int64, notes *string) error {
	return nil
}

type fakeEmployeeRepository struct {
	findActiveByCompanyFn func(ctx context.Context, companyID string) ([]employee.Employee, error)
}

func (f *fakeEmployeeRepository) WithTx(tx *sql.Tx) employee.Repository      { return f }
func (f *fakeEmployeeRepository) Create(context.Context, *employee.Employee) error { return nil }

func (f *fakeEmployeeRepository) FindAllByCompany(ctx context.Context, companyID string) ([]employee.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeRepository) FindActiveByCompany(ctx context.Context, companyID string) ([]employee.Employee, error) {
	if f.findActiveByCompanyFn != nil {
		return f.findActiveByCompanyFn(ctx, companyID)
	}
	return nil, nil
}

func (f *fakeEmployeeRepository) FindByID(ctx context.Context, id string) (*employee.Employee, error) {
	return &employee.Employee{}, nil
}

func (f *fakeEmployeeRepository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*employee.Employee, error) {
	return &employee.Employee{}, nil
}

func (f *fakeEmployeeRepository) Update(context.Context, *employee.Employee) error { return nil }

func (f *fakeEmployeeRepository) UpdateRates(context.Context, string, map[string]any) error {
	return nil
}

func (f *fakeEmployeeRepository) SetActive(context.Context, string, string, bool) error { return nil }
func (f *fakeEmployeeRepository) HardDelete(context.Context, string) error              { return nil }

type fakeCompanyRepository struct {
	findByIDFn func(ctx context.Context, id string) (*company.Company, error)
}

func (f *fakeCompanyRepository) WithTx(tx *sql.Tx) company.Repository       { return f }
func (f *fakeCompanyRepository) Create(context.Context, *company.Company) error   { return nil }
func (f *fakeCompanyRepository) FindAll(context.Context) ([]company.Company, error) {
	return nil, nil
}

func (f *fakeCompanyRepository) FindByID(ctx context.Context, id string) (*company.Company, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return &company.Company{}, nil
}

func (f *fakeCompanyRepository) Update(context.Context, *company.Company) error { return nil }
func (f *fakeCompanyRepository) UpdateRates(context.Context, string, map[string]any) error {
	return nil
}
func (f *fakeCompanyRepository) Delete(context.Context, string) error { return nil }

type fakeRateSource struct {
	rates map[string]rates.EffectiveRates
}

func (f *fakeRateSource) EffectiveRates(ctx context.Context, employeeID string) (rates.EffectiveRates, error) {
	return f.rates[employeeID], nil
}

type fakeAttendanceSource struct {
	presentDays map[string]int64
}

func (f *fakeAttendanceSource) PresentDays(ctx context.Context, employeeID string, from, to time.Time) (int64, error) {
	return f.presentDays[employeeID], nil
}

type fakeOutboxRepository struct {
	createFn func(ctx context.Context, event kafka.OutboxEvent) error
}

func (f *fakeOutboxRepository) WithTx(tx *sql.Tx) kafka.OutboxRepository { return f }

func (f *fakeOutboxRepository) Create(ctx context.Context, event kafka.OutboxEvent) error {
	if f.createFn != nil {
		return f.createFn(ctx, event)
	}
	return nil
}

func (f *fakeOutboxRepository) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}

func (f *fakeOutboxRepository) MarkSent(ctx context.Context, id string) error { return nil }

func (f *fakeOutboxRepository) MarkFailed(ctx context.Context, id string, reason string) error {
	return nil
}

type payRunServiceDeps struct {
	db         *sql.DB
	sqlMock    sqlmock.Sqlmock
	service    payrun.Service
	repo       *fakePayRunRepository
	payslips   *fakePayslipRepository
	employees  *fakeEmployeeRepository
	companies  *fakeCompanyRepository
	rateSource *fakeRateSource
	attendance *fakeAttendanceSource
	outbox     *fakeOutboxRepository
}

func setupPayRunServiceTest(t *testing.T) *payRunServiceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	deps := &payRunServiceDeps{
		db:         db,
		sqlMock:    sqlMock,
		repo:       &fakePayRunRepository{},
		payslips:   &fakePayslipRepository{},
		employees:  &fakeEmployeeRepository{},
		companies:  &fakeCompanyRepository{},
		rateSource: &fakeRateSource{rates: map[string]rates.EffectiveRates{}},
		attendance: &fakeAttendanceSource{presentDays: map[string]int64{}},
		outbox:     &fakeOutboxRepository{},
	}
	deps.service = payrun.NewService(
		db,
		deps.repo,
		deps.payslips,
		deps.employees,
		deps.companies,
		deps.rateSource,
		deps.attendance,
		deps.outbox,
	)
	return deps
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func TestPayRunService_Create(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()
	actor := domain.Actor{ID: uuid.New().String(), Role: domain.RoleAdmin, CompanyID: companyID.String()}

	fixedEmp := employee.Employee{
		ID: uuid.New(), CompanyID: companyID,
		FullName: "Awa Ndiaye", ContractType: employee.ContractFixed, RateOrSalary: 500_000, IsActive: true,
	}
	dailyEmp := employee.Employee{
		ID: uuid.New(), CompanyID: companyID,
		FullName: "Moussa Fall", ContractType: employee.ContractDaily, IsActive: true,
	}

	deps := setupPayRunServiceTest(t)
	defer deps.db.Close()

	deps.companies.findByIDFn = func(ctx context.Context, id string) (*company.Company, error) {
		return &company.Company{ID: companyID, PeriodType: company.PeriodMonthly}, nil
	}
	deps.employees.findActiveByCompanyFn = func(ctx context.Context, id string) ([]employee.Employee, error) {
		return []employee.Employee{fixedEmp, dailyEmp}, nil
	}
	deps.rateSource.rates[dailyEmp.ID.String()] = rates.EffectiveRates{DailyRate: 10_000}
	deps.attendance.presentDays[dailyEmp.ID.String()] = 3

	var batched []payslip.Payslip
	deps.payslips.createBatchFn = func(ctx context.Context, payslips []payslip.Payslip) error {
		batched = payslips
		return nil
	}

	var outboxEvent kafka.OutboxEvent
	deps.outbox.createFn = func(ctx context.Context, event kafka.OutboxEvent) error {
		outboxEvent = event
		return nil
	}

	expectTx(t, deps.sqlMock, true)

	resp, err := deps.service.Create(ctx, actor, companyID.String(), payrun.CreatePayRunRequest{
		Date: "2026-02-17",
	})

	assert.NoError(t, err)
	assert.Equal(t, payrun.StatusDraft, resp.Status)
	assert.Equal(t, "2026-02-01", resp.PeriodStart)
	assert.Equal(t, "2026-02-28", resp.PeriodEnd)
	assert.Equal(t, "February 2026", resp.Name)
	assert.Equal(t, int64(530_000), resp.TotalGross)
	assert.Equal(t, int64(0), resp.TotalDeductions)
	assert.Equal(t, int64(530_000), resp.TotalNet)
	assert.Equal(t, 2, resp.EmployeeCount)

	assert.Len(t, batched, 2)
	for _, slip := range batched {
		assert.Equal(t, payslip.PaymentPending, slip.PaymentStatus)
		assert.Equal(t, slip.GrossSalary, slip.NetSalary)
	}

	assert.Equal(t, events.PayRunCreatedTopic, outboxEvent.Topic)
	assert.Equal(t, kafka.OutboxStatusPending, outboxEvent.Status)
	var event events.PayRunCreatedEvent
	assert.NoError(t, json.Unmarshal(outboxEvent.Payload, &event))
	assert.Len(t, event.Payslips, 2)
	assert.Equal(t, int64(530_000), event.TotalNet)

	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestPayRunService_Create_Overlap(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()
	actor := domain.Actor{ID: uuid.New().String(), Role: domain.RoleSuperAdmin}

	deps := setupPayRunServiceTest(t)
	defer deps.db.Close()

	deps.companies.findByIDFn = func(ctx context.Context, id string) (*company.Company, error) {
		return &company.Company{ID: companyID, PeriodType: company.PeriodMonthly}, nil
	}
	deps.repo.hasOverlappingPeriodFn = func(ctx context.Context, companyID string, periodStart, periodEnd time.Time, excludeID *string) (bool, error) {
		return true, nil
	}

	expectTx(t, deps.sqlMock, false)

	_, err := deps.service.Create(ctx, actor, companyID.String(), payrun.CreatePayRunRequest{Date: "2026-02-17"})

	assert.ErrorIs(t, err, payrunerrors.ErrPeriodOverlap)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestPayRunService_Create_CrossCompanyForbidden(t *testing.T) {
	ctx := context.Background()
	actor := domain.Actor{ID: uuid.New().String(), Role: domain.RoleAdmin, CompanyID: uuid.New().String()}

	deps := setupPayRunServiceTest(t)
	defer deps.db.Close()

	_, err := deps.service.Create(ctx, actor, uuid.New().String(), payrun.CreatePayRunRequest{Date: "2026-02-17"})

	assert.ErrorIs(t, err, companyerrors.ErrCompanyAccessDenied)
}

func TestPayRunService_Create_NoActiveEmployees(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()
	actor := domain.Actor{ID: uuid.New().String(), Role: domain.RoleSuperAdmin}

	deps := setupPayRunServiceTest(t)
	defer deps.db.Close()

	deps.companies.findByIDFn = func(ctx context.Context, id string) (*company.Company, error) {
		return &company.Company{ID: companyID, PeriodType: company.PeriodWeekly}, nil
	}

	batchCalled := false
	deps.payslips.createBatchFn = func(ctx context.Context, payslips []payslip.Payslip) error {
		batchCalled = true
		return nil
	}

	expectTx(t, deps.sqlMock, true)

	resp, err := deps.service.Create(ctx, actor, companyID.String(), payrun.CreatePayRunRequest{Date: "2026-09-02"})

	assert.NoError(t, err)
	assert.False(t, batchCalled)
	assert.Equal(t, int64(0), resp.TotalNet)
	assert.Equal(t, 0, resp.EmployeeCount)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestPayRunService_Create_DefaultAnchor(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()
	actor := domain.Actor{ID: uuid.New().String(), Role: domain.RoleSuperAdmin}

	deps := setupPayRunServiceTest(t)
	defer deps.db.Close()

	deps.companies.findByIDFn = func(ctx context.Context, id string) (*company.Company, error) {
		return &company.Company{ID: companyID, PeriodType: company.PeriodMonthly}, nil
	}

	var gotStart, gotEnd time.Time
	deps.repo.createFn = func(ctx context.Context, run *payrun.PayRun) error {
		gotStart = run.PeriodStart
		gotEnd = run.PeriodEnd
		return nil
	}

	expectTx(t, deps.sqlMock, true)

	resp, err := deps.service.Create(ctx, actor, companyID.String(), payrun.CreatePayRunRequest{})

	assert.NoError(t, err)

	wantStart, wantEnd, err := payrun.ResolvePeriod(company.PeriodMonthly, time.Now().UTC())
	assert.NoError(t, err)
	assert.Equal(t, wantStart, gotStart)
	assert.Equal(t, wantEnd, gotEnd)
	assert.Equal(t, wantStart.Format("2006-01-02"), resp.PeriodStart)
	assert.Equal(t, wantEnd.Format("2006-01-02"), resp.PeriodEnd)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestPayRunService_Create_DuplicatePayslip(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()
	actor := domain.Actor{ID: uuid.New().String(), Role: domain.RoleSuperAdmin}

	deps := setupPayRunServiceTest(t)
	defer deps.db.Close()

	deps.companies.findByIDFn = func(ctx context.Context, id string) (*company.Company, error) {
		return &company.Company{ID: companyID, PeriodType: company.PeriodMonthly}, nil
	}
	deps.employees.findActiveByCompanyFn = func(ctx context.Context, id string) ([]employee.Employee, error) {
		return []employee.Employee{{
			ID: uuid.New(), CompanyID: companyID,
			ContractType: employee.ContractFixed, RateOrSalary: 500_000, IsActive: true,
		}}, nil
	}
	deps.payslips.createBatchFn = func(ctx context.Context, payslips []payslip.Payslip) error {
		return &pgconn.PgError{Code: "23505", ConstraintName: "idx_payslip_run_employee"}
	}

	expectTx(t, deps.sqlMock, false)

	_, err := deps.service.Create(ctx, actor, companyID.String(), payrun.CreatePayRunRequest{Date: "2026-02-17"})

	assert.ErrorIs(t, err, paysliperrors.ErrDuplicatePayslip)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestPayRunService_Transitions(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()
	actor := domain.Actor{ID: uuid.New().String(), Role: domain.RoleAdmin, CompanyID: companyID.String()}
	runID := uuid.New()

	runInStatus := func(status string) *payrun.PayRun {
		return &payrun.PayRun{ID: runID, CompanyID: companyID, Status: status, CreatedBy: uuid.New()}
	}

	t.Run("approve from draft", func(t *testing.T) {
		deps := setupPayRunServiceTest(t)
		defer deps.db.Close()

		deps.repo.findByIDFn = func(ctx context.Context, id string) (*payrun.PayRun, error) {
			return runInStatus(payrun.StatusDraft), nil
		}
		var gotApprovedAt *time.Time
		deps.repo.updateStatusFn = func(ctx context.Context, id, fromStatus, toStatus string, approvedAt, closedAt *time.Time) error {
			assert.Equal(t, payrun.StatusDraft, fromStatus)
			assert.Equal(t, payrun.StatusApproved, toStatus)
			gotApprovedAt = approvedAt
			return nil
		}

		expectTx(t, deps.sqlMock, true)

		resp, err := deps.service.Approve(ctx, actor, runID.String())

		assert.NoError(t, err)
		assert.Equal(t, payrun.StatusApproved, resp.Status)
		assert.NotNil(t, gotApprovedAt)
		assert.NotNil(t, resp.ApprovedAt)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("close from approved", func(t *testing.T) {
		deps := setupPayRunServiceTest(t)
		defer deps.db.Close()

		deps.repo.findByIDFn = func(ctx context.Context, id string) (*payrun.PayRun, error) {
			return runInStatus(payrun.StatusApproved), nil
		}

		expectTx(t, deps.sqlMock, true)

		resp, err := deps.service.Close(ctx, actor, runID.String())

		assert.NoError(t, err)
		assert.Equal(t, payrun.StatusClosed, resp.Status)
		assert.NotNil(t, resp.ClosedAt)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("close straight from draft is rejected", func(t *testing.T) {
		deps := setupPayRunServiceTest(t)
		defer deps.db.Close()

		deps.repo.findByIDFn = func(ctx context.Context, id string) (*payrun.PayRun, error) {
			return runInStatus(payrun.StatusDraft), nil
		}

		expectTx(t, deps.sqlMock, false)

		_, err := deps.service.Close(ctx, actor, runID.String())

		assert.ErrorIs(t, err, payrunerrors.ErrInvalidTransition)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("closed run rejects every edit", func(t *testing.T) {
		deps := setupPayRunServiceTest(t)
		defer deps.db.Close()

		deps.repo.findByIDFn = func(ctx context.Context, id string) (*payrun.PayRun, error) {
			return runInStatus(payrun.StatusClosed), nil
		}

		expectTx(t, deps.sqlMock, false)

		name := "renamed"
		_, err := deps.service.Update(ctx, actor, runID.String(), payrun.UpdatePayRunRequest{Name: &name})

		assert.ErrorIs(t, err, payrunerrors.ErrPayRunClosed)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("other company admin is rejected", func(t *testing.T) {
		deps := setupPayRunServiceTest(t)
		defer deps.db.Close()

		deps.repo.findByIDFn = func(ctx context.Context, id string) (*payrun.PayRun, error) {
			return runInStatus(payrun.StatusDraft), nil
		}

		expectTx(t, deps.sqlMock, false)

		stranger := domain.Actor{ID: uuid.New().String(), Role: domain.RoleAdmin, CompanyID: uuid.New().String()}
		_, err := deps.service.Approve(ctx, stranger, runID.String())

		assert.ErrorIs(t, err, payrunerrors.ErrPayRunAccessDenied)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestPayRunService_Delete(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()
	actor := domain.Actor{ID: uuid.New().String(), Role: domain.RoleAdmin, CompanyID: companyID.String()}
	runID := uuid.New()

	t.Run("draft run deletes", func(t *testing.T) {
		deps := setupPayRunServiceTest(t)
		defer deps.db.Close()

		deps.repo.findByIDFn = func(ctx context.Context, id string) (*payrun.PayRun, error) {
			return &payrun.PayRun{ID: runID, CompanyID: companyID, Status: payrun.StatusDraft}, nil
		}
		deleted := false
		deps.repo.deleteFn = func(ctx context.Context, id string) error {
			deleted = true
			return nil
		}

		expectTx(t, deps.sqlMock, true)

		err := deps.service.Delete(ctx, actor, runID.String())

		assert.NoError(t, err)
		assert.True(t, deleted)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("approved run refuses delete", func(t *testing.T) {
		deps := setupPayRunServiceTest(t)
		defer deps.db.Close()

		deps.repo.findByIDFn = func(ctx context.Context, id string) (*payrun.PayRun, error) {
			return &payrun.PayRun{ID: runID, CompanyID: companyID, Status: payrun.StatusApproved}, nil
		}

		expectTx(t, deps.sqlMock, false)

		err := deps.service.Delete(ctx, actor, runID.String())

		assert.ErrorIs(t, err, payrunerrors.ErrDeleteOnlyDraft)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}
