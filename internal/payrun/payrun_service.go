package payrun

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/Diome1804/Gestion-Salaire-sub000/internal/company"
	companyerrors "github.com/Diome1804/Gestion-Salaire-sub000/internal/company/errors"
	"github.com/Diome1804/Gestion-Salaire-sub000/internal/domain"
	"github.com/Diome1804/Gestion-Salaire-sub000/internal/employee"
	"github.com/Diome1804/Gestion-Salaire-sub000/internal/events"
	"github.com/Diome1804/Gestion-Salaire-sub000/internal/messaging/kafka"
	payrunerrors "github.com/Diome1804/Gestion-Salaire-sub000/internal/payrun/errors"
	"github.com/Diome1804/Gestion-Salaire-sub000/internal/payslip"
	"github.com/Diome1804/Gestion-Salaire-sub000/internal/rates"
	"github.com/Diome1804/Gestion-Salaire-sub000/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	Create(ctx context.Context, actor domain.Actor, companyID string, req CreatePayRunRequest) (PayRunResponse, error)
	GetAll(ctx context.Context, actor domain.Actor, companyID string) ([]PayRunResponse, error)
	GetByID(ctx context.Context, actor domain.Actor, id string) (PayRunResponse, error)
	Update(ctx context.Context, actor domain.Actor, id string, req UpdatePayRunRequest) (PayRunResponse, error)
	Approve(ctx context.Context, actor domain.Actor, id string) (PayRunResponse, error)
	Close(ctx context.Context, actor domain.Actor, id string) (PayRunResponse, error)
	Delete(ctx context.Context, actor domain.Actor, id string) error
}

// RateSource yields the effective per-employee rate sheet. rates.Service
// satisfies it.
type RateSource interface {
	EffectiveRates(ctx context.Context, employeeID string) (rates.EffectiveRates, error)
}

// AttendanceSource counts PRESENT days inside a period. The attendance
// service satisfies it.
type AttendanceSource interface {
	PresentDays(ctx context.Context, employeeID string, from, to time.Time) (int64, error)
}

type service struct {
	db           *sql.DB
	repo         Repository
	payslipRepo  payslip.Repository
	employeeRepo employee.Repository
	companyRepo  company.Repository
	rateSource   RateSource
	attendance   AttendanceSource
	outbox       kafka.OutboxRepository
	logger       *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	payslipRepo payslip.Repository,
	employeeRepo employee.Repository,
	companyRepo company.Repository,
	rateSource RateSource,
	attendance AttendanceSource,
	outbox kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	log := zap.L()
	if len(logger) > 0 && logger[0] != nil {
		log = logger[0]
	}
	return &service{
		db:           db,
		repo:         repo,
		payslipRepo:  payslipRepo,
		employeeRepo: employeeRepo,
		companyRepo:  companyRepo,
		rateSource:   rateSource,
		attendance:   attendance,
		outbox:       outbox,
		logger:       log.Named("payrun.service"),
	}
}

// Create generates a pay run and one payslip per active employee in a
// single serializable transaction. The overlap check, the run, the
// payslips and the outbox event all commit or roll back together.
func (s *service) Create(
	ctx context.Context,
	actor domain.Actor,
	companyID string,
	req CreatePayRunRequest,
) (PayRunResponse, error) {
	if !domain.CanAccessCompany(actor, companyID) {
		return PayRunResponse{}, companyerrors.ErrCompanyAccessDenied
	}

	comp, err := s.companyRepo.FindByID(ctx, companyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return PayRunResponse{}, companyerrors.ErrCompanyNotFound
		}
		return PayRunResponse{}, err
	}

	periodType := req.PeriodType
	if periodType == "" {
		periodType = comp.PeriodType
	}
	if !company.ValidPeriodType(periodType) {
		return PayRunResponse{}, payrunerrors.ErrInvalidPeriodType
	}

	anchor := time.Now().UTC()
	if req.Date != "" {
		anchor, err = time.Parse("2006-01-02", req.Date)
		if err != nil {
			return PayRunResponse{}, payrunerrors.ErrInvalidAnchorDate
		}
	}

	periodStart, periodEnd, err := ResolvePeriod(periodType, anchor)
	if err != nil {
		return PayRunResponse{}, err
	}

	name := req.Name
	if name == "" {
		name = PeriodName(periodType, periodStart, periodEnd)
	}

	createdBy, err := uuid.Parse(actor.ID)
	if err != nil {
		return PayRunResponse{}, errors.New("invalid actor id")
	}

	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return PayRunResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	overlap, err := qtx.HasOverlappingPeriod(ctx, companyID, periodStart, periodEnd, nil)
	if err != nil {
		return PayRunResponse{}, err
	}
	if overlap {
		return PayRunResponse{}, payrunerrors.ErrPeriodOverlap
	}

	run := &PayRun{
		ID:          uuid.New(),
		CompanyID:   comp.ID,
		Name:        name,
		PeriodType:  periodType,
		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
		Status:      StatusDraft,
		CreatedBy:   createdBy,
	}

	if err := qtx.Create(ctx, run); err != nil {
		return PayRunResponse{}, err
	}

	employees, err := s.employeeRepo.FindActiveByCompany(ctx, companyID)
	if err != nil {
		return PayRunResponse{}, err
	}

	payslips, err := s.buildPayslips(ctx, run, employees)
	if err != nil {
		return PayRunResponse{}, err
	}

	if len(payslips) > 0 {
		if err := s.payslipRepo.WithTx(tx).CreateBatch(ctx, payslips); err != nil {
			return PayRunResponse{}, mapPayslipBatchError(err)
		}
	}

	for _, slip := range payslips {
		run.TotalGross += slip.GrossSalary
		run.TotalDeductions += slip.TotalDeductions
		run.TotalNet += slip.NetSalary
	}

	if err := qtx.UpdateTotals(ctx, run.ID.String(), run.TotalGross, run.TotalDeductions, run.TotalNet); err != nil {
		return PayRunResponse{}, err
	}

	if err := s.enqueueCreatedEvent(ctx, tx, run, payslips); err != nil {
		return PayRunResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return PayRunResponse{}, err
	}

	s.logger.Info("pay run created",
		zap.String("pay_run_id", run.ID.String()),
		zap.String("company_id", companyID),
		zap.String("period_type", periodType),
		zap.Int("payslips", len(payslips)),
		zap.Int64("total_net", run.TotalNet),
	)

	resp := mapToResponse(*run)
	resp.EmployeeCount = len(payslips)
	for _, slip := range payslips {
		resp.Payslips = append(resp.Payslips, payslip.MapToResponse(slip))
	}
	return resp, nil
}

// buildPayslips computes one payslip per employee. Attendance is only
// consulted for contract types paid by the day.
func (s *service) buildPayslips(
	ctx context.Context,
	run *PayRun,
	employees []employee.Employee,
) ([]payslip.Payslip, error) {
	payslips := make([]payslip.Payslip, 0, len(employees))

	for _, emp := range employees {
		in := payslipInput{Employee: emp}

		switch emp.ContractType {
		case employee.ContractDaily, employee.ContractHonoraire:
			effective, err := s.rateSource.EffectiveRates(ctx, emp.ID.String())
			if err != nil {
				return nil, err
			}
			days, err := s.attendance.PresentDays(ctx, emp.ID.String(), run.PeriodStart, run.PeriodEnd)
			if err != nil {
				return nil, err
			}
			in.Rates = effective
			in.PresentDays = days
		}

		gross := calculateGross(in)

		payslips = append(payslips, payslip.Payslip{
			ID:            uuid.New(),
			PayRunID:      run.ID,
			EmployeeID:    emp.ID,
			CompanyID:     run.CompanyID,
			GrossSalary:   gross,
			NetSalary:     payslip.ClampNet(gross, 0),
			PaymentStatus: payslip.PaymentPending,
		})
	}

	return payslips, nil
}

func (s *service) enqueueCreatedEvent(
	ctx context.Context,
	tx *sql.Tx,
	run *PayRun,
	payslips []payslip.Payslip,
) error {
	if s.outbox == nil {
		return nil
	}

	summaries := make([]events.PayslipSummary, 0, len(payslips))
	for _, slip := range payslips {
		summaries = append(summaries, events.PayslipSummary{
			PayslipID:  slip.ID.String(),
			EmployeeID: slip.EmployeeID.String(),
			Gross:      slip.GrossSalary,
			Net:        slip.NetSalary,
		})
	}

	payload, err := json.Marshal(events.PayRunCreatedEvent{
		EventType:   "payrun_created",
		PayRunID:    run.ID.String(),
		CompanyID:   run.CompanyID.String(),
		Name:        run.Name,
		PeriodStart: run.PeriodStart.Format("2006-01-02"),
		PeriodEnd:   run.PeriodEnd.Format("2006-01-02"),
		TotalNet:    run.TotalNet,
		Payslips:    summaries,
		CreatedBy:   run.CreatedBy.String(),
		OccurredAt:  time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "pay_run",
		AggregateID:   run.ID.String(),
		EventType:     "payrun_created",
		Topic:         events.PayRunCreatedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func (s *service) GetAll(ctx context.Context, actor domain.Actor, companyID string) ([]PayRunResponse, error) {
	if companyID == "" && actor.Role == domain.RoleSuperAdmin {
		runs, err := s.repo.FindAll(ctx)
		if err != nil {
			return nil, err
		}
		return mapToListResponse(runs), nil
	}

	if !domain.CanAccessCompany(actor, companyID) {
		return nil, companyerrors.ErrCompanyAccessDenied
	}

	runs, err := s.repo.FindAllByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(runs), nil
}

func (s *service) GetByID(ctx context.Context, actor domain.Actor, id string) (PayRunResponse, error) {
	run, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return PayRunResponse{}, mapRepositoryError(err)
	}
	if !domain.CanAccessCompany(actor, run.CompanyID.String()) {
		return PayRunResponse{}, payrunerrors.ErrPayRunAccessDenied
	}

	slips, err := s.payslipRepo.FindAllByPayRun(ctx, run.CompanyID.String(), id)
	if err != nil {
		return PayRunResponse{}, err
	}

	resp := mapToResponse(*run)
	resp.EmployeeCount = len(slips)
	for _, slip := range slips {
		resp.Payslips = append(resp.Payslips, payslip.MapToResponse(slip))
	}
	return resp, nil
}

// Update renames a run and, when a status is supplied, walks it through
// the lifecycle. Transitions are validated inside the transaction so two
// concurrent approvals cannot both pass the state check.
func (s *service) Update(
	ctx context.Context,
	actor domain.Actor,
	id string,
	req UpdatePayRunRequest,
) (PayRunResponse, error) {
	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return PayRunResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	run, err := qtx.FindByID(ctx, id)
	if err != nil {
		return PayRunResponse{}, mapRepositoryError(err)
	}
	if !domain.CanAccessCompany(actor, run.CompanyID.String()) {
		return PayRunResponse{}, payrunerrors.ErrPayRunAccessDenied
	}
	if run.Status == StatusClosed {
		return PayRunResponse{}, payrunerrors.ErrPayRunClosed
	}

	if req.Status != nil && *req.Status != run.Status {
		if !ValidStatus(*req.Status) {
			return PayRunResponse{}, payrunerrors.ErrInvalidStatusValue
		}
		if !CanTransition(run.Status, *req.Status) {
			return PayRunResponse{}, payrunerrors.ErrInvalidTransition
		}

		fromStatus := run.Status
		now := time.Now().UTC()
		switch *req.Status {
		case StatusApproved:
			run.ApprovedAt = &now
		case StatusClosed:
			run.ClosedAt = &now
		}
		run.Status = *req.Status

		if err := qtx.UpdateStatus(ctx, id, fromStatus, run.Status, run.ApprovedAt, run.ClosedAt); err != nil {
			// Zero rows here means the status moved under us after the
			// read. Report it as a bad transition, not a missing run.
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return PayRunResponse{}, payrunerrors.ErrInvalidTransition
			}
			return PayRunResponse{}, err
		}
	}

	if req.Name != nil && *req.Name != "" {
		run.Name = *req.Name
		if err := qtx.Rename(ctx, id, run.Name); err != nil {
			return PayRunResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return PayRunResponse{}, err
	}

	return mapToResponse(*run), nil
}

func (s *service) Approve(ctx context.Context, actor domain.Actor, id string) (PayRunResponse, error) {
	status := StatusApproved
	return s.Update(ctx, actor, id, UpdatePayRunRequest{Status: &status})
}

func (s *service) Close(ctx context.Context, actor domain.Actor, id string) (PayRunResponse, error) {
	status := StatusClosed
	return s.Update(ctx, actor, id, UpdatePayRunRequest{Status: &status})
}

func (s *service) Delete(ctx context.Context, actor domain.Actor, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	run, err := qtx.FindByID(ctx, id)
	if err != nil {
		return mapRepositoryError(err)
	}
	if !domain.CanAccessCompany(actor, run.CompanyID.String()) {
		return payrunerrors.ErrPayRunAccessDenied
	}
	if run.Status != StatusDraft {
		return payrunerrors.ErrDeleteOnlyDraft
	}

	if err := qtx.Delete(ctx, id); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	s.logger.Info("pay run deleted",
		zap.String("pay_run_id", id),
		zap.String("company_id", run.CompanyID.String()),
	)
	return nil
}

func mapRepositoryError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return payrunerrors.ErrPayRunNotFound
	}
	return err
}

func mapToResponse(run PayRun) PayRunResponse {
	resp := PayRunResponse{
		ID:              run.ID.String(),
		CompanyID:       run.CompanyID.String(),
		Name:            run.Name,
		PeriodType:      run.PeriodType,
		PeriodStart:     run.PeriodStart.Format("2006-01-02"),
		PeriodEnd:       run.PeriodEnd.Format("2006-01-02"),
		Status:          run.Status,
		TotalGross:      run.TotalGross,
		TotalDeductions: run.TotalDeductions,
		TotalNet:        run.TotalNet,
		CreatedBy:       run.CreatedBy.String(),
	}

	if run.ApprovedAt != nil {
		v := run.ApprovedAt.Format(time.RFC3339)
		resp.ApprovedAt = &v
	}
	if run.ClosedAt != nil {
		v := run.ClosedAt.Format(time.RFC3339)
		resp.ClosedAt = &v
	}

	return resp
}

func mapToListResponse(runs []PayRun) []PayRunResponse {
	resp := make([]PayRunResponse, len(runs))
	for i, run := range runs {
		resp[i] = mapToResponse(run)
	}
	return resp
}
