package payment

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Diome1804/Gestion-Salaire-sub000/internal/domain"
	paymenterrors "github.com/Diome1804/Gestion-Salaire-sub000/internal/payment/errors"
	"github.com/Diome1804/Gestion-Salaire-sub000/internal/payslip"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	Create(ctx context.Context, actor domain.Actor, req CreatePaymentRequest) (PaymentResult, error)
	Update(ctx context.Context, actor domain.Actor, id string, req UpdatePaymentRequest) (PaymentResult, error)
	Delete(ctx context.Context, actor domain.Actor, id string) (string, error)
	GetByID(ctx context.Context, actor domain.Actor, id string) (PaymentResponse, error)
	GetAllByPayslip(ctx context.Context, actor domain.Actor, payslipID string) ([]PaymentResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	log := zap.L()
	if len(logger) > 0 && logger[0] != nil {
		log = logger[0]
	}
	return &service{db: db, repo: repo, logger: log.Named("payment.service")}
}

// Create records a payment against a payslip. The balance check and the
// insert share one serializable transaction, so two cashiers settling
// the same payslip cannot jointly overshoot its net salary.
func (s *service) Create(
	ctx context.Context,
	actor domain.Actor,
	req CreatePaymentRequest,
) (PaymentResult, error) {
	createdBy, err := uuid.Parse(actor.ID)
	if err != nil {
		return PaymentResult{}, errors.New("invalid actor id")
	}
	payslipID, err := uuid.Parse(req.PayslipID)
	if err != nil {
		return PaymentResult{}, paymenterrors.ErrPayslipNotFound
	}
	if req.Amount <= 0 {
		return PaymentResult{}, paymenterrors.ErrNonPositiveAmount
	}
	if !ValidMethod(req.Method) {
		return PaymentResult{}, paymenterrors.ErrInvalidMethod
	}

	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return PaymentResult{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	state, err := qtx.PayslipState(ctx, req.PayslipID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return PaymentResult{}, paymenterrors.ErrPayslipNotFound
		}
		return PaymentResult{}, err
	}
	if !domain.CanAccessCompany(actor, state.CompanyID) {
		return PaymentResult{}, paymenterrors.ErrPaymentAccessDenied
	}

	totalPaid, err := qtx.SumByPayslip(ctx, req.PayslipID, nil)
	if err != nil {
		return PaymentResult{}, err
	}

	remaining := state.NetSalary - totalPaid
	if req.Amount > remaining {
		return PaymentResult{}, paymenterrors.ErrOverpayment
	}

	companyID, err := uuid.Parse(state.CompanyID)
	if err != nil {
		return PaymentResult{}, err
	}

	pay := &Payment{
		ID:        uuid.New(),
		PayslipID: payslipID,
		CompanyID: companyID,
		Amount:    req.Amount,
		Method:    req.Method,
		Reference: req.Reference,
		Notes:     req.Notes,
		CreatedBy: createdBy,
		CreatedAt: time.Now().UTC(),
	}

	if err := qtx.Create(ctx, pay); err != nil {
		return PaymentResult{}, err
	}

	newStatus := deriveStatus(totalPaid+req.Amount, state.NetSalary)
	if err := qtx.UpdatePayslipStatus(ctx, req.PayslipID, newStatus); err != nil {
		return PaymentResult{}, err
	}

	if err := tx.Commit(); err != nil {
		return PaymentResult{}, err
	}

	s.logger.Info("payment recorded",
		zap.String("payment_id", pay.ID.String()),
		zap.String("payslip_id", req.PayslipID),
		zap.Int64("amount", req.Amount),
		zap.String("new_status", newStatus),
	)

	return PaymentResult{Payment: mapToResponse(*pay), NewStatus: newStatus}, nil
}

// Update edits a payment and re-derives the payslip status from the
// resulting set of payments.
func (s *service) Update(
	ctx context.Context,
	actor domain.Actor,
	id string,
	req UpdatePaymentRequest,
) (PaymentResult, error) {
	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return PaymentResult{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	pay, err := qtx.FindByID(ctx, id)
	if err != nil {
		return PaymentResult{}, mapRepositoryError(err)
	}

	state, err := qtx.PayslipState(ctx, pay.PayslipID.String())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return PaymentResult{}, paymenterrors.ErrPayslipNotFound
		}
		return PaymentResult{}, err
	}
	if !domain.CanAccessCompany(actor, state.CompanyID) {
		return PaymentResult{}, paymenterrors.ErrPaymentAccessDenied
	}

	if req.Amount != nil {
		if *req.Amount <= 0 {
			return PaymentResult{}, paymenterrors.ErrNonPositiveAmount
		}
		pay.Amount = *req.Amount
	}
	if req.Method != nil {
		if !ValidMethod(*req.Method) {
			return PaymentResult{}, paymenterrors.ErrInvalidMethod
		}
		pay.Method = *req.Method
	}
	if req.Reference != nil {
		pay.Reference = req.Reference
	}
	if req.Notes != nil {
		pay.Notes = req.Notes
	}

	othersTotal, err := qtx.SumByPayslip(ctx, pay.PayslipID.String(), &id)
	if err != nil {
		return PaymentResult{}, err
	}

	remaining := state.NetSalary - othersTotal
	if pay.Amount > remaining {
		return PaymentResult{}, paymenterrors.ErrOverpayment
	}

	if err := qtx.Update(ctx, pay); err != nil {
		return PaymentResult{}, err
	}

	newStatus := deriveStatus(othersTotal+pay.Amount, state.NetSalary)
	if err := qtx.UpdatePayslipStatus(ctx, pay.PayslipID.String(), newStatus); err != nil {
		return PaymentResult{}, err
	}

	if err := tx.Commit(); err != nil {
		return PaymentResult{}, err
	}

	return PaymentResult{Payment: mapToResponse(*pay), NewStatus: newStatus}, nil
}

// Delete removes a payment and re-derives the payslip status. Deleting
// the only payment takes the payslip back to PENDING.
func (s *service) Delete(ctx context.Context, actor domain.Actor, id string) (string, error) {
	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	pay, err := qtx.FindByID(ctx, id)
	if err != nil {
		return "", mapRepositoryError(err)
	}

	state, err := qtx.PayslipState(ctx, pay.PayslipID.String())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", paymenterrors.ErrPayslipNotFound
		}
		return "", err
	}
	if !domain.CanAccessCompany(actor, state.CompanyID) {
		return "", paymenterrors.ErrPaymentAccessDenied
	}

	if err := qtx.Delete(ctx, id); err != nil {
		return "", err
	}

	remainingTotal, err := qtx.SumByPayslip(ctx, pay.PayslipID.String(), &id)
	if err != nil {
		return "", err
	}

	newStatus := deriveStatus(remainingTotal, state.NetSalary)
	if err := qtx.UpdatePayslipStatus(ctx, pay.PayslipID.String(), newStatus); err != nil {
		return "", err
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}

	return newStatus, nil
}

func (s *service) GetByID(ctx context.Context, actor domain.Actor, id string) (PaymentResponse, error) {
	pay, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return PaymentResponse{}, mapRepositoryError(err)
	}
	if !domain.CanAccessCompany(actor, pay.CompanyID.String()) {
		return PaymentResponse{}, paymenterrors.ErrPaymentAccessDenied
	}
	return mapToResponse(*pay), nil
}

func (s *service) GetAllByPayslip(ctx context.Context, actor domain.Actor, payslipID string) ([]PaymentResponse, error) {
	state, err := s.repo.PayslipState(ctx, payslipID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, paymenterrors.ErrPayslipNotFound
		}
		return nil, err
	}
	if !domain.CanAccessCompany(actor, state.CompanyID) {
		return nil, paymenterrors.ErrPaymentAccessDenied
	}

	payments, err := s.repo.FindAllByPayslip(ctx, payslipID)
	if err != nil {
		return nil, err
	}

	resp := make([]PaymentResponse, len(payments))
	for i, pay := range payments {
		resp[i] = mapToResponse(pay)
	}
	return resp, nil
}

// deriveStatus is the three-way rule shared by every mutation: nothing
// paid keeps PENDING, full coverage flips to PAID, anything between is
// PARTIAL.
func deriveStatus(totalPaid, netSalary int64) string {
	switch {
	case totalPaid == 0:
		return payslip.PaymentPending
	case totalPaid >= netSalary:
		return payslip.PaymentPaid
	default:
		return payslip.PaymentPartial
	}
}

func mapRepositoryError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return paymenterrors.ErrPaymentNotFound
	}
	return err
}

func mapToResponse(pay Payment) PaymentResponse {
	return PaymentResponse{
		ID:        pay.ID.String(),
		PayslipID: pay.PayslipID.String(),
		CompanyID: pay.CompanyID.String(),
		Amount:    pay.Amount,
		Method:    pay.Method,
		Reference: pay.Reference,
		Notes:     pay.Notes,
		CreatedBy: pay.CreatedBy.String(),
		CreatedAt: pay.CreatedAt.Format(time.RFC3339),
	}
}
