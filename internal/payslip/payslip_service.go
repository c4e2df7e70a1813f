package payslip

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Diome1804/Gestion-Salaire-sub000/internal/domain"
	paysliperrors "github.com/Diome1804/Gestion-Salaire-sub000/internal/payslip/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// payRunDraft mirrors payrun.StatusDraft; kept as a literal to avoid an
// import cycle with the pay-run engine.
const payRunDraft = "DRAFT"

type Service interface {
	Update(ctx context.Context, actor domain.Actor, id string, req UpdatePayslipRequest) (PayslipResponse, error)
	CanModify(ctx context.Context, id string) (bool, error)
	GetByID(ctx context.Context, actor domain.Actor, id string) (PayslipResponse, error)
	GetAllByPayRun(ctx context.Context, actor domain.Actor, companyID, payRunID string) ([]PayslipResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("payslip.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payslip.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

// Update rewrites the deduction list and notes of one payslip and
// re-derives the totals. Gross salary is never touched here; only the
// pay-run engine writes it. The owning pay run's aggregates are left
// as generated.
func (s *service) Update(
	ctx context.Context,
	actor domain.Actor,
	id string,
	req UpdatePayslipRequest,
) (PayslipResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PayslipResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	state, err := qtx.OwnerState(ctx, id)
	if err != nil {
		return PayslipResponse{}, mapRepositoryError(err)
	}

	if !domain.CanAccessCompany(actor, state.CompanyID) {
		return PayslipResponse{}, paysliperrors.ErrPayslipAccessDenied
	}
	if state.PayRunStatus != payRunDraft {
		return PayslipResponse{}, paysliperrors.ErrPayslipLocked
	}

	payslipID, err := uuid.Parse(id)
	if err != nil {
		return PayslipResponse{}, paysliperrors.ErrPayslipNotFound
	}

	totalDeductions := state.TotalDeductions
	if req.Deductions != nil {
		rows := make([]Deduction, len(*req.Deductions))
		totalDeductions = 0
		for i, in := range *req.Deductions {
			if in.Amount < 0 {
				return PayslipResponse{}, paysliperrors.ErrNegativeDeduction
			}
			rows[i] = Deduction{
				ID:        uuid.New(),
				PayslipID: payslipID,
				Label:     in.Label,
				Amount:    in.Amount,
				Position:  i,
			}
			totalDeductions += in.Amount
		}

		if err := qtx.ReplaceDeductions(ctx, id, rows); err != nil {
			return PayslipResponse{}, err
		}
	}

	// Gross comes from the same snapshot the status check read, so a
	// concurrent regeneration cannot slip a stale amount into the net.
	netSalary := ClampNet(state.GrossSalary, totalDeductions)

	if err := qtx.UpdateTotals(ctx, id, totalDeductions, netSalary, req.Notes); err != nil {
		return PayslipResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return PayslipResponse{}, err
	}

	s.logger.Info("payslip updated",
		zap.String("payslip_id", id),
		zap.Int64("total_deductions", totalDeductions),
		zap.Int64("net_salary", netSalary),
	)

	updated, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return PayslipResponse{}, mapRepositoryError(err)
	}
	return MapToResponse(*updated), nil
}

// CanModify reports whether the owning pay run still is in DRAFT.
func (s *service) CanModify(ctx context.Context, id string) (bool, error) {
	state, err := s.repo.OwnerState(ctx, id)
	if err != nil {
		return false, mapRepositoryError(err)
	}
	return state.PayRunStatus == payRunDraft, nil
}

func (s *service) GetByID(ctx context.Context, actor domain.Actor, id string) (PayslipResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return PayslipResponse{}, mapRepositoryError(err)
	}

	if !domain.CanAccessCompany(actor, p.CompanyID.String()) {
		return PayslipResponse{}, paysliperrors.ErrPayslipAccessDenied
	}

	return MapToResponse(*p), nil
}

func (s *service) GetAllByPayRun(ctx context.Context, actor domain.Actor, companyID, payRunID string) ([]PayslipResponse, error) {
	if !domain.CanAccessCompany(actor, companyID) {
		return nil, paysliperrors.ErrPayslipAccessDenied
	}

	payslips, err := s.repo.FindAllByPayRun(ctx, companyID, payRunID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	resp := make([]PayslipResponse, len(payslips))
	for i, p := range payslips {
		resp[i] = MapToResponse(p)
	}
	return resp, nil
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return paysliperrors.ErrPayslipNotFound
	}
	return err
}

// MapToResponse is exported because the pay-run engine embeds payslip
// summaries in its own responses.
func MapToResponse(p Payslip) PayslipResponse {
	deductions := make([]DeductionResponse, len(p.Deductions))
	for i, d := range p.Deductions {
		deductions[i] = DeductionResponse{Label: d.Label, Amount: d.Amount}
	}

	return PayslipResponse{
		ID:              p.ID.String(),
		PayRunID:        p.PayRunID.String(),
		EmployeeID:      p.EmployeeID.String(),
		CompanyID:       p.CompanyID.String(),
		GrossSalary:     p.GrossSalary,
		Deductions:      deductions,
		TotalDeductions: p.TotalDeductions,
		NetSalary:       p.NetSalary,
		PaymentStatus:   p.PaymentStatus,
		Notes:           p.Notes,
	}
}
