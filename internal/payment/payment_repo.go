package payment

import (
	"context"
	"database/sql"
	"errors"

	"gorm.io/gorm"
)

// PayslipState is the slice of the owning payslip the reconciliation
// needs: the ceiling for payments and the company for authorization.
type PayslipState struct {
	NetSalary     int64
	CompanyID     string
	PaymentStatus string
}

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, payment *Payment) error
	Update(ctx context.Context, payment *Payment) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*Payment, error)
	FindAllByPayslip(ctx context.Context, payslipID string) ([]Payment, error)
	PayslipState(ctx context.Context, payslipID string) (PayslipState, error)
	SumByPayslip(ctx context.Context, payslipID string, excludeID *string) (int64, error)
	UpdatePayslipStatus(ctx context.Context, payslipID, status string) error
}

type repository struct {
	db    *gorm.DB
	sqlDB *sql.DB
	tx    *sql.Tx
}

func NewRepository(db *gorm.DB, sqlDB *sql.DB) Repository {
	return &repository{db: db, sqlDB: sqlDB}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, sqlDB: r.sqlDB, tx: tx}
}

func (r *repository) Create(ctx context.Context, payment *Payment) error {
	query := `
        INSERT INTO payments (
            id, payslip_id, company_id, amount, method, reference, notes,
            created_by, created_at, updated_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
    `
	exec := r.execer()
	_, err := exec.ExecContext(
		ctx, query,
		payment.ID, payment.PayslipID, payment.CompanyID,
		payment.Amount, payment.Method, payment.Reference, payment.Notes,
		payment.CreatedBy,
	)
	return err
}

func (r *repository) Update(ctx context.Context, payment *Payment) error {
	query := `
        UPDATE payments
        SET amount = $2, method = $3, reference = $4, notes = $5, updated_at = NOW()
        WHERE id = $1 AND deleted_at IS NULL
    `
	exec := r.execer()
	_, err := exec.ExecContext(
		ctx, query,
		payment.ID, payment.Amount, payment.Method, payment.Reference, payment.Notes,
	)
	return err
}

func (r *repository) Delete(ctx context.Context, id string) error {
	query := `
        UPDATE payments SET deleted_at = NOW()
        WHERE id = $1 AND deleted_at IS NULL
    `
	exec := r.execer()
	_, err := exec.ExecContext(ctx, query, id)
	return err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Payment, error) {
	var payment Payment
	err := r.db.WithContext(ctx).
		First(&payment, "id = ?", id).Error
	return &payment, err
}

func (r *repository) FindAllByPayslip(ctx context.Context, payslipID string) ([]Payment, error) {
	var payments []Payment
	err := r.db.WithContext(ctx).
		Where("payslip_id = ?", payslipID).
		Order("created_at ASC").
		Find(&payments).Error
	return payments, err
}

// PayslipState reads the owning payslip through the transaction so the
// overpayment guard sees committed state only.
func (r *repository) PayslipState(ctx context.Context, payslipID string) (PayslipState, error) {
	query := `
        SELECT net_salary, company_id::text, payment_status
        FROM payslips
        WHERE id = $1 AND deleted_at IS NULL
    `
	q := r.querier()

	var state PayslipState
	err := q.QueryRowContext(ctx, query, payslipID).
		Scan(&state.NetSalary, &state.CompanyID, &state.PaymentStatus)
	if errors.Is(err, sql.ErrNoRows) {
		return PayslipState{}, gorm.ErrRecordNotFound
	}
	return state, err
}

// SumByPayslip totals the live payments of a payslip, optionally leaving
// one payment out so updates can compute "everyone but me".
func (r *repository) SumByPayslip(ctx context.Context, payslipID string, excludeID *string) (int64, error) {
	query := `
        SELECT COALESCE(SUM(amount), 0)
        FROM payments
        WHERE payslip_id = $1 AND deleted_at IS NULL
    `
	args := []any{payslipID}

	if excludeID != nil && *excludeID != "" {
		query += " AND id <> $2"
		args = append(args, *excludeID)
	}

	q := r.querier()

	var total int64
	err := q.QueryRowContext(ctx, query, args...).Scan(&total)
	return total, err
}

func (r *repository) UpdatePayslipStatus(ctx context.Context, payslipID, status string) error {
	query := `
        UPDATE payslips SET payment_status = $2, updated_at = NOW()
        WHERE id = $1 AND deleted_at IS NULL
    `
	exec := r.execer()
	_, err := exec.ExecContext(ctx, query, payslipID, status)
	return err
}

func (r *repository) execer() interface {
	ExecContext(context.Context, string, ...any) (sql.Result, error)
} {
	if r.tx != nil {
		return r.tx
	}
	return r.sqlDB
}

func (r *repository) querier() interface {
	QueryRowContext(context.Context, string, ...any) *sql.Row
} {
	if r.tx != nil {
		return r.tx
	}
	return r.sqlDB
}
