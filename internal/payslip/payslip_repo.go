package payslip

import (
	"context"
	"database/sql"

	"github.com/Diome1804/Gestion-Salaire-sub000/internal/tenant"

	"gorm.io/gorm"
)

// OwnerState is the slice of payslip and owning pay run a payslip edit
// needs: the run status gates mutability, its company scopes
// authorization, and the amounts feed the net derivation from the same
// snapshot the status check saw.
type OwnerState struct {
	PayRunStatus    string
	CompanyID       string
	GrossSalary     int64
	TotalDeductions int64
}

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	CreateBatch(ctx context.Context, payslips []Payslip) error
	FindByID(ctx context.Context, id string) (*Payslip, error)
	FindAllByPayRun(ctx context.Context, companyID, payRunID string) ([]Payslip, error)
	OwnerState(ctx context.Context, payslipID string) (OwnerState, error)
	ReplaceDeductions(ctx context.Context, payslipID string, rows []Deduction) error
	UpdateTotals(ctx context.Context, payslipID string, totalDeductions, netSalary int64, notes *string) error
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

// CreateBatch inserts the payslips generated for one pay run. It goes
// through the raw connection so the rows join the caller's transaction;
// the unique (pay_run_id, employee_id) index backstops double runs.
func (r *repository) CreateBatch(ctx context.Context, payslips []Payslip) error {
	query := `
        INSERT INTO payslips (
            id, pay_run_id, employee_id, company_id,
            gross_salary, total_deductions, net_salary, payment_status,
            created_at, updated_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
    `

	exec := r.execer()
	for i := range payslips {
		p := &payslips[i]
		if _, err := exec.ExecContext(
			ctx, query,
			p.ID, p.PayRunID, p.EmployeeID, p.CompanyID,
			p.GrossSalary, p.TotalDeductions, p.NetSalary, p.PaymentStatus,
		); err != nil {
			return err
		}
	}
	return nil
}

func (r *repository) FindByID(ctx context.Context, id string) (*Payslip, error) {
	var p Payslip
	err := r.db.WithContext(ctx).
		Preload("Deductions", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		First(&p, "id = ?", id).Error
	return &p, err
}

func (r *repository) FindAllByPayRun(ctx context.Context, companyID, payRunID string) ([]Payslip, error) {
	var payslips []Payslip
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("pay_run_id = ?", payRunID).
		Preload("Deductions", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Find(&payslips).Error
	return payslips, err
}

func (r *repository) OwnerState(ctx context.Context, payslipID string) (OwnerState, error) {
	query := `
SELECT pr.status, pr.company_id::text, ps.gross_salary, ps.total_deductions
FROM payslips ps
JOIN pay_runs pr ON pr.id = ps.pay_run_id
WHERE ps.id = $1 AND ps.deleted_at IS NULL
`

	var state OwnerState
	row := r.querier().QueryRowContext(ctx, query, payslipID)
	if err := row.Scan(&state.PayRunStatus, &state.CompanyID, &state.GrossSalary, &state.TotalDeductions); err != nil {
		if err == sql.ErrNoRows {
			return OwnerState{}, gorm.ErrRecordNotFound
		}
		return OwnerState{}, err
	}
	return state, nil
}

// ReplaceDeductions is a full replace, not a merge: the ledger always
// receives the complete list.
func (r *repository) ReplaceDeductions(ctx context.Context, payslipID string, rows []Deduction) error {
	exec := r.execer()

	if _, err := exec.ExecContext(ctx,
		`DELETE FROM payslip_deductions WHERE payslip_id = $1`, payslipID,
	); err != nil {
		return err
	}

	query := `
        INSERT INTO payslip_deductions (id, payslip_id, label, amount, position, created_at)
        VALUES ($1, $2, $3, $4, $5, NOW())
    `
	for i := range rows {
		d := &rows[i]
		if _, err := exec.ExecContext(ctx, query, d.ID, d.PayslipID, d.Label, d.Amount, d.Position); err != nil {
			return err
		}
	}
	return nil
}

func (r *repository) UpdateTotals(ctx context.Context, payslipID string, totalDeductions, netSalary int64, notes *string) error {
	query := `
UPDATE payslips
SET total_deductions = $2,
	net_salary = $3,
	notes = COALESCE($4, notes),
	updated_at = NOW()
WHERE id = $1
`
	_, err := r.execer().ExecContext(ctx, query, payslipID, totalDeductions, netSalary, notes)
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
