package payrun

import (
	"context"
	"database/sql"
	"time"

	"github.com/Diome1804/Gestion-Salaire-sub000/internal/tenant"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, run *PayRun) error
	FindByID(ctx context.Context, id string) (*PayRun, error)
	FindAllByCompany(ctx context.Context, companyID string) ([]PayRun, error)
	FindAll(ctx context.Context) ([]PayRun, error)
	HasOverlappingPeriod(ctx context.Context, companyID string, periodStart, periodEnd time.Time, excludeID *string) (bool, error)
	UpdateTotals(ctx context.Context, id string, totalGross, totalDeductions, totalNet int64) error
	UpdateStatus(ctx context.Context, id, fromStatus, toStatus string, approvedAt, closedAt *time.Time) error
	Rename(ctx context.Context, id, name string) error
	Delete(ctx context.Context, id string) error
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

// Create goes through the raw connection so the row joins the caller's
// transaction alongside its payslips and the outbox event.
func (r *repository) Create(ctx context.Context, run *PayRun) error {
	query := `
        INSERT INTO pay_runs (
            id, company_id, name, period_type, period_start, period_end,
            status, total_gross, total_deductions, total_net, created_by,
            created_at, updated_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW())
    `

	exec := r.execer()
	_, err := exec.ExecContext(
		ctx, query,
		run.ID, run.CompanyID, run.Name, run.PeriodType,
		run.PeriodStart, run.PeriodEnd, run.Status,
		run.TotalGross, run.TotalDeductions, run.TotalNet, run.CreatedBy,
	)
	return err
}

func (r *repository) FindByID(ctx context.Context, id string) (*PayRun, error) {
	var run PayRun
	err := r.db.WithContext(ctx).
		First(&run, "id = ?", id).Error
	return &run, err
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID string) ([]PayRun, error) {
	var runs []PayRun
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Order("period_start DESC").
		Find(&runs).Error
	return runs, err
}

func (r *repository) FindAll(ctx context.Context) ([]PayRun, error) {
	var runs []PayRun
	err := r.db.WithContext(ctx).
		Order("period_start DESC").
		Find(&runs).Error
	return runs, err
}

// HasOverlappingPeriod reports whether any live pay run of the company
// shares at least one day with [periodStart, periodEnd]. It reads
// through the transaction so a concurrent create cannot slip between
// the check and the insert.
func (r *repository) HasOverlappingPeriod(
	ctx context.Context,
	companyID string,
	periodStart, periodEnd time.Time,
	excludeID *string,
) (bool, error) {
	query := `
        SELECT COUNT(*)
        FROM pay_runs
        WHERE company_id = $1
          AND deleted_at IS NULL
          AND NOT (period_end < $2 OR period_start > $3)
    `
	args := []any{companyID, periodStart, periodEnd}

	if excludeID != nil && *excludeID != "" {
		query += " AND id <> $4"
		args = append(args, *excludeID)
	}

	var count int64
	q := r.querier()
	if err := q.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *repository) UpdateTotals(ctx context.Context, id string, totalGross, totalDeductions, totalNet int64) error {
	query := `
        UPDATE pay_runs
        SET total_gross = $2, total_deductions = $3, total_net = $4, updated_at = NOW()
        WHERE id = $1 AND deleted_at IS NULL
    `
	exec := r.execer()
	_, err := exec.ExecContext(ctx, query, id, totalGross, totalDeductions, totalNet)
	return err
}

// UpdateStatus moves the run from fromStatus to toStatus. The expected
// status sits in the WHERE clause, so a run whose status changed under a
// concurrent request updates zero rows and reports ErrRecordNotFound.
func (r *repository) UpdateStatus(ctx context.Context, id, fromStatus, toStatus string, approvedAt, closedAt *time.Time) error {
	query := `
        UPDATE pay_runs
        SET status = $3,
            approved_at = COALESCE($4, approved_at),
            closed_at = COALESCE($5, closed_at),
            updated_at = NOW()
        WHERE id = $1 AND status = $2 AND deleted_at IS NULL
    `
	exec := r.execer()
	res, err := exec.ExecContext(ctx, query, id, fromStatus, toStatus, approvedAt, closedAt)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) Rename(ctx context.Context, id, name string) error {
	query := `
        UPDATE pay_runs
        SET name = $2, updated_at = NOW()
        WHERE id = $1 AND deleted_at IS NULL
    `
	exec := r.execer()
	_, err := exec.ExecContext(ctx, query, id, name)
	return err
}

// Delete soft deletes the run and its payslips. Deduction lines have no
// tombstone column and go away for good.
func (r *repository) Delete(ctx context.Context, id string) error {
	exec := r.execer()

	if _, err := exec.ExecContext(ctx, `
        DELETE FROM payslip_deductions
        WHERE payslip_id IN (SELECT id FROM payslips WHERE pay_run_id = $1)
    `, id); err != nil {
		return err
	}

	if _, err := exec.ExecContext(ctx, `
        UPDATE payslips SET deleted_at = NOW()
        WHERE pay_run_id = $1 AND deleted_at IS NULL
    `, id); err != nil {
		return err
	}

	_, err := exec.ExecContext(ctx, `
        UPDATE pay_runs SET deleted_at = NOW()
        WHERE id = $1 AND deleted_at IS NULL
    `, id)
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
