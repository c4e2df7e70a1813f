package payrun

import (
	"errors"
	"strings"

	paysliperrors "github.com/Diome1804/Gestion-Salaire-sub000/internal/payslip/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// mapPayslipBatchError turns a unique violation on the per-run payslip
// index into the Conflict the caller can act on. The index backstops
// payslip generation against concurrent creations for the same run.
func mapPayslipBatchError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "idx_payslip_run_employee" {
			return paysliperrors.ErrDuplicatePayslip
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "idx_payslip_run_employee") {
		return paysliperrors.ErrDuplicatePayslip
	}

	return err
}
