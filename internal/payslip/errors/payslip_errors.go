package paysliperrors

import (
	"net/http"

	"github.com/Diome1804/Gestion-Salaire-sub000/internal/shared/apperror"
)

var (
	ErrPayslipNotFound = apperror.New(
		apperror.CodeNotFound,
		"Payslip not found",
		http.StatusNotFound,
	)
	ErrPayslipLocked = apperror.New(
		apperror.CodeForbidden,
		"Cannot modify a payslip once its pay run left DRAFT",
		http.StatusForbidden,
	)
	ErrPayslipAccessDenied = apperror.New(
		apperror.CodeForbidden,
		"You cannot access payslips of another company",
		http.StatusForbidden,
	)
	ErrNegativeDeduction = apperror.New(
		apperror.CodeInvalidInput,
		"Deduction amounts cannot be negative",
		http.StatusBadRequest,
	)
	ErrDuplicatePayslip = apperror.New(
		apperror.CodeConflict,
		"A payslip already exists for this employee in this pay run",
		http.StatusConflict,
	)
)
