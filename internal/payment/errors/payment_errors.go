package paymenterrors

import (
	"net/http"

	"github.com/Diome1804/Gestion-Salaire-sub000/internal/shared/apperror"
)

var (
	ErrPaymentNotFound = apperror.New(
		apperror.CodeNotFound,
		"Payment not found",
		http.StatusNotFound,
	)
	ErrPayslipNotFound = apperror.New(
		apperror.CodeNotFound,
		"Payslip not found",
		http.StatusNotFound,
	)
	ErrPaymentAccessDenied = apperror.New(
		apperror.CodeForbidden,
		"You cannot record payments for this company",
		http.StatusForbidden,
	)
	ErrOverpayment = apperror.New(
		apperror.CodeInvalidAmount,
		"Amount exceeds the remaining balance of the payslip",
		http.StatusUnprocessableEntity,
	)
	ErrNonPositiveAmount = apperror.New(
		apperror.CodeInvalidAmount,
		"Payment amount must be positive",
		http.StatusUnprocessableEntity,
	)
	ErrInvalidMethod = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid payment method",
		http.StatusBadRequest,
	)
)
