package companyerrors

import (
	"net/http"

	"github.com/Diome1804/Gestion-Salaire-sub000/internal/shared/apperror"
)

var (
	ErrCompanyNotFound = apperror.New(
		apperror.CodeNotFound,
		"Company not found",
		http.StatusNotFound,
	)
	ErrInvalidCompanyID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid company ID",
		http.StatusBadRequest,
	)
	ErrInvalidPeriodType = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid period type, expected MONTHLY, WEEKLY or DAILY",
		http.StatusBadRequest,
	)
	ErrNegativeRate = apperror.New(
		apperror.CodeInvalidInput,
		"Rates cannot be negative",
		http.StatusBadRequest,
	)
	ErrCompanyAccessDenied = apperror.New(
		apperror.CodeForbidden,
		"You cannot access this company",
		http.StatusForbidden,
	)
)
