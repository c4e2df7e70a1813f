package rateserrors

import (
	"net/http"

	"github.com/Diome1804/Gestion-Salaire-sub000/internal/shared/apperror"
)

var (
	ErrNegativeRate = apperror.New(
		apperror.CodeInvalidInput,
		"Rates cannot be negative",
		http.StatusBadRequest,
	)
	ErrRatesAccessDenied = apperror.New(
		apperror.CodeForbidden,
		"You cannot manage rates of another company",
		http.StatusForbidden,
	)
)
