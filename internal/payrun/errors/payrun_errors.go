package payrunerrors

import (
	"net/http"

	"github.com/Diome1804/Gestion-Salaire-sub000/internal/shared/apperror"
)

var (
	ErrPayRunNotFound = apperror.New(
		apperror.CodeNotFound,
		"Pay run not found",
		http.StatusNotFound,
	)
	ErrPayRunAccessDenied = apperror.New(
		apperror.CodeForbidden,
		"You cannot access this pay run",
		http.StatusForbidden,
	)
	ErrPeriodOverlap = apperror.New(
		apperror.CodeConflict,
		"A pay run already covers part of this period",
		http.StatusConflict,
	)
	ErrInvalidTransition = apperror.New(
		apperror.CodeInvalidTransition,
		"Pay run status can only move DRAFT to APPROVED to CLOSED",
		http.StatusConflict,
	)
	ErrPayRunClosed = apperror.New(
		apperror.CodeInvalidTransition,
		"A closed pay run cannot be modified",
		http.StatusConflict,
	)
	ErrDeleteOnlyDraft = apperror.New(
		apperror.CodeInvalidState,
		"Only DRAFT pay runs can be deleted",
		http.StatusConflict,
	)
	ErrInvalidPeriodType = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid period type, expected MONTHLY, WEEKLY or DAILY",
		http.StatusBadRequest,
	)
	ErrInvalidAnchorDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidStatusValue = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid status, expected DRAFT, APPROVED or CLOSED",
		http.StatusBadRequest,
	)
)
