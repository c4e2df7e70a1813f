package employeeerrors

import (
	"net/http"

	"github.com/Diome1804/Gestion-Salaire-sub000/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrEmployeeAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Employee with the same email already exists",
		http.StatusConflict,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
	ErrInvalidCompanyID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid company ID",
		http.StatusBadRequest,
	)
	ErrInvalidContractType = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid contract type, expected FIXED, DAILY, FREELANCE or HONORAIRE",
		http.StatusBadRequest,
	)
	ErrEmployeeAccessDenied = apperror.New(
		apperror.CodeForbidden,
		"You cannot manage employees of another company",
		http.StatusForbidden,
	)
	ErrHardDeleteRestricted = apperror.New(
		apperror.CodeForbidden,
		"Only a super admin can permanently delete an employee",
		http.StatusForbidden,
	)
)
