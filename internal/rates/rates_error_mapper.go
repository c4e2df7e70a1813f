package rates

import (
	"errors"

	companyerrors "github.com/Diome1804/Gestion-Salaire-sub000/internal/company/errors"
	employeeerrors "github.com/Diome1804/Gestion-Salaire-sub000/internal/employee/errors"

	"gorm.io/gorm"
)

func mapEmployeeError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}
	return err
}

func mapCompanyError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return companyerrors.ErrCompanyNotFound
	}
	return err
}
