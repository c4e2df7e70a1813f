package auth

import (
	"errors"
	"strings"

	autherrors "github.com/Diome1804/Gestion-Salaire-sub000/internal/auth/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

func mapCreateError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_user_email" {
			return autherrors.ErrEmailAlreadyRegistered
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_user_email") {
		return autherrors.ErrEmailAlreadyRegistered
	}

	return err
}
