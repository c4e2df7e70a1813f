package employee

import (
	"context"
	"database/sql"

	"github.com/Diome1804/Gestion-Salaire-sub000/internal/domain"
	employeeerrors "github.com/Diome1804/Gestion-Salaire-sub000/internal/employee/errors"
	"github.com/Diome1804/Gestion-Salaire-sub000/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	Create(ctx context.Context, actor domain.Actor, companyID string, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context, actor domain.Actor, companyID string) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, actor domain.Actor, companyID, id string) (EmployeeResponse, error)
	Update(ctx context.Context, actor domain.Actor, companyID, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Activate(ctx context.Context, actor domain.Actor, companyID, id string) error
	Deactivate(ctx context.Context, actor domain.Actor, companyID, id string) error
	HardDelete(ctx context.Context, actor domain.Actor, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Create(
	ctx context.Context,
	actor domain.Actor,
	companyID string,
	req CreateEmployeeRequest,
) (EmployeeResponse, error) {
	if !domain.CanAccessCompany(actor, companyID) {
		return EmployeeResponse{}, employeeerrors.ErrEmployeeAccessDenied
	}

	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidCompanyID
	}

	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("company_id", companyID),
		zap.String("contract_type", req.ContractType),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	e := &Employee{
		ID:           uuid.New(),
		CompanyID:    companyUUID,
		FullName:     req.FullName,
		Email:        req.Email,
		ContractType: req.ContractType,
		RateOrSalary: req.RateOrSalary,
		IsActive:     true,
	}

	if err := qtx.Create(ctx, e); err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return EmployeeResponse{}, err
	}

	return mapToResponse(*e), nil
}

func (s *service) GetAll(ctx context.Context, actor domain.Actor, companyID string) ([]EmployeeResponse, error) {
	if !domain.CanAccessCompany(actor, companyID) {
		return nil, employeeerrors.ErrEmployeeAccessDenied
	}

	employees, err := s.repo.FindAllByCompany(ctx, companyID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(employees), nil
}

func (s *service) GetByID(ctx context.Context, actor domain.Actor, companyID, id string) (EmployeeResponse, error) {
	if !domain.CanAccessCompany(actor, companyID) {
		return EmployeeResponse{}, employeeerrors.ErrEmployeeAccessDenied
	}

	e, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*e), nil
}

func (s *service) Update(
	ctx context.Context,
	actor domain.Actor,
	companyID, id string,
	req UpdateEmployeeRequest,
) (EmployeeResponse, error) {
	if !domain.CanAccessCompany(actor, companyID) {
		return EmployeeResponse{}, employeeerrors.ErrEmployeeAccessDenied
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	e, err := qtx.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if req.FullName != nil {
		e.FullName = *req.FullName
	}
	if req.Email != nil {
		e.Email = *req.Email
	}
	if req.ContractType != nil {
		if !ValidContractType(*req.ContractType) {
			return EmployeeResponse{}, employeeerrors.ErrInvalidContractType
		}
		e.ContractType = *req.ContractType
	}
	if req.RateOrSalary != nil {
		e.RateOrSalary = *req.RateOrSalary
	}

	if err := qtx.Update(ctx, e); err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return EmployeeResponse{}, err
	}

	return mapToResponse(*e), nil
}

func (s *service) Activate(ctx context.Context, actor domain.Actor, companyID, id string) error {
	return s.setActive(ctx, actor, companyID, id, true)
}

func (s *service) Deactivate(ctx context.Context, actor domain.Actor, companyID, id string) error {
	return s.setActive(ctx, actor, companyID, id, false)
}

func (s *service) setActive(ctx context.Context, actor domain.Actor, companyID, id string, active bool) error {
	if !domain.CanAccessCompany(actor, companyID) {
		return employeeerrors.ErrEmployeeAccessDenied
	}

	if err := s.repo.SetActive(ctx, companyID, id, active); err != nil {
		return mapRepositoryError(err)
	}

	s.logger.Info("employee active flag changed",
		zap.String("employee_id", id),
		zap.Bool("is_active", active),
	)
	return nil
}

// HardDelete removes the row for good; activate/deactivate is the
// normal lifecycle, so this stays behind the SUPERADMIN role.
func (s *service) HardDelete(ctx context.Context, actor domain.Actor, id string) error {
	if actor.Role != domain.RoleSuperAdmin {
		return employeeerrors.ErrHardDeleteRestricted
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if _, err := qtx.FindByID(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	if err := qtx.HardDelete(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	return tx.Commit()
}

func mapToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:                 e.ID.String(),
		CompanyID:          e.CompanyID.String(),
		FullName:           e.FullName,
		Email:              e.Email,
		ContractType:       e.ContractType,
		RateOrSalary:       e.RateOrSalary,
		CustomHourlyRate:   e.CustomHourlyRate,
		CustomDailyRate:    e.CustomDailyRate,
		CustomOvertimeRate: e.CustomOvertimeRate,
		IsActive:           e.IsActive,
	}
}

func mapToListResponse(employees []Employee) []EmployeeResponse {
	resp := make([]EmployeeResponse, len(employees))
	for i, e := range employees {
		resp[i] = mapToResponse(e)
	}
	return resp
}
