package company

import (
	"context"
	"database/sql"
	"errors"

	companyerrors "github.com/Diome1804/Gestion-Salaire-sub000/internal/company/errors"
	"github.com/Diome1804/Gestion-Salaire-sub000/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service interface {
	Create(ctx context.Context, actor domain.Actor, req CreateCompanyRequest) (CompanyResponse, error)
	GetAll(ctx context.Context, actor domain.Actor) ([]CompanyResponse, error)
	GetByID(ctx context.Context, actor domain.Actor, id string) (CompanyResponse, error)
	Update(ctx context.Context, actor domain.Actor, id string, req UpdateCompanyRequest) (CompanyResponse, error)
	Delete(ctx context.Context, actor domain.Actor, id string) error
}

type service struct {
	db   *sql.DB
	repo Repository
}

func NewService(db *sql.DB, repo Repository) Service {
	return &service{db: db, repo: repo}
}

func (s *service) Create(
	ctx context.Context,
	actor domain.Actor,
	req CreateCompanyRequest,
) (CompanyResponse, error) {
	if actor.Role != domain.RoleSuperAdmin {
		return CompanyResponse{}, companyerrors.ErrCompanyAccessDenied
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return CompanyResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	c := &Company{
		ID:           uuid.New(),
		Name:         req.Name,
		Currency:     req.Currency,
		PeriodType:   req.PeriodType,
		HourlyRate:   req.HourlyRate,
		DailyRate:    req.DailyRate,
		OvertimeRate: req.OvertimeRate,
		IsActive:     true,
	}

	if err := qtx.Create(ctx, c); err != nil {
		return CompanyResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return CompanyResponse{}, err
	}

	return mapToResponse(*c), nil
}

func (s *service) GetAll(ctx context.Context, actor domain.Actor) ([]CompanyResponse, error) {
	if actor.Role == domain.RoleSuperAdmin {
		companies, err := s.repo.FindAll(ctx)
		if err != nil {
			return nil, err
		}
		return mapToListResponse(companies), nil
	}

	// Non-superadmins only ever see their own company.
	if actor.CompanyID == "" {
		return nil, companyerrors.ErrCompanyAccessDenied
	}
	c, err := s.repo.FindByID(ctx, actor.CompanyID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return []CompanyResponse{mapToResponse(*c)}, nil
}

func (s *service) GetByID(ctx context.Context, actor domain.Actor, id string) (CompanyResponse, error) {
	if !domain.CanAccessCompany(actor, id) {
		return CompanyResponse{}, companyerrors.ErrCompanyAccessDenied
	}

	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return CompanyResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*c), nil
}

func (s *service) Update(
	ctx context.Context,
	actor domain.Actor,
	id string,
	req UpdateCompanyRequest,
) (CompanyResponse, error) {
	if !domain.CanAccessCompany(actor, id) {
		return CompanyResponse{}, companyerrors.ErrCompanyAccessDenied
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return CompanyResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	c, err := qtx.FindByID(ctx, id)
	if err != nil {
		return CompanyResponse{}, mapRepositoryError(err)
	}

	if req.Name != nil {
		c.Name = *req.Name
	}
	if req.Currency != nil {
		c.Currency = *req.Currency
	}
	if req.PeriodType != nil {
		if !ValidPeriodType(*req.PeriodType) {
			return CompanyResponse{}, companyerrors.ErrInvalidPeriodType
		}
		c.PeriodType = *req.PeriodType
	}
	if req.IsActive != nil {
		c.IsActive = *req.IsActive
	}

	if err := qtx.Update(ctx, c); err != nil {
		return CompanyResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return CompanyResponse{}, err
	}

	return mapToResponse(*c), nil
}

func (s *service) Delete(ctx context.Context, actor domain.Actor, id string) error {
	if actor.Role != domain.RoleSuperAdmin {
		return companyerrors.ErrCompanyAccessDenied
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

	if err := qtx.Delete(ctx, id); err != nil {
		return err
	}

	return tx.Commit()
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return companyerrors.ErrCompanyNotFound
	}
	return err
}

func mapToResponse(c Company) CompanyResponse {
	return CompanyResponse{
		ID:           c.ID.String(),
		Name:         c.Name,
		Currency:     c.Currency,
		PeriodType:   c.PeriodType,
		HourlyRate:   c.HourlyRate,
		DailyRate:    c.DailyRate,
		OvertimeRate: c.OvertimeRate,
		IsActive:     c.IsActive,
	}
}

func mapToListResponse(companies []Company) []CompanyResponse {
	resp := make([]CompanyResponse, len(companies))
	for i, c := range companies {
		resp[i] = mapToResponse(c)
	}
	return resp
}
