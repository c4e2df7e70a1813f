package attendance

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/Diome1804/Gestion-Salaire-sub000/internal/domain"
	"github.com/Diome1804/Gestion-Salaire-sub000/internal/shared/apperror"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	errAlreadyClockedIn = apperror.New(apperror.CodeConflict, "Already clocked in for today", http.StatusConflict)
	errNoClockIn        = apperror.New(apperror.CodeNotFound, "Clock in not found for today", http.StatusNotFound)
	errAlreadyOut       = apperror.New(apperror.CodeConflict, "Already clocked out for today", http.StatusConflict)
	errAccessDenied     = apperror.New(apperror.CodeForbidden, "You cannot record attendance for this company", http.StatusForbidden)
)

type Service interface {
	ClockIn(ctx context.Context, actor domain.Actor, companyID string, req ClockInRequest) (AttendanceResponse, error)
	ClockOut(ctx context.Context, actor domain.Actor, companyID string, req ClockOutRequest) (AttendanceResponse, error)
	GetAll(ctx context.Context, actor domain.Actor, companyID string) ([]AttendanceResponse, error)
	PresentDays(ctx context.Context, employeeID string, from, to time.Time) (int64, error)
}

type service struct {
	db   *sql.DB
	repo Repository
}

func NewService(db *sql.DB, repo Repository) Service {
	return &service{db: db, repo: repo}
}

func (s *service) ClockIn(ctx context.Context, actor domain.Actor, companyID string, req ClockInRequest) (AttendanceResponse, error) {
	if !domain.CanRecordAttendance(actor, companyID) {
		return AttendanceResponse{}, errAccessDenied
	}

	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return AttendanceResponse{}, apperror.ErrInvalidInput
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	now := time.Now().UTC()
	today := now.Truncate(24 * time.Hour)

	existing, err := qtx.FindByEmployeeAndDate(ctx, companyID, req.EmployeeID, today)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return AttendanceResponse{}, err
	}
	if err == nil && existing != nil {
		return AttendanceResponse{}, errAlreadyClockedIn
	}

	source := req.Source
	if source == "" {
		source = SourceManual
	}

	row := &Attendance{
		ID:             uuid.New(),
		CompanyID:      companyUUID,
		EmployeeID:     uuid.MustParse(req.EmployeeID),
		AttendanceDate: today,
		ClockIn:        now,
		Status:         StatusPresent,
		Source:         source,
		ExternalRef:    req.ExternalRef,
		Notes:          req.Notes,
	}

	if err := qtx.Create(ctx, row); err != nil {
		return AttendanceResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return AttendanceResponse{}, err
	}
	return mapToResponse(*row), nil
}

func (s *service) ClockOut(ctx context.Context, actor domain.Actor, companyID string, req ClockOutRequest) (AttendanceResponse, error) {
	if !domain.CanRecordAttendance(actor, companyID) {
		return AttendanceResponse{}, errAccessDenied
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	now := time.Now().UTC()
	today := now.Truncate(24 * time.Hour)

	row, err := qtx.FindByEmployeeAndDate(ctx, companyID, req.EmployeeID, today)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AttendanceResponse{}, errNoClockIn
		}
		return AttendanceResponse{}, err
	}
	if row.ClockOut != nil {
		return AttendanceResponse{}, errAlreadyOut
	}

	row.ClockOut = &now
	if req.Notes != nil {
		row.Notes = req.Notes
	}

	if err := qtx.Update(ctx, row); err != nil {
		return AttendanceResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return AttendanceResponse{}, err
	}
	return mapToResponse(*row), nil
}

func (s *service) GetAll(ctx context.Context, actor domain.Actor, companyID string) ([]AttendanceResponse, error) {
	if !domain.CanRecordAttendance(actor, companyID) {
		return nil, errAccessDenied
	}

	rows, err := s.repo.FindAllByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	res := make([]AttendanceResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res, nil
}

// PresentDays feeds payroll generation; no actor check because the
// pay-run engine calls it after its own authorization.
func (s *service) PresentDays(ctx context.Context, employeeID string, from, to time.Time) (int64, error) {
	return s.repo.CountPresentDays(ctx, employeeID, from, to)
}

func mapToResponse(a Attendance) AttendanceResponse {
	resp := AttendanceResponse{
		ID:             a.ID.String(),
		CompanyID:      a.CompanyID.String(),
		EmployeeID:     a.EmployeeID.String(),
		AttendanceDate: a.AttendanceDate.Format("2006-01-02"),
		ClockIn:        a.ClockIn.Format(time.RFC3339),
		Status:         a.Status,
		Source:         a.Source,
		ExternalRef:    a.ExternalRef,
		Notes:          a.Notes,
	}
	if a.ClockOut != nil {
		v := a.ClockOut.Format(time.RFC3339)
		resp.ClockOut = &v
	}
	return resp
}
