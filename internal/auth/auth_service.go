package auth

import (
	"context"
	"os"
	"time"

	autherrors "github.com/Diome1804/Gestion-Salaire-sub000/internal/auth/errors"
	"github.com/Diome1804/Gestion-Salaire-sub000/internal/domain"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type Service interface {
	Login(ctx context.Context, email, password string) (accessToken, refreshToken string, resp AuthResponse, err error)
	RefreshToken(ctx context.Context, refreshToken string) (newAccessToken, newRefreshToken string, resp AuthResponse, err error)
	GetMe(ctx context.Context, userID string) (*AuthResponse, error)
	Register(ctx context.Context, actor domain.Actor, req RegisterRequest) (AuthResponse, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Login(ctx context.Context, email, password string) (string, string, AuthResponse, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", "", AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	accessToken, err := generateToken(user, time.Minute*15)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}
	refreshToken, err := generateToken(user, time.Hour*24*7)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}

	return accessToken, refreshToken, mapToResponse(user), nil
}

func (s *service) RefreshToken(ctx context.Context, refreshToken string) (string, string, AuthResponse, error) {
	token, err := jwt.Parse(refreshToken, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, autherrors.ErrInvalidToken
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return "", "", AuthResponse{}, autherrors.ErrInvalidRefreshToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", AuthResponse{}, autherrors.ErrInvalidToken
	}

	userIDStr, ok := claims["user_id"].(string)
	if !ok {
		return "", "", AuthResponse{}, autherrors.ErrInvalidToken
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrInvalidUserID
	}

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrUserNotFound
	}

	newAccessToken, err := generateToken(user, time.Minute*15)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}
	newRefreshToken, err := generateToken(user, time.Hour*24*7)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}

	return newAccessToken, newRefreshToken, mapToResponse(user), nil
}

func (s *service) GetMe(ctx context.Context, userID string) (*AuthResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, autherrors.ErrInvalidUserID
	}

	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, autherrors.ErrUserNotFound
	}

	resp := mapToResponse(user)
	return &resp, nil
}

// Register creates an account. SUPERADMIN can create any role anywhere;
// ADMIN can create cashiers and guards inside their own company.
func (s *service) Register(ctx context.Context, actor domain.Actor, req RegisterRequest) (AuthResponse, error) {
	if !domain.ValidRole(req.Role) {
		return AuthResponse{}, autherrors.ErrInvalidRole
	}

	switch actor.Role {
	case domain.RoleSuperAdmin:
	case domain.RoleAdmin:
		if req.Role == domain.RoleSuperAdmin || req.Role == domain.RoleAdmin {
			return AuthResponse{}, autherrors.ErrRoleNotAllowed
		}
		if req.CompanyID == "" {
			req.CompanyID = actor.CompanyID
		}
		if req.CompanyID != actor.CompanyID {
			return AuthResponse{}, autherrors.ErrRoleNotAllowed
		}
	default:
		return AuthResponse{}, autherrors.ErrRoleNotAllowed
	}

	var companyID *uuid.UUID
	if req.Role != domain.RoleSuperAdmin {
		if req.CompanyID == "" {
			return AuthResponse{}, autherrors.ErrCompanyRequired
		}
		id, err := uuid.Parse(req.CompanyID)
		if err != nil {
			return AuthResponse{}, autherrors.ErrCompanyRequired
		}
		companyID = &id
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return AuthResponse{}, err
	}

	user := &User{
		ID:        uuid.New(),
		CompanyID: companyID,
		Email:     req.Email,
		FullName:  req.FullName,
		Password:  string(hashed),
		Role:      req.Role,
		IsActive:  true,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return AuthResponse{}, mapCreateError(err)
	}

	return mapToResponse(user), nil
}

func generateToken(user *User, expiry time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID.String(),
		"role":    user.Role,
		"exp":     time.Now().Add(expiry).Unix(),
	}
	if user.CompanyID != nil {
		claims["company_id"] = user.CompanyID.String()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

func mapToResponse(user *User) AuthResponse {
	resp := AuthResponse{
		ID:       user.ID.String(),
		Email:    user.Email,
		FullName: user.FullName,
		Role:     user.Role,
	}
	if user.CompanyID != nil {
		resp.CompanyID = user.CompanyID.String()
	}
	return resp
}
