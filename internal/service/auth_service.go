package service

import (
	"context"
	"errors"
	"time"

	"voyagr/internal/dto"
	"voyagr/internal/models"
	"voyagr/pkg/auth"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("user already exists")
)

type AuthService struct {
	userStore  UserStore
	jwtManager *auth.JWTManager
	logger     *zap.Logger
}

func NewAuthService(userStore UserStore, jwtManager *auth.JWTManager, logger *zap.Logger) *AuthService {
	return &AuthService{
		userStore:  userStore,
		jwtManager: jwtManager,
		logger:     logger,
	}
}

func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	existingUser, _ := s.userStore.GetByEmail(ctx, req.Email)
	if existingUser != nil {
		return nil, ErrUserExists
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &models.User{
		ID:        uuid.New(),
		Username:  req.Username,
		Email:     req.Email,
		Password:  hashedPassword,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.userStore.Create(ctx, user); err != nil {
		return nil, err
	}

	return s.tokensFor(user)
}

func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userStore.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if !auth.CheckPasswordHash(req.Password, user.Password) {
		return nil, ErrInvalidCredentials
	}

	return s.tokensFor(user)
}

func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*dto.AuthResponse, error) {
	claims, err := s.jwtManager.ValidateToken(refreshToken)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	return s.tokensFor(user)
}

func (s *AuthService) tokensFor(user *models.User) (*dto.AuthResponse, error) {
	accessToken, err := s.jwtManager.GenerateToken(user.ID.String(), user.Username, user.Email)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.jwtManager.GenerateRefreshToken(user.ID.String())
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    int64(s.jwtManager.GetTokenDuration().Seconds()),
		User: dto.UserResponse{
			ID:       user.ID.String(),
			Username: user.Username,
			Email:    user.Email,
		},
	}, nil
}
