package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/abdulmoeez1225/Todo-Challenge-With-Docker/internal/common"
	"github.com/abdulmoeez1225/Todo-Challenge-With-Docker/internal/common/security"
	"github.com/abdulmoeez1225/Todo-Challenge-With-Docker/internal/domain/model"
	"github.com/abdulmoeez1225/Todo-Challenge-With-Docker/internal/domain/repository"
	"github.com/google/uuid"
)

// TokenIssuer mints bearer tokens for authenticated users.
type TokenIssuer interface {
	GenerateToken(userUUID, email string) (string, error)
}

type AuthService struct {
	userRepo repository.UserRepository
	tokens   TokenIssuer
}

func NewAuthService(userRepo repository.UserRepository, tokens TokenIssuer) *AuthService {
	return &AuthService{userRepo: userRepo, tokens: tokens}
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterResponse struct {
	UUID      string    `json:"uuid"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*RegisterResponse, error) {
	if req.Email == "" || !validEmail(req.Email) || !validPassword(req.Password) {
		return nil, validationError(MsgInvalidRegistration)
	}
	if len(req.Password) > security.MaxPasswordBytes {
		return nil, validationError(MsgPasswordTooLong)
	}

	hashedPassword, err := security.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		UUID:         uuid.NewString(),
		Email:        req.Email,
		PasswordHash: hashedPassword,
	}

	// Duplicates surface here as common.ErrConflict from the unique constraint.
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return &RegisterResponse{UUID: user.UUID, Email: user.Email, CreatedAt: user.CreatedAt}, nil
}

func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, validationError(MsgLoginFieldsRequired)
	}

	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			security.BurnPasswordCheck(req.Password)
			return nil, common.NewError(common.ErrUnauthorized, MsgInvalidCredentials)
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if !security.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, common.NewError(common.ErrUnauthorized, MsgInvalidCredentials)
	}

	token, err := s.tokens.GenerateToken(user.UUID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return &LoginResponse{Token: token}, nil
}
