package user

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"time"

	userRepo "clinicbook/database/repository/user"
	"clinicbook/models"
	"clinicbook/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailTaken         = errors.New("an account with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

const tokenLifetime = 24 * time.Hour

// AuthResponse carries the signed token alongside the account details.
type AuthResponse struct {
	ID       string `json:"id"`
	Token    string `json:"token"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// RegisterInput is the signup payload.
type RegisterInput struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// UserService manages registered accounts.
type UserService interface {
	Register(ctx context.Context, input RegisterInput) (*AuthResponse, error)
	Authenticate(ctx context.Context, email, password string) (*AuthResponse, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
}

// DefaultUserService implements UserService backed by the user repository.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

func (s *DefaultUserService) Register(ctx context.Context, input RegisterInput) (*AuthResponse, error) {
	if input.FullName == "" {
		return nil, fmt.Errorf("full name is required")
	}
	if _, err := mail.ParseAddress(input.Email); err != nil {
		return nil, fmt.Errorf("email is not a valid address")
	}
	if len(input.Password) < 8 {
		return nil, fmt.Errorf("password must be at least 8 characters long")
	}

	existing, err := s.Repo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing account: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	usr := &models.User{
		ID:           uuid.New().String(),
		FullName:     input.FullName,
		Email:        input.Email,
		Phone:        input.Phone,
		PasswordHash: string(hash),
		Role:         models.RoleCustomer,
		CreatedAt:    time.Now(),
	}
	if err := s.Repo.Create(ctx, usr); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	utils.GetLogger().Info("user registered", zap.String("userID", usr.ID))
	return s.respondWithToken(ctx, usr)
}

func (s *DefaultUserService) Authenticate(ctx context.Context, email, password string) (*AuthResponse, error) {
	usr, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}
	if usr == nil {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return s.respondWithToken(ctx, usr)
}

func (s *DefaultUserService) GetByID(ctx context.Context, id string) (*models.User, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultUserService) respondWithToken(ctx context.Context, usr *models.User) (*AuthResponse, error) {
	token, err := utils.GenerateToken(usr.ID, usr.Role, tokenLifetime)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}
	s.recordSession(ctx, usr.ID, token)
	return &AuthResponse{
		ID:       usr.ID,
		Token:    token,
		FullName: usr.FullName,
		Email:    usr.Email,
		Role:     usr.Role,
	}, nil
}
