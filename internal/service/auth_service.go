package service

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/ShivanshS635/phantom-cleaning-sub000/internal/auth"
	"github.com/ShivanshS635/phantom-cleaning-sub000/internal/model"
	"github.com/ShivanshS635/phantom-cleaning-sub000/internal/repository"
)

type AuthService struct {
	users  *repository.UserRepository
	tokens *auth.Manager
}

func NewAuthService(users *repository.UserRepository, tokens *auth.Manager) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

type RegisterInput struct {
	Email    string
	Password string
	FullName string
	Role     string
}

func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*model.User, error) {
	email := strings.TrimSpace(strings.ToLower(input.Email))
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if len(input.Password) < 8 {
		return nil, fmt.Errorf("%w: password must be at least 8 characters", ErrInvalidInput)
	}
	role := input.Role
	if role == "" {
		role = model.RoleAdmin
	}
	if role != model.RoleAdmin && role != model.RoleCleaner {
		return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidInput, input.Role)
	}

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, fmt.Errorf("%w: email already registered", ErrConflict)
	} else if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return s.users.Create(ctx, model.User{
		Email:        email,
		PasswordHash: string(hash),
		FullName:     input.FullName,
		Role:         role,
	})
}

type LoginResult struct {
	Token string
	User  model.User
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := s.users.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrPermissionDenied
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrPermissionDenied
	}

	token, err := s.tokens.Issue(*user)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Token: token, User: *user}, nil
}
