package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/dostavka-go/user-service/internal/pkg/logger"
	"github.com/dostavka-go/user-service/internal/pkg/models"
)

// Register creates a new account and issues a session token
func (uc *UserUsecase) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	role := req.Role
	if role == "" {
		role = models.RoleCustomer
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := uc.repo.CreateUser(ctx, &models.User{
		Email:     email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  string(hash),
		Role:      role,
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info("user registered", logger.Int64("user_id", user.ID), logger.String("role", user.Role))

	token, expiresAt, err := uc.tokens.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		Token:     token,
		UserID:    user.ID,
		Email:     user.Email,
		Role:      user.Role,
		ExpiresAt: expiresAt.Unix(),
	}, nil
}

// Login checks credentials and issues a session or remember-me token
func (uc *UserUsecase) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := uc.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			return nil, models.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, models.ErrInvalidCredentials
	}

	generate := uc.tokens.GenerateToken
	if req.RememberMe {
		generate = uc.tokens.GenerateRememberMeToken
	}

	token, expiresAt, err := generate(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}

	uc.log.Info("user logged in", logger.Int64("user_id", user.ID), logger.Bool("remember_me", req.RememberMe))

	return &models.AuthResponse{
		Token:     token,
		UserID:    user.ID,
		Email:     user.Email,
		Role:      user.Role,
		ExpiresAt: expiresAt.Unix(),
	}, nil
}

// GetCurrentUser returns the authenticated user's profile
func (uc *UserUsecase) GetCurrentUser(ctx context.Context, userID int64) (*models.User, error) {
	return uc.repo.GetUserByID(ctx, userID)
}
