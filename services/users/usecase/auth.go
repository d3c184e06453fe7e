package usecase

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	domainerrors "github.com/montirku/montirku/internal/pkg/errors"
	jwtpkg "github.com/montirku/montirku/internal/pkg/jwt"
	"github.com/montirku/montirku/internal/pkg/logger"
	"github.com/montirku/montirku/internal/pkg/models"
	"github.com/montirku/montirku/internal/utils"
)

// Register creates a new user account. Mechanics start out available so they
// can be matched as soon as they report a location.
func (u *UserUC) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error) {
	name := strings.TrimSpace(req.FullName)
	if len(name) < 2 || len(name) > 100 {
		return nil, domainerrors.Validation("name must be between 2 and 100 characters")
	}
	if !utils.ValidateEmail(req.Email) {
		return nil, domainerrors.Validation("invalid email address")
	}
	phone := utils.CleanPhone(req.Phone)
	if !utils.ValidatePhone(phone) {
		return nil, domainerrors.Validation("phone number must have 10 to 15 digits")
	}
	if !utils.ValidatePassword(req.Password) {
		return nil, domainerrors.Validation("password must be at least 8 characters and contain both letters and numbers")
	}

	role := models.Role(utils.NormalizeRole(req.Role))
	if !role.Valid() {
		return nil, domainerrors.Validation(`role must be "customer" or "mechanic"`)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		FullName:     name,
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:        phone,
		PasswordHash: string(hash),
		Role:         role,
		IsAvailable:  role == models.RoleMechanic,
	}

	if err := u.userRepo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	logger.Info("Registered new user",
		logger.String("user_id", user.ID.String()),
		logger.String("role", string(user.Role)))

	return user, nil
}

// Login verifies credentials and issues a JWT
func (u *UserUC) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := u.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		// Do not reveal whether the account exists
		if domainerrors.IsNotFound(err) {
			return nil, domainerrors.Unauthorized("incorrect email or password")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, domainerrors.Unauthorized("incorrect email or password")
	}

	token, expiresAt, err := jwtpkg.GenerateToken(user.ID, user.Email, user.Role, u.cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &models.AuthResponse{
		Token:     token,
		UserID:    user.ID.String(),
		Role:      string(user.Role),
		ExpiresAt: expiresAt,
	}, nil
}
