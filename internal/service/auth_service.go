package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/marketing-cms-api/internal/auth"
	"github.com/marketing-cms-api/internal/config"
	"github.com/marketing-cms-api/internal/models"
	"github.com/marketing-cms-api/internal/repository"
	"github.com/rs/zerolog"
)

// authService is the concrete implementation of AuthService
type authService struct {
	users      repository.UserRepository
	jwtManager *auth.JWTManager
	bcryptCost int
	log        zerolog.Logger
}

// newAuthService creates a new AuthService
func newAuthService(users repository.UserRepository, jwtManager *auth.JWTManager, cfg *config.Config, log zerolog.Logger) *authService {
	return &authService{
		users:      users,
		jwtManager: jwtManager,
		bcryptCost: cfg.Auth.BcryptCost,
		log:        log.With().Str("service", "auth").Logger(),
	}
}

// Login verifies credentials and issues an access token. Unknown emails
// and wrong passwords return the same error so callers cannot probe for
// registered accounts.
func (s *authService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	if user == nil || !auth.VerifyPassword(req.Password, user.Password) {
		s.log.Warn().Str("email", email).Msg("Failed login attempt")
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwtManager.Generate(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	s.log.Info().Str("user_id", user.ID).Msg("User logged in")

	return &models.LoginResponse{
		Token: token,
		User:  user,
	}, nil
}

// Profile returns the account for the authenticated user ID
func (s *authService) Profile(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return user, nil
}

// CreateUser creates an account with a bcrypt-hashed password. Role
// defaults to USER when omitted.
func (s *authService) CreateUser(ctx context.Context, req *models.UserCreateRequest) (*models.User, error) {
	hash, err := auth.HashPassword(req.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	role := req.Role
	if role == "" {
		role = models.RoleUser
	}

	now := time.Now().UTC()
	user := &models.User{
		ID:        uuid.New().String(),
		Email:     strings.ToLower(strings.TrimSpace(req.Email)),
		Name:      req.Name,
		Password:  hash,
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, fmt.Errorf("%w: email already registered", ErrConflict)
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.log.Info().Str("user_id", user.ID).Str("role", user.Role).Msg("User created")
	return user, nil
}

// ListUsers returns a page of accounts with pagination metadata
func (s *authService) ListUsers(ctx context.Context, page, limit int) ([]*models.User, models.Pagination, error) {
	offset := (page - 1) * limit

	users, err := s.users.List(ctx, offset, limit)
	if err != nil {
		return nil, models.Pagination{}, fmt.Errorf("list users: %w", err)
	}

	total, err := s.users.Count(ctx)
	if err != nil {
		return nil, models.Pagination{}, fmt.Errorf("count users: %w", err)
	}

	return users, models.NewPagination(page, limit, total), nil
}
