package service

import (
	"context"
	"errors"
	"time"

	"doc-processor/internal/domain"
	apperrors "doc-processor/pkg/errors"
	"doc-processor/pkg/jwt"
	"doc-processor/pkg/password"
)

type authService struct {
	users     domain.UserRepository
	jwtSecret string
	jwtExpiry time.Duration
	logger    domain.Logger
}

// NewAuthService creates the authentication use-case service.
func NewAuthService(users domain.UserRepository, jwtSecret string, jwtExpiry time.Duration, logger domain.Logger) *authService {
	return &authService{
		users:     users,
		jwtSecret: jwtSecret,
		jwtExpiry: jwtExpiry,
		logger:    logger,
	}
}

// Login verifies credentials and issues a signed token.
func (s *authService) Login(ctx context.Context, username, pass string) (*domain.LoginResult, error) {
	if username == "" || pass == "" {
		return nil, apperrors.NewValidationError("username and password are required")
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, apperrors.NewUnauthorizedError(domain.ErrInvalidCredentials.Error())
		}
		return nil, err
	}

	if err := password.ComparePassword(user.Password, pass); err != nil {
		return nil, apperrors.NewUnauthorizedError(domain.ErrInvalidCredentials.Error())
	}

	token, err := jwt.GenerateToken(user.ID, user.Username, string(user.Role), s.jwtSecret, s.jwtExpiry)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to issue token", err)
	}

	return &domain.LoginResult{
		Token:    token,
		ID:       user.ID,
		Username: user.Username,
		Roles:    []string{string(user.Role)},
	}, nil
}

// Register creates a regular USER account. The public signup path never
// accepts a role, preventing privilege escalation.
func (s *authService) Register(ctx context.Context, username, pass string) (*domain.User, error) {
	return s.createUser(ctx, username, pass, domain.RoleUser)
}

// CreateUserWithRole creates an account with an explicit role. Restricted
// to SUPERADMIN at the handler layer.
func (s *authService) CreateUserWithRole(ctx context.Context, username, pass string, role domain.Role) (*domain.User, error) {
	return s.createUser(ctx, username, pass, role)
}

func (s *authService) createUser(ctx context.Context, username, pass string, role domain.Role) (*domain.User, error) {
	if username == "" || pass == "" {
		return nil, apperrors.NewValidationError("username and password are required")
	}

	exists, err := s.users.ExistsByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.NewConflictError(domain.ErrUsernameTaken.Error(), nil)
	}

	hash, err := password.HashPassword(pass)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to hash password", err)
	}

	user, err := s.users.Create(ctx, &domain.User{
		Username: username,
		Password: hash,
		Role:     role,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("User created", "username", user.Username, "role", user.Role)
	return user, nil
}

// ValidateToken verifies a bearer token and returns the embedded identity.
func (s *authService) ValidateToken(token string) (*domain.AuthenticatedUser, error) {
	claims, err := jwt.ValidateToken(token, s.jwtSecret)
	if err != nil {
		return nil, apperrors.NewUnauthorizedError(domain.ErrInvalidToken.Error())
	}

	role, ok := domain.ParseRole(claims.Role)
	if !ok {
		return nil, apperrors.NewUnauthorizedError(domain.ErrInvalidToken.Error())
	}

	return &domain.AuthenticatedUser{
		ID:       claims.UserID,
		Username: claims.Username,
		Role:     role,
	}, nil
}

// EnsureSuperAdmin creates the bootstrap SUPERADMIN account if none exists.
// Safe to call on every startup.
func (s *authService) EnsureSuperAdmin(ctx context.Context, username, pass string) error {
	_, err := s.users.FindFirstByRole(ctx, domain.RoleSuperAdmin)
	if err == nil {
		s.logger.Info("SuperAdmin account already exists, skipping creation")
		return nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}

	if _, err := s.createUser(ctx, username, pass, domain.RoleSuperAdmin); err != nil {
		return err
	}
	s.logger.Warn("Default SuperAdmin account created; change the password in production", "username", username)
	return nil
}
