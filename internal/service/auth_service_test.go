package service

import (
	"context"
	"testing"
	"time"

	"doc-processor/internal/domain"
	apperrors "doc-processor/pkg/errors"
)

// MockUserRepository is an in-memory user store keyed by username.
type MockUserRepository struct {
	users  map[string]*domain.User
	nextID int64
	err    error
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{users: make(map[string]*domain.User), nextID: 1}
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	stored := *user
	stored.ID = m.nextID
	m.nextID++
	m.users[stored.Username] = &stored
	return &stored, nil
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	user, ok := m.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

func (m *MockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	_, ok := m.users[username]
	return ok, nil
}

func (m *MockUserRepository) FindFirstByRole(ctx context.Context, role domain.Role) (*domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, user := range m.users {
		if user.Role == role {
			return user, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func newTestAuthService(users domain.UserRepository) *authService {
	return NewAuthService(users, "test-secret", time.Hour, &MockLogger{})
}

func TestRegisterAndLogin(t *testing.T) {
	repo := NewMockUserRepository()
	service := newTestAuthService(repo)
	ctx := context.Background()

	user, err := service.Register(ctx, "alice", "s3cret")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if user.Role != domain.RoleUser {
		t.Errorf("Expected signup to assign role USER, got %s", user.Role)
	}
	if user.Password == "s3cret" {
		t.Error("Expected stored password to be hashed")
	}

	result, err := service.Login(ctx, "alice", "s3cret")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if result.Token == "" {
		t.Error("Expected a token")
	}
	if result.Username != "alice" {
		t.Errorf("Expected username alice, got %s", result.Username)
	}
	if len(result.Roles) != 1 || result.Roles[0] != "USER" {
		t.Errorf("Expected roles [USER], got %v", result.Roles)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := NewMockUserRepository()
	service := newTestAuthService(repo)
	ctx := context.Background()

	if _, err := service.Register(ctx, "alice", "s3cret"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	_, err := service.Login(ctx, "alice", "wrong")
	if err == nil {
		t.Fatal("Expected error, got nil")
	}
	if !apperrors.IsType(err, apperrors.ErrorTypeUnauthorized) {
		t.Errorf("Expected unauthorized error, got %v", err)
	}
}

func TestLogin_UnknownUser(t *testing.T) {
	service := newTestAuthService(NewMockUserRepository())

	_, err := service.Login(context.Background(), "ghost", "whatever")
	if err == nil {
		t.Fatal("Expected error, got nil")
	}
	if !apperrors.IsType(err, apperrors.ErrorTypeUnauthorized) {
		t.Errorf("Expected unauthorized error, got %v", err)
	}
}

func TestLogin_EmptyCredentials(t *testing.T) {
	service := newTestAuthService(NewMockUserRepository())

	_, err := service.Login(context.Background(), "", "")
	if !apperrors.IsType(err, apperrors.ErrorTypeValidation) {
		t.Errorf("Expected validation error, got %v", err)
	}
}

func TestRegister_DuplicateUsername(t *testing.T) {
	repo := NewMockUserRepository()
	service := newTestAuthService(repo)
	ctx := context.Background()

	if _, err := service.Register(ctx, "alice", "s3cret"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	_, err := service.Register(ctx, "alice", "other")
	if err == nil {
		t.Fatal("Expected error, got nil")
	}
	if !apperrors.IsType(err, apperrors.ErrorTypeConflict) {
		t.Errorf("Expected conflict error, got %v", err)
	}
}

func TestCreateUserWithRole(t *testing.T) {
	repo := NewMockUserRepository()
	service := newTestAuthService(repo)

	user, err := service.CreateUserWithRole(context.Background(), "reviewer", "s3cret", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if user.Role != domain.RoleAdmin {
		t.Errorf("Expected role ADMIN, got %s", user.Role)
	}
}

func TestValidateToken(t *testing.T) {
	repo := NewMockUserRepository()
	service := newTestAuthService(repo)
	ctx := context.Background()

	if _, err := service.Register(ctx, "alice", "s3cret"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	result, err := service.Login(ctx, "alice", "s3cret")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	identity, err := service.ValidateToken(result.Token)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if identity.Username != "alice" {
		t.Errorf("Expected username alice, got %s", identity.Username)
	}
	if identity.Role != domain.RoleUser {
		t.Errorf("Expected role USER, got %s", identity.Role)
	}
	if identity.ID != result.ID {
		t.Errorf("Expected ID %d, got %d", result.ID, identity.ID)
	}
}

func TestValidateToken_Invalid(t *testing.T) {
	service := newTestAuthService(NewMockUserRepository())

	_, err := service.ValidateToken("not.a.token")
	if err == nil {
		t.Fatal("Expected error, got nil")
	}
	if !apperrors.IsType(err, apperrors.ErrorTypeUnauthorized) {
		t.Errorf("Expected unauthorized error, got %v", err)
	}
}

func TestValidateToken_WrongSecret(t *testing.T) {
	repo := NewMockUserRepository()
	issuer := NewAuthService(repo, "secret-a", time.Hour, &MockLogger{})
	verifier := NewAuthService(repo, "secret-b", time.Hour, &MockLogger{})
	ctx := context.Background()

	if _, err := issuer.Register(ctx, "alice", "s3cret"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	result, err := issuer.Login(ctx, "alice", "s3cret")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if _, err := verifier.ValidateToken(result.Token); err == nil {
		t.Error("Expected error for token signed with a different secret")
	}
}

func TestEnsureSuperAdmin(t *testing.T) {
	repo := NewMockUserRepository()
	service := newTestAuthService(repo)
	ctx := context.Background()

	if err := service.EnsureSuperAdmin(ctx, "root", "changeme"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	user, err := repo.FindFirstByRole(ctx, domain.RoleSuperAdmin)
	if err != nil {
		t.Fatalf("Expected a superadmin account, got %v", err)
	}
	if user.Username != "root" {
		t.Errorf("Expected username root, got %s", user.Username)
	}

	// A second call must not create another account.
	if err := service.EnsureSuperAdmin(ctx, "root", "changeme"); err != nil {
		t.Fatalf("Expected no error on repeated call, got %v", err)
	}
	if len(repo.users) != 1 {
		t.Errorf("Expected exactly one account, got %d", len(repo.users))
	}
}
