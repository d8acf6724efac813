package domain

import "context"

// Role is the authoritative set of user roles.
type Role string

const (
	RoleUser       Role = "USER"
	RoleAdmin      Role = "ADMIN"
	RoleSuperAdmin Role = "SUPERADMIN"
)

// ParseRole maps a raw string to a Role, or false if unrecognized.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleUser, RoleAdmin, RoleSuperAdmin:
		return Role(s), true
	}
	return "", false
}

// User is an account that can authenticate against the API.
// Password holds the bcrypt hash, never the plaintext.
type User struct {
	ID       int64  `db:"id" json:"id"`
	Username string `db:"username" json:"username"`
	Password string `db:"password" json:"-"`
	Role     Role   `db:"role" json:"role"`
}

// AuthenticatedUser is the identity extracted from a validated token.
type AuthenticatedUser struct {
	ID       int64
	Username string
	Role     Role
}

// UserRepository defines persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, user *User) (*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	FindFirstByRole(ctx context.Context, role Role) (*User, error)
}

// AuthService defines the use-case operations for authentication.
type AuthService interface {
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	Register(ctx context.Context, username, password string) (*User, error)
	CreateUserWithRole(ctx context.Context, username, password string, role Role) (*User, error)
	ValidateToken(token string) (*AuthenticatedUser, error)
	EnsureSuperAdmin(ctx context.Context, username, password string) error
}

// LoginResult is the payload returned after a successful login.
type LoginResult struct {
	Token    string   `json:"token"`
	ID       int64    `json:"id"`
	Username string   `json:"username"`
	Roles    []string `json:"roles"`
}
