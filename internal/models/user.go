package models

import "time"

// Role is the authorization level granted to an account.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleAuthor Role = "author"
	RoleReader Role = "reader"
)

// rank maps a role to its position in the hierarchy. Unrecognized roles rank
// 0 and fail every threshold check.
func (r Role) rank() int {
	switch r {
	case RoleAdmin:
		return 3
	case RoleAuthor:
		return 2
	case RoleReader:
		return 1
	default:
		return 0
	}
}

// AtLeast reports whether the role meets or exceeds the required role.
func (r Role) AtLeast(required Role) bool {
	return r.rank() >= required.rank()
}

// ParseRole returns the matching role constant, falling back to reader for
// anything it doesn't recognize.
func ParseRole(s string) Role {
	switch Role(s) {
	case RoleAdmin, RoleAuthor, RoleReader:
		return Role(s)
	default:
		return RoleReader
	}
}

type User struct {
	ID       int    `gorm:"primaryKey" json:"id"`
	Username string `gorm:"unique;not null" json:"username"`
	Email    string `gorm:"unique;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
	Role     Role   `gorm:"size:20;default:'reader';not null" json:"role"`
	Bio      string `json:"bio"`
	Avatar   string `json:"avatar"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"` // Optional, defaults to reader
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Token   string `json:"token"`
	User    User   `json:"user"`
	Message string `json:"message"`
}
