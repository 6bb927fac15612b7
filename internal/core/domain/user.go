package domain

import (
	"fmt"
	"strings"
	"time"
)

// Role is the closed set of roles an account can hold.
type Role string

const (
	RoleUser  Role = "USER"
	RoleCoach Role = "COACH"
	RoleAdmin Role = "ADMIN"
)

// authorities maps every role to the authority tag checked by route guards.
var authorities = map[Role]string{
	RoleUser:  "ROLE_USER",
	RoleCoach: "ROLE_COACH",
	RoleAdmin: "ROLE_ADMIN",
}

// ParseRole converts a stored or user-supplied value into a Role.
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToUpper(strings.TrimSpace(s)))
	if !r.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownRole, s)
	}
	return r, nil
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	_, ok := authorities[r]
	return ok
}

// Authority returns the authority tag for r, or "" for an unknown role.
func (r Role) Authority() string {
	return authorities[r]
}

// User models a registered account. PasswordHash never leaves the service boundary.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// UserSummary is the public projection of a User returned to clients.
type UserSummary struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
}

// Summary strips credentials and timestamps from u.
func (u *User) Summary() UserSummary {
	return UserSummary{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Role:     u.Role,
	}
}
