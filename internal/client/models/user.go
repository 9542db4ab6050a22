// Package models defines the client-side data model: users, courses and the
// validation error shared by the stores.
package models

import (
	"fmt"
	"strings"
)

// Role is the closed set of account kinds.
type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
)

// ParseRole accepts "student" or "teacher" in any case.
func ParseRole(s string) (Role, error) {
	switch r := Role(strings.ToLower(strings.TrimSpace(s))); r {
	case RoleStudent, RoleTeacher:
		return r, nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

func (r Role) Valid() bool {
	return r == RoleStudent || r == RoleTeacher
}

// DashboardPath is where a freshly authenticated user lands.
func (r Role) DashboardPath() string {
	if r == RoleTeacher {
		return "/dashboard/teacher/dashboard"
	}
	return "/dashboard/student/dashboard"
}

// UserProfile is the authenticated user as returned by the auth backend.
type UserProfile struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      Role   `json:"role"`
	AvatarRef string `json:"avatar_ref,omitempty"`
}

// SignupProfile is the signup form payload.
type SignupProfile struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     Role   `json:"role" validate:"required,oneof=student teacher"`
}

// Credentials is the login form payload.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}
