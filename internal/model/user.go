package model

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is an account together with its profile fields.
type User struct {
	ID           int64
	Email        string
	FullName     string
	PasswordHash string
	Role         string // user, admin
	LastLoginAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

func IsValidRole(role string) bool {
	return role == RoleUser || role == RoleAdmin
}
