package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Role enum
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
	RoleCustomer Role = "customer"
)

// ParseRole validates a role string.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleAdmin, RoleEmployee, RoleCustomer:
		return Role(s), true
	default:
		return "", false
	}
}

// UserStatus marks whether an account can sign in.
type UserStatus string

const (
	UserActive   UserStatus = "active"
	UserInactive UserStatus = "inactive"
)

// User represents an account in the system.
type User struct {
	BaseModel
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	Password   string     `json:"-"` // never serialized
	Role       Role       `json:"role"`
	Status     UserStatus `json:"status"`
	JoinedDate time.Time  `json:"joinedDate"`
	LastActive time.Time  `json:"lastActive"`
}

// UserSanitized represents the user data that is safe to send in API responses.
type UserSanitized struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	Role       Role       `json:"role"`
	Status     UserStatus `json:"status"`
	JoinedDate time.Time  `json:"joinedDate"`
	LastActive time.Time  `json:"lastActive"`
}

// SetPassword hashes a password and sets it on the user.
func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

// CheckPassword compares a password with the user's hashed password.
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}

// Sanitize creates a UserSanitized struct from a User, excluding the password hash.
func (u *User) Sanitize() UserSanitized {
	return UserSanitized{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Role:       u.Role,
		Status:     u.Status,
		JoinedDate: u.JoinedDate,
		LastActive: u.LastActive,
	}
}
