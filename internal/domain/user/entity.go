package user

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Role represents the user's role in the admin panel
type Role string

const (
	RoleAdmin Role = "admin" // full access, may delete certificates
	RoleStaff Role = "staff" // may issue and edit certificates
)

// User represents an admin-panel user
type User struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Password    string    `json:"-"` // never serialized in responses
	Role        Role      `json:"role"`
	Active      bool      `json:"active"`
	LastLoginAt time.Time `json:"last_login_at"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// SetPassword stores a bcrypt hash of the given password
func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

// CheckPassword reports whether the given password matches the stored hash
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}

// IsAdmin reports whether the user holds the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
