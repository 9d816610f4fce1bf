package models

import (
	"time"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:250;not null" json:"name"`
	Email     string    `gorm:"uniqueIndex;size:250;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`                           // Hash
	Role      string    `gorm:"size:20;default:'user';not null" json:"role"` // user, admin
	CreatedAt time.Time `json:"created_at"`
	// No DeletedAt, accounts are never removed
}

// IsAdmin reports whether the account may author posts. The first
// registered account is given the admin role at creation.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
