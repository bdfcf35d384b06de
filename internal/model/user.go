package model

import "time"

// Role is the closed set of capability tags a user record can carry.
// Roles are compared by value, never by free-form string matching.
type Role string

const (
	RoleUnconfirmed Role = "unconfirmed"
	RoleUser        Role = "user"
	RoleAdmin       Role = "admin"
	RoleGuest       Role = "guest"
	RoleDeleted     Role = "deleted"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleUnconfirmed, RoleUser, RoleAdmin, RoleGuest, RoleDeleted:
		return true
	}
	return false
}

// CanLogin reports whether a user with this role may obtain a session
// token. Only confirmed users and admins can log in.
func (r Role) CanLogin() bool {
	return r == RoleUser || r == RoleAdmin
}

// User mirrors the `users` table. The primary key is an opaque UUID
// string. ConfirmationCode is 0 once the code has been consumed (or was
// never issued), otherwise a 4-digit value in [1000,9999].
type User struct {
	ID                       string    `gorm:"primaryKey;size:36" json:"user_id"`
	Name                     string    `gorm:"size:40;not null" json:"name"`
	Email                    string    `gorm:"size:40;uniqueIndex;not null" json:"email"`
	PasswordHash             string    `gorm:"not null" json:"-"`
	Role                     Role      `gorm:"size:16;not null" json:"role"`
	ConfirmationCode         int       `gorm:"not null;default:0" json:"-"`
	AttemptsToChangePassword int       `gorm:"not null;default:0" json:"-"`
	CreatedAt                time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt                time.Time `gorm:"autoUpdateTime" json:"-"`
}

// TableName pins the table name to match the original schema.
func (User) TableName() string { return "users" }
