package model

import "time"

// ResetPasswordToken authorizes a single password change inside a fixed
// window. The token value itself is an opaque UUID string mailed to the
// user. ConsumedAt is set exactly once by a conditional update so a
// token cannot authorize two resets, even under concurrent requests.
type ResetPasswordToken struct {
	ID         uint       `gorm:"primaryKey;autoIncrement"`
	UserID     string     `gorm:"size:36;not null;index"`
	Token      string     `gorm:"size:64;uniqueIndex;not null"`
	CreatedAt  time.Time  `gorm:"autoCreateTime"`
	ExpiresAt  time.Time  `gorm:"not null"`
	ConsumedAt *time.Time
}

func (ResetPasswordToken) TableName() string { return "reset_password_tokens" }

// Expired reports whether the token is past its validity window.
func (t ResetPasswordToken) Expired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}

// Consumed reports whether the token already authorized a reset.
func (t ResetPasswordToken) Consumed() bool {
	return t.ConsumedAt != nil
}
