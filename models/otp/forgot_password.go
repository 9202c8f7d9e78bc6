package otp

import (
	"time"

	"movieflix/models/user"
)

// ForgotPassword is one outstanding password-reset OTP. Several rows may
// coexist for the same user; nothing enforces uniqueness on (user, otp).
// Rows are removed lazily, when a verification finds them expired, or by
// the maintenance sweep.
type ForgotPassword struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	OTP       int       `gorm:"not null;index" json:"otp"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	User *user.User `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

// IsExpired reports whether the validity window has passed.
func (fp *ForgotPassword) IsExpired() bool {
	return time.Now().After(fp.ExpiresAt)
}
