package users

import "time"

type CodePurpose string

const (
	PurposeRegister      CodePurpose = "register"
	PurposeResetPassword CodePurpose = "reset_password"
)

// VerificationCode is not keyed to User: register codes exist before the user does.
type VerificationCode struct {
	ID         uint        `gorm:"primaryKey"`
	Email      string      `gorm:"size:255;not null;index"`
	Purpose    CodePurpose `gorm:"type:varchar(20);not null"`
	Code       string      `gorm:"size:12;not null"`
	VerifiedAt *time.Time
	CreatedAt  time.Time
}

func (c VerificationCode) ExpiredAt(now time.Time, ttl time.Duration) bool {
	return now.Sub(c.CreatedAt) > ttl
}
