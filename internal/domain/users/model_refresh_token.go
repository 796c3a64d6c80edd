package users

import "time"

// RefreshToken keeps the hash of the latest refresh token issued per subject.
type RefreshToken struct {
	ID        uint   `gorm:"primaryKey"`
	Email     string `gorm:"size:255;not null;uniqueIndex:idx_refresh_tokens_email"`
	TokenHash string `gorm:"size:64;not null"`
	ExpiresAt time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}
