package users

import "time"

type User struct {
	ID       uint    `gorm:"primaryKey"`
	Email    string  `gorm:"size:255;not null;uniqueIndex:idx_users_email"`
	Password *string `gorm:"size:255"` // nil for SNS-only accounts

	Profile *Profile `gorm:"constraint:OnDelete:CASCADE"`
	Sns     []Sns    `gorm:"constraint:OnDelete:CASCADE"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Profile is the mutable, user-facing part of an account.
type Profile struct {
	ID        uint    `gorm:"primaryKey"`
	UserID    uint    `gorm:"not null;uniqueIndex:idx_profiles_user_id"`
	Nickname  *string `gorm:"size:24"`
	Gender    *string `gorm:"size:12"`
	Location  *string `gorm:"size:24"`
	Age       *string `gorm:"size:24"`
	Foot      *string `gorm:"size:12"`
	Level     *int
	Positions []int   `gorm:"type:text;serializer:json"`
	Img       *string `gorm:"size:256"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Sns links a user to an external login provider account.
type Sns struct {
	ID             uint   `gorm:"primaryKey"`
	UserID         uint   `gorm:"not null;index"`
	Provider       string `gorm:"size:20;not null;uniqueIndex:idx_sns_provider_user"`
	ProviderUserID string `gorm:"size:255;not null;uniqueIndex:idx_sns_provider_user"`

	CreatedAt time.Time
}

func (Sns) TableName() string {
	return "sns"
}
