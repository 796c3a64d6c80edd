package services

import (
	"context"
	"time"

	"sportsclub-app/internal/domain/users"
)

// UserStore is the user half of the credential store.
type UserStore interface {
	UserExists(ctx context.Context, email string) (bool, error)
	FindUserByEmail(ctx context.Context, email string) (*users.User, error)
	// CreateUser also deletes the email's verification codes.
	CreateUser(ctx context.Context, user *users.User) error
	// ResetPassword also deletes the email's codes and refresh token.
	ResetPassword(ctx context.Context, userID uint, email, hash string) error
	SaveProfile(ctx context.Context, p *users.Profile) error
}

type CodeStore interface {
	ReplaceCode(ctx context.Context, c *users.VerificationCode) error
	LatestCode(ctx context.Context, email string) (*users.VerificationCode, error)
	MarkCodeVerified(ctx context.Context, id uint, at time.Time) error
}

type RefreshTokenStore interface {
	SaveRefreshToken(ctx context.Context, t *users.RefreshToken) error
	RotateRefreshToken(ctx context.Context, email, oldHash string, next *users.RefreshToken) error
}
