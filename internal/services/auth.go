package services

import (
	"context"
	"errors"
	"time"

	"sportsclub-app/internal/apperr"
	"sportsclub-app/internal/domain/users"
	"sportsclub-app/internal/store"
)

// AuthService composes verification and tokens into the account flows:
// register, login, password reset, token refresh and the current user.
type AuthService struct {
	users   UserStore
	refresh RefreshTokenStore
	verify  *VerificationService
	tokens  *TokenService
	now     func() time.Time
}

func NewAuthService(u UserStore, r RefreshTokenStore, v *VerificationService, t *TokenService) *AuthService {
	return &AuthService{
		users:   u,
		refresh: r,
		verify:  v,
		tokens:  t,
		now:     time.Now,
	}
}

// Register creates a user with an empty profile. The email must have a
// verified sign-up code; the store spends it with the insert.
func (s *AuthService) Register(ctx context.Context, email, password string) error {
	if err := ValidatePassword(password); err != nil {
		return err
	}
	if err := s.verify.RequireVerified(ctx, email, users.PurposeRegister); err != nil {
		// a concurrent winner may already have spent the code
		if exists, existsErr := s.users.UserExists(ctx, email); existsErr == nil && exists {
			return apperr.ErrEmailConflict
		}
		return err
	}

	hashed, err := HashPassword(password)
	if err != nil {
		return err
	}
	user := &users.User{
		Email:    email,
		Password: &hashed,
		Profile:  &users.Profile{},
	}
	if err := s.users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return apperr.ErrEmailConflict
		}
		return err
	}
	return nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*TokenPair, error) {
	user, err := s.findUser(ctx, email)
	if err != nil {
		return nil, err
	}
	if user.Password == nil || !VerifyPassword(password, *user.Password) {
		return nil, apperr.ErrPasswordMismatch
	}
	return s.issuePair(ctx, user.Email)
}

// ResetPassword overwrites the password of a user holding a verified reset
// code and revokes the stored refresh token.
func (s *AuthService) ResetPassword(ctx context.Context, email, password string) error {
	user, err := s.findUser(ctx, email)
	if err != nil {
		return err
	}
	if err := ValidatePassword(password); err != nil {
		return err
	}
	if err := s.verify.RequireVerified(ctx, email, users.PurposeResetPassword); err != nil {
		return err
	}

	hashed, err := HashPassword(password)
	if err != nil {
		return err
	}
	if err := s.users.ResetPassword(ctx, user.ID, email, hashed); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return apperr.ErrUserNotFound
		}
		return err
	}
	return nil
}

// Refresh rotates a refresh token. Only the latest token issued for the
// subject is accepted, and only one of several concurrent uses of it wins.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	subject, err := s.tokens.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, err
	}

	pair, next, err := s.newPair(subject)
	if err != nil {
		return nil, err
	}
	err = s.refresh.RotateRefreshToken(ctx, subject, HashToken(refreshToken), next)
	if errors.Is(err, store.ErrNotFound) {
		return nil, apperr.ErrInvalidToken
	}
	if err != nil {
		return nil, err
	}
	return pair, nil
}

// CurrentUser resolves an access token to the stored user with Profile and Sns.
func (s *AuthService) CurrentUser(ctx context.Context, accessToken string) (*users.User, error) {
	subject, err := s.tokens.ParseAccessToken(accessToken)
	if err != nil {
		return nil, err
	}
	return s.findUser(ctx, subject)
}

// UpdateProfile applies upd to the user's profile, creating it if absent.
func (s *AuthService) UpdateProfile(ctx context.Context, user *users.User, upd users.ProfileUpdate) error {
	profile := user.Profile
	if profile == nil {
		profile = &users.Profile{UserID: user.ID}
	}
	upd.Apply(profile)

	if err := s.users.SaveProfile(ctx, profile); err != nil {
		return err
	}
	user.Profile = profile
	return nil
}

func (s *AuthService) findUser(ctx context.Context, email string) (*users.User, error) {
	user, err := s.users.FindUserByEmail(ctx, email)
	if errors.Is(err, store.ErrNotFound) {
		return nil, apperr.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) issuePair(ctx context.Context, subject string) (*TokenPair, error) {
	pair, rec, err := s.newPair(subject)
	if err != nil {
		return nil, err
	}
	if err := s.refresh.SaveRefreshToken(ctx, rec); err != nil {
		return nil, err
	}
	return pair, nil
}

// newPair signs a token pair and returns the record to persist for its refresh token.
func (s *AuthService) newPair(subject string) (*TokenPair, *users.RefreshToken, error) {
	access, err := s.tokens.CreateAccessToken(subject)
	if err != nil {
		return nil, nil, err
	}
	refresh, err := s.tokens.CreateRefreshToken(subject)
	if err != nil {
		return nil, nil, err
	}
	rec := &users.RefreshToken{
		Email:     subject,
		TokenHash: HashToken(refresh),
		ExpiresAt: s.now().Add(s.tokens.RefreshTTL()),
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, rec, nil
}
