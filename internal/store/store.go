// Package store persists users, profiles, verification codes and refresh
// tokens with gorm. It holds no business rules.
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"sportsclub-app/internal/domain/users"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

/* ---------------- users ---------------- */

func (s *Store) UserExists(ctx context.Context, email string) (bool, error) {
	var n int64
	if err := s.db.WithContext(ctx).Model(&users.User{}).Where("email = ?", email).Count(&n).Error; err != nil {
		return false, fmt.Errorf("count users: %w", err)
	}
	return n > 0, nil
}

// FindUserByEmail loads the user with Profile and Sns links.
func (s *Store) FindUserByEmail(ctx context.Context, email string) (*users.User, error) {
	var user users.User
	err := s.db.WithContext(ctx).
		Preload("Profile").
		Preload("Sns").
		Where("email = ?", email).
		First(&user).Error
	if err != nil {
		return nil, notFound(err, "find user")
	}
	return &user, nil
}

// CreateUser inserts the user and its Profile, if set, and spends the
// verification codes issued for its email, all in one transaction.
func (s *Store) CreateUser(ctx context.Context, user *users.User) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		return tx.Where("email = ?", user.Email).Delete(&users.VerificationCode{}).Error
	})
	if err != nil {
		return duplicate(err, "create user")
	}
	return nil
}

// ResetPassword stores the new hash, spends the email's codes and revokes its
// refresh token in one transaction.
func (s *Store) ResetPassword(ctx context.Context, userID uint, email, hash string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&users.User{}).Where("id = ?", userID).Update("password", hash)
		if res.Error != nil {
			return fmt.Errorf("update password: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		if err := tx.Where("email = ?", email).Delete(&users.VerificationCode{}).Error; err != nil {
			return fmt.Errorf("delete codes: %w", err)
		}
		if err := tx.Where("email = ?", email).Delete(&users.RefreshToken{}).Error; err != nil {
			return fmt.Errorf("delete refresh token: %w", err)
		}
		return nil
	})
}

// SaveProfile updates a loaded profile or inserts a new one. A concurrent
// insert for the same user turns into an update of that row.
func (s *Store) SaveProfile(ctx context.Context, p *users.Profile) error {
	db := s.db.WithContext(ctx)
	var err error
	if p.ID != 0 {
		err = db.Save(p).Error
	} else {
		err = db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"nickname", "gender", "location", "age", "foot", "level", "positions", "img", "updated_at",
			}),
		}).Create(p).Error
	}
	if err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

/* ---------------- verification codes ---------------- */

// ReplaceCode deletes every code for the email and stores c in its place.
func (s *Store) ReplaceCode(ctx context.Context, c *users.VerificationCode) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("email = ?", c.Email).Delete(&users.VerificationCode{}).Error; err != nil {
			return fmt.Errorf("delete codes: %w", err)
		}
		if err := tx.Create(c).Error; err != nil {
			return fmt.Errorf("create code: %w", err)
		}
		return nil
	})
}

func (s *Store) LatestCode(ctx context.Context, email string) (*users.VerificationCode, error) {
	var c users.VerificationCode
	err := s.db.WithContext(ctx).
		Where("email = ?", email).
		Order("created_at DESC").
		Order("id DESC").
		First(&c).Error
	if err != nil {
		return nil, notFound(err, "latest code")
	}
	return &c, nil
}

func (s *Store) MarkCodeVerified(ctx context.Context, id uint, at time.Time) error {
	err := s.db.WithContext(ctx).Model(&users.VerificationCode{}).
		Where("id = ? AND verified_at IS NULL", id).
		Update("verified_at", at).Error
	if err != nil {
		return fmt.Errorf("mark code verified: %w", err)
	}
	return nil
}

/* ---------------- refresh tokens ---------------- */

// SaveRefreshToken upserts the token for its subject.
func (s *Store) SaveRefreshToken(ctx context.Context, t *users.RefreshToken) error {
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns([]string{"token_hash", "expires_at", "updated_at"}),
	}).Create(t).Error
	if err != nil {
		return fmt.Errorf("save refresh token: %w", err)
	}
	return nil
}

// RotateRefreshToken swaps the stored hash to next only while it still equals
// oldHash. ErrNotFound means the presented token was already rotated or revoked.
func (s *Store) RotateRefreshToken(ctx context.Context, email, oldHash string, next *users.RefreshToken) error {
	res := s.db.WithContext(ctx).Model(&users.RefreshToken{}).
		Where("email = ? AND token_hash = ?", email, oldHash).
		Updates(map[string]any{"token_hash": next.TokenHash, "expires_at": next.ExpiresAt})
	if res.Error != nil {
		return fmt.Errorf("rotate refresh token: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

/* ---------------- helpers ---------------- */

func notFound(err error, op string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}

func duplicate(err error, op string) error {
	if isUniqueViolation(err) {
		return ErrDuplicate
	}
	return fmt.Errorf("%s: %w", op, err)
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
