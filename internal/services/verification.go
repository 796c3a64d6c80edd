package services

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"sync"
	"time"

	"sportsclub-app/config"
	"sportsclub-app/internal/apperr"
	"sportsclub-app/internal/domain/users"
	"sportsclub-app/internal/mailer"
	"sportsclub-app/internal/store"
)

// VerificationService issues and checks the short numeric codes that prove
// ownership of an email address. Only the latest code per email counts.
type VerificationService struct {
	users UserStore
	codes CodeStore
	mail  mailer.Sender
	log   *slog.Logger

	ttl            time.Duration
	verifiedWindow time.Duration
	sendTimeout    time.Duration

	now     func() time.Time
	newCode func() (string, error)

	inflight sync.WaitGroup
}

func NewVerificationService(u UserStore, c CodeStore, m mailer.Sender, log *slog.Logger, cfg config.CodeConfig, sendTimeout time.Duration) *VerificationService {
	return &VerificationService{
		users:          u,
		codes:          c,
		mail:           m,
		log:            log,
		ttl:            cfg.TTL,
		verifiedWindow: cfg.VerifiedWindow,
		sendTimeout:    sendTimeout,
		now:            time.Now,
		newCode:        randomCode,
	}
}

// SendVerifyCode issues a sign-up code for an email that is not registered yet.
func (s *VerificationService) SendVerifyCode(ctx context.Context, email string) error {
	exists, err := s.users.UserExists(ctx, email)
	if err != nil {
		return err
	}
	if exists {
		return apperr.ErrEmailConflict
	}
	return s.issue(ctx, email, users.PurposeRegister, mailer.VerificationCode)
}

// SendVerifyCodeForResetPassword issues a password-reset code for a registered email.
func (s *VerificationService) SendVerifyCodeForResetPassword(ctx context.Context, email string) error {
	exists, err := s.users.UserExists(ctx, email)
	if err != nil {
		return err
	}
	if !exists {
		return apperr.ErrUserNotFound
	}
	return s.issue(ctx, email, users.PurposeResetPassword, mailer.PasswordResetCode)
}

// VerifyAuthCode checks code against the latest code issued for email.
// A wrong code is rejected before expiry is looked at.
func (s *VerificationService) VerifyAuthCode(ctx context.Context, email, code string) error {
	c, err := s.codes.LatestCode(ctx, email)
	if errors.Is(err, store.ErrNotFound) {
		return apperr.ErrAuthNumberInvalid
	}
	if err != nil {
		return err
	}
	if subtle.ConstantTimeCompare([]byte(c.Code), []byte(code)) != 1 {
		return apperr.ErrAuthNumberInvalid
	}

	now := s.now()
	if c.ExpiredAt(now, s.ttl) {
		return apperr.ErrVerifyCodeExpired
	}
	if c.VerifiedAt == nil {
		if err := s.codes.MarkCodeVerified(ctx, c.ID, now); err != nil {
			return err
		}
	}
	return nil
}

// RequireVerified fails with EmailNotVerified unless the latest code for
// email was issued for purpose and verified within the verified window.
func (s *VerificationService) RequireVerified(ctx context.Context, email string, purpose users.CodePurpose) error {
	c, err := s.codes.LatestCode(ctx, email)
	if errors.Is(err, store.ErrNotFound) {
		return apperr.ErrEmailNotVerified
	}
	if err != nil {
		return err
	}
	if c.Purpose != purpose || c.VerifiedAt == nil {
		return apperr.ErrEmailNotVerified
	}
	if s.now().Sub(*c.VerifiedAt) > s.verifiedWindow {
		return apperr.ErrEmailNotVerified
	}
	return nil
}

// Wait blocks until every queued email has been handed to the sender.
func (s *VerificationService) Wait() {
	s.inflight.Wait()
}

func (s *VerificationService) issue(ctx context.Context, email string, purpose users.CodePurpose, render func(to, code string, ttl time.Duration) mailer.Message) error {
	code, err := s.newCode()
	if err != nil {
		return fmt.Errorf("generate code: %w", err)
	}

	rec := &users.VerificationCode{
		Email:     email,
		Purpose:   purpose,
		Code:      code,
		CreatedAt: s.now(),
	}
	if err := s.codes.ReplaceCode(ctx, rec); err != nil {
		return err
	}

	s.dispatch(ctx, render(email, code, s.ttl))
	return nil
}

// dispatch sends msg in the background. Delivery failures are logged only.
func (s *VerificationService) dispatch(ctx context.Context, msg mailer.Message) {
	s.inflight.Add(1)
	go func() {
		defer s.inflight.Done()

		sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.sendTimeout)
		defer cancel()

		if err := s.mail.Send(sendCtx, msg); err != nil {
			s.log.ErrorContext(sendCtx, "send verification email", "to", msg.To, "tag", msg.Tag, "error", err)
			return
		}
		s.log.InfoContext(sendCtx, "verification email sent", "to", msg.To, "tag", msg.Tag)
	}()
}

func randomCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
