package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"sportsclub-app/config"
	"sportsclub-app/database/dbtest"
	"sportsclub-app/internal/mailer"
	"sportsclub-app/internal/store"

	"gorm.io/gorm"
)

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

type captureSender struct {
	mu   sync.Mutex
	msgs []mailer.Message
	err  error
}

func (c *captureSender) Send(_ context.Context, msg mailer.Message) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.msgs = append(c.msgs, msg)
	return c.err
}

func (c *captureSender) Sent() []mailer.Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]mailer.Message(nil), c.msgs...)
}

type fixture struct {
	db     *gorm.DB
	store  *store.Store
	clock  *fakeClock
	mail   *captureSender
	verify *VerificationService
	tokens *TokenService
	auth   *AuthService
	code   string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db := dbtest.New(t)
	st := store.New(db)
	f := &fixture{
		db:    db,
		store: st,
		clock: &fakeClock{t: time.Now().UTC().Truncate(time.Second)},
		mail:  &captureSender{},
		code:  "123456",
	}

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	f.verify = NewVerificationService(st, st, f.mail, log,
		config.CodeConfig{TTL: 3 * time.Minute, VerifiedWindow: 10 * time.Minute}, time.Second)
	f.verify.now = f.clock.Now
	f.verify.newCode = func() (string, error) { return f.code, nil }

	f.tokens = NewTokenService(config.JWTConfig{
		Secret:          "test-secret",
		AccessTokenTTL:  30 * time.Minute,
		RefreshTokenTTL: 24 * time.Hour,
	})
	f.tokens.now = f.clock.Now

	f.auth = NewAuthService(st, st, f.verify, f.tokens)
	f.auth.now = f.clock.Now
	return f
}

// registerUser runs the full sign-up flow for email.
func (f *fixture) registerUser(t *testing.T, email, password string) {
	t.Helper()
	ctx := context.Background()
	if err := f.verify.SendVerifyCode(ctx, email); err != nil {
		t.Fatalf("send code: %v", err)
	}
	if err := f.verify.VerifyAuthCode(ctx, email, f.code); err != nil {
		t.Fatalf("verify code: %v", err)
	}
	if err := f.auth.Register(ctx, email, password); err != nil {
		t.Fatalf("register: %v", err)
	}
	f.verify.Wait()
}

var errSMTPDown = errors.New("smtp down")
