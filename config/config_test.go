package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	t.Setenv("DB_URL", "postgres://localhost/club")
	t.Setenv("JWT_SECRET", "s3cret")

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "s3cret", cfg.JWT.Secret)
	assert.Equal(t, 30*time.Minute, cfg.JWT.AccessTokenTTL)
	assert.Equal(t, 14*24*time.Hour, cfg.JWT.RefreshTokenTTL)
	assert.Equal(t, 3*time.Minute, cfg.Code.TTL)
	assert.Equal(t, 10*time.Minute, cfg.Code.VerifiedWindow)
	assert.Equal(t, "log", cfg.Email.Provider)
	assert.Equal(t, 10*time.Second, cfg.Email.SendTimeout)
}

func TestParse_Overrides(t *testing.T) {
	t.Setenv("DB_URL", "postgres://localhost/club")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("ACCESS_TOKEN_TTL", "5m")
	t.Setenv("VERIFY_CODE_TTL", "90s")
	t.Setenv("EMAIL_PROVIDER", "smtp")
	t.Setenv("SMTP_HOST", "smtp.example.com")

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, 5*time.Minute, cfg.JWT.AccessTokenTTL)
	assert.Equal(t, 90*time.Second, cfg.Code.TTL)
	assert.Equal(t, "smtp", cfg.Email.Provider)
	assert.Equal(t, "smtp.example.com", cfg.Email.SMTPHost)
}

func TestParse_MissingSecret(t *testing.T) {
	t.Setenv("DB_URL", "postgres://localhost/club")
	t.Setenv("JWT_SECRET", "")

	_, err := Parse()
	require.Error(t, err)
}

func TestParse_UnknownEmailProvider(t *testing.T) {
	t.Setenv("DB_URL", "postgres://localhost/club")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("EMAIL_PROVIDER", "pigeon")

	_, err := Parse()
	require.ErrorContains(t, err, "pigeon")
}
