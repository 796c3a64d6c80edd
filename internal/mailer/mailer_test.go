package mailer

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/smtp"
	"testing"
	"time"

	"sportsclub-app/config"

	"github.com/mrz1836/postmark"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_SelectsProvider(t *testing.T) {
	s, err := New(config.EmailConfig{Provider: "log"}, nil)
	require.NoError(t, err)
	assert.IsType(t, &LogSender{}, s)

	_, err = New(config.EmailConfig{Provider: "smtp"}, nil)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = New(config.EmailConfig{Provider: "postmark", From: "no-reply@club.app"}, nil)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	s, err = New(config.EmailConfig{
		Provider: "postmark", From: "no-reply@club.app",
		PostmarkServerToken: "s", PostmarkAccountToken: "a",
	}, nil)
	require.NoError(t, err)
	assert.IsType(t, &PostmarkSender{}, s)

	_, err = New(config.EmailConfig{Provider: "fax"}, nil)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestSMTPSender_Send(t *testing.T) {
	s, err := NewSMTPSender(config.EmailConfig{
		From: "no-reply@club.app", SMTPHost: "smtp.club.app", SMTPPort: "587", SMTPPassword: "pw",
	})
	require.NoError(t, err)

	var gotAddr string
	var gotTo []string
	var gotMsg []byte
	s.send = func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr, gotTo, gotMsg = addr, to, msg
		return nil
	}

	require.NoError(t, s.Send(context.Background(), VerificationCode("a@x.com", "123456", 3*time.Minute)))
	assert.Equal(t, "smtp.club.app:587", gotAddr)
	assert.Equal(t, []string{"a@x.com"}, gotTo)
	assert.Contains(t, string(gotMsg), "Subject: Verify your email\r\n")
	assert.Contains(t, string(gotMsg), "text/html")
	assert.Contains(t, string(gotMsg), "123456")

	s.send = func(string, smtp.Auth, string, []string, []byte) error { return errors.New("conn refused") }
	assert.ErrorContains(t, s.Send(context.Background(), Message{To: "a@x.com"}), "conn refused")
}

type fakePostmark struct {
	got  postmark.Email
	resp postmark.EmailResponse
	err  error
}

func (f *fakePostmark) SendEmail(_ context.Context, e postmark.Email) (postmark.EmailResponse, error) {
	f.got = e
	return f.resp, f.err
}

func TestPostmarkSender_Send(t *testing.T) {
	api := &fakePostmark{}
	p := &PostmarkSender{client: api, from: "no-reply@club.app"}

	require.NoError(t, p.Send(context.Background(), PasswordResetCode("a@x.com", "654321", 3*time.Minute)))
	assert.Equal(t, "no-reply@club.app", api.got.From)
	assert.Equal(t, "a@x.com", api.got.To)
	assert.Equal(t, "reset_password", api.got.Tag)
	assert.Contains(t, api.got.TextBody, "654321")

	api.resp = postmark.EmailResponse{ErrorCode: 300, Message: "Invalid email request"}
	assert.ErrorContains(t, p.Send(context.Background(), Message{To: "a@x.com"}), "300")
}

func TestLogSender_Send(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogSender(slog.New(slog.NewTextHandler(&buf, nil)))

	require.NoError(t, l.Send(context.Background(), VerificationCode("a@x.com", "123456", 3*time.Minute)))
	assert.Contains(t, buf.String(), "a@x.com")
	assert.Contains(t, buf.String(), "123456")
}

func TestCodeMessage_Escapes(t *testing.T) {
	m := VerificationCode("a@x.com", "<b>", time.Minute)
	assert.Contains(t, m.HTML, "&lt;b&gt;")
	assert.Contains(t, m.Text, "1m0s")
}
