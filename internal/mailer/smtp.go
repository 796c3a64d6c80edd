package mailer

import (
	"context"
	"fmt"
	"net/smtp"

	"sportsclub-app/config"
)

type SMTPSender struct {
	from     string
	password string
	host     string
	port     string
	send     func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func NewSMTPSender(cfg config.EmailConfig) (*SMTPSender, error) {
	if cfg.SMTPHost == "" || cfg.From == "" {
		return nil, fmt.Errorf("%w: SMTP_HOST and SMTP_FROM are required", ErrInvalidConfig)
	}
	return &SMTPSender{
		from:     cfg.From,
		password: cfg.SMTPPassword,
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		send:     smtp.SendMail,
	}, nil
}

// Send ignores ctx: net/smtp has no context support. Callers bound it with a goroutine.
func (s *SMTPSender) Send(_ context.Context, msg Message) error {
	auth := smtp.PlainAuth("", s.from, s.password, s.host)

	contentType := "text/plain; charset=UTF-8"
	body := msg.Text
	if msg.HTML != "" {
		contentType = "text/html; charset=UTF-8"
		body = msg.HTML
	}

	raw := []byte("Subject: " + msg.Subject + "\r\n" +
		"From: " + s.from + "\r\n" +
		"To: " + msg.To + "\r\n" +
		"MIME-Version: 1.0\r\n" +
		"Content-Type: " + contentType + "\r\n" +
		"\r\n" +
		body + "\r\n")

	if err := s.send(s.host+":"+s.port, auth, s.from, []string{msg.To}, raw); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}
