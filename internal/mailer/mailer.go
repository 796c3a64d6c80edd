// Package mailer sends transactional email through SMTP, Postmark, or the log.
package mailer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"sportsclub-app/config"
)

var ErrInvalidConfig = errors.New("mailer: invalid config")

type Message struct {
	To      string
	Subject string
	Text    string
	HTML    string
	Tag     string
}

type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// New picks the sender named by cfg.Provider.
func New(cfg config.EmailConfig, log *slog.Logger) (Sender, error) {
	switch cfg.Provider {
	case "smtp":
		return NewSMTPSender(cfg)
	case "postmark":
		return NewPostmarkSender(cfg)
	case "log", "":
		return NewLogSender(log), nil
	default:
		return nil, fmt.Errorf("%w: unknown provider %q", ErrInvalidConfig, cfg.Provider)
	}
}
