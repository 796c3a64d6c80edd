package mailer

import (
	"context"
	"log/slog"
)

// LogSender writes messages to the log instead of delivering them. For local development.
type LogSender struct {
	log *slog.Logger
}

func NewLogSender(log *slog.Logger) *LogSender {
	if log == nil {
		log = slog.Default()
	}
	return &LogSender{log: log}
}

func (l *LogSender) Send(ctx context.Context, msg Message) error {
	l.log.InfoContext(ctx, "email not delivered (log sender)",
		"to", msg.To, "subject", msg.Subject, "body", msg.Text)
	return nil
}
