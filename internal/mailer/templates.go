package mailer

import (
	"fmt"
	"html"
	"time"
)

func VerificationCode(to, code string, ttl time.Duration) Message {
	return codeMessage(to, code, ttl, "verify_email", "Verify your email",
		"Enter the following code to finish signing up")
}

func PasswordResetCode(to, code string, ttl time.Duration) Message {
	return codeMessage(to, code, ttl, "reset_password", "Reset your password",
		"Enter the following code to reset your password")
}

func codeMessage(to, code string, ttl time.Duration, tag, subject, lead string) Message {
	expiry := fmt.Sprintf("The code expires in %s.", ttl.Round(time.Second))
	return Message{
		To:      to,
		Subject: subject,
		Tag:     tag,
		Text:    fmt.Sprintf("%s:\n\n%s\n\n%s", lead, code, expiry),
		HTML: fmt.Sprintf(`<html><body><p>%s:</p><h2>%s</h2><p>%s</p></body></html>`,
			html.EscapeString(lead), html.EscapeString(code), expiry),
	}
}
