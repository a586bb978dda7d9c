// Package mail provides the SMTP implementation of the outbound mail capability.
package mail

import (
	"context"

	"github.com/pkg/errors"
	"gopkg.in/gomail.v2"

	"passport/config"
	"passport/internal/domain/service"
)

// smtpSender delivers mail through an SMTP server using gomail.
type smtpSender struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPSender is the constructor for smtpSender.
func NewSMTPSender(cfg *config.SMTPConfig) service.EmailSender {
	return &smtpSender{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
	}
}

// Send delivers a plain-text message to the given address. The context is
// accepted for interface symmetry; gomail dials synchronously and applies
// its own connection handling.
func (s *smtpSender) Send(_ context.Context, to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", s.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	if err := s.dialer.DialAndSend(msg); err != nil {
		return errors.Wrap(err, "failed to send email")
	}

	return nil
}
