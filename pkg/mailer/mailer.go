// Package mailer delivers confirmation codes to pending users. When no SMTP
// host is configured the code is logged instead, which keeps local
// development working without a mail server.
package mailer

import (
	"context"
	"fmt"
	"net/smtp"

	"media-ratings/pkg/utils"

	"go.uber.org/zap"
)

type Mailer interface {
	SendConfirmationCode(ctx context.Context, email, code string) error
}

type smtpMailer struct {
	config utils.EmailConfig
	log    *zap.Logger
}

func New(config utils.EmailConfig, log *zap.Logger) Mailer {
	return &smtpMailer{
		config: config,
		log:    log.With(zap.String("component", "mailer")),
	}
}

func (m *smtpMailer) SendConfirmationCode(ctx context.Context, email, code string) error {
	if m.config.Host == "" {
		// Dev fallback: surface the code in the logs
		m.log.Info("Confirmation code issued (no SMTP configured)",
			zap.String("email", email),
			zap.String("code", code),
		)
		return nil
	}

	addr := fmt.Sprintf("%s:%d", m.config.Host, m.config.Port)

	var auth smtp.Auth
	if m.config.User != "" {
		auth = smtp.PlainAuth("", m.config.User, m.config.Password, m.config.Host)
	}

	msg := []byte(fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: Your confirmation code\r\n\r\n"+
			"Your confirmation code is: %s\r\n",
		m.config.From, email, code,
	))

	if err := smtp.SendMail(addr, auth, m.config.From, []string{email}, msg); err != nil {
		m.log.Error("Failed to send confirmation email",
			zap.Error(err),
			zap.String("email", email),
		)
		return fmt.Errorf("send confirmation email to %s: %w", email, err)
	}

	m.log.Info("Confirmation email sent", zap.String("email", email))
	return nil
}
