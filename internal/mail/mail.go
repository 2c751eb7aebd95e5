// Package mail delivers contact form submissions over SMTP.
package mail

import (
	"context"
	"errors"
	"fmt"
	netmail "net/mail"
	"net/smtp"
	"strings"

	"github.com/rs/zerolog"

	"github.com/Sudhanshu-Shirgaonkar/portfolio/internal/config"
)

var (
	ErrNotConfigured  = errors.New("SMTP credentials not configured")
	ErrInvalidMessage = errors.New("invalid contact message")
)

// Message is a contact form submission.
type Message struct {
	Name  string
	Email string
	Body  string
}

// Validate checks that every field is present and the reply address parses.
func (m Message) Validate() error {
	if strings.TrimSpace(m.Name) == "" || strings.TrimSpace(m.Body) == "" {
		return fmt.Errorf("%w: name and message are required", ErrInvalidMessage)
	}
	if _, err := netmail.ParseAddress(m.Email); err != nil {
		return fmt.Errorf("%w: email %q", ErrInvalidMessage, m.Email)
	}
	if strings.ContainsAny(m.Name+m.Email, "\r\n") {
		return fmt.Errorf("%w: header fields must be single line", ErrInvalidMessage)
	}
	return nil
}

type Sender interface {
	Send(ctx context.Context, m Message) error
}

type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTPSender sends through a single SMTP relay.
type SMTPSender struct {
	cfg  config.SMTP
	log  zerolog.Logger
	send sendFunc
}

func NewSMTPSender(cfg config.SMTP, log zerolog.Logger) *SMTPSender {
	return &SMTPSender{cfg: cfg, log: log, send: smtp.SendMail}
}

// Send validates m and relays it to the configured inbox.
func (s *SMTPSender) Send(ctx context.Context, m Message) error {
	if err := m.Validate(); err != nil {
		return err
	}
	if !s.cfg.Configured() {
		return ErrNotConfigured
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	auth := smtp.PlainAuth("", s.cfg.User, s.cfg.Pass, s.cfg.Host)
	if err := s.send(s.cfg.Addr(), auth, s.cfg.User, []string{s.cfg.To}, Compose(s.cfg, m)); err != nil {
		s.log.Error().Err(err).Msg("sending contact email")
		return fmt.Errorf("send contact email: %w", err)
	}

	s.log.Info().Str("from", m.Email).Msg("contact email sent")
	return nil
}

// Compose renders the RFC 5322 message relayed to the inbox.
func Compose(cfg config.SMTP, m Message) []byte {
	subject := fmt.Sprintf("Portfolio Contact: %s", m.Name)
	body := fmt.Sprintf(`
New contact form submission from your portfolio:

Name: %s
Email: %s
Message:
%s

---
Sent from your portfolio contact form
`, m.Name, m.Email, m.Body)

	return []byte("To: " + cfg.To + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"From: " + cfg.User + "\r\n" +
		"Reply-To: " + m.Email + "\r\n" +
		"\r\n" +
		body + "\r\n")
}
