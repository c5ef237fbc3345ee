package email

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"riskscreen_backend/internal/config"
)

type SMTPProvider struct {
	cfg *config.Config
}

// NewSMTPProvider returns a gomail-backed provider, or nil when SMTP is not
// configured so callers can skip sending altogether.
func NewSMTPProvider(cfg *config.Config) *SMTPProvider {
	if cfg.Email.SMTPHost == "" {
		return nil
	}
	return &SMTPProvider{cfg: cfg}
}

func (p *SMTPProvider) Send(to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(p.cfg.Email.FromEmail, p.cfg.Email.FromName))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(
		p.cfg.Email.SMTPHost,
		p.cfg.Email.SMTPPort,
		p.cfg.Email.SMTPUsername,
		p.cfg.Email.SMTPPassword,
	)

	return d.DialAndSend(m)
}

func (p *SMTPProvider) SendWelcome(to, name string) error {
	if name == "" {
		name = "there"
	}
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>Your account has been created. You can now sign in and complete your first screening.</p>",
		name,
	)
	return p.Send(to, "Welcome to RiskScreen", body)
}
