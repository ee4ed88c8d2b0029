package email

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
}

// IsConfigured checks if the SMTP configuration is usable
func (c SMTPConfig) IsConfigured() bool {
	return c.Host != "" && c.Username != "" && c.Password != ""
}

// SMTPSender renders templates locally and delivers over SMTP.
type SMTPSender struct {
	templates map[string]*template.Template
	send      func(msgs ...*gomail.Message) error
}

// NewSMTPSender parses every template up front so a broken template fails at
// construction rather than mid-request.
func NewSMTPSender(cfg SMTPConfig, templates map[string]string) (*SMTPSender, error) {
	if !cfg.IsConfigured() {
		return nil, fmt.Errorf("%w: SMTP_HOST, SMTP_USERNAME and SMTP_PASSWORD are required", ErrNotConfigured)
	}

	parsed := make(map[string]*template.Template, len(templates))
	for id, src := range templates {
		tmpl, err := template.New(id).Parse(src)
		if err != nil {
			return nil, fmt.Errorf("failed to parse email template %q: %w", id, err)
		}
		parsed[id] = tmpl
	}

	dialer := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	return &SMTPSender{templates: parsed, send: dialer.DialAndSend}, nil
}

func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m, err := s.build(msg)
	if err != nil {
		return err
	}
	if err := s.send(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func (s *SMTPSender) build(msg Message) (*gomail.Message, error) {
	tmpl, ok := s.templates[msg.TemplateID]
	if !ok {
		return nil, fmt.Errorf("unknown email template %q", msg.TemplateID)
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, msg.Variables); err != nil {
		return nil, fmt.Errorf("failed to execute email template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", msg.From)
	m.SetHeader("To", msg.To)
	if msg.ReplyTo != "" {
		m.SetHeader("Reply-To", msg.ReplyTo)
	}
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/html", body.String())
	return m, nil
}
