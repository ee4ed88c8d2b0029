package email

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Default template identifiers hosted by the email provider.
const (
	InquiryNotificationTemplate = "new-client-inquiry-notification"
	ConfirmationTemplate        = "auto-reply-confirmation"
)

// Placeholders for optional inquiry fields the visitor left blank.
const (
	placeholderNA           = "N/A"
	placeholderNotSpecified = "Not specified"
)

// ErrNotConfigured is returned when a provider cannot be built from the
// current configuration, e.g. a missing API key.
var ErrNotConfigured = errors.New("email service is not configured")

// Message is one outbound email. The body is owned by the template named by
// TemplateID; Subject is used when the provider renders locally.
type Message struct {
	From       string
	To         string
	ReplyTo    string
	Subject    string
	TemplateID string
	Variables  map[string]string
}

// Sender delivers a single message through an email provider.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// InquiryData holds the data for contact form emails
type InquiryData struct {
	Name          string
	Email         string
	Message       string
	Topics        []string
	Budget        string
	Timeline      string
	ContactMethod string
	Company       string
	Website       string
}

type DispatcherConfig struct {
	From                 string
	NotificationTemplate string
	ConfirmationTemplate string
}

// Dispatcher turns an inquiry into the owner notification and the visitor
// confirmation and sends them in that order.
type Dispatcher struct {
	sender Sender
	cfg    DispatcherConfig
}

func NewDispatcher(sender Sender, cfg DispatcherConfig) *Dispatcher {
	if cfg.NotificationTemplate == "" {
		cfg.NotificationTemplate = InquiryNotificationTemplate
	}
	if cfg.ConfirmationTemplate == "" {
		cfg.ConfirmationTemplate = ConfirmationTemplate
	}
	return &Dispatcher{sender: sender, cfg: cfg}
}

// SendInquiry sends the owner notification to `to`, then the confirmation to
// the visitor. A failed first send stops the second; nothing is retried.
func (d *Dispatcher) SendInquiry(ctx context.Context, to string, data InquiryData) error {
	notification, confirmation := d.InquiryMessages(to, data)

	if err := d.sender.Send(ctx, notification); err != nil {
		return fmt.Errorf("send inquiry notification: %w", err)
	}
	if err := d.sender.Send(ctx, confirmation); err != nil {
		return fmt.Errorf("send confirmation: %w", err)
	}
	return nil
}

// InquiryMessages builds both messages without sending them.
func (d *Dispatcher) InquiryMessages(to string, data InquiryData) (Message, Message) {
	topics := strings.Join(data.Topics, ", ")

	notification := Message{
		From:       d.cfg.From,
		To:         to,
		ReplyTo:    data.Email,
		Subject:    fmt.Sprintf("New inquiry from %s: %s", data.Name, topics),
		TemplateID: d.cfg.NotificationTemplate,
		Variables: map[string]string{
			"name":          data.Name,
			"email":         data.Email,
			"company":       orDefault(data.Company, placeholderNA),
			"website":       orDefault(data.Website, placeholderNA),
			"contactMethod": orDefault(data.ContactMethod, placeholderNotSpecified),
			"budget":        orDefault(data.Budget, placeholderNA),
			"timeline":      orDefault(data.Timeline, placeholderNA),
			"topics":        topics,
			"message":       data.Message,
		},
	}

	confirmation := Message{
		From:       d.cfg.From,
		To:         data.Email,
		Subject:    fmt.Sprintf("Thanks for reaching out, %s", data.Name),
		TemplateID: d.cfg.ConfirmationTemplate,
		Variables: map[string]string{
			"NAME": data.Name,
		},
	}

	return notification, confirmation
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
