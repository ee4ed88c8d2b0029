package domain

import (
	"context"
	"strings"
)

// ContactMethod is the visitor's preferred way to be contacted back.
type ContactMethod string

const (
	ContactMethodEmail ContactMethod = "Email"
	ContactMethodCall  ContactMethod = "Call"
)

// ContactSubmission is one contact form payload from a site visitor.
// Values are treated as immutable: validation returns a normalized copy.
type ContactSubmission struct {
	Name          string        `json:"name" validate:"required" example:"Jo"`
	Email         string        `json:"email" validate:"required,email" example:"jo@example.com"`
	Message       string        `json:"message" validate:"required,min=10" example:"Need a website built soon"`
	Topics        []string      `json:"topics" validate:"required,min=1" example:"New SaaS"`
	Budget        string        `json:"budget,omitempty" example:"AUD 8,000+"`
	Timeline      string        `json:"timeline,omitempty" example:"4–6 weeks"`
	ContactMethod ContactMethod `json:"contactMethod,omitempty" validate:"omitempty,oneof=Email Call" enums:"Email,Call"`
	Company       string        `json:"company,omitempty"`
	Website       string        `json:"website,omitempty"`
	// HP is the hidden honeypot input. Humans never fill it in.
	HP string `json:"hp,omitempty"`
}

// IsLikelyBot reports whether the honeypot field was filled in. Whitespace
// alone does not count.
func (s ContactSubmission) IsLikelyBot() bool {
	return strings.TrimSpace(s.HP) != ""
}

// ContactUsecase defines the interface for contact form operations
type ContactUsecase interface {
	// SubmitContact validates a submission and notifies both the site owner and the visitor.
	SubmitContact(ctx context.Context, req ContactSubmission) error
}
