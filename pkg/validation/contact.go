package validation

import (
	"strings"

	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

// ContactValidator enforces the contact form schema.
type ContactValidator struct {
	validate *validator.Validate
}

func NewContactValidator(v *validator.Validate) *ContactValidator {
	if v == nil {
		v = New()
	}
	return &ContactValidator{validate: v}
}

// Validate normalizes the submission and checks it. On success the normalized
// copy is returned; on failure the error is a validation AppError listing
// every offending field.
func (cv *ContactValidator) Validate(in domain.ContactSubmission) (domain.ContactSubmission, error) {
	out := NormalizeContact(in)

	if err := cv.validate.Struct(out); err != nil {
		fields := FormatValidationErrors(err)
		return domain.ContactSubmission{}, apperror.ValidationError(Summary("Invalid form data", fields), fields)
	}
	return out, nil
}

// NormalizeContact trims every string and each topic. It never touches the
// caller's slice and applying it twice gives the same result.
func NormalizeContact(in domain.ContactSubmission) domain.ContactSubmission {
	out := domain.ContactSubmission{
		Name:          strings.TrimSpace(in.Name),
		Email:         strings.TrimSpace(in.Email),
		Message:       strings.TrimSpace(in.Message),
		Budget:        strings.TrimSpace(in.Budget),
		Timeline:      strings.TrimSpace(in.Timeline),
		ContactMethod: domain.ContactMethod(strings.TrimSpace(string(in.ContactMethod))),
		Company:       strings.TrimSpace(in.Company),
		Website:       strings.TrimSpace(in.Website),
		HP:            strings.TrimSpace(in.HP),
	}
	if in.Topics != nil {
		out.Topics = make([]string, len(in.Topics))
		for i, topic := range in.Topics {
			out.Topics[i] = strings.TrimSpace(topic)
		}
	}
	return out
}
