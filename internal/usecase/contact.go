package usecase

import (
	"context"
	"errors"
	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/apperror"
	"portfolio-backend/pkg/email"
	"portfolio-backend/pkg/logger"
)

// InquiryDispatcher sends the owner notification and visitor confirmation.
type InquiryDispatcher interface {
	SendInquiry(ctx context.Context, to string, data email.InquiryData) error
}

// ContactValidator normalizes and validates a submission.
type ContactValidator interface {
	Validate(in domain.ContactSubmission) (domain.ContactSubmission, error)
}

type contactUsecase struct {
	validator  ContactValidator
	dispatcher InquiryDispatcher
	recipient  func() string
}

// NewContactUsecase creates a new contact usecase. recipient is read on every
// submission so a missing address is reported per request, not at boot.
func NewContactUsecase(validator ContactValidator, dispatcher InquiryDispatcher, recipient func() string) domain.ContactUsecase {
	return &contactUsecase{
		validator:  validator,
		dispatcher: dispatcher,
		recipient:  recipient,
	}
}

// SubmitContact validates the contact request and sends both emails
func (uc *contactUsecase) SubmitContact(ctx context.Context, req domain.ContactSubmission) error {
	// Bots get the same answer as people; they must not learn the field is a trap
	if req.IsLikelyBot() {
		logger.Log.InfoContext(ctx, "Contact submission dropped by honeypot")
		return nil
	}

	data, err := uc.validator.Validate(req)
	if err != nil {
		return err
	}

	to := uc.recipient()
	if to == "" {
		return apperror.ConfigurationError(errors.New("CONTACT_TO_EMAIL is not set"))
	}

	// A visitor closing the tab must not cut the second email off mid-flight
	sendCtx := context.WithoutCancel(ctx)
	if err := uc.dispatcher.SendInquiry(sendCtx, to, inquiryData(data)); err != nil {
		if errors.Is(err, email.ErrNotConfigured) {
			return apperror.ConfigurationError(err)
		}
		return apperror.DispatchError(err)
	}

	logger.Log.InfoContext(ctx, "Contact submission delivered", "topics", data.Topics)
	return nil
}

func inquiryData(s domain.ContactSubmission) email.InquiryData {
	return email.InquiryData{
		Name:          s.Name,
		Email:         s.Email,
		Message:       s.Message,
		Topics:        s.Topics,
		Budget:        s.Budget,
		Timeline:      s.Timeline,
		ContactMethod: string(s.ContactMethod),
		Company:       s.Company,
		Website:       s.Website,
	}
}
