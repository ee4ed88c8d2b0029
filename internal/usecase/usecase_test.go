package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"portfolio-backend/internal/domain"
	"portfolio-backend/internal/usecase"
	"portfolio-backend/pkg/apperror"
	"portfolio-backend/pkg/email"
	"portfolio-backend/pkg/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mock email provider
type MockSender struct {
	mock.Mock
}

func (m *MockSender) Send(ctx context.Context, msg email.Message) error {
	return m.Called(ctx, msg).Error(0)
}

func newContactUC(sender email.Sender, recipient string) domain.ContactUsecase {
	dispatcher := email.NewDispatcher(sender, email.DispatcherConfig{From: "hello@example.com"})
	return usecase.NewContactUsecase(validation.NewContactValidator(nil), dispatcher, func() string { return recipient })
}

func validSubmission() domain.ContactSubmission {
	return domain.ContactSubmission{
		Name:    "Jo",
		Email:   "jo@x.com",
		Message: "Need a website built soon",
		Topics:  []string{"New SaaS"},
	}
}

func TestSubmitContactInvalidInputHasNoSideEffects(t *testing.T) {
	cases := map[string]func(s *domain.ContactSubmission){
		"missing name":    func(s *domain.ContactSubmission) { s.Name = "" },
		"missing email":   func(s *domain.ContactSubmission) { s.Email = "" },
		"invalid email":   func(s *domain.ContactSubmission) { s.Email = "not-an-email" },
		"missing message": func(s *domain.ContactSubmission) { s.Message = "" },
		"short message":   func(s *domain.ContactSubmission) { s.Message = "hi there" },
		"no topics":       func(s *domain.ContactSubmission) { s.Topics = []string{} },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			sender := new(MockSender)
			uc := newContactUC(sender, "owner@example.com")

			in := validSubmission()
			mutate(&in)
			err := uc.SubmitContact(context.Background(), in)

			assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
			sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
		})
	}
}

func TestSubmitContactMissingRecipient(t *testing.T) {
	sender := new(MockSender)
	uc := newContactUC(sender, "")

	err := uc.SubmitContact(context.Background(), validSubmission())

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.KindConfiguration, appErr.Kind)
	assert.Equal(t, "Server not configured", appErr.Message)
	sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestSubmitContactMissingProviderCredentials(t *testing.T) {
	lazy := email.NewLazySender(func() (email.Sender, error) {
		return nil, fmt.Errorf("%w: RESEND_API_KEY is not set", email.ErrNotConfigured)
	})
	uc := newContactUC(lazy, "owner@example.com")

	err := uc.SubmitContact(context.Background(), validSubmission())

	assert.Equal(t, apperror.KindConfiguration, apperror.KindOf(err))
	assert.ErrorIs(t, err, email.ErrNotConfigured)
}

func TestSubmitContactSendsOwnerThenVisitor(t *testing.T) {
	sender := new(MockSender)
	sender.On("Send", mock.Anything, mock.Anything).Return(nil)
	uc := newContactUC(sender, "owner@example.com")

	require.NoError(t, uc.SubmitContact(context.Background(), validSubmission()))

	sender.AssertNumberOfCalls(t, "Send", 2)
	first := sender.Calls[0].Arguments.Get(1).(email.Message)
	second := sender.Calls[1].Arguments.Get(1).(email.Message)
	assert.Equal(t, "owner@example.com", first.To)
	assert.Equal(t, email.InquiryNotificationTemplate, first.TemplateID)
	assert.Equal(t, "jo@x.com", second.To)
	assert.Equal(t, email.ConfirmationTemplate, second.TemplateID)
}

func TestSubmitContactSendsNormalizedValues(t *testing.T) {
	sender := new(MockSender)
	sender.On("Send", mock.Anything, mock.Anything).Return(nil)
	uc := newContactUC(sender, "owner@example.com")

	in := validSubmission()
	in.Name = "  Jo  "
	in.Topics = []string{" New SaaS ", "Redesign"}
	require.NoError(t, uc.SubmitContact(context.Background(), in))

	notification := sender.Calls[0].Arguments.Get(1).(email.Message)
	assert.Equal(t, "Jo", notification.Variables["name"])
	assert.Equal(t, "New SaaS, Redesign", notification.Variables["topics"])
}

func TestSubmitContactFirstSendFailure(t *testing.T) {
	sender := new(MockSender)
	sender.On("Send", mock.Anything, mock.Anything).Return(errors.New("invalid API key")).Once()
	uc := newContactUC(sender, "owner@example.com")

	err := uc.SubmitContact(context.Background(), validSubmission())

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.KindDispatch, appErr.Kind)
	assert.Equal(t, 500, appErr.Code)
	sender.AssertNumberOfCalls(t, "Send", 1)
}

func TestSubmitContactHoneypot(t *testing.T) {
	sender := new(MockSender)
	uc := newContactUC(sender, "owner@example.com")

	t.Run("Should pretend success without sending", func(t *testing.T) {
		in := validSubmission()
		in.HP = "http://spam.example"
		assert.NoError(t, uc.SubmitContact(context.Background(), in))
	})

	t.Run("Should not even validate bot submissions", func(t *testing.T) {
		assert.NoError(t, uc.SubmitContact(context.Background(), domain.ContactSubmission{HP: "x"}))
	})

	sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestSubmitContactWhitespaceHoneypotIsHuman(t *testing.T) {
	sender := new(MockSender)
	sender.On("Send", mock.Anything, mock.Anything).Return(nil)
	uc := newContactUC(sender, "owner@example.com")

	in := validSubmission()
	in.HP = "   "
	require.NoError(t, uc.SubmitContact(context.Background(), in))
	sender.AssertNumberOfCalls(t, "Send", 2)

	err := uc.SubmitContact(context.Background(), domain.ContactSubmission{HP: " \t"})
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
}

func TestSubmitContactIsNotIdempotent(t *testing.T) {
	sender := new(MockSender)
	sender.On("Send", mock.Anything, mock.Anything).Return(nil)
	uc := newContactUC(sender, "owner@example.com")

	require.NoError(t, uc.SubmitContact(context.Background(), validSubmission()))
	require.NoError(t, uc.SubmitContact(context.Background(), validSubmission()))

	sender.AssertNumberOfCalls(t, "Send", 4)
}

func TestSubmitContactIgnoresCallerCancellation(t *testing.T) {
	sender := new(MockSender)
	sender.On("Send", mock.MatchedBy(func(ctx context.Context) bool {
		return ctx.Err() == nil
	}), mock.Anything).Return(nil)
	uc := newContactUC(sender, "owner@example.com")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, uc.SubmitContact(ctx, validSubmission()))
	sender.AssertNumberOfCalls(t, "Send", 2)
}
