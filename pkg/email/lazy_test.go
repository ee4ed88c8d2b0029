package email_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"portfolio-backend/config"
	"portfolio-backend/pkg/email"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLazySenderBuildsOnce(t *testing.T) {
	sender := new(MockSender)
	sender.On("Send", mock.Anything, mock.Anything).Return(nil)

	builds := 0
	lazy := email.NewLazySender(func() (email.Sender, error) {
		builds++
		return sender, nil
	})

	assert.Equal(t, 0, builds, "nothing is built before first use")

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = lazy.Send(context.Background(), email.Message{To: "a@b.co"})
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, builds)
	sender.AssertNumberOfCalls(t, "Send", 10)
}

func TestLazySenderRetriesFailedBuild(t *testing.T) {
	sender := new(MockSender)
	sender.On("Send", mock.Anything, mock.Anything).Return(nil)

	attempts := 0
	lazy := email.NewLazySender(func() (email.Sender, error) {
		attempts++
		if attempts == 1 {
			return nil, fmt.Errorf("%w: RESEND_API_KEY is not set", email.ErrNotConfigured)
		}
		return sender, nil
	})

	err := lazy.Send(context.Background(), email.Message{})
	assert.ErrorIs(t, err, email.ErrNotConfigured)
	sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)

	require.NoError(t, lazy.Send(context.Background(), email.Message{}))
	assert.Equal(t, 2, attempts)
}

func TestSenderFactory(t *testing.T) {
	t.Run("Should report a missing Resend key as not configured", func(t *testing.T) {
		_, err := email.NewSenderFactory(&config.Config{EmailProvider: "resend"})()
		assert.ErrorIs(t, err, email.ErrNotConfigured)
	})

	t.Run("Should build a Resend client when the key is present", func(t *testing.T) {
		s, err := email.NewSenderFactory(&config.Config{EmailProvider: "resend", ResendAPIKey: "re_x"})()
		require.NoError(t, err)
		assert.IsType(t, &email.ResendClient{}, s)
	})

	t.Run("Should report incomplete SMTP settings as not configured", func(t *testing.T) {
		_, err := email.NewSenderFactory(&config.Config{EmailProvider: "smtp", SMTPHost: "smtp.example.com"})()
		assert.ErrorIs(t, err, email.ErrNotConfigured)
	})

	t.Run("Should reject unknown providers", func(t *testing.T) {
		_, err := email.NewSenderFactory(&config.Config{EmailProvider: "pigeon"})()
		assert.ErrorIs(t, err, email.ErrNotConfigured)
	})
}

func TestCredentialsPresent(t *testing.T) {
	assert.False(t, email.CredentialsPresent(&config.Config{EmailProvider: "resend"}))
	assert.True(t, email.CredentialsPresent(&config.Config{EmailProvider: "resend", ResendAPIKey: "k"}))
	assert.True(t, email.CredentialsPresent(&config.Config{
		EmailProvider: "smtp", SMTPHost: "h", SMTPUsername: "u", SMTPPassword: "p",
	}))
}
