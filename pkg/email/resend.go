package email

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/resend/resend-go/v2"
)

// ResendClient sends template based emails through the Resend API.
type ResendClient struct {
	client *resend.Client
}

type resendTemplate struct {
	ID        string            `json:"id"`
	Variables map[string]string `json:"variables,omitempty"`
}

// templateEmailRequest adds the hosted template reference, which the SDK's
// request type does not carry yet.
type templateEmailRequest struct {
	resend.SendEmailRequest
	Template *resendTemplate `json:"template,omitempty"`
}

// ProviderError is a non-2xx answer from the email provider.
type ProviderError struct {
	StatusCode int
	Name       string
	Message    string
	Err        error
}

func (e *ProviderError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("email provider returned %d (%s): %s", e.StatusCode, e.Name, e.Message)
	}
	return fmt.Sprintf("email provider returned %d: %s", e.StatusCode, e.Message)
}

func (e *ProviderError) Unwrap() error { return e.Err }

type statusKey struct{}

// statusRecorder stores the response status in the request context. The SDK
// only reports it for rate limits.
type statusRecorder struct {
	next http.RoundTripper
}

func (t statusRecorder) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := t.next.RoundTrip(req)
	if resp != nil {
		if status, ok := req.Context().Value(statusKey{}).(*int); ok {
			*status = resp.StatusCode
		}
	}
	return resp, err
}

// NewResendClient builds a client for the API at baseURL, or the SDK default
// when baseURL is empty.
func NewResendClient(apiKey, baseURL string, timeout time.Duration) (*ResendClient, error) {
	httpClient := &http.Client{
		Timeout:   timeout,
		Transport: statusRecorder{next: http.DefaultTransport},
	}
	client := resend.NewCustomClient(httpClient, apiKey)
	if baseURL != "" {
		u, err := url.Parse(strings.TrimRight(baseURL, "/") + "/")
		if err != nil {
			return nil, fmt.Errorf("%w: invalid RESEND_API_URL: %v", ErrNotConfigured, err)
		}
		client.BaseURL = u
	}
	return &ResendClient{client: client}, nil
}

func (c *ResendClient) Send(ctx context.Context, msg Message) error {
	payload := &templateEmailRequest{
		SendEmailRequest: resend.SendEmailRequest{
			From:    msg.From,
			To:      []string{msg.To},
			Subject: msg.Subject,
			ReplyTo: msg.ReplyTo,
		},
	}
	if msg.TemplateID != "" {
		payload.Template = &resendTemplate{ID: msg.TemplateID, Variables: msg.Variables}
	}

	var status int
	req, err := c.client.NewRequest(context.WithValue(ctx, statusKey{}, &status), http.MethodPost, "emails", payload)
	if err != nil {
		return fmt.Errorf("failed to build email request: %w", err)
	}

	var sent resend.SendEmailResponse
	if _, err := c.client.Perform(req, &sent); err != nil {
		return providerError(status, err)
	}
	return nil
}

func providerError(status int, err error) error {
	switch {
	case status == 0:
		return fmt.Errorf("failed to send email: %w", err)
	case status >= 200 && status < 300:
		return fmt.Errorf("failed to decode email response: %w", err)
	}

	var rateErr *resend.RateLimitError
	if errors.As(err, &rateErr) {
		return &ProviderError{StatusCode: status, Name: "rate_limit_exceeded", Message: rateErr.Message, Err: err}
	}
	return &ProviderError{
		StatusCode: status,
		Message:    strings.TrimPrefix(err.Error(), "[ERROR]: "),
		Err:        err,
	}
}
