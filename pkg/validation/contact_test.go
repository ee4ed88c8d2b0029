package validation_test

import (
	"encoding/json"
	"testing"

	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/apperror"
	"portfolio-backend/pkg/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSubmission() domain.ContactSubmission {
	return domain.ContactSubmission{
		Name:    "Jo",
		Email:   "jo@x.com",
		Message: "Need a website built soon",
		Topics:  []string{"New SaaS"},
	}
}

func fieldNames(t *testing.T, err error) []string {
	t.Helper()
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, apperror.KindValidation, appErr.Kind)

	names := make([]string, 0, len(appErr.Fields))
	for _, f := range appErr.Fields {
		names = append(names, f.Field)
	}
	return names
}

func TestContactValidatorAcceptsValidPayload(t *testing.T) {
	v := validation.NewContactValidator(nil)

	in := validSubmission()
	in.ContactMethod = domain.ContactMethodCall
	in.Budget = "AUD 3,000+"

	out, err := v.Validate(in)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestContactValidatorRequiredFields(t *testing.T) {
	v := validation.NewContactValidator(nil)

	t.Run("Should fail when name is missing", func(t *testing.T) {
		in := validSubmission()
		in.Name = ""
		_, err := v.Validate(in)
		assert.Equal(t, []string{"name"}, fieldNames(t, err))
	})

	t.Run("Should fail when name is only whitespace", func(t *testing.T) {
		in := validSubmission()
		in.Name = "   "
		_, err := v.Validate(in)
		assert.Equal(t, []string{"name"}, fieldNames(t, err))
	})

	t.Run("Should fail when email is missing", func(t *testing.T) {
		in := validSubmission()
		in.Email = ""
		_, err := v.Validate(in)
		assert.Equal(t, []string{"email"}, fieldNames(t, err))
	})

	t.Run("Should fail when message is shorter than 10 characters", func(t *testing.T) {
		in := validSubmission()
		in.Message = "too short"
		_, err := v.Validate(in)
		assert.Equal(t, []string{"message"}, fieldNames(t, err))
	})

	t.Run("Should count characters, not bytes", func(t *testing.T) {
		in := validSubmission()
		in.Message = "ééééééééé" // 9 runes, 18 bytes
		_, err := v.Validate(in)
		assert.Equal(t, []string{"message"}, fieldNames(t, err))
	})

	t.Run("Should fail when topics is empty", func(t *testing.T) {
		in := validSubmission()
		in.Topics = []string{}
		_, err := v.Validate(in)
		assert.Equal(t, []string{"topics"}, fieldNames(t, err))
	})

	t.Run("Should fail when topics is absent", func(t *testing.T) {
		in := validSubmission()
		in.Topics = nil
		_, err := v.Validate(in)
		assert.Equal(t, []string{"topics"}, fieldNames(t, err))
	})

	t.Run("Should accept blank topic entries", func(t *testing.T) {
		in := validSubmission()
		in.Topics = []string{""}
		out, err := v.Validate(in)
		require.NoError(t, err)
		assert.Equal(t, []string{""}, out.Topics)

		in.Topics = []string{"New SaaS", "  "}
		out, err = v.Validate(in)
		require.NoError(t, err)
		assert.Equal(t, []string{"New SaaS", ""}, out.Topics)
	})
}

func TestContactValidatorReportsEveryField(t *testing.T) {
	v := validation.NewContactValidator(nil)

	_, err := v.Validate(domain.ContactSubmission{
		Email:         "not-an-email",
		Message:       "short",
		ContactMethod: "Fax",
	})

	assert.Equal(t, []string{"name", "email", "message", "topics", "contactMethod"}, fieldNames(t, err))
	assert.Equal(t,
		"Invalid form data: name: Please enter your name; email: Please enter a valid email; "+
			"message: Please add a bit more detail; topics: Select at least one topic; "+
			"contactMethod: Choose Email or Call",
		err.Error())
}

func TestContactValidatorEmailSyntax(t *testing.T) {
	v := validation.NewContactValidator(nil)

	for _, email := range []string{"not-an-email", "a@", "@b.co", "a b@c.com"} {
		in := validSubmission()
		in.Email = email
		_, err := v.Validate(in)
		assert.Equal(t, []string{"email"}, fieldNames(t, err), email)
	}

	for _, email := range []string{"a@b.co", "jo@x.com", "first.last+tag@example.com.au"} {
		in := validSubmission()
		in.Email = email
		_, err := v.Validate(in)
		assert.NoError(t, err, email)
	}
}

func TestContactValidatorContactMethod(t *testing.T) {
	v := validation.NewContactValidator(nil)

	for _, method := range []domain.ContactMethod{"", domain.ContactMethodEmail, domain.ContactMethodCall} {
		in := validSubmission()
		in.ContactMethod = method
		_, err := v.Validate(in)
		assert.NoError(t, err, string(method))
	}

	in := validSubmission()
	in.ContactMethod = "email"
	_, err := v.Validate(in)
	assert.Equal(t, []string{"contactMethod"}, fieldNames(t, err))
}

func TestContactValidatorDoesNotMutateInput(t *testing.T) {
	v := validation.NewContactValidator(nil)

	topics := []string{"  New SaaS  "}
	in := validSubmission()
	in.Name = "  Jo "
	in.Topics = topics

	out, err := v.Validate(in)
	require.NoError(t, err)

	assert.Equal(t, "Jo", out.Name)
	assert.Equal(t, []string{"New SaaS"}, out.Topics)
	assert.Equal(t, "  Jo ", in.Name)
	assert.Equal(t, "  New SaaS  ", topics[0])
}

func TestContactValidatorRoundTrip(t *testing.T) {
	v := validation.NewContactValidator(nil)

	in := domain.ContactSubmission{
		Name:          " Jo ",
		Email:         "jo@x.com ",
		Message:       "Need a website built soon\n",
		Topics:        []string{" New SaaS", "Redesign "},
		Timeline:      "ASAP",
		ContactMethod: domain.ContactMethodEmail,
	}

	first, err := v.Validate(in)
	require.NoError(t, err)

	raw, err := json.Marshal(first)
	require.NoError(t, err)

	var decoded domain.ContactSubmission
	require.NoError(t, json.Unmarshal(raw, &decoded))

	second, err := v.Validate(decoded)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestContactValidatorIsDeterministic(t *testing.T) {
	v := validation.NewContactValidator(nil)
	in := domain.ContactSubmission{Email: "nope", Topics: []string{}}

	_, first := v.Validate(in)
	_, second := v.Validate(in)
	assert.Equal(t, first, second)
}
