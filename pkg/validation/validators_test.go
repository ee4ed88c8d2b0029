package validation_test

import (
	"testing"

	"portfolio-backend/pkg/validation"

	"github.com/stretchr/testify/assert"
)

type catalogItem struct {
	Slug        string `json:"slug" validate:"required,slug"`
	PublishedAt string `json:"publishedAt" validate:"omitempty,iso_date"`
}

func TestSlugValidator(t *testing.T) {
	v := validation.New()

	for _, slug := range []string{"ai-contract-automation", "faq1", "a-b-c"} {
		assert.NoError(t, v.Struct(catalogItem{Slug: slug}), slug)
	}
	for _, slug := range []string{"Upper-Case", "double--hyphen", "-leading", "trailing-", "spa ce", ""} {
		assert.Error(t, v.Struct(catalogItem{Slug: slug}), slug)
	}
}

func TestISODateValidator(t *testing.T) {
	v := validation.New()

	assert.NoError(t, v.Struct(catalogItem{Slug: "post", PublishedAt: "2024-12-15"}))
	assert.Error(t, v.Struct(catalogItem{Slug: "post", PublishedAt: "15/12/2024"}))
	assert.Error(t, v.Struct(catalogItem{Slug: "post", PublishedAt: "2024-02-30"}))
}

func TestFormatValidationErrorsUsesJSONNames(t *testing.T) {
	v := validation.New()

	fields := validation.FormatValidationErrors(v.Struct(catalogItem{Slug: "Bad Slug", PublishedAt: "yesterday"}))

	assert.Len(t, fields, 2)
	assert.Equal(t, "slug", fields[0].Field)
	assert.Equal(t, "must be lowercase words separated by hyphens", fields[0].Message)
	assert.Equal(t, "publishedAt", fields[1].Field)
	assert.Equal(t, "slug: must be lowercase words separated by hyphens; publishedAt: must be a date in YYYY-MM-DD format",
		validation.Summary("", fields))
}
