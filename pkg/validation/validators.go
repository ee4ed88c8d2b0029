package validation

import (
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Regex patterns
var (
	// lowercase words joined by single hyphens, e.g. "tradie-booking-platform"
	slugRegex = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
)

// New returns a validator that reports JSON field names and knows the
// project's custom tags.
func New() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(jsonFieldName)
	RegisterValidators(v)
	return v
}

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("slug", Slug)
	_ = v.RegisterValidation("iso_date", ISODate)
}

// Slug validates a URL-safe identifier used for deep links
func Slug(fl validator.FieldLevel) bool {
	return slugRegex.MatchString(fl.Field().String())
}

// ISODate validates a calendar date in YYYY-MM-DD form
func ISODate(fl validator.FieldLevel) bool {
	_, err := time.Parse(time.DateOnly, fl.Field().String())
	return err == nil
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}
