package validation

import (
	"html"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// FieldError describes a single failed form rule.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"msg"`
}

// Values maps form field names to their raw (or sanitized) string values.
type Values map[string]string

// Rule validates one form field. The optional Tag is a go-playground/validator
// tag evaluated against the sanitized value; the optional Check runs after the
// tag passes. A rule with Sanitize set trims and HTML-escapes the value before
// any checks run.
type Rule struct {
	Field    string
	Message  string
	Sanitize bool
	Tag      string
	Check    func(value string) bool
}

// Apply runs the rules against the submitted values. It returns the sanitized
// values together with the ordered list of field errors. Malformed input never
// panics; it only accumulates errors.
func Apply(values Values, rules []Rule) (Values, []FieldError) {
	sanitized := make(Values, len(values))
	for field, value := range values {
		sanitized[field] = value
	}

	var errs []FieldError
	for _, rule := range rules {
		value := sanitized[rule.Field]
		if rule.Sanitize {
			value = Sanitize(value)
			sanitized[rule.Field] = value
		}
		if rule.Tag != "" {
			if err := validate.Var(value, rule.Tag); err != nil {
				errs = append(errs, FieldError{Field: rule.Field, Message: rule.Message})
				continue
			}
		}
		if rule.Check != nil && !rule.Check(value) {
			errs = append(errs, FieldError{Field: rule.Field, Message: rule.Message})
		}
	}
	return sanitized, errs
}

// Sanitize trims surrounding whitespace and escapes markup-significant
// characters in a user-submitted value.
func Sanitize(value string) string {
	return html.EscapeString(strings.TrimSpace(value))
}

// MinLength reports whether the value contains at least n characters.
func MinLength(n int) func(string) bool {
	return func(value string) bool {
		return utf8.RuneCountInString(value) >= n
	}
}

// MaxLength reports whether the value contains at most n characters.
func MaxLength(n int) func(string) bool {
	return func(value string) bool {
		return utf8.RuneCountInString(value) <= n
	}
}

// DecimalMin reports whether the value parses as a decimal number of at
// least min.
func DecimalMin(min float64) func(string) bool {
	return func(value string) bool {
		f, err := strconv.ParseFloat(value, 64)
		return err == nil && f >= min
	}
}

// IntMin reports whether the value parses as an integer of at least min.
func IntMin(min int) func(string) bool {
	return func(value string) bool {
		n, err := strconv.Atoi(value)
		return err == nil && n >= min
	}
}

// CategoryRules are the form rules for creating or updating a category.
func CategoryRules() []Rule {
	return []Rule{
		{
			Field:    "name",
			Message:  "Category name must contain at least 3 characters",
			Sanitize: true,
			Check:    MinLength(3),
		},
		{
			Field:   "name",
			Message: "Category name must not exceed 100 characters",
			Check:   MaxLength(100),
		},
		{
			Field:    "description",
			Message:  "Category description must contain at least 3 characters",
			Sanitize: true,
			Check:    MinLength(3),
		},
		{
			Field:   "description",
			Message: "Category description must not exceed 100 characters",
			Check:   MaxLength(100),
		},
	}
}

// ProductRules are the form rules for creating or updating a product. An
// uploaded image is required: the original form handler assumed one was
// always present and crashed without it, so absence is treated here as a
// plain validation failure instead.
func ProductRules() []Rule {
	return []Rule{
		{
			Field:    "name",
			Message:  "Name must not be empty.",
			Sanitize: true,
			Check:    MinLength(1),
		},
		{
			Field:   "name",
			Message: "Name must not exceed 100 characters",
			Check:   MaxLength(100),
		},
		{
			Field:    "description",
			Message:  "Description must not be empty.",
			Sanitize: true,
			Check:    MinLength(1),
		},
		{
			Field:   "description",
			Message: "Description must not exceed 500 characters",
			Check:   MaxLength(500),
		},
		{
			Field:   "price",
			Message: "Price must not be zero and must have two decimal points",
			Tag:     "required,numeric",
			Check:   DecimalMin(0.01),
		},
		{
			Field:   "stock",
			Message: "Must be at least one product in stock",
			Tag:     "required,numeric",
			Check:   IntMin(1),
		},
		{
			Field:    "category",
			Sanitize: true,
		},
		{
			Field:   "productImage",
			Message: "A product image must be uploaded",
			Check:   MinLength(1),
		},
	}
}
