// Package validation is the pure input gate: each operation has a declarative
// schema of field rules evaluated before any storage access. A failing check
// reports every violated constraint in one aggregated error.
package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/arioseno/contactbook-backend/internal/apierr"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type FieldError struct {
	Field   string
	Message string
}

type Error struct {
	Fields []FieldError
}

func (e *Error) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, fe := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Field, fe.Message))
	}
	return strings.Join(parts, "; ")
}

type Rule interface {
	check() []FieldError
}

// StringRule validates one string field. Value is nil when the field was
// absent from the request; optional rules skip nil values entirely.
type StringRule struct {
	Field    string
	Value    *string
	Required bool
	Min      int
	Max      int
	Email    bool
}

func (r StringRule) check() []FieldError {
	if r.Value == nil || *r.Value == "" {
		if r.Required {
			return []FieldError{{Field: r.Field, Message: "is required"}}
		}
		return nil
	}
	var errs []FieldError
	v := *r.Value
	if r.Min > 0 && len(v) < r.Min {
		errs = append(errs, FieldError{Field: r.Field, Message: fmt.Sprintf("must be at least %d characters", r.Min)})
	}
	if r.Max > 0 && len(v) > r.Max {
		errs = append(errs, FieldError{Field: r.Field, Message: fmt.Sprintf("must be at most %d characters", r.Max)})
	}
	if r.Email && !emailRe.MatchString(v) {
		errs = append(errs, FieldError{Field: r.Field, Message: "must be a valid email address"})
	}
	return errs
}

type IntRule struct {
	Field string
	Value int
	Min   int
	Max   int
}

func (r IntRule) check() []FieldError {
	var errs []FieldError
	if r.Value < r.Min {
		errs = append(errs, FieldError{Field: r.Field, Message: fmt.Sprintf("must be at least %d", r.Min)})
	}
	if r.Max > 0 && r.Value > r.Max {
		errs = append(errs, FieldError{Field: r.Field, Message: fmt.Sprintf("must be at most %d", r.Max)})
	}
	return errs
}

// Check evaluates every rule and aggregates all violations into a single
// apierr validation failure, or returns nil.
func Check(rules ...Rule) error {
	var fields []FieldError
	for _, r := range rules {
		fields = append(fields, r.check()...)
	}
	if len(fields) == 0 {
		return nil
	}
	return apierr.Validation(&Error{Fields: fields})
}
