// Package validation wraps a shared go-playground validator instance. Field
// names in errors are the JSON names of the validated struct.
package validation

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func instance() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return f.Name
			}
			return name
		})
		if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
			panic(err)
		}
		validate = v
	})
	return validate
}

// FieldError is a single failed rule.
type FieldError struct {
	Field string
	Tag   string
}

// Errors lists every field that failed, one entry per field.
type Errors []FieldError

func (e Errors) Error() string {
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fe.Field+" failed "+fe.Tag)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// HasTag reports whether any field failed tag.
func (e Errors) HasTag(tag string) bool {
	for _, fe := range e {
		if fe.Tag == tag {
			return true
		}
	}
	return false
}

// Field returns the failure for field, if any.
func (e Errors) Field(field string) (FieldError, bool) {
	for _, fe := range e {
		if fe.Field == field {
			return fe, true
		}
	}
	return FieldError{}, false
}

// Struct validates s. It returns nil, an Errors value, or the validator's own
// error when s is not a struct.
func Struct(s any) error {
	err := instance().Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := make(Errors, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Field: fe.Field(), Tag: fe.Tag()})
	}
	return out
}
