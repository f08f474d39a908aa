// Package validation checks request payloads against their struct tags and
// reports failures per field, using the field's JSON name.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError describes why a single field was rejected.
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// FieldErrors is the set of failures for one payload.
type FieldErrors []FieldError

func (f FieldErrors) Error() string {
	parts := make([]string, 0, len(f))
	for _, e := range f {
		parts = append(parts, e.Field+" "+e.Error)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Validator wraps a configured validator.Validate.
type Validator struct {
	validate *validator.Validate
}

// New returns a Validator reporting fields by their json tag.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)
	return &Validator{validate: v}
}

// Struct validates s and returns nil when it is valid.
// Errors that are not field failures (e.g. a non-struct argument) are returned unchanged.
func (v *Validator) Struct(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := make(FieldErrors, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Field: fe.Field(), Error: message(fe)})
	}
	return out
}

func jsonFieldName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return f.Name
	}
	return name
}

func message(fe validator.FieldError) string {
	isString := fe.Kind() == reflect.String
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		if isString {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if isString {
			return fmt.Sprintf("must not exceed %s characters", fe.Param())
		}
		return fmt.Sprintf("must not exceed %s", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	}
	if fe.Param() != "" {
		return fmt.Sprintf("failed on the '%s=%s' tag", fe.Tag(), fe.Param())
	}
	return fmt.Sprintf("failed on the '%s' tag", fe.Tag())
}
