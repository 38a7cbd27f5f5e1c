// Package validator adapts go-playground/validator to echo.Validator.
package validator

import (
	"net/http"
	"reflect"
	"strings"

	domainerrors "fittrack/internal/domain/errors"
	"fittrack/internal/errors"

	"github.com/go-playground/validator/v10"
)

// FieldError names one failed rule, using the field's JSON name.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

// ValidationError is returned by Validate. It matches domainerrors.ErrValidationFailed.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+" "+f.Rule)
	}

	return "validation failed: " + strings.Join(parts, ", ")
}

func (e *ValidationError) Unwrap() error { return domainerrors.ErrValidationFailed }

func (e *ValidationError) HTTPCode() int     { return http.StatusBadRequest }
func (e *ValidationError) ErrorCode() string { return domainerrors.ErrValidationFailed.ErrorCode() }
func (e *ValidationError) Message() string   { return domainerrors.ErrValidationFailed.Message() }
func (e *ValidationError) Details() string   { return e.Error() }

// Validator implements echo.Validator.
type Validator struct {
	validate *validator.Validate
}

// New builds a validator that reports fields by their json tag.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}

		return name
	})

	return &Validator{validate: v}
}

// Validate checks the struct tags of i.
func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return errors.WithStack(err)
	}

	fields := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, FieldError{Field: fe.Field(), Rule: fe.Tag(), Param: fe.Param()})
	}

	return &ValidationError{Fields: fields}
}
