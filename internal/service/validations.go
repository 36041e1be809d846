package service

import (
	"errors"
	"reflect"
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/limbo/mindful/pkg/entity"
)

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once

	errEmptyRequest = errors.New("empty request")
)

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		validate.RegisterValidation("alphanum_underscore", func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			for i, char := range value {
				// Cannot be started with a digit or underscore
				if i == 0 && (unicode.IsDigit(char) || char == '_') {
					return false
				}
				// Digits, letters or underscore
				if !unicode.IsLetter(char) && !unicode.IsDigit(char) && char != '_' {
					return false
				}
			}
			return true
		})
		validate.RegisterValidation("sleep_quality", func(fl validator.FieldLevel) bool {
			_, ok := entity.SleepQuality(fl.Field().String()).Score()
			return ok
		})
		validate.RegisterValidation("mood", func(fl validator.FieldLevel) bool {
			_, ok := entity.Mood(fl.Field().String()).Score()
			return ok
		})
		validate.RegisterValidation("journal_date", func(fl validator.FieldLevel) bool {
			_, err := entity.ParseDate(fl.Field().String())
			return err == nil
		})
	})
}

func validateStruct(s any) error {
	if s == nil {
		return &ValidationError{cause: errEmptyRequest}
	}
	if v := reflect.ValueOf(s); v.Kind() == reflect.Pointer && v.IsNil() {
		return &ValidationError{cause: errEmptyRequest}
	}
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	if validationError, ok := err.(validator.ValidationErrors); ok {
		return &ValidationError{Fields: validationError}
	}
	return &ValidationError{cause: err}
}

// ValidationError is returned for rejected input; handlers map it to 400.
type ValidationError struct {
	Fields validator.ValidationErrors
	cause  error
}

func (e *ValidationError) Error() string {
	if e.cause != nil {
		return "validation unexpected error: " + e.cause.Error()
	}
	return "validation error: " + e.Fields.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.cause
}
