package service

import (
	"errors"
	"fmt"
	"sync"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"
	errorvalues "github.com/limbo/agencydesk/internal/error_values"
)

const DayLayout = "2006-01-02"

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once
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
		validate.RegisterValidation("calendar_day", func(fl validator.FieldLevel) bool {
			_, err := time.Parse(DayLayout, fl.Field().String())
			return err == nil
		})
	})
}

// validateStruct runs struct tags and folds field errors into one ErrInvalidRequest.
func validateStruct(v any) error {
	InitValidator()
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		err = errorvalues.ErrInvalidRequest
		for _, fieldErr := range validationErrors {
			err = errors.Join(err, fieldErr)
		}
		return err
	}
	return errors.New("validation unexpected error: " + err.Error())
}

// ParseDay parses a calendar day in YYYY-MM-DD form as UTC midnight.
func ParseDay(s string) (time.Time, error) {
	day, err := time.ParseInLocation(DayLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", errorvalues.ErrInvalidDate, s)
	}
	return day, nil
}

// Day truncates t to its calendar day in t's location, returned as UTC midnight.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
