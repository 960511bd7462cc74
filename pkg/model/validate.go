package model

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// ValidationError reports which fields of an input failed validation.
type ValidationError struct {
	Fields map[string]string `json:"fields"`
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+": "+e.Fields[name])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

type enum interface {
	Valid() bool
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return f.Name
			}
			return name
		})
		validate.RegisterCustomTypeFunc(func(v reflect.Value) interface{} {
			d := v.Interface().(Date)
			if d.IsZero() {
				return nil
			}
			return d.Time
		}, Date{})
		_ = validate.RegisterValidation("enum", func(fl validator.FieldLevel) bool {
			e, ok := fl.Field().Interface().(enum)
			return ok && e.Valid()
		})
		validate.RegisterStructValidation(func(sl validator.StructLevel) {
			p := sl.Current().Interface().(Project)
			if p.EndDate != nil && !p.EndDate.IsZero() && p.EndDate.Before(p.StartDate.Time) {
				sl.ReportError(p.EndDate, "end_date", "EndDate", "after_start", "")
			}
		}, Project{})
	})
	return validate
}

// Validate checks v against its struct tags and returns a *ValidationError
// listing every failing field.
func Validate(v any) error {
	err := validatorInstance().Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = message(fe)
	}
	return &ValidationError{Fields: fields}
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "email":
		return "must be a valid email address"
	case "url":
		return "must be a valid URL"
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "enum":
		return "is not an allowed value"
	case "after_start":
		return "must not be before start_date"
	}
	return "is invalid"
}
