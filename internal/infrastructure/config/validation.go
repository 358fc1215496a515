package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator is a wrapper around go-playground/validator
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a validator that reports fields by their config key and
// checks that database settings can produce a connection
func NewValidator() *Validator {
	v := validator.New()

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("mapstructure"), ",", 2)[0]
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})
	v.RegisterStructValidation(validateDatabaseTarget, DatabaseConfig{})

	return &Validator{
		validate: v,
	}
}

// Validate validates a struct using validation tags
func (v *Validator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return v.formatValidationError(err)
	}
	return nil
}

// formatValidationError converts validator errors into readable messages
func (v *Validator) formatValidationError(err error) error {
	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		var messages []string
		for _, e := range validationErrs {
			messages = append(messages, fmt.Sprintf(
				"field '%s' failed validation: %s (value: '%v')",
				strings.ToLower(strings.TrimPrefix(e.Namespace(), "Config.")),
				e.Tag(),
				e.Value(),
			))
		}
		return fmt.Errorf("validation failed:\n  %s", strings.Join(messages, "\n  "))
	}
	return err
}

// validateDatabaseTarget requires a URL or host/name pair for postgres and a
// path for sqlite
func validateDatabaseTarget(sl validator.StructLevel) {
	cfg := sl.Current().Interface().(DatabaseConfig)

	switch cfg.Type {
	case "postgres":
		if cfg.URL == "" && (cfg.Host == "" || cfg.Name == "") {
			sl.ReportError(cfg.URL, "url", "URL", "postgres_target", "")
		}
	case "sqlite":
		if cfg.Path == "" {
			sl.ReportError(cfg.Path, "path", "Path", "sqlite_path", "")
		}
	}
}

// ValidateConfig validates the entire configuration
func ValidateConfig(cfg *Config) error {
	v := NewValidator()
	return v.Validate(cfg)
}
