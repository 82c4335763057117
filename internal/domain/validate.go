package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidationError carries a human-readable rejection of user input,
// distinguishable from backend trouble at the presentation layer.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Validate checks an insert payload before dispatch. The remote schema
// is the authority on required columns, but status and prices are
// checked defensively here because the store does not enforce the
// status enumeration.
func (in VillaInput) Validate() error {
	return humanize(validate.Struct(in))
}

// Validate checks a partial update; only supplied fields are checked.
func (u VillaUpdate) Validate() error {
	if u.Empty() {
		return &ValidationError{Message: "update carries no fields"}
	}
	return humanize(validate.Struct(u))
}

// Validate checks a connection configuration from the settings form.
func (c ConnectionConfig) Validate() error {
	return humanize(validate.Struct(c))
}

// humanize flattens validator errors into one readable message.
func humanize(err error) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			parts = append(parts, fmt.Sprintf("%s is required", fieldName(fe.Field())))
		case "url":
			parts = append(parts, fmt.Sprintf("%s must be a valid URL", fieldName(fe.Field())))
		case "gte":
			parts = append(parts, fmt.Sprintf("%s must not be negative", fieldName(fe.Field())))
		case "oneof":
			parts = append(parts, fmt.Sprintf("%s must be one of: %s", fieldName(fe.Field()), fe.Param()))
		default:
			parts = append(parts, fmt.Sprintf("%s is invalid", fieldName(fe.Field())))
		}
	}
	return &ValidationError{Message: strings.Join(parts, "; ")}
}

func fieldName(s string) string {
	switch s {
	case "ImageURL":
		return "image URL"
	case "GoogleDriveLink":
		return "document folder link"
	case "PriceMonthly":
		return "monthly price"
	case "PriceYearly":
		return "yearly price"
	case "AgentFee":
		return "commission fee"
	case "AnonKey":
		return "access key"
	default:
		return strings.ToLower(s)
	}
}
