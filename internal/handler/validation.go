package handler

import (
	stderrors "errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validationMessage turns a validator error into a field-specific message a
// client can act on. Falls back to the raw error for anything unexpected.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !stderrors.As(err, &verrs) || len(verrs) == 0 {
		return err.Error()
	}

	fe := verrs[0]
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return "email must be a valid email address"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "len", "numeric":
		if field == "Mobile" {
			return "mobile must be exactly 10 digits"
		}
		return fmt.Sprintf("%s is invalid", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
