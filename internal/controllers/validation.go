package controllers

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// validation field -> client error message, per the API contract.
var fieldMessages = map[string]string{
	"Email":       "invalid email",
	"Username":    "invalid username",
	"DisplayName": "invalid displayName",
	"Password":    "invalid password",
}

// bindingErrorMessage maps a gin binding failure to the machine-readable
// error string the API promises. Absent fields (and undecodable bodies)
// collapse to "missing keys"; a field that decoded but failed its
// constraints reports which one.
func bindingErrorMessage(err error) string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return "missing keys"
	}

	for _, fieldErr := range validationErrs {
		if fieldErr.Tag() == "required" {
			return "missing keys"
		}
		if msg, ok := fieldMessages[fieldErr.Field()]; ok {
			return msg
		}
	}

	return "missing keys"
}
