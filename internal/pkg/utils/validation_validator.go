package utils

import (
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("not_blank", validateNotBlank)
	validate.RegisterValidation("absolute_uri", validateAbsoluteURI)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func validateAbsoluteURI(fl validator.FieldLevel) bool {
	return IsAbsoluteURI(fl.Field().String())
}

// IsAbsoluteURI reports whether raw parses with both a scheme and a host.
func IsAbsoluteURI(raw string) bool {
	parsed, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	return parsed.IsAbs() && parsed.Host != ""
}
