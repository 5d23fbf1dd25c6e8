package util

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/guregu/null.v3"
)

func NewValidator() *validator.Validate {
	validate := validator.New()
	_ = validate.RegisterValidation("printabletrimmed", printableTrimmed)
	validate.RegisterCustomTypeFunc(nullStringValuer, null.String{})

	// report field names as they appear in query strings
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("query"), ",", 2)[0]
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})

	return validate
}

// printableTrimmed rejects values with leading or trailing whitespace and control characters.
func printableTrimmed(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if strings.TrimSpace(val) != val {
		return false
	}
	for _, r := range val {
		if r < 0x20 || r == 0x7f {
			return false
		}
	}
	return true
}

func nullStringValuer(field reflect.Value) any {
	if valuer, ok := field.Interface().(null.String); ok {
		return valuer.String
	}

	return nil
}
