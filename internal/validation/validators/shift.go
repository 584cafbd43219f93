package validators

import (
	"github.com/go-playground/validator/v10"
)

func ValidateShift(fl validator.FieldLevel) bool {
	value := fl.Field().String()

	// don't validate empty value
	if value == "" {
		return true
	}

	for i := range len(value) {
		if value[i] < 'A' || value[i] > 'Z' {
			return false
		}
	}
	return true
}
