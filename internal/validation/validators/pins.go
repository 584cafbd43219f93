package validators

import (
	"github.com/go-playground/validator/v10"
)

// ValidatePins accepts a cam pattern, a non-empty string of 0 and 1.
func ValidatePins(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return false
	}
	for i := range len(value) {
		if value[i] != '0' && value[i] != '1' {
			return false
		}
	}
	return true
}
