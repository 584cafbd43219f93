package validation

import (
	"github.com/go-playground/validator/v10"

	"github.com/sergeii/sg41/internal/validation/validators"
)

func New() (*validator.Validate, error) {
	validate := validator.New()
	if err := Register(validate); err != nil {
		return nil, err
	}
	return validate, nil
}

// Register adds the custom rules to an existing validator, such as the one used by gin.
func Register(validate *validator.Validate) error {
	if err := validate.RegisterValidation("pins", validators.ValidatePins); err != nil {
		return err
	}
	if err := validate.RegisterValidation("shift", validators.ValidateShift); err != nil {
		return err
	}
	return nil
}
