package services

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// check runs a single validator predicate against value and reports the
// failing rule under field.
func check(field string, value any, rule string) error {
	err := validate.Var(value, rule)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) && len(ve) > 0 {
		if ve[0].Param() != "" {
			return fmt.Errorf("%w: %s failed on %s=%s", ErrInvalidInput, field, ve[0].Tag(), ve[0].Param())
		}
		return fmt.Errorf("%w: %s failed on %s", ErrInvalidInput, field, ve[0].Tag())
	}
	return fmt.Errorf("%w: %s: %v", ErrInvalidInput, field, err)
}

// checkAll returns the first failing predicate.
func checkAll(checks ...error) error {
	for _, err := range checks {
		if err != nil {
			return err
		}
	}
	return nil
}
