package validator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Singleton validator instance
var validate = validator.New()

// Struct validates payload against its validate tags. Field failures are
// joined into one message naming each field and the tag it failed.
func Struct(payload interface{}) error {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}

	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) {
		return err
	}
	failures := make([]string, 0, len(vErrs))
	for _, vErr := range vErrs {
		failures = append(failures, fmt.Sprintf("field '%s' failed validation on '%s' tag", vErr.Field(), vErr.Tag()))
	}
	return fmt.Errorf("%s: %w", strings.Join(failures, "; "), err)
}
