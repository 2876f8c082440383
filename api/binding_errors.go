package api

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"

	"github.com/treedo/treedo-backend/models"
	"github.com/treedo/treedo-backend/pure_utils"
)

// adaptBindingError turns a form binding failure into a BadParameterError naming every
// invalid field.
func adaptBindingError(err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return errors.Wrap(models.BadParameterError, err.Error())
	}
	messages := pure_utils.Map(validationErrors, adaptFieldValidationError)
	return errors.Wrap(models.BadParameterError, strings.Join(messages, ", "))
}

func adaptFieldValidationError(fe validator.FieldError) string {
	var reason string
	switch fe.ActualTag() {
	case "required":
		reason = "is required"
	case "uuid":
		reason = "should be a UUID"
	default:
		reason = "is invalid"
	}
	return fmt.Sprintf("field `%s` %s", fe.Field(), reason)
}
