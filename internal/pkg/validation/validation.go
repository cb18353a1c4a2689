package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/nandan/studenthub/internal/pkg/apperrors"
)

// validate is shared; validator instances cache struct metadata.
var validate = validator.New()

// Struct validates a tagged struct and converts validator errors into the
// application error taxonomy with a readable field list.
func Struct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return &apperrors.CustomError{Err: apperrors.ErrValidationFailed, Message: err.Error()}
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
	}
	return &apperrors.CustomError{
		Err:     apperrors.ErrValidationFailed,
		Message: fmt.Sprintf("invalid or missing fields: %s", strings.Join(fields, ", ")),
	}
}
