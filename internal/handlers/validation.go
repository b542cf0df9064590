package handlers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// bindErrorMessage turns a ShouldBindJSON error into a client-facing
// message. Validator errors are reported per field; anything else is a
// malformed payload.
func bindErrorMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		msgs := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			msgs = append(msgs, fmt.Sprintf("field '%s' failed on '%s'", fe.Field(), fe.Tag()))
		}
		return "Validation failed: " + strings.Join(msgs, "; ")
	}
	return "Invalid request format: " + err.Error()
}
