package roster

import (
	"regexp"
	"strings"

	"polyconf/models"
)

var numeric = regexp.MustCompile(`^\d+$`)

// FieldError -
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError - every problem found on a user record
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	return "validation failed"
}

// Validate - name is required, extension is required and numeric
func Validate(u models.RosterUser) error {

	var errs []FieldError

	if strings.TrimSpace(u.Name) == "" {
		errs = append(errs, FieldError{Field: "name", Message: "Name is required"})
	}

	ext := strings.TrimSpace(u.Ext)

	switch {
	case ext == "":
		errs = append(errs, FieldError{Field: "ext", Message: "Extension is required"})
	case !numeric.MatchString(ext):
		errs = append(errs, FieldError{Field: "ext", Message: "Extension must be numeric"})
	}

	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}

	return nil
}
