package validator

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	// Report fields by their JSON name
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})
}

// errorMessages maps validation tags to messages.
var errorMessages = map[string]string{
	"required": "This field is required.",
	"email":    "Enter a valid email address.",
	"min":      "Ensure this field has at least %s characters.",
	"max":      "Ensure this field has no more than %s characters.",
	"gte":      "Ensure this value is greater than or equal to %s.",
	"lte":      "Ensure this value is less than or equal to %s.",
	"oneof":    "Must be one of: %s.",
}

// parseMessage constructs a friendly error message for the validation tag.
func parseMessage(e validator.FieldError) string {
	if msg, ok := errorMessages[e.Tag()]; ok {
		if strings.Contains(msg, "%s") {
			return fmt.Sprintf(msg, e.Param())
		}
		return msg
	}
	return fmt.Sprintf("Invalid value (%s).", e.Tag())
}

// ValidateStruct validates a struct and returns JSON field names mapped to their messages.
// The result is empty when the struct is valid.
func ValidateStruct(s any) map[string][]string {
	fields := make(map[string][]string)

	err := validate.Struct(s)
	if err == nil {
		return fields
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		fields["non_field_errors"] = []string{err.Error()}
		return fields
	}
	for _, e := range validationErrs {
		name := e.Field()
		fields[name] = append(fields[name], parseMessage(e))
	}
	return fields
}

// FieldNames returns the sorted names of invalid fields.
func FieldNames(fields map[string][]string) []string {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
