package utils

import (
	"fmt"
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail reports whether the value has a basic local@domain.tld shape.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// RequiredField pairs a field name with its submitted value.
type RequiredField struct {
	Name  string
	Value string
}

// MissingFields returns the names of required fields with empty values,
// in the order given.
func MissingFields(fields []RequiredField) []string {
	var missing []string
	for _, f := range fields {
		if strings.TrimSpace(f.Value) == "" {
			missing = append(missing, f.Name)
		}
	}
	return missing
}

// MissingFieldsMessage joins missing field names into the user-visible message.
func MissingFieldsMessage(missing []string) string {
	return fmt.Sprintf("Missing required fields: %s", strings.Join(missing, ", "))
}
