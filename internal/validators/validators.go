// Package validators holds the pure checks run on tool arguments before any
// storage access. Every failure is a *ValidationError whose message is safe
// to show to the end user as is.
package validators

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err carries a *ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// ===============================
// Required fields
// ===============================

// Field pairs an argument name with its raw value.
type Field struct {
	Name  string
	Value string
}

func F(name, value string) Field {
	return Field{Name: name, Value: value}
}

// placeholders the agent sends when it has no value for a field
var missingSentinels = []string{"", "...", "N/A"}

func CheckRequiredFields(fields ...Field) error {
	for _, f := range fields {
		v := strings.TrimSpace(f.Value)
		for _, s := range missingSentinels {
			if v == s {
				return invalid("Missing value for %s. Ask the user to provide it", f.Name)
			}
		}
	}
	return nil
}

// ===============================
// Contact data
// ===============================

var (
	emailRe = regexp.MustCompile(`(?i)^[_a-z0-9-]+(\.[_a-z0-9-]+)*@[a-z0-9-]+(\.[a-z0-9-]+)*(\.[a-z]{2,4})$`)
	phoneRe = regexp.MustCompile(`^\+\d{1,3}[\s.-]?\d{3}[\s.-]?\d{3}[\s.-]?\d{4}$`)
)

func ValidateEmail(s string) error {
	if !emailRe.MatchString(strings.TrimSpace(s)) {
		return invalid("Invalid email address %q", s)
	}
	return nil
}

// ValidatePhone returns the canonical form of s: '+' followed by digits only.
func ValidatePhone(s string) (string, error) {
	s = strings.TrimSpace(s)

	digits := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	if digits > 15 || digits < 11 {
		return "", invalid("Invalid phone number. It must contain 11 to 15 digits including the country code")
	}
	if !strings.HasPrefix(s, "+") {
		return "", invalid("Invalid phone number. It must start with a '+' country code")
	}
	if !phoneRe.MatchString(s) {
		return "", invalid("Invalid phone number. Expected format: +<country code> ###-###-####")
	}

	return CanonicalPhone(s), nil
}

// CanonicalPhone drops every character except digits and '+'. It does not
// validate.
func CanonicalPhone(s string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(s) {
		if r == '+' || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ===============================
// Car
// ===============================

const firstCarYear = 1886

func ValidateCarYear(s string, now time.Time) (int, error) {
	year, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, invalid("Invalid car year %q. It must be a number", s)
	}
	if year < firstCarYear || year > now.Year()+1 {
		return 0, invalid("Invalid car year %d. It must be between %d and %d", year, firstCarYear, now.Year()+1)
	}
	return year, nil
}
