// Package validate implements the contact-form field checks. Failures are
// values (a Result with a user-visible message), not errors: the form surfaces
// them inline and recovery is simply resubmission.
package validate

import (
	"fmt"
	"regexp"
	"strings"
)

// User-visible validation messages
const (
	MsgRequired     = "This field is required"
	MsgInvalidEmail = "Please enter a valid email address"
	MsgInvalidPhone = "Please enter a valid phone number"
	MsgTooShort     = "Must be at least %d characters"
)

// Phone number digit bounds
const (
	PhoneMinDigits = 7
	PhoneMaxDigits = 15
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^\+?[\d\s().-]+$`)
	digitPattern = regexp.MustCompile(`\d`)
)

// Result reports the outcome of validating a single field value
type Result struct {
	OK      bool
	Message string
}

func valid() Result {
	return Result{OK: true}
}

func invalid(message string) Result {
	return Result{Message: message}
}

// Rule checks one constraint on a field value
type Rule func(value string) Result

// All runs rules in order and returns the first failure, or a valid result
func All(value string, rules ...Rule) Result {
	for _, rule := range rules {
		if result := rule(value); !result.OK {
			return result
		}
	}
	return valid()
}

// Required rejects empty or whitespace-only values
func Required(value string) Result {
	if strings.TrimSpace(value) == "" {
		return invalid(MsgRequired)
	}
	return valid()
}

// Email checks the value looks like an email address
func Email(value string) Result {
	if !emailPattern.MatchString(strings.TrimSpace(value)) {
		return invalid(MsgInvalidEmail)
	}
	return valid()
}

// Phone checks the value looks like a phone number. The field is optional:
// an empty value is valid. Formatting characters (spaces, parentheses,
// dashes, a leading plus) are allowed around 7-15 digits.
func Phone(value string) Result {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return valid()
	}

	if !phonePattern.MatchString(trimmed) {
		return invalid(MsgInvalidPhone)
	}

	digits := len(digitPattern.FindAllString(trimmed, -1))
	if digits < PhoneMinDigits || digits > PhoneMaxDigits {
		return invalid(MsgInvalidPhone)
	}
	return valid()
}

// MinLen requires at least min non-space-trimmed characters
func MinLen(min int) Rule {
	return func(value string) Result {
		if len([]rune(strings.TrimSpace(value))) < min {
			return invalid(fmt.Sprintf(MsgTooShort, min))
		}
		return valid()
	}
}
