package validate

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequired(t *testing.T) {
	result := Required("")
	assert.False(t, result.OK)
	assert.Equal(t, MsgRequired, result.Message)

	result = Required("   \t ")
	assert.False(t, result.OK, "whitespace-only values are empty")

	result = Required("Ricardo")
	assert.True(t, result.OK)
	assert.Empty(t, result.Message)
}

func TestEmail(t *testing.T) {
	invalidInputs := []string{"not-an-email", "a@b", "@example.com", "user@", "user name@example.com"}
	for _, input := range invalidInputs {
		result := Email(input)
		assert.False(t, result.OK, "expected %q to be invalid", input)
		assert.Equal(t, MsgInvalidEmail, result.Message)
	}

	validInputs := []string{"user@example.com", "first.last+tag@sub.example.org", " padded@example.com "}
	for _, input := range validInputs {
		assert.True(t, Email(input).OK, "expected %q to be valid", input)
	}
}

func TestPhone(t *testing.T) {
	assert.True(t, Phone("+1 (555) 123-4567").OK)
	assert.True(t, Phone("5551234567").OK)
	assert.True(t, Phone("").OK, "phone is an optional field")

	invalidInputs := []string{"abc", "123", "+1 (555) 123-4567 ext 9", "12345678901234567890"}
	for _, input := range invalidInputs {
		result := Phone(input)
		assert.False(t, result.OK, "expected %q to be invalid", input)
		assert.Equal(t, MsgInvalidPhone, result.Message)
	}
}

func TestMinLen(t *testing.T) {
	rule := MinLen(10)

	result := rule("too short")
	assert.False(t, result.OK)
	assert.Equal(t, fmt.Sprintf(MsgTooShort, 10), result.Message)

	assert.True(t, rule("long enough text").OK)
	assert.False(t, rule("         padded  ").OK, "length is measured after trimming")
}

func TestAllReturnsFirstFailure(t *testing.T) {
	result := All("", Required, Email)
	assert.False(t, result.OK)
	assert.Equal(t, MsgRequired, result.Message, "rules run in order")

	result = All("not-an-email", Required, Email)
	assert.Equal(t, MsgInvalidEmail, result.Message)

	assert.True(t, All("user@example.com", Required, Email).OK)
}
