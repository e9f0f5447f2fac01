package validation

import (
	"fmt"

	dErrors "pessoas/pkg/domain-errors"
)

// HTTP body limits
const (
	// MaxBodySize is the maximum allowed request body size (64 KB).
	MaxBodySize = 64 * 1024
)

// Person field limits, measured in bytes.
const (
	MaxNameLength = 100
	MaxNickLength = 32
	MaxTechLength = 32
)

// CheckStringLength validates that a string does not exceed the maximum length.
func CheckStringLength(fieldName, value string, max int) error {
	if len(value) > max {
		return dErrors.New(dErrors.CodeValidation, fmt.Sprintf("%s exceeds max length of %d", fieldName, max))
	}
	return nil
}

// CheckNotEmpty validates that a string carries at least one byte.
func CheckNotEmpty(fieldName, value string) error {
	if value == "" {
		return dErrors.New(dErrors.CodeValidation, fieldName+" must not be empty")
	}
	return nil
}
