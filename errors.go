package docschema

import (
	"errors"
	"fmt"

	"github.com/docschema/docschema/i18n"
)

// Violation codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidType = "invalid_type"
	CodeInvalidEnum = "invalid_enum"
	// Logical composition
	CodeAllOf = "all_of"
	CodeAnyOf = "any_of"
	CodeOneOf = "one_of"
	CodeNot   = "not"
	// Strings
	CodeTooShort = "too_short"
	CodeTooLong  = "too_long"
	CodePattern  = "pattern"
	// Numbers
	CodeTooSmall    = "too_small"
	CodeTooBig      = "too_big"
	CodeNotMultiple = "not_multiple"
	// Arrays
	CodeTooFewItems     = "too_few_items"
	CodeTooManyItems    = "too_many_items"
	CodeDuplicateItem   = "duplicate_item"
	CodeAdditionalItems = "additional_items"
	// Objects
	CodeTooFewProperties  = "too_few_properties"
	CodeTooManyProperties = "too_many_properties"
	CodeRequired          = "required"
	CodeUnknownKey        = "unknown_key"
	CodeDependency        = "dependency"
)

// ValidationError is the single failure value of the engine. Path is a dotted
// chain of object-property keys accumulated while the error unwinds; array
// indices and logical branches are not recorded. Data holds the specific value
// that failed its check, which is not necessarily the top-level input.
type ValidationError struct {
	Code    string
	Message string
	Path    string
	Data    any
}

// Error renders as "code: message" or "code at path: message".
func (e *ValidationError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s at %s: %s", e.Code, e.Path, e.Message)
}

// AsValidationError extracts a *ValidationError from an error using errors.As
// internally.
func AsValidationError(err error) (*ValidationError, bool) {
	if err == nil {
		return nil, false
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// Result is the non-raising validation outcome returned by SafeValidate.
type Result struct {
	Valid bool
	Err   *ValidationError
}

// newError builds a ValidationError for code with a translated message.
func newError(code string, data any) *ValidationError {
	return &ValidationError{Code: code, Message: i18n.T(code, nil), Data: data}
}

// newErrorKey builds a ValidationError whose message names the offending key.
func newErrorKey(code, key string, data any) *ValidationError {
	return &ValidationError{Code: code, Message: i18n.T(code, map[string]string{"key": key}), Data: data}
}

// prefix prepends an object-property key to the dotted path.
func (e *ValidationError) prefix(key string) *ValidationError {
	if e.Path == "" {
		e.Path = key
	} else {
		e.Path = key + "." + e.Path
	}
	return e
}
