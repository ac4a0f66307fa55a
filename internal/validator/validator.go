// Package validator provides a custom Validator type for accumulating
// field-level validation errors in the order they were found.
package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	playground "github.com/go-playground/validator/v10"
)

// structRules runs `validate:"..."` tag rules. A single instance caches
// struct metadata and is safe for concurrent use.
var structRules = newStructRules()

func newStructRules() *playground.Validate {
	v := playground.New()

	// Use JSON tag names as error keys.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	return v
}

// Validator holds a map of field names to their validation error messages.
// A Validator with an empty Errors map is considered valid.
type Validator struct {
	Errors map[string]string
	keys   []string
}

// New creates and returns a fresh, empty Validator.
func New() *Validator {
	return &Validator{Errors: make(map[string]string)}
}

// Valid returns true if the Errors map contains no entries.
func (v *Validator) Valid() bool {
	return len(v.Errors) == 0
}

// AddError records key as failing with the given message.
// If key already has an error it is not overwritten, so the first
// failure for a field is always the one that is reported.
func (v *Validator) AddError(key, message string) {
	if _, exists := v.Errors[key]; !exists {
		v.Errors[key] = message
		v.keys = append(v.keys, key)
	}
}

// Check adds an error for key with message only when ok is false.
// Use this as a single-line guard:
//
//	v.Check(input.PageCount >= 0, "pageCount", "must not be negative")
func (v *Validator) Check(ok bool, key, message string) {
	if !ok {
		v.AddError(key, message)
	}
}

// First returns the earliest recorded error.
func (v *Validator) First() (key, message string, ok bool) {
	if len(v.keys) == 0 {
		return "", "", false
	}
	key = v.keys[0]
	return key, v.Errors[key], true
}

// Struct runs the struct-tag rules on s and records one error per failing
// field, in struct field order. messages overrides the default message for a
// "field.tag" pair, e.g. "name.required".
func (v *Validator) Struct(s any, messages map[string]string) {
	err := structRules.Struct(s)
	if err == nil {
		return
	}

	var fieldErrs playground.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		v.AddError("struct", err.Error())
		return
	}

	for _, e := range fieldErrs {
		msg, ok := messages[e.Field()+"."+e.Tag()]
		if !ok {
			msg = friendlyMessage(e)
		}
		v.AddError(e.Field(), msg)
	}
}

func friendlyMessage(e playground.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s", e.Param())
	case "gte":
		return "must be greater than or equal to " + e.Param()
	case "ltefield":
		return "must be less than or equal to " + e.Param()
	default:
		return "is invalid"
	}
}

// In returns true if value is present in the list slice.
func In(value string, list ...string) bool {
	for _, item := range list {
		if value == item {
			return true
		}
	}
	return false
}
