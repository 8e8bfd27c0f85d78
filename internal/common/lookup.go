package common

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Object is a decoded JSON object as returned by the indexer.
type Object = map[string]any

// MissingFieldError reports a required field that is absent or null.
type MissingFieldError struct {
	Entity string
	Field  string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s is missing required field %q", e.Entity, e.Field)
}

// InvalidFieldError reports a required field whose value has the wrong shape.
type InvalidFieldError struct {
	Entity string
	Field  string
	Value  any
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("%s has invalid value %v for field %q", e.Entity, e.Value, e.Field)
}

// Lookup walks nested objects along keys. It reports false at the first missing key,
// null value or non-object step instead of failing.
func Lookup(value any, keys ...string) (any, bool) {
	current := value
	for _, key := range keys {
		obj, ok := current.(Object)
		if !ok {
			return nil, false
		}
		next, ok := obj[key]
		if !ok || next == nil {
			return nil, false
		}
		current = next
	}
	return current, current != nil
}

// LookupString is Lookup restricted to non-empty strings.
func LookupString(value any, keys ...string) (string, bool) {
	v, ok := Lookup(value, keys...)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

func RequireString(entity string, obj Object, field string) (string, error) {
	v, ok := Lookup(obj, field)
	if !ok {
		return "", &MissingFieldError{Entity: entity, Field: field}
	}
	switch s := v.(type) {
	case string:
		return s, nil
	case json.Number:
		return s.String(), nil
	}
	return "", &InvalidFieldError{Entity: entity, Field: field, Value: v}
}

func RequireDecimal(entity string, obj Object, field string) (decimal.Decimal, error) {
	v, ok := Lookup(obj, field)
	if !ok {
		return decimal.Zero, &MissingFieldError{Entity: entity, Field: field}
	}
	d, ok := toDecimal(v)
	if !ok {
		return decimal.Zero, &InvalidFieldError{Entity: entity, Field: field, Value: v}
	}
	return d, nil
}

func RequireUint(entity string, obj Object, field string) (uint64, error) {
	v, ok := Lookup(obj, field)
	if !ok {
		return 0, &MissingFieldError{Entity: entity, Field: field}
	}
	d, ok := toDecimal(v)
	if !ok || !d.IsInteger() || d.IsNegative() || !d.BigInt().IsUint64() {
		return 0, &InvalidFieldError{Entity: entity, Field: field, Value: v}
	}
	return d.BigInt().Uint64(), nil
}

// OptionalString returns the string at path, or "" when any step is absent.
func OptionalString(value any, keys ...string) string {
	v, ok := Lookup(value, keys...)
	if !ok {
		return ""
	}
	switch s := v.(type) {
	case string:
		return s
	case json.Number:
		return s.String()
	}
	return ""
}

// OptionalDecimal returns the number at path, or zero when any step is absent or not numeric.
func OptionalDecimal(value any, keys ...string) decimal.Decimal {
	v, ok := Lookup(value, keys...)
	if !ok {
		return decimal.Zero
	}
	d, ok := toDecimal(v)
	if !ok {
		return decimal.Zero
	}
	return d
}

func toDecimal(v any) (decimal.Decimal, bool) {
	switch n := v.(type) {
	case json.Number:
		d, err := decimal.NewFromString(n.String())
		return d, err == nil
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(n))
		return d, err == nil
	case float64:
		return decimal.NewFromFloat(n), true
	case int:
		return decimal.NewFromInt(int64(n)), true
	case int64:
		return decimal.NewFromInt(n), true
	}
	return decimal.Zero, false
}
