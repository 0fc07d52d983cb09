package docschema

import (
	"bytes"
	"time"
)

// validateLogical evaluates allOf, anyOf, oneOf, not and enum, in that order.
// Every logical keyword present gates failure uniformly.
func validateLogical(s *Schema, v any) *ValidationError {
	for _, sub := range s.AllOf {
		if validate(sub, v) != nil {
			return newError(CodeAllOf, v)
		}
	}
	if len(s.AnyOf) > 0 {
		ok := false
		for _, sub := range s.AnyOf {
			if validate(sub, v) == nil {
				ok = true
				break
			}
		}
		if !ok {
			return newError(CodeAnyOf, v)
		}
	}
	if len(s.OneOf) > 0 {
		n := 0
		for _, sub := range s.OneOf {
			if validate(sub, v) == nil {
				n++
			}
		}
		if n != 1 {
			return newError(CodeOneOf, v)
		}
	}
	if s.Not != nil {
		if validate(s.Not, v) == nil {
			return newError(CodeNot, v)
		}
	}
	if len(s.Enum) > 0 {
		found := false
		for _, allowed := range s.Enum {
			if equalValues(v, allowed) {
				found = true
				break
			}
		}
		if !found {
			return newError(CodeInvalidEnum, v)
		}
	}
	return nil
}

// equalValues compares two decoded values by value. Numeric representations
// are coerced into a common domain, so json.Number(5), int64(5) and 5.0 are
// equal. Arrays compare elementwise, objects key-by-key. This is the equality
// used by both enum and uniqueItems.
func equalValues(a, b any) bool {
	if fa, ok := numericValue(a); ok {
		fb, ok2 := numericValue(b)
		return ok2 && fa == fb
	}
	switch ta := a.(type) {
	case nil:
		return b == nil
	case bool:
		tb, ok := b.(bool)
		return ok && ta == tb
	case string:
		tb, ok := b.(string)
		return ok && ta == tb
	case []byte:
		tb, ok := b.([]byte)
		return ok && bytes.Equal(ta, tb)
	case time.Time:
		tb, ok := b.(time.Time)
		return ok && ta.Equal(tb)
	case Timestamp:
		tb, ok := b.(Timestamp)
		return ok && ta == tb
	case ObjectID:
		tb, ok := b.(ObjectID)
		return ok && ta == tb
	case Decimal128:
		tb, ok := b.(Decimal128)
		return ok && ta.String() == tb.String()
	case []any:
		tb, ok := b.([]any)
		if !ok || len(ta) != len(tb) {
			return false
		}
		for i := range ta {
			if !equalValues(ta[i], tb[i]) {
				return false
			}
		}
		return true
	case map[string]any:
		tb, ok := b.(map[string]any)
		if !ok || len(ta) != len(tb) {
			return false
		}
		for k, va := range ta {
			vb, present := tb[k]
			if !present || !equalValues(va, vb) {
				return false
			}
		}
		return true
	}
	return false
}
