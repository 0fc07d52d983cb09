package docschema

import (
	"math"
	"regexp"
	"unicode/utf8"
)

// validateString runs minLength, maxLength and pattern, in that order.
// Negative bounds and invalid pattern sources are treated as no constraint.
func validateString(s *Schema, str string) *ValidationError {
	if s.MinLength != nil && *s.MinLength >= 0 && utf8.RuneCountInString(str) < *s.MinLength {
		return newError(CodeTooShort, str)
	}
	if s.MaxLength != nil && *s.MaxLength >= 0 && utf8.RuneCountInString(str) > *s.MaxLength {
		return newError(CodeTooLong, str)
	}
	if s.Pattern != "" {
		re, err := regexp.Compile(s.Pattern)
		if err == nil && !re.MatchString(str) {
			return newError(CodePattern, str)
		}
	}
	return nil
}

// validateNumber runs multipleOf, minimum and maximum, in that order, in the
// numeric domain of the data. The exclusive flags switch the bound comparison
// from inclusive to strict.
func validateNumber(s *Schema, v any) *ValidationError {
	f, ok := numericValue(v)
	if !ok {
		return nil
	}
	if s.MultipleOf != nil && *s.MultipleOf > 0 && math.Mod(f, *s.MultipleOf) != 0 {
		return newError(CodeNotMultiple, v)
	}
	if s.Minimum != nil {
		if s.ExclusiveMinimum {
			if f <= *s.Minimum {
				return newError(CodeTooSmall, v)
			}
		} else if f < *s.Minimum {
			return newError(CodeTooSmall, v)
		}
	}
	if s.Maximum != nil {
		if s.ExclusiveMaximum {
			if f >= *s.Maximum {
				return newError(CodeTooBig, v)
			}
		} else if f > *s.Maximum {
			return newError(CodeTooBig, v)
		}
	}
	return nil
}
