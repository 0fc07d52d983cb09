package docschema

// Validate walks the schema and data trees in lock-step and returns the first
// violation as a *ValidationError, or nil when data conforms. Evaluation is
// fail-fast: sibling keywords and sibling sub-schemas after the first
// violation are never visited.
func Validate(s *Schema, v any) error {
	if err := validate(s, v); err != nil {
		return err
	}
	return nil
}

// SafeValidate runs the same evaluation as Validate but never surfaces an
// error to raise; the outcome is carried in the Result. Err content is
// identical to what Validate would have returned.
func SafeValidate(s *Schema, v any) Result {
	if err := validate(s, v); err != nil {
		return Result{Valid: false, Err: err}
	}
	return Result{Valid: true}
}

// validate is the dispatcher: one frame per (schema, data) pair, no state
// beyond the call stack. Keyword groups run in fixed order: logical, type,
// then the group matching the data's runtime shape.
func validate(s *Schema, v any) *ValidationError {
	if s == nil || !s.hasConstraints() {
		return nil
	}
	if err := validateLogical(s, v); err != nil {
		return err
	}
	if len(s.Type) > 0 && !matchesAny(s.Type, v, matchesType) {
		return newError(CodeInvalidType, v)
	}
	if len(s.BSONType) > 0 && !matchesAny(s.BSONType, v, matchesBSONType) {
		return newError(CodeInvalidType, v)
	}
	switch KindOf(v) {
	case KindString:
		return validateString(s, v.(string))
	case KindNumber, KindLong, KindDecimal:
		return validateNumber(s, v)
	case KindArray:
		return validateArray(s, v.([]any))
	case KindObject:
		return validateObject(s, v.(map[string]any))
	}
	return nil
}

// matchesAny applies a classifier over a (possibly singleton) name set.
func matchesAny(names []string, v any, classify func(string, any) bool) bool {
	for _, n := range names {
		if classify(n, v) {
			return true
		}
	}
	return false
}
