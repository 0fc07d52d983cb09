package docschema

// validateArray runs minItems, maxItems, uniqueItems, items and
// additionalItems, in that order. Element recursion does not extend the error
// path: array indices are not recorded, only object-property keys are.
func validateArray(s *Schema, arr []any) *ValidationError {
	if s.MinItems != nil && len(arr) < *s.MinItems {
		return newError(CodeTooFewItems, arr)
	}
	if s.MaxItems != nil && len(arr) > *s.MaxItems {
		return newError(CodeTooManyItems, arr)
	}
	if s.UniqueItems {
		for i := 0; i < len(arr); i++ {
			for j := i + 1; j < len(arr); j++ {
				if equalValues(arr[i], arr[j]) {
					return newError(CodeDuplicateItem, arr[j])
				}
			}
		}
	}
	if s.Items != nil {
		if s.Items.Single != nil {
			for _, el := range arr {
				if err := validate(s.Items.Single, el); err != nil {
					return err
				}
			}
		}
		for i, sub := range s.Items.Tuple {
			if i >= len(arr) {
				break
			}
			if err := validate(sub, arr[i]); err != nil {
				return err
			}
		}
	}
	return validateAdditionalItems(s, arr)
}

// validateAdditionalItems applies only in tuple mode: surplus means index >=
// tuple length. A bare false forbids any surplus; a schema validates each
// surplus element.
func validateAdditionalItems(s *Schema, arr []any) *ValidationError {
	if s.AdditionalItems == nil || s.Items == nil || len(s.Items.Tuple) == 0 {
		return nil
	}
	surplus := arr[min(len(s.Items.Tuple), len(arr)):]
	if len(surplus) == 0 {
		return nil
	}
	if s.AdditionalItems.Bool != nil && !*s.AdditionalItems.Bool {
		return newError(CodeAdditionalItems, arr)
	}
	if s.AdditionalItems.Schema != nil {
		for _, el := range surplus {
			if err := validate(s.AdditionalItems.Schema, el); err != nil {
				return err
			}
		}
	}
	return nil
}
