package docschema

import (
	"regexp"
	"sort"
)

// validateObject runs minProperties, maxProperties, required, properties,
// patternProperties, additionalProperties and dependencies, in that order.
// Only the properties recursion prefixes the error path with the current key;
// the pattern/additional branches re-raise untouched.
func validateObject(s *Schema, obj map[string]any) *ValidationError {
	if s.MinProperties != nil && len(obj) < *s.MinProperties {
		return newError(CodeTooFewProperties, obj)
	}
	if s.MaxProperties != nil && len(obj) > *s.MaxProperties {
		return newError(CodeTooManyProperties, obj)
	}
	for _, key := range s.Required {
		if _, present := obj[key]; !present {
			return newErrorKey(CodeRequired, key, obj)
		}
	}
	for _, key := range sortedKeys(s.Properties) {
		vv, present := obj[key]
		if !present {
			continue
		}
		if err := validate(s.Properties[key], vv); err != nil {
			return err.prefix(key)
		}
	}
	if err := validateOtherKeys(s, obj); err != nil {
		return err
	}
	return validateDependencies(s, obj)
}

// validateOtherKeys partitions the keys not covered by properties. When
// patternProperties is present every such key goes down the pattern branch and
// keys matching no pattern stay unchecked; additionalProperties sees the keys
// only when patternProperties is absent. Overlapping patterns resolve in
// sorted pattern-source order, first match wins. Invalid pattern sources are
// skipped.
func validateOtherKeys(s *Schema, obj map[string]any) *ValidationError {
	if len(s.PatternProperties) > 0 {
		sources := sortedKeys(s.PatternProperties)
		for _, key := range sortedKeys(obj) {
			if _, covered := s.Properties[key]; covered {
				continue
			}
			for _, src := range sources {
				re, err := regexp.Compile(src)
				if err != nil || !re.MatchString(key) {
					continue
				}
				if verr := validate(s.PatternProperties[src], obj[key]); verr != nil {
					return verr
				}
				break
			}
		}
		return nil
	}
	ap := s.AdditionalProperties
	if ap == nil {
		return nil
	}
	for _, key := range sortedKeys(obj) {
		if _, covered := s.Properties[key]; covered {
			continue
		}
		if ap.Bool != nil && !*ap.Bool {
			return newErrorKey(CodeUnknownKey, key, obj[key])
		}
		if ap.Schema != nil {
			if err := validate(ap.Schema, obj[key]); err != nil {
				return err
			}
		}
	}
	return nil
}

// validateDependencies checks each declared trigger key present in the object:
// a key-set dependency requires every named key, a schema dependency
// revalidates the whole object.
func validateDependencies(s *Schema, obj map[string]any) *ValidationError {
	for _, key := range sortedKeys(s.Dependencies) {
		if _, present := obj[key]; !present {
			continue
		}
		dep := s.Dependencies[key]
		if dep == nil {
			continue
		}
		for _, co := range dep.Keys {
			if _, present := obj[co]; !present {
				return newErrorKey(CodeDependency, key, obj)
			}
		}
		if dep.Schema != nil {
			if err := validate(dep.Schema, obj); err != nil {
				return err
			}
		}
	}
	return nil
}

// sortedKeys keeps iteration deterministic so the "first" violation is stable
// across runs.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
