package docschema

// Schema is the declarative, immutable description of the constraints a
// document value must satisfy. Every field is optional; a schema carrying only
// Title/Description is an unconstrained pass-through. Instances are built once
// (by hand, by builder/, or by ParseSchema) and may be validated against many
// values concurrently since the engine never mutates them.
type Schema struct {
	// Metadata (no validation effect)
	Title       string
	Description string

	// Logical composition
	AllOf []*Schema
	AnyOf []*Schema
	OneOf []*Schema
	Not   *Schema
	Enum  []any

	// Type axes. Type carries generic JSON names, BSONType the extended names;
	// the axes are independent and each is checked when present.
	Type     []string
	BSONType []string

	// Strings
	MinLength *int
	MaxLength *int
	Pattern   string

	// Numbers. ExclusiveMinimum/ExclusiveMaximum are boolean modifiers on the
	// sibling bound (draft-4 convention), not numeric bounds of their own.
	MultipleOf       *float64
	Minimum          *float64
	ExclusiveMinimum bool
	Maximum          *float64
	ExclusiveMaximum bool

	// Arrays
	MinItems        *int
	MaxItems        *int
	UniqueItems     bool
	Items           *Items
	AdditionalItems *Additional

	// Objects
	MinProperties        *int
	MaxProperties        *int
	Required             []string
	Properties           map[string]*Schema
	PatternProperties    map[string]*Schema
	AdditionalProperties *Additional
	Dependencies         map[string]*Dependency
}

// Items holds the two shapes of the items keyword: one schema applied to every
// element, or an ordered tuple applied positionally. Exactly one side is set.
type Items struct {
	Single *Schema
	Tuple  []*Schema
}

// Additional is a boolean-or-schema keyword value, shared by additionalItems
// and additionalProperties. Exactly one side is set.
type Additional struct {
	Bool   *bool
	Schema *Schema
}

// Dependency is one dependencies entry: either a set of co-required key names
// or a schema the whole object must satisfy when the trigger key is present.
type Dependency struct {
	Keys   []string
	Schema *Schema
}

// hasConstraints reports whether any validation keyword is set. Metadata-only
// schemas succeed trivially without recursion.
func (s *Schema) hasConstraints() bool {
	switch {
	case len(s.AllOf) > 0, len(s.AnyOf) > 0, len(s.OneOf) > 0, s.Not != nil, len(s.Enum) > 0:
		return true
	case len(s.Type) > 0, len(s.BSONType) > 0:
		return true
	case s.MinLength != nil, s.MaxLength != nil, s.Pattern != "":
		return true
	case s.MultipleOf != nil, s.Minimum != nil, s.Maximum != nil:
		return true
	case s.MinItems != nil, s.MaxItems != nil, s.UniqueItems, s.Items != nil, s.AdditionalItems != nil:
		return true
	case s.MinProperties != nil, s.MaxProperties != nil, len(s.Required) > 0:
		return true
	case len(s.Properties) > 0, len(s.PatternProperties) > 0, s.AdditionalProperties != nil, len(s.Dependencies) > 0:
		return true
	}
	return false
}
