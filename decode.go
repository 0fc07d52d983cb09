package docschema

import (
	"bytes"
	"fmt"

	gojson "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// ParseSchema decodes a JSON schema document into a Schema. Keys outside the
// recognized keyword set are dropped; polymorphic keywords (type/bsonType as
// one name or a set, items single-or-tuple, boolean-or-schema additionals,
// dependencies) decode into their tagged forms.
func ParseSchema(data []byte) (*Schema, error) {
	var s Schema
	if err := gojson.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("docschema: invalid schema document: %w", err)
	}
	return &s, nil
}

// ParseSchemaYAML decodes a YAML schema document. The YAML node tree is
// normalized to JSON-like map[string]any form first, then reuses the JSON
// path.
func ParseSchemaYAML(data []byte) (*Schema, error) {
	var node any
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("docschema: invalid YAML schema document: %w", err)
	}
	b, err := gojson.Marshal(yamlNormalizeValue(node))
	if err != nil {
		return nil, fmt.Errorf("docschema: cannot normalize YAML schema: %w", err)
	}
	return ParseSchema(b)
}

// DecodeValue decodes a candidate data document. Numbers are preserved as
// json.Number so integral values classify as int/long rather than collapsing
// into float64.
func DecodeValue(data []byte) (any, error) {
	dec := gojson.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("docschema: invalid data document: %w", err)
	}
	return v, nil
}

// schemaWire mirrors the wire format with raw slots for polymorphic keywords.
type schemaWire struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`

	AllOf []*Schema `json:"allOf,omitempty"`
	AnyOf []*Schema `json:"anyOf,omitempty"`
	OneOf []*Schema `json:"oneOf,omitempty"`
	Not   *Schema   `json:"not,omitempty"`
	Enum  []any     `json:"enum,omitempty"`

	Type     gojson.RawMessage `json:"type,omitempty"`
	BSONType gojson.RawMessage `json:"bsonType,omitempty"`

	MinLength *int   `json:"minLength,omitempty"`
	MaxLength *int   `json:"maxLength,omitempty"`
	Pattern   string `json:"pattern,omitempty"`

	MultipleOf       *float64 `json:"multipleOf,omitempty"`
	Minimum          *float64 `json:"minimum,omitempty"`
	ExclusiveMinimum bool     `json:"exclusiveMinimum,omitempty"`
	Maximum          *float64 `json:"maximum,omitempty"`
	ExclusiveMaximum bool     `json:"exclusiveMaximum,omitempty"`

	MinItems        *int              `json:"minItems,omitempty"`
	MaxItems        *int              `json:"maxItems,omitempty"`
	UniqueItems     bool              `json:"uniqueItems,omitempty"`
	Items           gojson.RawMessage `json:"items,omitempty"`
	AdditionalItems gojson.RawMessage `json:"additionalItems,omitempty"`

	MinProperties        *int                         `json:"minProperties,omitempty"`
	MaxProperties        *int                         `json:"maxProperties,omitempty"`
	Required             []string                     `json:"required,omitempty"`
	Properties           map[string]*Schema           `json:"properties,omitempty"`
	PatternProperties    map[string]*Schema           `json:"patternProperties,omitempty"`
	AdditionalProperties gojson.RawMessage            `json:"additionalProperties,omitempty"`
	Dependencies         map[string]gojson.RawMessage `json:"dependencies,omitempty"`
}

// UnmarshalJSON implements the wire format described in the package docs.
func (s *Schema) UnmarshalJSON(data []byte) error {
	var w schemaWire
	if err := gojson.Unmarshal(data, &w); err != nil {
		return err
	}
	out := Schema{
		Title:             w.Title,
		Description:       w.Description,
		AllOf:             w.AllOf,
		AnyOf:             w.AnyOf,
		OneOf:             w.OneOf,
		Not:               w.Not,
		Enum:              w.Enum,
		MinLength:         w.MinLength,
		MaxLength:         w.MaxLength,
		Pattern:           w.Pattern,
		MultipleOf:        w.MultipleOf,
		Minimum:           w.Minimum,
		ExclusiveMinimum:  w.ExclusiveMinimum,
		Maximum:           w.Maximum,
		ExclusiveMaximum:  w.ExclusiveMaximum,
		MinItems:          w.MinItems,
		MaxItems:          w.MaxItems,
		UniqueItems:       w.UniqueItems,
		MinProperties:     w.MinProperties,
		MaxProperties:     w.MaxProperties,
		Required:          w.Required,
		Properties:        w.Properties,
		PatternProperties: w.PatternProperties,
	}
	var err error
	if out.Type, err = decodeNameSet("type", w.Type); err != nil {
		return err
	}
	if out.BSONType, err = decodeNameSet("bsonType", w.BSONType); err != nil {
		return err
	}
	if out.Items, err = decodeItems(w.Items); err != nil {
		return err
	}
	if out.AdditionalItems, err = decodeAdditional("additionalItems", w.AdditionalItems); err != nil {
		return err
	}
	if out.AdditionalProperties, err = decodeAdditional("additionalProperties", w.AdditionalProperties); err != nil {
		return err
	}
	if len(w.Dependencies) > 0 {
		out.Dependencies = make(map[string]*Dependency, len(w.Dependencies))
		for key, raw := range w.Dependencies {
			dep, derr := decodeDependency(key, raw)
			if derr != nil {
				return derr
			}
			out.Dependencies[key] = dep
		}
	}
	*s = out
	return nil
}

// MarshalJSON emits the same wire shape ParseSchema accepts. Singleton type
// sets collapse back to a bare name.
func (s *Schema) MarshalJSON() ([]byte, error) {
	w := make(map[string]any)
	if s.Title != "" {
		w["title"] = s.Title
	}
	if s.Description != "" {
		w["description"] = s.Description
	}
	if len(s.AllOf) > 0 {
		w["allOf"] = s.AllOf
	}
	if len(s.AnyOf) > 0 {
		w["anyOf"] = s.AnyOf
	}
	if len(s.OneOf) > 0 {
		w["oneOf"] = s.OneOf
	}
	if s.Not != nil {
		w["not"] = s.Not
	}
	if len(s.Enum) > 0 {
		w["enum"] = s.Enum
	}
	if v := marshalNameSet(s.Type); v != nil {
		w["type"] = v
	}
	if v := marshalNameSet(s.BSONType); v != nil {
		w["bsonType"] = v
	}
	if s.MinLength != nil {
		w["minLength"] = *s.MinLength
	}
	if s.MaxLength != nil {
		w["maxLength"] = *s.MaxLength
	}
	if s.Pattern != "" {
		w["pattern"] = s.Pattern
	}
	if s.MultipleOf != nil {
		w["multipleOf"] = *s.MultipleOf
	}
	if s.Minimum != nil {
		w["minimum"] = *s.Minimum
	}
	if s.ExclusiveMinimum {
		w["exclusiveMinimum"] = true
	}
	if s.Maximum != nil {
		w["maximum"] = *s.Maximum
	}
	if s.ExclusiveMaximum {
		w["exclusiveMaximum"] = true
	}
	if s.MinItems != nil {
		w["minItems"] = *s.MinItems
	}
	if s.MaxItems != nil {
		w["maxItems"] = *s.MaxItems
	}
	if s.UniqueItems {
		w["uniqueItems"] = true
	}
	if s.Items != nil {
		if s.Items.Single != nil {
			w["items"] = s.Items.Single
		} else {
			w["items"] = s.Items.Tuple
		}
	}
	if v := marshalAdditional(s.AdditionalItems); v != nil {
		w["additionalItems"] = v
	}
	if s.MinProperties != nil {
		w["minProperties"] = *s.MinProperties
	}
	if s.MaxProperties != nil {
		w["maxProperties"] = *s.MaxProperties
	}
	if len(s.Required) > 0 {
		w["required"] = s.Required
	}
	if len(s.Properties) > 0 {
		w["properties"] = s.Properties
	}
	if len(s.PatternProperties) > 0 {
		w["patternProperties"] = s.PatternProperties
	}
	if v := marshalAdditional(s.AdditionalProperties); v != nil {
		w["additionalProperties"] = v
	}
	if len(s.Dependencies) > 0 {
		deps := make(map[string]any, len(s.Dependencies))
		for key, dep := range s.Dependencies {
			if dep == nil {
				continue
			}
			if dep.Schema != nil {
				deps[key] = dep.Schema
			} else {
				deps[key] = dep.Keys
			}
		}
		w["dependencies"] = deps
	}
	return gojson.Marshal(w)
}

func marshalNameSet(names []string) any {
	switch len(names) {
	case 0:
		return nil
	case 1:
		return names[0]
	default:
		return names
	}
}

func marshalAdditional(a *Additional) any {
	if a == nil {
		return nil
	}
	if a.Schema != nil {
		return a.Schema
	}
	if a.Bool != nil {
		return *a.Bool
	}
	return nil
}

func firstByte(raw []byte) byte {
	for _, b := range raw {
		switch b {
		case ' ', '\t', '\r', '\n':
			continue
		}
		return b
	}
	return 0
}

func decodeNameSet(keyword string, raw gojson.RawMessage) ([]string, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	switch firstByte(raw) {
	case '"':
		var one string
		if err := gojson.Unmarshal(raw, &one); err != nil {
			return nil, fmt.Errorf("docschema: %s: %w", keyword, err)
		}
		return []string{one}, nil
	case '[':
		var many []string
		if err := gojson.Unmarshal(raw, &many); err != nil {
			return nil, fmt.Errorf("docschema: %s: %w", keyword, err)
		}
		return many, nil
	}
	return nil, fmt.Errorf("docschema: %s must be a name or an array of names", keyword)
}

func decodeItems(raw gojson.RawMessage) (*Items, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	switch firstByte(raw) {
	case '{':
		var single Schema
		if err := gojson.Unmarshal(raw, &single); err != nil {
			return nil, fmt.Errorf("docschema: items: %w", err)
		}
		return &Items{Single: &single}, nil
	case '[':
		var tuple []*Schema
		if err := gojson.Unmarshal(raw, &tuple); err != nil {
			return nil, fmt.Errorf("docschema: items: %w", err)
		}
		return &Items{Tuple: tuple}, nil
	}
	return nil, fmt.Errorf("docschema: items must be a schema or an array of schemas")
}

func decodeAdditional(keyword string, raw gojson.RawMessage) (*Additional, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	switch firstByte(raw) {
	case 't', 'f':
		var b bool
		if err := gojson.Unmarshal(raw, &b); err != nil {
			return nil, fmt.Errorf("docschema: %s: %w", keyword, err)
		}
		return &Additional{Bool: &b}, nil
	case '{':
		var sub Schema
		if err := gojson.Unmarshal(raw, &sub); err != nil {
			return nil, fmt.Errorf("docschema: %s: %w", keyword, err)
		}
		return &Additional{Schema: &sub}, nil
	}
	return nil, fmt.Errorf("docschema: %s must be a boolean or a schema", keyword)
}

func decodeDependency(key string, raw gojson.RawMessage) (*Dependency, error) {
	switch firstByte(raw) {
	case '[':
		var keys []string
		if err := gojson.Unmarshal(raw, &keys); err != nil {
			return nil, fmt.Errorf("docschema: dependencies[%s]: %w", key, err)
		}
		return &Dependency{Keys: keys}, nil
	case '{':
		var sub Schema
		if err := gojson.Unmarshal(raw, &sub); err != nil {
			return nil, fmt.Errorf("docschema: dependencies[%s]: %w", key, err)
		}
		return &Dependency{Schema: &sub}, nil
	}
	return nil, fmt.Errorf("docschema: dependencies[%s] must be a key array or a schema", key)
}

// yamlNormalizeValue converts YAML-decoded values (which may contain
// map[any]any) into JSON-like map[string]any form recursively.
func yamlNormalizeValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = yamlNormalizeValue(vv)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			ks, ok := k.(string)
			if !ok {
				continue
			}
			out[ks] = yamlNormalizeValue(vv)
		}
		return out
	case []any:
		arr := make([]any, len(t))
		for i := range t {
			arr[i] = yamlNormalizeValue(t[i])
		}
		return arr
	default:
		return v
	}
}
