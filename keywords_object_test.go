package docschema_test

import (
	"testing"

	"github.com/docschema/docschema"
)

func TestObject_PropertyBounds(t *testing.T) {
	s := &docschema.Schema{MinProperties: iptr(1), MaxProperties: iptr(2)}
	if err := docschema.Validate(s, map[string]any{"a": 1}); err != nil {
		t.Fatalf("in-bounds object rejected: %v", err)
	}
	ve, _ := docschema.AsValidationError(docschema.Validate(s, map[string]any{}))
	if ve == nil || ve.Code != docschema.CodeTooFewProperties {
		t.Fatalf("expected too_few_properties, got %+v", ve)
	}
	ve, _ = docschema.AsValidationError(docschema.Validate(s, map[string]any{"a": 1, "b": 2, "c": 3}))
	if ve == nil || ve.Code != docschema.CodeTooManyProperties {
		t.Fatalf("expected too_many_properties, got %+v", ve)
	}
}

func TestObject_RequiredIsPresenceNotTruthiness(t *testing.T) {
	s := &docschema.Schema{Required: []string{"a"}}
	ve, _ := docschema.AsValidationError(docschema.Validate(s, map[string]any{}))
	if ve == nil || ve.Code != docschema.CodeRequired {
		t.Fatalf("expected required failure, got %+v", ve)
	}
	// a present null satisfies required
	if err := docschema.Validate(s, map[string]any{"a": nil}); err != nil {
		t.Fatalf("present null rejected: %v", err)
	}
	if err := docschema.Validate(s, map[string]any{"b": 1}); err == nil {
		t.Fatalf("absent key accepted")
	}
	// original key casing is significant
	if err := docschema.Validate(s, map[string]any{"A": 1}); err == nil {
		t.Fatalf("case-mismatched key satisfied required")
	}
}

func TestObject_PropertiesPathAnnotation(t *testing.T) {
	s := &docschema.Schema{Properties: map[string]*docschema.Schema{
		"a": {Type: []string{"number"}},
	}}
	err := docschema.Validate(s, map[string]any{"a": "x"})
	ve, ok := docschema.AsValidationError(err)
	if !ok {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if ve.Path != "a" {
		t.Fatalf("path = %q, want %q", ve.Path, "a")
	}
	if ve.Data != any("x") {
		t.Fatalf("data = %v, want the offending leaf", ve.Data)
	}
	// properties not present in the data are not checked
	if err := docschema.Validate(s, map[string]any{"b": "x"}); err != nil {
		t.Fatalf("undeclared key tripped properties: %v", err)
	}
}

func TestObject_NestedPathIsDotted(t *testing.T) {
	s := &docschema.Schema{Properties: map[string]*docschema.Schema{
		"outer": {Properties: map[string]*docschema.Schema{
			"inner": {Type: []string{"string"}},
		}},
	}}
	err := docschema.Validate(s, map[string]any{
		"outer": map[string]any{"inner": 42},
	})
	ve, ok := docschema.AsValidationError(err)
	if !ok || ve.Path != "outer.inner" {
		t.Fatalf("expected path outer.inner, got %+v", ve)
	}
}

func TestObject_AdditionalPropertiesFalse(t *testing.T) {
	s := &docschema.Schema{
		Properties:           map[string]*docschema.Schema{"a": {}},
		AdditionalProperties: &docschema.Additional{Bool: bptr(false)},
	}
	if err := docschema.Validate(s, map[string]any{"a": 1}); err != nil {
		t.Fatalf("covered key rejected: %v", err)
	}
	ve, _ := docschema.AsValidationError(docschema.Validate(s, map[string]any{"a": 1, "b": 2}))
	if ve == nil || ve.Code != docschema.CodeUnknownKey {
		t.Fatalf("expected unknown_key, got %+v", ve)
	}
}

func TestObject_AdditionalPropertiesSchema(t *testing.T) {
	s := &docschema.Schema{
		Properties: map[string]*docschema.Schema{"a": {}},
		AdditionalProperties: &docschema.Additional{
			Schema: &docschema.Schema{Type: []string{"number"}},
		},
	}
	if err := docschema.Validate(s, map[string]any{"a": "anything", "b": 2.5}); err != nil {
		t.Fatalf("conforming additional key rejected: %v", err)
	}
	err := docschema.Validate(s, map[string]any{"a": 1, "b": "x"})
	ve, ok := docschema.AsValidationError(err)
	if !ok || ve.Code != docschema.CodeInvalidType {
		t.Fatalf("expected invalid_type from additional schema, got %v", err)
	}
	// additional-branch recursion does not prefix the path
	if ve.Path != "" {
		t.Fatalf("additionalProperties recursion extended the path: %q", ve.Path)
	}
}

func TestObject_PatternProperties(t *testing.T) {
	s := &docschema.Schema{
		Properties: map[string]*docschema.Schema{"a": {Type: []string{"string"}}},
		PatternProperties: map[string]*docschema.Schema{
			"^num_": {Type: []string{"number"}},
		},
	}
	if err := docschema.Validate(s, map[string]any{"a": "s", "num_x": 1.5}); err != nil {
		t.Fatalf("conforming pattern key rejected: %v", err)
	}
	if err := docschema.Validate(s, map[string]any{"num_x": "not a number"}); err == nil {
		t.Fatalf("pattern key violation accepted")
	}
	// keys covered by properties are exempt from the pattern branch
	withCovered := &docschema.Schema{
		Properties:        map[string]*docschema.Schema{"num_a": {}},
		PatternProperties: map[string]*docschema.Schema{"^num_": {Type: []string{"number"}}},
	}
	if err := docschema.Validate(withCovered, map[string]any{"num_a": "string is fine"}); err != nil {
		t.Fatalf("properties-covered key sent down the pattern branch: %v", err)
	}
}

// Partition pinning: when patternProperties is present, keys matching no
// pattern stay unchecked; additionalProperties only sees the uncovered keys
// when patternProperties is absent.
func TestObject_PartitionIsAllPatternOrAllAdditional(t *testing.T) {
	s := &docschema.Schema{
		PatternProperties:    map[string]*docschema.Schema{"^num_": {Type: []string{"number"}}},
		AdditionalProperties: &docschema.Additional{Bool: bptr(false)},
	}
	// "other" matches no pattern; it is NOT re-routed to additionalProperties
	if err := docschema.Validate(s, map[string]any{"other": true}); err != nil {
		t.Fatalf("unmatched key fell through to additionalProperties: %v", err)
	}
	// matched keys are still validated by their pattern schema
	if err := docschema.Validate(s, map[string]any{"num_x": "bad"}); err == nil {
		t.Fatalf("pattern violation accepted")
	}
	// without patterns, the same additionalProperties=false rejects the key
	noPatterns := &docschema.Schema{AdditionalProperties: &docschema.Additional{Bool: bptr(false)}}
	if err := docschema.Validate(noPatterns, map[string]any{"other": true}); err == nil {
		t.Fatalf("additionalProperties=false accepted an uncovered key")
	}
}

// Overlapping patterns resolve in sorted source order, first match wins.
func TestObject_OverlappingPatternsFirstMatchWins(t *testing.T) {
	s := &docschema.Schema{PatternProperties: map[string]*docschema.Schema{
		"^a":  {Type: []string{"number"}},
		"^ab": {Type: []string{"string"}},
	}}
	// "abc" matches both; "^a" sorts first and demands a number.
	if err := docschema.Validate(s, map[string]any{"abc": 1.0}); err != nil {
		t.Fatalf("first-match schema rejected a number: %v", err)
	}
	if err := docschema.Validate(s, map[string]any{"abc": "s"}); err == nil {
		t.Fatalf("second pattern was consulted after the first matched")
	}
}

func TestObject_DependenciesKeySet(t *testing.T) {
	s := &docschema.Schema{Dependencies: map[string]*docschema.Dependency{
		"credit": {Keys: []string{"billing", "address"}},
	}}
	// trigger absent: nothing required
	if err := docschema.Validate(s, map[string]any{"name": "x"}); err != nil {
		t.Fatalf("dependency checked without its trigger: %v", err)
	}
	if err := docschema.Validate(s, map[string]any{"credit": 1, "billing": 1, "address": 1}); err != nil {
		t.Fatalf("satisfied dependency rejected: %v", err)
	}
	ve, _ := docschema.AsValidationError(docschema.Validate(s, map[string]any{"credit": 1, "billing": 1}))
	if ve == nil || ve.Code != docschema.CodeDependency {
		t.Fatalf("expected dependency failure, got %+v", ve)
	}
}

func TestObject_DependenciesSchema(t *testing.T) {
	s := &docschema.Schema{Dependencies: map[string]*docschema.Dependency{
		"credit": {Schema: &docschema.Schema{Required: []string{"billing"}}},
	}}
	if err := docschema.Validate(s, map[string]any{"credit": 1, "billing": 1}); err != nil {
		t.Fatalf("satisfied schema dependency rejected: %v", err)
	}
	ve, _ := docschema.AsValidationError(docschema.Validate(s, map[string]any{"credit": 1}))
	if ve == nil || ve.Code != docschema.CodeRequired {
		t.Fatalf("expected required from dependency schema, got %+v", ve)
	}
}
