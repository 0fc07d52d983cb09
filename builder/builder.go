// Package builder provides side-effect-free fluent assembly of docschema
// Schema values.
//
// Entry points
//   - Object()/Array()/String()/Number()/Bool()/Null(): generic-type roots.
//   - Int()/Long()/Double()/Decimal()/Date()/Timestamp()/ObjectID()/Binary():
//     bsonType roots.
//   - New(): an unconstrained builder to compose freely (AllOf/AnyOf/Enum/...).
//
// Builders are small value types: every chaining call copies, so a builder can
// be forked and reused without shared mutable field state, and Build() always
// returns a fresh immutable *docschema.Schema.
package builder

import (
	"github.com/docschema/docschema"
)

// Builder accumulates keyword settings and materializes a Schema via Build.
type Builder struct {
	s docschema.Schema
}

// New returns an unconstrained builder.
func New() Builder { return Builder{} }

// Object starts an object-typed schema.
func Object() Builder { return New().Types("object") }

// Array starts an array-typed schema.
func Array() Builder { return New().Types("array") }

// String starts a string-typed schema.
func String() Builder { return New().Types("string") }

// Number starts a number-typed schema.
func Number() Builder { return New().Types("number") }

// Bool starts a boolean-typed schema.
func Bool() Builder { return New().Types("boolean") }

// Null starts a null-typed schema.
func Null() Builder { return New().Types("null") }

// Int starts a bsonType int schema (integral numeric values).
func Int() Builder { return New().BSONTypes("int") }

// Long starts a bsonType long schema (the 64-bit integer representation).
func Long() Builder { return New().BSONTypes("long") }

// Double starts a bsonType double schema (non-integral numeric values).
func Double() Builder { return New().BSONTypes("double") }

// Decimal starts a bsonType decimal schema.
func Decimal() Builder { return New().BSONTypes("decimal") }

// Date starts a bsonType date schema.
func Date() Builder { return New().BSONTypes("date") }

// Timestamp starts a bsonType timestamp schema.
func Timestamp() Builder { return New().BSONTypes("timestamp") }

// ObjectID starts a bsonType objectId schema.
func ObjectID() Builder { return New().BSONTypes("objectId") }

// Binary starts a bsonType binData schema.
func Binary() Builder { return New().BSONTypes("binData") }

// ---- metadata ----

func (b Builder) Title(t string) Builder { b.s.Title = t; return b }
func (b Builder) Description(d string) Builder { b.s.Description = d; return b }

// ---- type axes ----

// Types appends generic JSON type names.
func (b Builder) Types(names ...string) Builder {
	b.s.Type = appendCopy(b.s.Type, names...)
	return b
}

// BSONTypes appends extended type names.
func (b Builder) BSONTypes(names ...string) Builder {
	b.s.BSONType = appendCopy(b.s.BSONType, names...)
	return b
}

// ---- logical composition ----

func (b Builder) AllOf(subs ...Builder) Builder { b.s.AllOf = buildAll(subs); return b }
func (b Builder) AnyOf(subs ...Builder) Builder { b.s.AnyOf = buildAll(subs); return b }
func (b Builder) OneOf(subs ...Builder) Builder { b.s.OneOf = buildAll(subs); return b }
func (b Builder) Not(sub Builder) Builder { b.s.Not = sub.Build(); return b }

// Enum restricts the value to the given literals, compared by value equality.
func (b Builder) Enum(values ...any) Builder {
	b.s.Enum = append([]any(nil), values...)
	return b
}

// ---- strings ----

func (b Builder) MinLength(n int) Builder { b.s.MinLength = &n; return b }
func (b Builder) MaxLength(n int) Builder { b.s.MaxLength = &n; return b }
func (b Builder) Pattern(src string) Builder { b.s.Pattern = src; return b }

// ---- numbers ----

func (b Builder) MultipleOf(v float64) Builder { b.s.MultipleOf = &v; return b }

// Minimum sets an inclusive lower bound; chain ExclusiveMinimum to make it
// strict.
func (b Builder) Minimum(v float64) Builder { b.s.Minimum = &v; return b }
func (b Builder) ExclusiveMinimum() Builder { b.s.ExclusiveMinimum = true; return b }
func (b Builder) Maximum(v float64) Builder { b.s.Maximum = &v; return b }
func (b Builder) ExclusiveMaximum() Builder { b.s.ExclusiveMaximum = true; return b }

// ---- arrays ----

func (b Builder) MinItems(n int) Builder { b.s.MinItems = &n; return b }
func (b Builder) MaxItems(n int) Builder { b.s.MaxItems = &n; return b }
func (b Builder) UniqueItems() Builder { b.s.UniqueItems = true; return b }

// Items applies one schema to every element.
func (b Builder) Items(sub Builder) Builder {
	b.s.Items = &docschema.Items{Single: sub.Build()}
	return b
}

// TupleItems applies schemas positionally; surplus elements fall to
// AdditionalItems.
func (b Builder) TupleItems(subs ...Builder) Builder {
	b.s.Items = &docschema.Items{Tuple: buildAll(subs)}
	return b
}

// AdditionalItems allows or forbids surplus tuple elements.
func (b Builder) AdditionalItems(allowed bool) Builder {
	b.s.AdditionalItems = &docschema.Additional{Bool: &allowed}
	return b
}

// AdditionalItemsSchema validates each surplus tuple element.
func (b Builder) AdditionalItemsSchema(sub Builder) Builder {
	b.s.AdditionalItems = &docschema.Additional{Schema: sub.Build()}
	return b
}

// ---- objects ----

func (b Builder) MinProperties(n int) Builder { b.s.MinProperties = &n; return b }
func (b Builder) MaxProperties(n int) Builder { b.s.MaxProperties = &n; return b }

// Require marks key names as required (presence, not truthiness).
func (b Builder) Require(names ...string) Builder {
	b.s.Required = appendCopy(b.s.Required, names...)
	return b
}

// Prop declares a property schema.
func (b Builder) Prop(name string, sub Builder) Builder {
	b.s.Properties = setCopy(b.s.Properties, name, sub.Build())
	return b
}

// PatternProp declares a pattern-property schema keyed by its regex source.
func (b Builder) PatternProp(source string, sub Builder) Builder {
	b.s.PatternProperties = setCopy(b.s.PatternProperties, source, sub.Build())
	return b
}

// AdditionalProps allows or forbids keys not covered by Prop/PatternProp.
func (b Builder) AdditionalProps(allowed bool) Builder {
	b.s.AdditionalProperties = &docschema.Additional{Bool: &allowed}
	return b
}

// AdditionalPropsSchema validates each key not covered by Prop/PatternProp.
func (b Builder) AdditionalPropsSchema(sub Builder) Builder {
	b.s.AdditionalProperties = &docschema.Additional{Schema: sub.Build()}
	return b
}

// DependsOn co-requires keys whenever the trigger key is present.
func (b Builder) DependsOn(key string, required ...string) Builder {
	dep := &docschema.Dependency{Keys: append([]string(nil), required...)}
	b.s.Dependencies = setCopy(b.s.Dependencies, key, dep)
	return b
}

// DependsOnSchema revalidates the whole object against sub whenever the
// trigger key is present.
func (b Builder) DependsOnSchema(key string, sub Builder) Builder {
	dep := &docschema.Dependency{Schema: sub.Build()}
	b.s.Dependencies = setCopy(b.s.Dependencies, key, dep)
	return b
}

// Build materializes an immutable Schema. The builder stays usable and later
// chaining never affects already-built schemas.
func (b Builder) Build() *docschema.Schema {
	out := b.s
	return &out
}

func buildAll(subs []Builder) []*docschema.Schema {
	if len(subs) == 0 {
		return nil
	}
	out := make([]*docschema.Schema, len(subs))
	for i, sub := range subs {
		out[i] = sub.Build()
	}
	return out
}

func appendCopy(dst []string, more ...string) []string {
	out := make([]string, 0, len(dst)+len(more))
	out = append(out, dst...)
	out = append(out, more...)
	return out
}

func setCopy[V any](m map[string]V, key string, v V) map[string]V {
	out := make(map[string]V, len(m)+1)
	for k, vv := range m {
		out[k] = vv
	}
	out[key] = v
	return out
}
