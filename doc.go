package docschema

// Package docschema validates decoded document values against a declarative,
// JSON-Schema-draft-4-flavored schema extended with a bsonType axis carrying
// database primitive types (long, decimal, date, timestamp, objectId, binData).
//
// It provides:
//
// - A Schema data model mirroring the collection-validator wire format
//   (ParseSchema / ParseSchemaYAML decode it, Schema marshals back to it)
// - A recursive evaluator: Validate returns the first violation as a
//   *ValidationError annotated with a dotted object-key path; SafeValidate
//   wraps the same evaluation in a Result and never fails the caller
// - Type classification over a closed Kind set (KindOf), so int vs double is
//   computed from the value and unknown type names are never an error
//
// Design policy:
// - Keep the engine and public API in the root package; put the fluent
//   assembly DSL under builder/, messages under i18n/, and the CLI under
//   cmd/docschema.
// - Schemas are immutable once built or decoded and safe for concurrent
//   Validate calls; validation never mutates schema or data.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	s, err := docschema.ParseSchema(raw)
//	if err := docschema.Validate(s, doc); err != nil { ... }
//
//	res := docschema.SafeValidate(s, doc)
//	if !res.Valid { log.Println(res.Err.Path, res.Err.Message) }
