package docschema

import (
	"encoding/hex"
	"encoding/json"
	"math"
	"strconv"
	"time"
)

// Kind enumerates the closed set of runtime representations the engine
// understands. Validation data is an already-decoded any value; KindOf maps it
// into this set so the type classifiers can switch exhaustively instead of
// probing types at every keyword.
type Kind int

const (
	KindUnknown Kind = iota
	KindNull
	KindBool
	KindString
	KindNumber // float64, int, int32, json.Number
	KindLong   // int64, a representation distinct from ordinary numbers
	KindDecimal
	KindDate
	KindTimestamp
	KindObjectID
	KindBinary
	KindArray
	KindObject
)

// ObjectID is the native fixed-size 12-byte document identifier. A hex string
// is deliberately not an ObjectID; only this representation classifies as one.
type ObjectID [12]byte

// Hex returns the canonical lowercase hex rendering.
func (id ObjectID) Hex() string { return hex.EncodeToString(id[:]) }

// Decimal128 is an opaque high-precision decimal carried as its digit string.
// The engine never parses decimal text out of string data; values arrive
// already wrapped in this type.
type Decimal128 struct{ s string }

// NewDecimal128 wraps an already-decoded decimal digit string.
func NewDecimal128(s string) Decimal128 { return Decimal128{s: s} }

func (d Decimal128) String() string { return d.s }

// Float64 converts best-effort for numeric keyword comparison.
func (d Decimal128) Float64() (float64, bool) {
	f, err := strconv.ParseFloat(d.s, 64)
	return f, err == nil
}

// Timestamp is the operation-log style temporal kind, distinct from date
// values (time.Time).
type Timestamp struct {
	T uint32
	I uint32
}

// KindOf classifies a decoded runtime value. Representations outside the
// closed set yield KindUnknown: type checks fail against them and the other
// keyword groups skip them.
func KindOf(v any) Kind {
	switch v.(type) {
	case nil:
		return KindNull
	case bool:
		return KindBool
	case string:
		return KindString
	case float64, int, int32, json.Number:
		return KindNumber
	case int64:
		return KindLong
	case Decimal128:
		return KindDecimal
	case time.Time:
		return KindDate
	case Timestamp:
		return KindTimestamp
	case ObjectID:
		return KindObjectID
	case []byte:
		return KindBinary
	case []any:
		return KindArray
	case map[string]any:
		return KindObject
	default:
		return KindUnknown
	}
}

// matchesType reports whether v belongs to a generic JSON type name.
// Unrecognized names are not checked and therefore match; this permissiveness
// is intentional, schema authoring mistakes never surface as failures.
func matchesType(name string, v any) bool {
	switch name {
	case "null":
		return KindOf(v) == KindNull
	case "boolean":
		return KindOf(v) == KindBool
	case "string":
		return KindOf(v) == KindString
	case "number":
		return KindOf(v) == KindNumber
	case "array":
		return KindOf(v) == KindArray
	case "object":
		return KindOf(v) == KindObject
	default:
		return true
	}
}

// matchesBSONType reports whether v belongs to an extended type name.
// int/double are computed from the value, never from a tag: a number is int
// iff it has no fractional component. long/decimal match only their dedicated
// representations.
func matchesBSONType(name string, v any) bool {
	k := KindOf(v)
	switch name {
	case "null":
		return k == KindNull
	case "bool":
		return k == KindBool
	case "string":
		return k == KindString
	case "array":
		return k == KindArray
	case "object":
		return k == KindObject
	case "int":
		return k == KindNumber && isIntegral(v)
	case "double":
		return k == KindNumber && !isIntegral(v)
	case "long":
		return k == KindLong
	case "decimal":
		return k == KindDecimal
	case "date":
		return k == KindDate
	case "timestamp":
		return k == KindTimestamp
	case "objectId":
		return k == KindObjectID
	case "binData":
		return k == KindBinary
	default:
		return true
	}
}

// numericValue projects any numeric representation into the float64 domain.
// ok is false for non-numeric kinds and for decimals that do not parse.
func numericValue(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case int:
		return float64(t), true
	case int32:
		return float64(t), true
	case int64:
		return float64(t), true
	case json.Number:
		f, err := t.Float64()
		return f, err == nil
	case Decimal128:
		return t.Float64()
	default:
		return 0, false
	}
}

// isIntegral reports whether a KindNumber value has no fractional component.
func isIntegral(v any) bool {
	switch t := v.(type) {
	case int, int32:
		return true
	case float64:
		return t == math.Trunc(t)
	case json.Number:
		if _, err := t.Int64(); err == nil {
			return true
		}
		f, err := t.Float64()
		return err == nil && f == math.Trunc(f)
	default:
		return false
	}
}
