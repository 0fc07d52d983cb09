package docschema_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/docschema/docschema"
)

func TestKindOf(t *testing.T) {
	cases := []struct {
		in   any
		want docschema.Kind
	}{
		{nil, docschema.KindNull},
		{true, docschema.KindBool},
		{"s", docschema.KindString},
		{1.5, docschema.KindNumber},
		{7, docschema.KindNumber},
		{int32(7), docschema.KindNumber},
		{json.Number("7"), docschema.KindNumber},
		{int64(7), docschema.KindLong},
		{docschema.NewDecimal128("1.25"), docschema.KindDecimal},
		{time.Unix(0, 0), docschema.KindDate},
		{docschema.Timestamp{T: 1, I: 2}, docschema.KindTimestamp},
		{docschema.ObjectID{}, docschema.KindObjectID},
		{[]byte{0x01}, docschema.KindBinary},
		{[]any{1, 2}, docschema.KindArray},
		{map[string]any{}, docschema.KindObject},
		{struct{}{}, docschema.KindUnknown},
	}
	for _, tc := range cases {
		if got := docschema.KindOf(tc.in); got != tc.want {
			t.Fatalf("KindOf(%T) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestBSONType_IntDoubleComplement(t *testing.T) {
	intSchema := &docschema.Schema{BSONType: []string{"int"}}
	dblSchema := &docschema.Schema{BSONType: []string{"double"}}

	integral := []any{7, int32(7), 7.0, json.Number("7")}
	fractional := []any{7.5, json.Number("7.5")}

	for _, v := range integral {
		if err := docschema.Validate(intSchema, v); err != nil {
			t.Fatalf("int rejected integral %v (%T): %v", v, v, err)
		}
		if err := docschema.Validate(dblSchema, v); err == nil {
			t.Fatalf("double accepted integral %v (%T)", v, v)
		}
	}
	for _, v := range fractional {
		if err := docschema.Validate(dblSchema, v); err != nil {
			t.Fatalf("double rejected fractional %v (%T): %v", v, v, err)
		}
		if err := docschema.Validate(intSchema, v); err == nil {
			t.Fatalf("int accepted fractional %v (%T)", v, v)
		}
	}
	// non-numeric values match neither
	if err := docschema.Validate(intSchema, "7"); err == nil {
		t.Fatalf("int accepted a string")
	}
}

func TestBSONType_LongIsADistinctRepresentation(t *testing.T) {
	long := &docschema.Schema{BSONType: []string{"long"}}
	if err := docschema.Validate(long, int64(7)); err != nil {
		t.Fatalf("long rejected int64: %v", err)
	}
	if err := docschema.Validate(long, 7); err == nil {
		t.Fatalf("long accepted a plain int")
	}
	// int64 values are long, not int, and are not generic numbers either
	if err := docschema.Validate(&docschema.Schema{BSONType: []string{"int"}}, int64(7)); err == nil {
		t.Fatalf("int accepted an int64")
	}
	if err := docschema.Validate(&docschema.Schema{Type: []string{"number"}}, int64(7)); err == nil {
		t.Fatalf("generic number accepted an int64")
	}
}

func TestBSONType_ObjectIDRejectsHexString(t *testing.T) {
	s := &docschema.Schema{BSONType: []string{"objectId"}}
	id := docschema.ObjectID{0x5f, 0x1d, 0x7f, 0x4b, 0x2e, 0x8a, 0x9c, 0x01, 0x23, 0x45, 0x67, 0x89}
	if err := docschema.Validate(s, id); err != nil {
		t.Fatalf("native ObjectID rejected: %v", err)
	}
	if err := docschema.Validate(s, id.Hex()); err == nil {
		t.Fatalf("hex string accepted as objectId")
	}
}

func TestBSONType_TemporalAndOpaqueKinds(t *testing.T) {
	cases := []struct {
		name string
		v    any
	}{
		{"date", time.Now()},
		{"timestamp", docschema.Timestamp{T: 100, I: 1}},
		{"decimal", docschema.NewDecimal128("10.5")},
		{"binData", []byte{0xde, 0xad}},
	}
	for _, tc := range cases {
		if err := docschema.Validate(&docschema.Schema{BSONType: []string{tc.name}}, tc.v); err != nil {
			t.Fatalf("%s rejected %T: %v", tc.name, tc.v, err)
		}
	}
	// kinds do not bleed into each other
	if err := docschema.Validate(&docschema.Schema{BSONType: []string{"date"}}, docschema.Timestamp{}); err == nil {
		t.Fatalf("date accepted a timestamp")
	}
	if err := docschema.Validate(&docschema.Schema{BSONType: []string{"timestamp"}}, time.Now()); err == nil {
		t.Fatalf("timestamp accepted a date")
	}
}

func TestNumericKeywordsApplyToLongAndDecimal(t *testing.T) {
	s := &docschema.Schema{Minimum: fptr(5)}
	if err := docschema.Validate(s, int64(4)); err == nil {
		t.Fatalf("minimum ignored an int64")
	}
	if err := docschema.Validate(s, docschema.NewDecimal128("4.5")); err == nil {
		t.Fatalf("minimum ignored a decimal")
	}
	if err := docschema.Validate(s, docschema.NewDecimal128("5.5")); err != nil {
		t.Fatalf("decimal above the bound rejected: %v", err)
	}
}
