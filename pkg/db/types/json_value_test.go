package types

import (
	"encoding/json"
	"testing"
)

func TestJSONValueRoundTrip(t *testing.T) {
	val, err := NewJSONValue(map[string]any{"threshold": 5})
	if err != nil {
		t.Fatalf("new json value: %v", err)
	}

	stored, err := val.Value()
	if err != nil {
		t.Fatalf("value: %v", err)
	}

	var restored JSONValue
	if err := restored.Scan(stored); err != nil {
		t.Fatalf("scan: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(restored, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded["threshold"].(float64) != 5 {
		t.Fatalf("unexpected restored value %v", decoded)
	}
}

func TestJSONValueScanString(t *testing.T) {
	var v JSONValue
	if err := v.Scan(`"Oficina Mecânica"`); err != nil {
		t.Fatalf("scan string: %v", err)
	}

	var s string
	if err := json.Unmarshal(v, &s); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if s != "Oficina Mecânica" {
		t.Fatalf("unexpected string %q", s)
	}
}

func TestJSONValueEmptyMarshalsAsNull(t *testing.T) {
	var v JSONValue
	out, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != "null" {
		t.Fatalf("expected null, got %s", out)
	}
}
