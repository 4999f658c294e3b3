package services

import (
	"encoding/json"
	"testing"
)

func TestFieldDistinguishesAbsentNullAndValue(t *testing.T) {
	t.Parallel()

	type payload struct {
		Weight Field[float64] `json:"weight"`
	}

	var absent payload
	if err := json.Unmarshal([]byte(`{}`), &absent); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if absent.Weight.Set || absent.Weight.Carried() {
		t.Fatalf("absent key parsed as set: %+v", absent.Weight)
	}

	var null payload
	if err := json.Unmarshal([]byte(`{"weight":null}`), &null); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !null.Weight.Set || null.Weight.Valid || null.Weight.Carried() {
		t.Fatalf("null key parsed wrong: %+v", null.Weight)
	}

	var value payload
	if err := json.Unmarshal([]byte(`{"weight":102.5}`), &value); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !value.Weight.Carried() || value.Weight.Value != 102.5 {
		t.Fatalf("value key parsed wrong: %+v", value.Weight)
	}
}

func TestFieldRejectsWrongType(t *testing.T) {
	t.Parallel()

	type payload struct {
		Sets Field[int] `json:"sets"`
	}

	var parsed payload
	if err := json.Unmarshal([]byte(`{"sets":"three"}`), &parsed); err == nil {
		t.Fatal("expected type error")
	}
}
