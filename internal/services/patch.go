package services

import "encoding/json"

// Field tracks JSON presence so partial patches can tell "not supplied" from
// "supplied as null". Set means the key appeared in the request body; Valid
// means its value was non-null.
type Field[T any] struct {
	Set   bool
	Valid bool
	Value T
}

func (field *Field[T]) UnmarshalJSON(data []byte) error {
	field.Set = true
	if string(data) == "null" {
		return nil
	}
	if err := json.Unmarshal(data, &field.Value); err != nil {
		return err
	}
	field.Valid = true
	return nil
}

// Carried reports whether the field was supplied with a non-null value —
// the condition the type-compatibility gate checks.
func (field Field[T]) Carried() bool {
	return field.Set && field.Valid
}

// SetValue builds a supplied field, mirroring a JSON key with a non-null
// value. Mostly used by tests.
func SetValue[T any](value T) Field[T] {
	return Field[T]{Set: true, Valid: true, Value: value}
}

// SetNull builds a supplied-as-null field.
func SetNull[T any]() Field[T] {
	return Field[T]{Set: true}
}
