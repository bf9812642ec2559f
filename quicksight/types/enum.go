package types

import (
	"fmt"
	"slices"
)

// UnrecognizedEnumError is returned by the Parse functions when a raw string is
// empty or is not one of the values this client knows about.
type UnrecognizedEnumError struct {
	Enum  string
	Value string
}

func (e *UnrecognizedEnumError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("unrecognized %s value: empty string", e.Enum)
	}
	return fmt.Sprintf("unrecognized %s value: %q", e.Enum, e.Value)
}

type enumValue[T any] interface {
	~string
	Values() []T
}

func isKnown[T enumValue[T]](v T) bool {
	return slices.Contains(v.Values(), v)
}

// parseEnum is the strict decoding boundary shared by every Parse function.
// Struct fields and JSON decoding accept any string; only explicit parsing fails.
func parseEnum[T enumValue[T]](name, raw string) (T, error) {
	v := T(raw)
	if raw == "" || !isKnown(v) {
		var zero T
		return zero, &UnrecognizedEnumError{Enum: name, Value: raw}
	}
	return v, nil
}
