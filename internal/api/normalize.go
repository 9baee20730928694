package api

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Shape tells which response layout a list body had.
type Shape int

const (
	// ShapeUnrecognized covers null, primitives, objects without the
	// expected key, and a key that does not hold an array.
	ShapeUnrecognized Shape = iota
	// ShapeArray is a bare JSON array of records.
	ShapeArray
	// ShapeWrapped is an object whose named field holds the array.
	ShapeWrapped
)

func (s Shape) String() string {
	switch s {
	case ShapeArray:
		return "array"
	case ShapeWrapped:
		return "wrapped"
	default:
		return "unrecognized"
	}
}

// Parsed is the result of Normalize.
type Parsed struct {
	Shape Shape
	Items []json.RawMessage
}

// Normalize turns a list response body into its ordered records. A bare
// array and {key: [...]} are accepted; any other well-formed JSON yields
// ShapeUnrecognized with no items and no error. Only a body that is not
// JSON at all is an error.
func Normalize(body []byte, key string) (Parsed, error) {
	body = bytes.TrimSpace(body)
	if !json.Valid(body) {
		return Parsed{}, fmt.Errorf("response is not valid JSON")
	}

	switch body[0] {
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(body, &items); err != nil {
			return Parsed{}, fmt.Errorf("failed to decode array: %w", err)
		}
		return Parsed{Shape: ShapeArray, Items: items}, nil
	case '{':
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(body, &obj); err != nil {
			return Parsed{}, fmt.Errorf("failed to decode object: %w", err)
		}
		inner, ok := obj[key]
		inner = bytes.TrimSpace(inner)
		if !ok || len(inner) == 0 || inner[0] != '[' {
			return Parsed{Shape: ShapeUnrecognized}, nil
		}
		var items []json.RawMessage
		if err := json.Unmarshal(inner, &items); err != nil {
			return Parsed{}, fmt.Errorf("failed to decode %q: %w", key, err)
		}
		return Parsed{Shape: ShapeWrapped, Items: items}, nil
	default:
		return Parsed{Shape: ShapeUnrecognized}, nil
	}
}
