package types

import (
	"fmt"
	"strings"
)

// CallShape is the parameter convention a command expects from Exec callers.
//
// The host declared four variants of the exec call because its type system
// could not express "nullable structured value" in one signature. Here they
// collapse into Exec's optional *Variant slots, and each command documents
// which convention it follows.
type CallShape int

// CallShape values. The zero value is ShapeRaw.
const (
	// ShapeRaw passes opaque slots; either may be nil.
	ShapeRaw CallShape = iota

	// ShapeInOut consumes in and produces out; both must be present.
	ShapeInOut

	// ShapeGetValue retrieves the command value: in must be nil, out present.
	ShapeGetValue

	// ShapeSetValue sets the command value: in present, out must be nil.
	ShapeSetValue
)

var shapeNames = []string{"raw", "in-out", "get-value", "set-value"}

func (s CallShape) String() string {
	if s >= 0 && int(s) < len(shapeNames) {
		return shapeNames[s]
	}
	return fmt.Sprintf("CallShape(%d)", int(s))
}

// ParseCallShape parses the names printed by CallShape.String.
func ParseCallShape(s string) (CallShape, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ShapeRaw, nil
	}
	for i, name := range shapeNames {
		if name == s {
			return CallShape(i), nil
		}
	}
	return ShapeRaw, fmt.Errorf("unknown call shape '%s'", s)
}

// Accepts reports whether a call with the given slots follows the convention.
func (s CallShape) Accepts(in, out *Variant) bool {
	switch s {
	case ShapeRaw:
		return true
	case ShapeInOut:
		return in != nil && out != nil
	case ShapeGetValue:
		return in == nil && out != nil
	case ShapeSetValue:
		return in != nil && out == nil
	default:
		return false
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s CallShape) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *CallShape) UnmarshalText(text []byte) error {
	parsed, err := ParseCallShape(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
