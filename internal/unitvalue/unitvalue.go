// Package unitvalue implements a length that is either an absolute number of
// pixels or a percentage, with locale-aware parsing and rendering.
package unitvalue

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/language"
)

// Unit tags the interpretation of a Value's magnitude.
type Unit int

// Unit constants. The zero value is Undefined.
const (
	Undefined  Unit = iota // No value entered, or unparseable text
	Absolute               // Pixels
	Percentage             // 0..100
)

// MaxPercentage is the upper bound of a percentage magnitude.
const MaxPercentage = 100

// Sentinel errors for arithmetic on an already-constructed Value.
var (
	// ErrInvalidDivisor indicates a zero or negative divisor
	ErrInvalidDivisor = errors.New("cannot divide a unit value by zero or a negative number")

	// ErrUndefinedOperand indicates arithmetic on an Undefined value
	ErrUndefinedOperand = errors.New("cannot divide a unit value that has no assigned value")

	// ErrNotImplemented is returned by Multiply, which has no defined semantics
	ErrNotImplemented = errors.New("multiplying a unit value is not implemented")
)

// RangeError reports a magnitude that violates the unit's bounds.
type RangeError struct {
	Value int
	Unit  Unit
}

func (e *RangeError) Error() string {
	if e.Value < 0 {
		return fmt.Sprintf("value %d out of range: must not be negative", e.Value)
	}
	return fmt.Sprintf("value %d out of range: a %s must be less than or equal to %d", e.Value, e.Unit, MaxPercentage)
}

// IsRangeError reports whether err is (or wraps) a RangeError.
func IsRangeError(err error) bool {
	var re *RangeError
	return errors.As(err, &re)
}

// String returns the lower-case unit name.
func (u Unit) String() string {
	switch u {
	case Absolute:
		return "absolute"
	case Percentage:
		return "percentage"
	default:
		return "undefined"
	}
}

// ParseUnit parses a unit name as printed by Unit.String.
// "pixels" and "px" are accepted for Absolute, "%" and "percent" for Percentage.
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "absolute", "pixels", "px":
		return Absolute, nil
	case "percentage", "percent", "%":
		return Percentage, nil
	case "undefined", "":
		return Undefined, nil
	default:
		return Undefined, fmt.Errorf("unknown unit '%s'", s)
	}
}

// Value is an immutable magnitude tagged with a Unit.
// The zero Value is Undefined with magnitude 0.
type Value struct {
	magnitude int
	unit      Unit
}

// FromNumber builds a Value from a magnitude and unit.
// Negative magnitudes, and percentages above 100, are rejected.
func FromNumber(value int, unit Unit) (Value, error) {
	if value < 0 {
		return Value{}, &RangeError{Value: value, Unit: unit}
	}
	if unit == Percentage && value > MaxPercentage {
		return Value{}, &RangeError{Value: value, Unit: unit}
	}
	if unit == Undefined {
		return Value{}, nil
	}
	return Value{magnitude: value, unit: unit}, nil
}

// FromPixels builds an Absolute value.
func FromPixels(n int) (Value, error) {
	return FromNumber(n, Absolute)
}

// FromText parses text as an integer in the given unit using the numeral
// rules of tag. Empty or unparseable text yields the Undefined value; so does
// a parsed number outside the unit's bounds. FromText never fails.
func FromText(text string, tag language.Tag, unit Unit) Value {
	s := strings.TrimSpace(text)
	if s == "" {
		return Value{}
	}

	n, ok := parseInt(s, symbolsFor(tag))
	if !ok {
		return Value{}
	}

	v, err := FromNumber(n, unit)
	if err != nil {
		return Value{}
	}
	return v
}

// FromTextAutodetect parses text whose unit is given by an optional trailing
// '%'. Without it the value is Absolute.
//
// When the number cannot be parsed the result is Undefined, not a zero value
// in the detected unit.
func FromTextAutodetect(text string, tag language.Tag) Value {
	s := strings.TrimSpace(text)
	if s == "" {
		return Value{}
	}

	unit := Absolute
	if strings.HasSuffix(s, "%") {
		unit = Percentage
		s = strings.TrimRight(s, "%")
	}

	n, ok := parseInt(s, symbolsFor(tag))
	if !ok {
		return Value{}
	}

	v, err := FromNumber(n, unit)
	if err != nil {
		return Value{}
	}
	return v
}

// CanParse reports whether text is empty or, after stripping trailing '%',
// an integer in culture-neutral notation.
func CanParse(text string) bool {
	if text == "" {
		return true
	}

	s := strings.TrimSpace(text)
	if strings.HasSuffix(s, "%") {
		s = strings.TrimRight(s, "%")
	}

	_, ok := parseInt(s, invariantSymbols)
	return ok
}

// Magnitude returns the numeric part. It is 0 for Undefined values.
func (v Value) Magnitude() int { return v.magnitude }

// Unit returns the unit tag.
func (v Value) Unit() Unit { return v.unit }

// IsDefined reports whether v carries a value.
func (v Value) IsDefined() bool { return v.unit != Undefined }

// AsPixels returns the magnitude of an Absolute value.
// ok is false for Undefined and Percentage values.
func (v Value) AsPixels() (n int, ok bool) {
	if v.unit != Absolute {
		return 0, false
	}
	return v.magnitude, true
}

// Divide returns v with its magnitude divided by divisor, truncating.
func (v Value) Divide(divisor int) (Value, error) {
	if divisor <= 0 {
		return Value{}, ErrInvalidDivisor
	}
	if v.unit == Undefined {
		return Value{}, ErrUndefinedOperand
	}
	return Value{magnitude: v.magnitude / divisor, unit: v.unit}, nil
}

// Multiply is not supported and always fails.
func (v Value) Multiply(factor int) (Value, error) {
	return Value{}, ErrNotImplemented
}

// String renders v in culture-neutral form: "42", "42%" or "" for Undefined.
func (v Value) String() string {
	switch v.unit {
	case Percentage:
		return strconv.Itoa(v.magnitude) + "%"
	case Absolute:
		return strconv.Itoa(v.magnitude)
	default:
		return ""
	}
}

// Format renders v with the digits of the given locale.
func (v Value) Format(tag language.Tag) string {
	switch v.unit {
	case Percentage:
		return formatInt(tag, v.magnitude) + "%"
	case Absolute:
		return formatInt(tag, v.magnitude)
	default:
		return ""
	}
}

// MarshalText implements encoding.TextMarshaler using the culture-neutral form.
func (v Value) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Text that cannot be
// parsed is an error here, unlike FromTextAutodetect, because it comes from
// configuration rather than user input.
func (v *Value) UnmarshalText(text []byte) error {
	s := string(text)
	if !CanParse(s) {
		return fmt.Errorf("invalid unit value '%s'", s)
	}
	parsed := FromTextAutodetect(s, language.Und)
	if strings.TrimSpace(s) != "" && !parsed.IsDefined() {
		return fmt.Errorf("unit value '%s' out of range", s)
	}
	*v = parsed
	return nil
}
