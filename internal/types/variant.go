package types

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/EmundoT/cmdtarget/internal/unitvalue"
)

// Kind tags the value held by a Variant.
type Kind int

// Kind values. The zero value is KindEmpty.
const (
	KindEmpty Kind = iota
	KindBool
	KindInt
	KindString
	KindUnit
)

var kindNames = map[Kind]string{
	KindEmpty:  "empty",
	KindBool:   "bool",
	KindInt:    "int",
	KindString: "string",
	KindUnit:   "unit",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind parses the names printed by Kind.String.
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return KindEmpty, nil
	}
	for k, name := range kindNames {
		if name == s {
			return k, nil
		}
	}
	return KindEmpty, fmt.Errorf("unknown value kind '%s'", s)
}

// Variant is the parameter passed into and out of Exec. A nil *Variant is an
// absent slot; a non-nil Variant of KindEmpty is a present slot with no value.
type Variant struct {
	kind Kind
	b    bool
	i    int64
	s    string
	u    unitvalue.Value
}

// Empty returns a present Variant holding no value.
func Empty() Variant { return Variant{} }

// Bool returns a Variant holding b.
func Bool(b bool) Variant { return Variant{kind: KindBool, b: b} }

// Int returns a Variant holding n.
func Int(n int64) Variant { return Variant{kind: KindInt, i: n} }

// String returns a Variant holding s.
func String(s string) Variant { return Variant{kind: KindString, s: s} }

// Unit returns a Variant holding a unit value.
func Unit(v unitvalue.Value) Variant { return Variant{kind: KindUnit, u: v} }

// Kind returns the tag.
func (v Variant) Kind() Kind { return v.kind }

// IsEmpty reports whether v holds no value.
func (v Variant) IsEmpty() bool { return v.kind == KindEmpty }

// AsBool returns the bool value and whether v holds one.
func (v Variant) AsBool() (bool, bool) { return v.b, v.kind == KindBool }

// AsInt returns the integer value and whether v holds one.
func (v Variant) AsInt() (int64, bool) { return v.i, v.kind == KindInt }

// AsString returns the string value and whether v holds one.
func (v Variant) AsString() (string, bool) { return v.s, v.kind == KindString }

// AsUnit returns the unit value and whether v holds one.
func (v Variant) AsUnit() (unitvalue.Value, bool) { return v.u, v.kind == KindUnit }

// String renders the held value for display. Empty renders as "".
func (v Variant) String() string {
	switch v.kind {
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindString:
		return v.s
	case KindUnit:
		return v.u.String()
	default:
		return ""
	}
}

// ParseVariant converts text into a Variant of the given kind.
// Unit text uses the trailing-'%' notation.
func ParseVariant(kind Kind, text string) (Variant, error) {
	switch kind {
	case KindEmpty:
		return Empty(), nil
	case KindBool:
		b, err := strconv.ParseBool(strings.TrimSpace(text))
		if err != nil {
			return Variant{}, fmt.Errorf("invalid bool '%s'", text)
		}
		return Bool(b), nil
	case KindInt:
		n, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
		if err != nil {
			return Variant{}, fmt.Errorf("invalid integer '%s'", text)
		}
		return Int(n), nil
	case KindString:
		return String(text), nil
	case KindUnit:
		var u unitvalue.Value
		if err := u.UnmarshalText([]byte(text)); err != nil {
			return Variant{}, err
		}
		return Unit(u), nil
	default:
		return Variant{}, fmt.Errorf("unknown value kind %s", kind)
	}
}

// MarshalJSON encodes v as {"kind": ..., "value": ...}.
func (v Variant) MarshalJSON() ([]byte, error) {
	out := struct {
		Kind  string      `json:"kind"`
		Value interface{} `json:"value,omitempty"`
	}{Kind: v.kind.String()}

	switch v.kind {
	case KindBool:
		out.Value = v.b
	case KindInt:
		out.Value = v.i
	case KindString:
		out.Value = v.s
	case KindUnit:
		out.Value = v.u.String()
	}
	return json.Marshal(out)
}
