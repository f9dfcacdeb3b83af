package unitvalue

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

// ============================================================================
// FromNumber
// ============================================================================

func TestFromNumber_Absolute(t *testing.T) {
	for _, n := range []int{0, 1, 42, 100, 101, 1920, 1 << 20} {
		v, err := FromNumber(n, Absolute)
		require.NoError(t, err, "FromNumber(%d, Absolute)", n)
		assert.Equal(t, Absolute, v.Unit())

		px, ok := v.AsPixels()
		assert.True(t, ok)
		assert.Equal(t, n, px, "pixels should round-trip")
	}
}

func TestFromNumber_PercentageBounds(t *testing.T) {
	for n := 0; n <= MaxPercentage; n++ {
		v, err := FromNumber(n, Percentage)
		require.NoError(t, err, "FromNumber(%d, Percentage)", n)
		assert.Equal(t, n, v.Magnitude())
	}

	for _, n := range []int{101, 150, 1000} {
		_, err := FromNumber(n, Percentage)
		require.Error(t, err, "FromNumber(%d, Percentage)", n)
		assert.True(t, IsRangeError(err))
	}
}

func TestFromNumber_Negative(t *testing.T) {
	for _, unit := range []Unit{Absolute, Percentage, Undefined} {
		_, err := FromNumber(-1, unit)
		require.Error(t, err)

		var re *RangeError
		require.True(t, errors.As(err, &re))
		assert.Equal(t, -1, re.Value)
		assert.Contains(t, err.Error(), "negative")
	}
}

func TestFromNumber_UndefinedDropsMagnitude(t *testing.T) {
	v, err := FromNumber(7, Undefined)
	require.NoError(t, err)
	assert.False(t, v.IsDefined())
	assert.Equal(t, 0, v.Magnitude())
}

// ============================================================================
// FromText
// ============================================================================

func TestFromText_EmptyIsUndefined(t *testing.T) {
	for _, text := range []string{"", "   ", "\t\n"} {
		for _, unit := range []Unit{Absolute, Percentage, Undefined} {
			v := FromText(text, language.English, unit)
			assert.Equal(t, Undefined, v.Unit(), "FromText(%q, %s)", text, unit)
			assert.Equal(t, 0, v.Magnitude())
		}
	}
}

func TestFromText(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		unit     Unit
		wantMag  int
		wantUnit Unit
	}{
		{name: "plain pixels", text: "42", unit: Absolute, wantMag: 42, wantUnit: Absolute},
		{name: "surrounding space", text: "  640 ", unit: Absolute, wantMag: 640, wantUnit: Absolute},
		{name: "leading plus", text: "+12", unit: Absolute, wantMag: 12, wantUnit: Absolute},
		{name: "percentage", text: "75", unit: Percentage, wantMag: 75, wantUnit: Percentage},
		{name: "garbage", text: "abc", unit: Absolute, wantUnit: Undefined},
		{name: "percent sign not accepted", text: "50%", unit: Percentage, wantUnit: Undefined},
		{name: "decimal not accepted", text: "1.5", unit: Absolute, wantUnit: Undefined},
		{name: "group separator not accepted", text: "1,000", unit: Absolute, wantUnit: Undefined},
		{name: "negative degrades", text: "-5", unit: Absolute, wantUnit: Undefined},
		{name: "percentage over bound degrades", text: "150", unit: Percentage, wantUnit: Undefined},
		{name: "overflow", text: "99999999999", unit: Absolute, wantUnit: Undefined},
		{name: "sign only", text: "-", unit: Absolute, wantUnit: Undefined},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := FromText(tt.text, language.English, tt.unit)
			assert.Equal(t, tt.wantUnit, v.Unit())
			assert.Equal(t, tt.wantMag, v.Magnitude())
		})
	}
}

func TestFromText_OtherLocale(t *testing.T) {
	v := FromText("300", language.German, Absolute)
	assert.Equal(t, 300, v.Magnitude())
	assert.Equal(t, Absolute, v.Unit())
}

// ============================================================================
// FromTextAutodetect
// ============================================================================

func TestFromTextAutodetect(t *testing.T) {
	tests := []struct {
		text     string
		wantMag  int
		wantUnit Unit
	}{
		{text: "42%", wantMag: 42, wantUnit: Percentage},
		{text: "42", wantMag: 42, wantUnit: Absolute},
		{text: " 100% ", wantMag: 100, wantUnit: Percentage},
		{text: "50%%", wantMag: 50, wantUnit: Percentage},
		{text: "", wantUnit: Undefined},
		{text: "abc%", wantUnit: Undefined},
		{text: "abc", wantUnit: Undefined},
		{text: "%", wantUnit: Undefined},
		{text: "101%", wantUnit: Undefined},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			v := FromTextAutodetect(tt.text, language.English)
			assert.Equal(t, tt.wantUnit, v.Unit())
			assert.Equal(t, tt.wantMag, v.Magnitude())
		})
	}
}

// ============================================================================
// CanParse
// ============================================================================

func TestCanParse(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"", true},
		{"50%", true},
		{"50", true},
		{"-3", true},
		{" 7 ", true},
		{"abc", false},
		{"abc%", false},
		{"   ", false},
		{"%", false},
		{"5 0", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CanParse(tt.text), "CanParse(%q)", tt.text)
	}
}

// ============================================================================
// Arithmetic
// ============================================================================

func TestDivide(t *testing.T) {
	ten, err := FromNumber(10, Absolute)
	require.NoError(t, err)

	third, err := ten.Divide(3)
	require.NoError(t, err)
	assert.Equal(t, 3, third.Magnitude())
	assert.Equal(t, Absolute, third.Unit())

	half, err := FromNumber(99, Percentage)
	require.NoError(t, err)
	got, err := half.Divide(2)
	require.NoError(t, err)
	assert.Equal(t, 49, got.Magnitude())
	assert.Equal(t, Percentage, got.Unit())
}

func TestDivide_Preconditions(t *testing.T) {
	ten, err := FromNumber(10, Absolute)
	require.NoError(t, err)

	_, err = ten.Divide(0)
	assert.ErrorIs(t, err, ErrInvalidDivisor)

	_, err = ten.Divide(-1)
	assert.ErrorIs(t, err, ErrInvalidDivisor)

	_, err = Value{}.Divide(2)
	assert.ErrorIs(t, err, ErrUndefinedOperand)
}

func TestMultiply_AlwaysFails(t *testing.T) {
	ten, err := FromNumber(10, Absolute)
	require.NoError(t, err)

	for _, v := range []Value{ten, {}} {
		for _, f := range []int{-1, 0, 1, 2} {
			_, err := v.Multiply(f)
			assert.ErrorIs(t, err, ErrNotImplemented)
		}
	}
}

// ============================================================================
// Conversions and rendering
// ============================================================================

func TestAsPixels(t *testing.T) {
	px, err := FromPixels(320)
	require.NoError(t, err)
	n, ok := px.AsPixels()
	assert.True(t, ok)
	assert.Equal(t, 320, n)

	pct, err := FromNumber(30, Percentage)
	require.NoError(t, err)
	_, ok = pct.AsPixels()
	assert.False(t, ok)

	_, ok = Value{}.AsPixels()
	assert.False(t, ok)
}

func TestString(t *testing.T) {
	pct, _ := FromNumber(42, Percentage)
	abs, _ := FromNumber(42, Absolute)

	assert.Equal(t, "42%", pct.String())
	assert.Equal(t, "42", abs.String())
	assert.Equal(t, "", Value{}.String())

	assert.Equal(t, "42%", pct.Format(language.English))
	assert.Equal(t, "42", abs.Format(language.English))
	assert.Equal(t, "", Value{}.Format(language.English))
}

func TestFormat_ParsesBack(t *testing.T) {
	for _, tag := range []language.Tag{language.English, language.German, language.Und} {
		abs, _ := FromNumber(1234, Absolute)
		got := FromText(abs.Format(tag), tag, Absolute)
		assert.Equal(t, abs, got, "locale %s", tag)
	}
}

func TestParseUnit(t *testing.T) {
	for in, want := range map[string]Unit{
		"absolute":   Absolute,
		"px":         Absolute,
		"Percentage": Percentage,
		"%":          Percentage,
		"":           Undefined,
	} {
		got, err := ParseUnit(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseUnit("em")
	assert.Error(t, err)
}

func TestUnmarshalText(t *testing.T) {
	var v Value
	require.NoError(t, v.UnmarshalText([]byte("25%")))
	assert.Equal(t, Percentage, v.Unit())
	assert.Equal(t, 25, v.Magnitude())

	require.NoError(t, v.UnmarshalText([]byte("")))
	assert.False(t, v.IsDefined())

	assert.Error(t, v.UnmarshalText([]byte("wide")))
	assert.Error(t, v.UnmarshalText([]byte("250%")))
}
