package unitvalue

import (
	"math"
	"strconv"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// numeralSymbols holds the characters a locale uses to write an integer.
type numeralSymbols struct {
	minus  string
	digits [10]rune
}

var invariantSymbols = numeralSymbols{
	minus:  "-",
	digits: [10]rune{'0', '1', '2', '3', '4', '5', '6', '7', '8', '9'},
}

var symbolCache sync.Map // language.Tag -> numeralSymbols

// symbolsFor derives the minus sign and decimal digits of tag by formatting
// known numbers with an x/text printer. Tags whose output cannot be decoded
// fall back to the invariant symbols.
func symbolsFor(tag language.Tag) numeralSymbols {
	if tag == language.Und {
		return invariantSymbols
	}
	if cached, ok := symbolCache.Load(tag); ok {
		return cached.(numeralSymbols)
	}

	syms := invariantSymbols
	p := message.NewPrinter(tag)

	digits := []rune(p.Sprint(number.Decimal(1234567890, number.NoSeparator())))
	if len(digits) == 10 {
		// "1234567890" puts zero last
		syms.digits[0] = digits[9]
		copy(syms.digits[1:], digits[:9])
	}

	// Everything before the digit one is the minus sign
	negative := p.Sprint(number.Decimal(-1))
	if i := strings.IndexRune(negative, syms.digits[1]); i > 0 {
		syms.minus = strings.TrimSpace(negative[:i])
	}

	symbolCache.Store(tag, syms)
	return syms
}

func (s numeralSymbols) digitValue(r rune) (int, bool) {
	if r >= '0' && r <= '9' {
		return int(r - '0'), true
	}
	for i, d := range s.digits {
		if r == d {
			return i, true
		}
	}
	return 0, false
}

// parseInt accepts surrounding white space, one leading sign and at least one
// digit. The result must fit in 32 bits.
func parseInt(s string, syms numeralSymbols) (int, bool) {
	s = strings.TrimFunc(s, unicode.IsSpace)
	if s == "" {
		return 0, false
	}

	negative := false
	switch {
	case syms.minus != "" && syms.minus != "-" && strings.HasPrefix(s, syms.minus):
		negative = true
		s = s[len(syms.minus):]
	case strings.HasPrefix(s, "-"):
		negative = true
		s = s[1:]
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	}
	if s == "" {
		return 0, false
	}

	var n int64
	for len(s) > 0 {
		r, size := utf8.DecodeRuneInString(s)
		d, ok := syms.digitValue(r)
		if !ok {
			return 0, false
		}
		n = n*10 + int64(d)
		if n > math.MaxInt32+1 {
			return 0, false
		}
		s = s[size:]
	}

	if negative {
		n = -n
	}
	if n > math.MaxInt32 || n < math.MinInt32 {
		return 0, false
	}
	return int(n), true
}

// formatInt writes n with the digits of tag and no group separators.
func formatInt(tag language.Tag, n int) string {
	syms := symbolsFor(tag)
	if syms == invariantSymbols {
		return strconv.Itoa(n)
	}

	var b strings.Builder
	if n < 0 {
		b.WriteString(syms.minus)
		n = -n
	}
	for _, r := range strconv.Itoa(n) {
		b.WriteRune(syms.digits[r-'0'])
	}
	return b.String()
}
