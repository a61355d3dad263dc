package plural

import (
	"math"
	"strconv"
	"strings"
)

// Category is a CLDR grammatical-number category.
type Category string

// Plural categories as defined by Unicode CLDR.
// Not all languages use all categories.
const (
	Zero  Category = "zero"  // Used for 0 in some languages
	One   Category = "one"   // Singular form
	Two   Category = "two"   // Dual form (Arabic, Hebrew, Welsh, etc.)
	Few   Category = "few"   // Paucal form (Slavic languages, etc.)
	Many  Category = "many"  // Larger quantities in some languages
	Other Category = "other" // Default/catch-all form
)

// Categories lists all six categories in canonical CLDR order.
var Categories = []Category{Zero, One, Two, Few, Many, Other}

// ParseCategory maps a category name to its Category value.
// Returns false for anything that is not one of the six CLDR names.
func ParseCategory(s string) (Category, bool) {
	switch Category(s) {
	case Zero, One, Two, Few, Many, Other:
		return Category(s), true
	default:
		return "", false
	}
}

// Operands holds the CLDR plural operands derived from a numeric value.
// See https://unicode.org/reports/tr35/tr35-numbers.html#Operands.
type Operands struct {
	N float64 // absolute value of the input
	I int64   // integer digits of the input
	V int     // count of visible fraction digits
	F int64   // visible fraction digits as an integer
	E int     // decimal exponent for compact notation, 0 otherwise
}

// NewOperands derives operands from a float64 using its shortest decimal
// representation, so 1.5 yields v=1 while trailing zeros are not visible.
func NewOperands(n float64) Operands {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return Operands{N: math.Abs(n)}
	}
	return OperandsFromDecimal(strconv.FormatFloat(n, 'f', -1, 64))
}

// OperandsFromDecimal derives operands from a decimal string, preserving
// visible fraction digits ("1.50" has v=2, f=50). Accepts an optional sign,
// an optional fraction part, and an optional exponent ("1.2e3"). Returns the
// zero Operands for unparseable input.
func OperandsFromDecimal(s string) Operands {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "-")
	s = strings.TrimPrefix(s, "+")
	if s == "" {
		return Operands{}
	}

	var ops Operands

	// Compact exponent notation carries the CLDR "e" operand.
	if idx := strings.IndexAny(s, "eE"); idx >= 0 {
		exp, err := strconv.Atoi(s[idx+1:])
		if err != nil {
			return Operands{}
		}
		n, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return Operands{}
		}
		ops = OperandsFromDecimal(strconv.FormatFloat(n, 'f', -1, 64))
		ops.E = exp
		return ops
	}

	intPart := s
	fracPart := ""
	if idx := strings.IndexByte(s, '.'); idx >= 0 {
		intPart, fracPart = s[:idx], s[idx+1:]
	}

	if intPart == "" {
		intPart = "0"
	}
	i, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return Operands{}
	}
	ops.I = i
	ops.N = float64(i)

	if fracPart != "" {
		f, err := strconv.ParseInt(fracPart, 10, 64)
		if err != nil {
			return Operands{}
		}
		ops.V = len(fracPart)
		ops.F = f
		ops.N += float64(f) / math.Pow(10, float64(len(fracPart)))
	}

	return ops
}

// hasFraction reports whether any visible fraction digits exist.
func (o Operands) hasFraction() bool {
	return o.V != 0
}

// modI returns i % m. Convenience for rules keyed on integer digits.
func (o Operands) modI(m int64) int64 {
	return o.I % m
}

// inRangeI reports lo <= i%m <= hi.
func (o Operands) inRangeI(m, lo, hi int64) bool {
	v := o.I % m
	return v >= lo && v <= hi
}
