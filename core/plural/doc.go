// Package plural classifies numeric values into CLDR grammatical-number
// categories (zero, one, two, few, many, other) per language.
//
// The classification follows the Unicode CLDR plural-rules data. Each rule is
// a pure function over CLDR operands derived from the input value:
//
//	n - absolute value
//	i - integer part
//	v - count of visible fraction digits
//	f - visible fraction digits as an integer
//	e - decimal exponent (compact notation)
//
// Operands can be derived from a float64 (shortest decimal representation) or
// from a decimal string, which preserves trailing zeros ("1.50" has v=2, f=50
// while 1.5 has v=1, f=5). Several languages distinguish the two.
//
// # Usage
//
//	plural.Resolve("cs", 2)      // plural.Few
//	plural.Resolve("cs", 2.5)    // plural.Many
//	plural.Resolve("ru", 21)     // plural.One
//	plural.Resolve("ar", 0)      // plural.Zero
//
// Languages without a registered rule fall back to the English-like rule
// (one iff i==1 and v==0).
package plural
