package plural

// Rule determines the plural category for a value described by its operands.
// It follows Unicode CLDR (Common Locale Data Repository) plural-rules data.
type Rule func(Operands) Category

// OtherOnlyRule covers languages without grammatical number
// (Japanese, Korean, Chinese, Thai, Vietnamese, Indonesian, ...).
var OtherOnlyRule Rule = func(Operands) Category {
	return Other
}

// EnglishRule covers English and similar languages (German, Dutch, Swedish,
// Greek, Italian, Spanish, ...): one iff the value is exactly the integer 1.
var EnglishRule Rule = func(o Operands) Category {
	if o.I == 1 && o.V == 0 {
		return One
	}
	return Other
}

// RawOneRule covers languages where any value equal to 1, fractions included,
// is singular (Turkish, Hungarian, Armenian, Georgian, Kazakh, ...).
var RawOneRule Rule = func(o Operands) Category {
	if o.N == 1 {
		return One
	}
	return Other
}

// ZeroToOneRule covers languages where the singular spans the 0..1 integer
// range and all values below one (French, Portuguese, Hindi, Persian, ...).
var ZeroToOneRule Rule = func(o Operands) Category {
	if o.I == 0 || o.I == 1 {
		return One
	}
	return Other
}

// CzechSlovakRule implements the West Slavic four-category, decimal-sensitive
// family: one (1), few (2-4), many (any decimal), other.
var CzechSlovakRule Rule = func(o Operands) Category {
	switch {
	case o.I == 1 && o.V == 0:
		return One
	case o.I >= 2 && o.I <= 4 && o.V == 0:
		return Few
	case o.V != 0:
		return Many
	default:
		return Other
	}
}

// PolishRule implements Polish: decimals are always other; 1 is one;
// integers ending in 2-4 (except 12-14) are few; everything else is many.
var PolishRule Rule = func(o Operands) Category {
	if o.V != 0 {
		return Other
	}
	switch {
	case o.I == 1:
		return One
	case o.inRangeI(10, 2, 4) && !o.inRangeI(100, 12, 14):
		return Few
	default:
		return Many
	}
}

// EastSlavicRule implements Russian, Ukrainian and Belarusian: decimals are
// always other; one for integers ending in 1 (except 11); few for integers
// ending in 2-4 (except 12-14); many otherwise.
var EastSlavicRule Rule = func(o Operands) Category {
	if o.V != 0 {
		return Other
	}
	switch {
	case o.modI(10) == 1 && o.modI(100) != 11:
		return One
	case o.inRangeI(10, 2, 4) && !o.inRangeI(100, 12, 14):
		return Few
	default:
		return Many
	}
}

// SerboCroatianRule implements Croatian, Serbian and Bosnian, which apply the
// ending-digit test to the fraction digits as well (0.1 is one).
var SerboCroatianRule Rule = func(o Operands) Category {
	fMod10, fMod100 := o.F%10, o.F%100
	switch {
	case o.V == 0 && o.modI(10) == 1 && o.modI(100) != 11,
		fMod10 == 1 && fMod100 != 11:
		return One
	case o.V == 0 && o.inRangeI(10, 2, 4) && !o.inRangeI(100, 12, 14),
		fMod10 >= 2 && fMod10 <= 4 && !(fMod100 >= 12 && fMod100 <= 14):
		return Few
	default:
		return Other
	}
}

// ArabicRule implements the full six-category Arabic rule set.
var ArabicRule Rule = func(o Operands) Category {
	switch {
	case o.N == 0:
		return Zero
	case o.N == 1:
		return One
	case o.N == 2:
		return Two
	case o.inRangeI(100, 3, 10) && !o.hasFraction():
		return Few
	case o.inRangeI(100, 11, 99) && !o.hasFraction():
		return Many
	default:
		return Other
	}
}

// WelshRule implements Welsh, which assigns categories to exact values.
var WelshRule Rule = func(o Operands) Category {
	switch o.N {
	case 0:
		return Zero
	case 1:
		return One
	case 2:
		return Two
	case 3:
		return Few
	case 6:
		return Many
	default:
		return Other
	}
}

// HebrewRule implements modern Hebrew: one for 1 and for fractions below one,
// two for exactly 2.
var HebrewRule Rule = func(o Operands) Category {
	switch {
	case o.I == 1 && o.V == 0, o.I == 0 && o.V != 0:
		return One
	case o.I == 2 && o.V == 0:
		return Two
	default:
		return Other
	}
}

// RomanianRule implements Romanian: few covers decimals, zero, and integers
// whose last two digits fall in 1-19 (other than 1 itself).
var RomanianRule Rule = func(o Operands) Category {
	switch {
	case o.I == 1 && o.V == 0:
		return One
	case o.V != 0, o.N == 0, o.N != 1 && o.inRangeI(100, 1, 19):
		return Few
	default:
		return Other
	}
}

// LithuanianRule implements Lithuanian.
var LithuanianRule Rule = func(o Operands) Category {
	teens := o.inRangeI(100, 11, 19)
	switch {
	case o.F != 0:
		return Many
	case o.V != 0:
		return Other
	case o.modI(10) == 1 && !teens:
		return One
	case o.inRangeI(10, 2, 9) && !teens:
		return Few
	default:
		return Other
	}
}

// LatvianRule implements Latvian, which has a zero category.
var LatvianRule Rule = func(o Operands) Category {
	fMod10, fMod100 := o.F%10, o.F%100
	switch {
	case o.V == 0 && (o.modI(10) == 0 || o.inRangeI(100, 11, 19)),
		o.V == 2 && fMod100 >= 11 && fMod100 <= 19:
		return Zero
	case o.V == 0 && o.modI(10) == 1 && o.modI(100) != 11,
		o.V == 2 && fMod10 == 1 && fMod100 != 11,
		o.V != 2 && o.V != 0 && fMod10 == 1:
		return One
	default:
		return Other
	}
}

// IcelandicRule implements Icelandic: integers ending in 1 (except 11) and
// all values with a non-zero fraction are one.
var IcelandicRule Rule = func(o Operands) Category {
	if (o.F == 0 && o.modI(10) == 1 && o.modI(100) != 11) || o.F != 0 {
		return One
	}
	return Other
}

// SlovenianRule implements Slovenian, which retains a live dual.
var SlovenianRule Rule = func(o Operands) Category {
	switch {
	case o.V == 0 && o.modI(100) == 1:
		return One
	case o.V == 0 && o.modI(100) == 2:
		return Two
	case o.V == 0 && o.inRangeI(100, 3, 4), o.V != 0:
		return Few
	default:
		return Other
	}
}

// IrishRule implements Irish.
var IrishRule Rule = func(o Operands) Category {
	if o.hasFraction() {
		return Other
	}
	switch {
	case o.N == 1:
		return One
	case o.N == 2:
		return Two
	case o.I >= 3 && o.I <= 6:
		return Few
	case o.I >= 7 && o.I <= 10:
		return Many
	default:
		return Other
	}
}

// ScottishGaelicRule implements Scottish Gaelic.
var ScottishGaelicRule Rule = func(o Operands) Category {
	if o.hasFraction() {
		return Other
	}
	switch {
	case o.N == 1 || o.N == 11:
		return One
	case o.N == 2 || o.N == 12:
		return Two
	case (o.I >= 3 && o.I <= 10) || (o.I >= 13 && o.I <= 19):
		return Few
	default:
		return Other
	}
}

// MalteseRule implements Maltese.
var MalteseRule Rule = func(o Operands) Category {
	if o.hasFraction() {
		return Other
	}
	switch {
	case o.N == 1:
		return One
	case o.N == 2:
		return Two
	case o.N == 0, o.inRangeI(100, 3, 10):
		return Few
	case o.inRangeI(100, 11, 19):
		return Many
	default:
		return Other
	}
}

// BretonRule implements Breton.
var BretonRule Rule = func(o Operands) Category {
	if o.hasFraction() {
		return Other
	}
	mod10, mod100 := o.modI(10), o.modI(100)
	switch {
	case mod10 == 1 && mod100 != 11 && mod100 != 71 && mod100 != 91:
		return One
	case mod10 == 2 && mod100 != 12 && mod100 != 72 && mod100 != 92:
		return Two
	case (mod10 == 3 || mod10 == 4 || mod10 == 9) &&
		!(mod100 >= 10 && mod100 <= 19) && !(mod100 >= 70 && mod100 <= 79) && !(mod100 >= 90 && mod100 <= 99):
		return Few
	case o.N != 0 && o.I%1000000 == 0:
		return Many
	default:
		return Other
	}
}

// MacedonianRule implements Macedonian.
var MacedonianRule Rule = func(o Operands) Category {
	if (o.V == 0 && o.modI(10) == 1 && o.modI(100) != 11) ||
		(o.F%10 == 1 && o.F%100 != 11) {
		return One
	}
	return Other
}

// FilipinoRule implements Filipino/Tagalog.
var FilipinoRule Rule = func(o Operands) Category {
	endsIn := func(d int64) bool { return d == 4 || d == 6 || d == 9 }
	switch {
	case o.V == 0 && (o.I == 1 || o.I == 2 || o.I == 3):
		return One
	case o.V == 0 && !endsIn(o.modI(10)):
		return One
	case o.V != 0 && !endsIn(o.F%10):
		return One
	default:
		return Other
	}
}
