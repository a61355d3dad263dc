package plural

import "strings"

// RuleFor returns the plural rule registered for a language. The language may
// be a bare ISO 639-1 code or a full BCP 47 tag; only the primary subtag is
// considered ("pt-BR" uses the "pt" rule). Unregistered languages fall back
// to EnglishRule.
func RuleFor(lang string) Rule {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if idx := strings.IndexAny(lang, "-_"); idx > 0 {
		lang = lang[:idx]
	}

	switch lang {
	// No grammatical number
	case "ja", "ko", "zh", "yue", "th", "vi", "id", "ms", "my", "km", "lo", "jv", "su", "bo", "dz", "ig", "yo", "wo":
		return OtherOnlyRule

	// English and similar: one iff exactly the integer 1
	case "en", "de", "nl", "sv", "nb", "nn", "no", "da", "et", "fi", "el",
		"it", "es", "ca", "gl", "eu", "sw", "ur", "an", "ast", "ia", "io", "sc", "yi":
		return EnglishRule

	// Singular for any value equal to 1, fractions included
	case "tr", "hu", "hy", "az", "ka", "kk", "ky", "uz", "tk", "mn", "ne",
		"te", "ta", "ml", "bg", "sq", "af", "eo", "ku", "ug":
		return RawOneRule

	// Singular spans 0..1
	case "fr", "pt", "hi", "fa", "am", "bn", "zu", "pa", "gu", "kn", "mr", "si", "as", "ff", "kab":
		return ZeroToOneRule

	// West Slavic four-category, decimal-sensitive
	case "cs", "sk":
		return CzechSlovakRule

	case "pl":
		return PolishRule

	// East Slavic
	case "ru", "uk", "be":
		return EastSlavicRule

	// Serbo-Croatian family
	case "hr", "sr", "bs", "sh":
		return SerboCroatianRule

	case "ar":
		return ArabicRule

	case "cy":
		return WelshRule

	case "he", "iw":
		return HebrewRule

	case "ro", "mo":
		return RomanianRule

	case "lt":
		return LithuanianRule

	case "lv", "prg":
		return LatvianRule

	case "is":
		return IcelandicRule

	case "sl":
		return SlovenianRule

	case "ga":
		return IrishRule

	case "gd":
		return ScottishGaelicRule

	case "mt":
		return MalteseRule

	case "br":
		return BretonRule

	case "mk":
		return MacedonianRule

	case "fil", "tl":
		return FilipinoRule

	default:
		return EnglishRule
	}
}

// Resolve classifies a numeric value for a language. The value's shortest
// decimal representation supplies the fraction operands, so Resolve("cs", 2.5)
// is Many while Resolve("cs", 2) is Few. Negative values classify by their
// absolute value.
func Resolve(lang string, n float64) Category {
	return RuleFor(lang)(NewOperands(n))
}

// ResolveDecimal classifies a decimal string for a language, preserving
// visible fraction digits ("1.0" is not the integer 1 for decimal-sensitive
// languages). Unparseable input classifies as the zero value, i.e. whatever
// the language's rule assigns to 0.
func ResolveDecimal(lang, s string) Category {
	return RuleFor(lang)(OperandsFromDecimal(s))
}
