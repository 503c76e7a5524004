package songmeta

import "strings"

// langCodes is the set of ISO 639-1 two-letter language codes.
var langCodes = func() map[string]struct{} {
	codes := []string{
		"aa", "ab", "ae", "af", "ak", "am", "an", "ar", "as", "av", "ay", "az",
		"ba", "be", "bg", "bh", "bi", "bm", "bn", "bo", "br", "bs", "ca", "ce",
		"ch", "co", "cr", "cs", "cu", "cv", "cy", "da", "de", "dv", "dz", "ee",
		"el", "en", "eo", "es", "et", "eu", "fa", "ff", "fi", "fj", "fo", "fr",
		"fy", "ga", "gd", "gl", "gn", "gu", "gv", "ha", "he", "hi", "ho", "hr",
		"ht", "hu", "hy", "hz", "ia", "id", "ie", "ig", "ii", "ik", "io", "is",
		"it", "iu", "ja", "jv", "ka", "kg", "ki", "kj", "kk", "kl", "km", "kn",
		"ko", "kr", "ks", "ku", "kv", "kw", "ky", "la", "lb", "lg", "li", "ln",
		"lo", "lt", "lu", "lv", "mg", "mh", "mi", "mk", "ml", "mn", "mr", "ms",
		"mt", "my", "na", "nb", "nd", "ne", "ng", "nl", "nn", "no", "nr", "nv",
		"ny", "oc", "oj", "om", "or", "os", "pa", "pi", "pl", "ps", "pt", "qu",
		"rm", "rn", "ro", "ru", "rw", "sa", "sc", "sd", "se", "sg", "si", "sk",
		"sl", "sm", "sn", "so", "sq", "sr", "ss", "st", "su", "sv", "sw", "ta",
		"te", "tg", "th", "ti", "tk", "tl", "tn", "to", "tr", "ts", "tt", "tw",
		"ty", "ug", "uk", "ur", "uz", "ve", "vi", "vo", "wa", "wo", "xh", "yi",
		"yo", "za", "zh", "zu",
	}
	set := make(map[string]struct{}, len(codes))
	for _, c := range codes {
		set[c] = struct{}{}
	}
	return set
}()

// ValidLangCode reports whether code is a known ISO 639-1 language code,
// case-insensitive.
func ValidLangCode(code string) bool {
	_, ok := langCodes[strings.ToLower(code)]
	return ok
}

// partitionByLang stably moves items whose language equals lang to the
// front. The relative order inside each partition is preserved and no item
// is ever added or dropped.
func partitionByLang[T any](items []T, lang string, langOf func(T) string) []T {
	lang = strings.ToLower(lang)
	preferred := make([]T, 0, len(items))
	rest := make([]T, 0, len(items))
	for _, item := range items {
		if strings.ToLower(langOf(item)) == lang {
			preferred = append(preferred, item)
		} else {
			rest = append(rest, item)
		}
	}
	return append(preferred, rest...)
}
