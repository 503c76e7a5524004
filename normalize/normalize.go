// Package normalize cleans up text served by the genius API: control
// characters, zero-width spaces and unicode look-alike punctuation.
package normalize

import "strings"

// charReplacements maps unicode variant characters to their regular ASCII
// counterparts so that fuzzy matching and display behave consistently.
var charReplacements = map[rune]rune{
	'`':      '\'',
	'´':      '\'',
	'’':      '\'',
	'‘':      '\'',
	'ʻ':      '\'',
	'︐': '\'', // presentation form comma variants
	'︑': '\'',
	'“':      '"',
	'”':      '"',
	'，':      ',',
	'—':      '-', // em dash
	'–':      '-', // en dash
	'─':      '-', // box drawings light horizontal
	'‑': '-', // non-breaking hyphen
}

// String removes invisible characters and control characters from a string
// and replaces unicode variant characters with regular ASCII ones.
// It is a pure function and idempotent.
func String(str string) string {
	if str == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(str))

	for _, r := range str {
		switch {
		case r <= 0x001F, r >= 0x007F && r <= 0x009F, r == '​':
			// 0-width spaces & control characters
			continue
		case r == ' ', r >= ' ' && r <= ' ', r == ' ', r == ' ', r == '　':
			// non-standard 1-width spaces
			b.WriteRune(' ')
		default:
			if repl, ok := charReplacements[r]; ok {
				b.WriteRune(repl)
			} else {
				b.WriteRune(r)
			}
		}
	}

	return b.String()
}
