package normalize

import "testing"

func TestString(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"plain", "Lil Nas X", "Lil Nas X"},
		{"curly_apostrophe", "Don’t Stop", "Don't Stop"},
		{"backtick", "Don`t Stop", "Don't Stop"},
		{"curly_quotes", "“MONTERO”", "\"MONTERO\""},
		{"fullwidth_comma", "晴れ，雨", "晴れ,雨"},
		{"em_dash", "Artist — Title", "Artist - Title"},
		{"en_dash", "Artist – Title", "Artist - Title"},
		{"box_dash", "Artist ─ Title", "Artist - Title"},
		{"nbsp", "Lil Nas X", "Lil Nas X"},
		{"en_space", "Lil Nas X", "Lil Nas X"},
		{"zero_width_space", "IN​DUSTRY", "INDUSTRY"},
		{"control_chars", "a\x00b\x1fc\x7fd\u009fe", "abcde"},
		{"unchanged_unicode", "Хозяин Леса", "Хозяин Леса"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := String(tt.in); got != tt.want {
				t.Errorf("String(%q) = %q; want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestStringStripsAllControlRanges(t *testing.T) {
	for r := rune(0x0000); r <= 0x001F; r++ {
		if got := String(string(r)); got != "" {
			t.Errorf("String(U+%04X) = %q; want empty", r, got)
		}
	}
	for r := rune(0x007F); r <= 0x009F; r++ {
		if got := String(string(r)); got != "" {
			t.Errorf("String(U+%04X) = %q; want empty", r, got)
		}
	}
	if got := String("​"); got != "" {
		t.Errorf("String(U+200B) = %q; want empty", got)
	}
	if got := String(" "); got != " " {
		t.Errorf("String(U+00A0) = %q; want single space", got)
	}
}

func TestStringIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"plain text",
		"Don’t “Stop” — now please​",
		"ab，c´d",
		"  　",
	}
	for _, in := range inputs {
		once := String(in)
		twice := String(once)
		if once != twice {
			t.Errorf("String not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}
