package normalizer

import (
	"testing"

	"github.com/suhailmahmood/go_hadith_similarity/internal/adapters/markup"
	"github.com/suhailmahmood/go_hadith_similarity/internal/ports"
)

func normalizers() map[string]ports.Normalizer {
	stripper := markup.NewStripper()
	return map[string]ports.Normalizer{
		"default": NewHadithNormalizer(stripper),
		"pooled":  NewPooledNormalizer(stripper),
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "Plain text unchanged",
			input:    "Hello, world!",
			expected: "Hello, world!",
		},
		{
			name:     "Whitespace collapsed",
			input:    "  a\t\nb   c  ",
			expected: "a b c",
		},
		{
			name:     "Arabic punctuation replaced",
			input:    "قال رسول الله صلى الله عليه وسلم؛ «إنما الأعمال بالنيات»۔",
			expected: "قال رسول الله صلى الله عليه وسلم «إنما الأعمال بالنيات»",
		},
		{
			name:     "Arabic question mark and comma",
			input:    "أرأيت؟ نعم، بلى",
			expected: "أرأيت نعم بلى",
		},
		{
			name:     "Ornate parentheses and ayah sign",
			input:    "﴾الفاتحة﴿ ۝",
			expected: "الفاتحة",
		},
		{
			name:     "Markup stripped",
			input:    "<b>Hello,</b>   world!  ",
			expected: "Hello, world!",
		},
		{
			name:     "Nested markup stripped",
			input:    "<div class=\"hadith\"><p>حدثنا <span>يحيى</span></p></div>",
			expected: "حدثنا يحيى",
		},
		{
			name:     "Angle bracket before digit is text",
			input:    "I <3 this narration",
			expected: "I <3 this narration",
		},
		{
			name:     "Punctuation only",
			input:    "؟ ؛ ۔",
			expected: "",
		},
		{
			name:     "Whitespace only",
			input:    " \t\n ",
			expected: "",
		},
	}

	for implName, n := range normalizers() {
		for _, tc := range tests {
			t.Run(implName+"/"+tc.name, func(t *testing.T) {
				got := n.Normalize(tc.input)
				if got != tc.expected {
					t.Errorf("Normalize(%q) = %q, expected %q", tc.input, got, tc.expected)
				}
			})
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"Hello, world!",
		"<b>Hello,</b>   world!",
		"قال؛ «إنما الأعمال بالنيات»۔",
		"a &amp; b",
		"  spaced \t out  ",
	}

	for implName, n := range normalizers() {
		for _, input := range inputs {
			once := n.Normalize(input)
			twice := n.Normalize(once)
			if once != twice {
				t.Errorf("%s: Normalize not idempotent for %q: %q != %q", implName, input, once, twice)
			}
		}
	}
}

func TestNormalizeMatchesAcrossImplementations(t *testing.T) {
	inputs := []string{
		"",
		"plain ascii only",
		"<p>الحَمْدُ للَّهِ</p>",
		"أرأيت؟ نعم، بلى ﴾الفاتحة﴿",
		"mixed عربي and <i>english</i> text",
	}

	impls := normalizers()
	for _, input := range inputs {
		def := impls["default"].Normalize(input)
		pooled := impls["pooled"].Normalize(input)
		if def != pooled {
			t.Errorf("implementations disagree for %q: default=%q pooled=%q", input, def, pooled)
		}
	}
}
