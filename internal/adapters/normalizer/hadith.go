// Package normalizer implements the hadith text cleaning strategies:
// Arabic punctuation removal, markup stripping and whitespace collapsing,
// plus diacritic removal for comparisons that ignore vowel signs.
package normalizer

import (
	"strings"

	"github.com/suhailmahmood/go_hadith_similarity/internal/ports"
)

// arabicPunctuation holds the punctuation and ornament code points that are
// replaced with spaces before comparison. Collected from the Arabic script
// block in Unicode.
var arabicPunctuation = map[rune]bool{
	'،': true, // ARABIC COMMA
	'؍': true, // ARABIC DATE SEPARATOR
	'؎': true, // ARABIC POETIC VERSE SIGN
	'؏': true, // ARABIC SIGN MISRA
	'؛': true, // ARABIC SEMICOLON
	'؞': true, // ARABIC TRIPLE DOT PUNCTUATION MARK
	'؟': true, // ARABIC QUESTION MARK
	'٭': true, // ARABIC FIVE POINTED STAR
	'۔': true, // ARABIC FULL STOP
	'۝': true, // ARABIC END OF AYAH
	'۞': true, // ARABIC START OF RUB EL HIZB
	'۩': true, // ARABIC PLACE OF SAJDAH
	'۽': true, // ARABIC SIGN SINDHI AMPERSAND
	'﴾': true, // ORNATE LEFT PARENTHESIS
	'﴿': true, // ORNATE RIGHT PARENTHESIS
}

// HadithNormalizer implements the default hadith text cleaning strategy.
type HadithNormalizer struct {
	markup ports.MarkupStripper
}

// NewHadithNormalizer creates a new hadith normalizer using the given
// markup stripper.
func NewHadithNormalizer(markup ports.MarkupStripper) ports.Normalizer {
	return &HadithNormalizer{markup: markup}
}

// Normalize replaces Arabic punctuation with spaces, strips markup, and
// collapses every whitespace run to a single space. The result carries no
// leading or trailing whitespace; cleaning an already-clean text is a no-op.
func (n *HadithNormalizer) Normalize(text string) string {
	var sb strings.Builder
	sb.Grow(len(text))
	for _, r := range text {
		if arabicPunctuation[r] {
			sb.WriteRune(' ')
		} else {
			sb.WriteRune(r)
		}
	}

	cleaned := n.markup.StripTags(sb.String())

	return joinFields(cleaned)
}

// joinFields collapses every whitespace run (spaces, tabs, newlines) to a
// single space and trims the ends.
func joinFields(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
