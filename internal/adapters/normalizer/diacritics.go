package normalizer

import (
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/suhailmahmood/go_hadith_similarity/internal/ports"
)

// DiacriticStripper removes combining marks (Unicode category Mn) after
// canonical decomposition. The output stays in decomposed form: characters
// untouched by the removal are not recomposed to their precomposed
// equivalents, so the result may differ byte-for-byte from the input even
// where no mark was removed.
type DiacriticStripper struct{}

// NewDiacriticStripper creates a new diacritic stripper.
func NewDiacriticStripper() ports.DiacriticStripper {
	return &DiacriticStripper{}
}

// Strip returns the text with every non-spacing combining mark removed.
func (d *DiacriticStripper) Strip(text string) string {
	// The chain carries internal buffers, so it is built per call rather
	// than shared between goroutines.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))
	stripped, _, err := transform.String(t, text)
	if err != nil {
		return text
	}
	return stripped
}
