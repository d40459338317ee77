// Package markup extracts plain text content from strings that may carry
// HTML markup. It stands in for the external markup collaborator of the
// cleaning pipeline: tags and attributes are discarded, text content is
// preserved in order, and plain text passes through untouched.
package markup

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/suhailmahmood/go_hadith_similarity/internal/pool"
	"github.com/suhailmahmood/go_hadith_similarity/internal/ports"
)

// Stripper extracts text content using the x/net/html tokenizer. Malformed
// markup gets the tokenizer's WHATWG-style recovery: a "<" that does not
// open a valid tag (e.g. "<3") is treated as text, and raw-text elements
// such as script or style surface their contents as text.
type Stripper struct {
	builderPool *pool.StringBuilderPool
}

// NewStripper creates a new markup stripper.
func NewStripper() ports.MarkupStripper {
	return &Stripper{
		builderPool: pool.NewStringBuilderPool(),
	}
}

// StripTags returns the text content of the input with all markup removed.
func (s *Stripper) StripTags(text string) string {
	// Fast path: nothing tag-like or entity-like in the input.
	if !strings.ContainsAny(text, "<&") {
		return text
	}

	sb := s.builderPool.Get()
	defer s.builderPool.Put(sb)

	z := html.NewTokenizer(strings.NewReader(text))
	for {
		switch z.Next() {
		case html.ErrorToken:
			// Reading from an in-memory string, the only error is EOF.
			return sb.String()
		case html.TextToken:
			sb.Write(z.Text())
		}
	}
}
