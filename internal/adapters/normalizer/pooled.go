package normalizer

import (
	"unicode/utf8"

	"github.com/suhailmahmood/go_hadith_similarity/internal/pool"
	"github.com/suhailmahmood/go_hadith_similarity/internal/ports"
)

// PooledNormalizer implements the same cleaning strategy as
// HadithNormalizer with buffer pooling for the punctuation pass.
type PooledNormalizer struct {
	markup   ports.MarkupStripper
	bytePool *pool.BufferPool
}

// NewPooledNormalizer creates a new pooled normalizer.
func NewPooledNormalizer(markup ports.MarkupStripper) ports.Normalizer {
	return &PooledNormalizer{
		markup:   markup,
		bytePool: pool.NewBufferPool(8192),
	}
}

// Normalize cleans the text the same way HadithNormalizer does.
func (n *PooledNormalizer) Normalize(text string) string {
	if len(text) == 0 {
		return ""
	}

	// The punctuation set lies entirely outside ASCII, so an ASCII-only
	// input skips the replacement pass.
	asciiOnly := true
	for i := 0; i < len(text); i++ {
		if text[i] >= 128 {
			asciiOnly = false
			break
		}
	}

	replaced := text
	if !asciiOnly {
		buffer := n.bytePool.Get()
		defer n.bytePool.Put(buffer)

		if cap(*buffer) < len(text) {
			*buffer = make([]byte, 0, len(text))
		}
		*buffer = (*buffer)[:0]

		for _, r := range text {
			if arabicPunctuation[r] {
				*buffer = append(*buffer, ' ')
			} else {
				*buffer = utf8.AppendRune(*buffer, r)
			}
		}
		replaced = string(*buffer)
	}

	cleaned := n.markup.StripTags(replaced)

	return joinFields(cleaned)
}

// Type of normalizer to create.
type NormalizerType int

const (
	// DefaultNormalizerType is the plain builder-based normalizer.
	DefaultNormalizerType NormalizerType = iota
	// PooledNormalizerType reuses byte buffers between calls.
	PooledNormalizerType
)

// NormalizerFactory creates normalizers by type.
type NormalizerFactory struct{}

// NewNormalizerFactory creates a new normalizer factory.
func NewNormalizerFactory() *NormalizerFactory {
	return &NormalizerFactory{}
}

// CreateNormalizer creates a normalizer of the specified type.
func (f *NormalizerFactory) CreateNormalizer(normalizerType NormalizerType, markup ports.MarkupStripper) ports.Normalizer {
	switch normalizerType {
	case PooledNormalizerType:
		return NewPooledNormalizer(markup)
	default:
		return NewHadithNormalizer(markup)
	}
}
