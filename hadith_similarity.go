// hadith_similarity.go
// Package hadithsimilarity computes a normalized similarity score between
// two versions of the text of a given hadith, to support duplicate and
// variant detection across manuscript sources. Both texts are cleaned of
// Arabic punctuation, markup and irregular whitespace, optionally stripped
// of diacritics, and aligned with a Ratcliff/Obershelp sequence matcher:
//
//	score = 2 * matchedRunes / (len(text1) + len(text2))
//
// A score of 1 means the cleaned texts are identical, 0 means they share
// no content. Configuration uses the functional options pattern.
package hadithsimilarity

import (
	"context"

	"github.com/baditaflorin/l"

	"github.com/suhailmahmood/go_hadith_similarity/internal/adapters/logger"
	"github.com/suhailmahmood/go_hadith_similarity/internal/adapters/markup"
	"github.com/suhailmahmood/go_hadith_similarity/internal/adapters/normalizer"
	"github.com/suhailmahmood/go_hadith_similarity/internal/core/domain"
	"github.com/suhailmahmood/go_hadith_similarity/internal/core/hadith"
	"github.com/suhailmahmood/go_hadith_similarity/internal/ports"
)

// ErrTextsNotSet is returned when a comparison is requested before both
// texts have been set to non-empty values.
var ErrTextsNotSet = hadith.ErrTextsNotSet

// HadithSimilarity provides methods to compare hadith texts. It holds no
// per-comparison state and is safe for concurrent use; sessions created
// with NewDiffer are each confined to one logical comparison.
type HadithSimilarity struct {
	config     hadith.Config
	logger     ports.Logger
	normalizer ports.Normalizer
	stripper   ports.DiacriticStripper
}

// Option defines a functional option for configuring HadithSimilarity.
type Option func(*similarityConfig)

type similarityConfig struct {
	IgnoreDiacritics bool
	Logger           ports.Logger
	Normalizer       ports.Normalizer
	Stripper         ports.DiacriticStripper
}

// WithIgnoreDiacritics sets the default diacritics policy for comparisons.
func WithIgnoreDiacritics(ignore bool) Option {
	return func(cfg *similarityConfig) {
		cfg.IgnoreDiacritics = ignore
	}
}

// WithLogger sets a custom logger.
func WithLogger(lg l.Logger) Option {
	return func(cfg *similarityConfig) {
		cfg.Logger = logger.FromExisting(lg)
	}
}

// WithNormalizer sets a custom text normalizer.
func WithNormalizer(n ports.Normalizer) Option {
	return func(cfg *similarityConfig) {
		cfg.Normalizer = n
	}
}

// WithPooledNormalizer sets the buffer-pooled normalizer.
func WithPooledNormalizer() Option {
	return func(cfg *similarityConfig) {
		cfg.Normalizer = normalizer.NewPooledNormalizer(markup.NewStripper())
	}
}

// WithDiacriticStripper sets a custom diacritic stripper.
func WithDiacriticStripper(s ports.DiacriticStripper) Option {
	return func(cfg *similarityConfig) {
		cfg.Stripper = s
	}
}

// New creates a new HadithSimilarity instance with the provided functional
// options. If no logger is provided, a default logger is created.
func New(opts ...Option) (*HadithSimilarity, error) {
	defaultConfig := hadith.DefaultConfig()

	config := &similarityConfig{
		IgnoreDiacritics: defaultConfig.IgnoreDiacritics,
	}
	for _, opt := range opts {
		opt(config)
	}

	if config.Logger == nil {
		lg, err := createDefaultLogger()
		if err != nil {
			return nil, err
		}
		config.Logger = logger.FromExisting(lg)
	}
	if config.Normalizer == nil {
		config.Normalizer = normalizer.NewHadithNormalizer(markup.NewStripper())
	}
	if config.Stripper == nil {
		config.Stripper = normalizer.NewDiacriticStripper()
	}

	return &HadithSimilarity{
		config:     hadith.Config{IgnoreDiacritics: config.IgnoreDiacritics},
		logger:     config.Logger,
		normalizer: config.Normalizer,
		stripper:   config.Stripper,
	}, nil
}

// Compute cleans and compares the given pair of texts in one step.
// It returns ErrTextsNotSet if either text is empty.
func (hs *HadithSimilarity) Compute(ctx context.Context, text1, text2 string) (domain.Result, error) {
	return hs.newDiffer().Compute(ctx, text1, text2)
}

// NewDiffer creates a comparison session carrying this instance's
// configuration. The session must be confined to one goroutine.
func (hs *HadithSimilarity) NewDiffer() *Differ {
	return &Differ{inner: hs.newDiffer()}
}

func (hs *HadithSimilarity) newDiffer() *hadith.Differ {
	return hadith.NewDiffer(hs.config, hs.logger, hs.normalizer, hs.stripper)
}

// Differ is a comparison session over a single pair of hadith texts.
type Differ struct {
	inner *hadith.Differ
}

// SetTexts stores both raw texts and derives their cleaned forms.
// Both texts must be non-empty.
func (d *Differ) SetTexts(text1, text2 string) error {
	return d.inner.SetTexts(text1, text2)
}

// SetIgnoreDiacritics toggles the diacritics policy for this session.
func (d *Differ) SetIgnoreDiacritics(ignore bool) {
	d.inner.SetIgnoreDiacritics(ignore)
}

// Compare returns the similarity result for the configured pair. It may be
// called repeatedly; the result does not change between calls unless the
// texts or the diacritics policy change.
func (d *Differ) Compare(ctx context.Context) (domain.Result, error) {
	return d.inner.Compare(ctx)
}
