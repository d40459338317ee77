// Package hadith implements the comparison session for two versions of a
// hadith text. Raw texts are cleaned eagerly when set; the diacritics
// policy is applied at comparison time, so it can be toggled between
// comparisons without re-deriving the cleaned forms.
package hadith

import (
	"context"
	"errors"

	"github.com/suhailmahmood/go_hadith_similarity/internal/core/domain"
	"github.com/suhailmahmood/go_hadith_similarity/internal/core/sequence"
	"github.com/suhailmahmood/go_hadith_similarity/internal/ports"
)

// ErrTextsNotSet is returned when a comparison is requested before both
// hadith texts have been set to non-empty values.
var ErrTextsNotSet = errors.New("hadith texts to compare not set: provide two non-empty texts via SetTexts")

// Config holds configuration for the hadith differ.
type Config struct {
	// IgnoreDiacritics controls whether combining marks are removed from
	// both texts before scoring.
	IgnoreDiacritics bool
}

// DefaultConfig returns a default configuration. Diacritics are kept by
// default, matching the stricter comparison.
func DefaultConfig() Config {
	return Config{IgnoreDiacritics: false}
}

// Differ compares two versions of a hadith text and produces a similarity
// score in [0, 1]. A Differ holds the state of one comparison session and
// must not be mutated from multiple goroutines; the stateless Compute
// path is safe for concurrent use.
type Differ struct {
	config     Config
	logger     ports.Logger
	normalizer ports.Normalizer
	stripper   ports.DiacriticStripper

	text1        string
	text2        string
	text1Cleaned string
	text2Cleaned string
}

// NewDiffer creates a new hadith differ.
func NewDiffer(config Config, logger ports.Logger, normalizer ports.Normalizer, stripper ports.DiacriticStripper) *Differ {
	return &Differ{
		config:     config,
		logger:     logger,
		normalizer: normalizer,
		stripper:   stripper,
	}
}

// SetTexts stores both raw texts and eagerly derives their cleaned forms.
// Both texts must be non-empty; the raw inputs are never mutated.
func (d *Differ) SetTexts(text1, text2 string) error {
	if text1 == "" || text2 == "" {
		d.logger.Error("Rejecting empty hadith text",
			"text1_empty", text1 == "",
			"text2_empty", text2 == "",
		)
		return ErrTextsNotSet
	}

	d.text1 = text1
	d.text2 = text2
	d.text1Cleaned = d.normalizer.Normalize(text1)
	d.text2Cleaned = d.normalizer.Normalize(text2)

	d.logger.Debug("Hadith texts set",
		"text1_cleaned", d.text1Cleaned,
		"text2_cleaned", d.text2Cleaned,
	)

	return nil
}

// SetIgnoreDiacritics toggles the diacritics policy. It may be called any
// number of times between comparisons.
func (d *Differ) SetIgnoreDiacritics(ignore bool) {
	d.config.IgnoreDiacritics = ignore
}

// Compare scores the texts previously stored with SetTexts. It is a pure
// read: calling it repeatedly recomputes the same result from the cached
// cleaned forms.
func (d *Differ) Compare(ctx context.Context) (domain.Result, error) {
	if d.text1 == "" || d.text2 == "" {
		d.logger.Error("Compare called before texts were set")
		return domain.Result{}, ErrTextsNotSet
	}
	return d.compare(ctx, d.text1Cleaned, d.text2Cleaned)
}

// Compute cleans and scores the given pair in one step without touching
// session state.
func (d *Differ) Compute(ctx context.Context, text1, text2 string) (domain.Result, error) {
	if text1 == "" || text2 == "" {
		d.logger.Error("Rejecting empty hadith text",
			"text1_empty", text1 == "",
			"text2_empty", text2 == "",
		)
		return domain.Result{}, ErrTextsNotSet
	}
	return d.compare(ctx, d.normalizer.Normalize(text1), d.normalizer.Normalize(text2))
}

func (d *Differ) compare(ctx context.Context, text1, text2 string) (domain.Result, error) {
	select {
	case <-ctx.Done():
		d.logger.Error("Comparison cancelled", "error", ctx.Err())
		return domain.Result{}, ctx.Err()
	default:
	}

	if d.config.IgnoreDiacritics {
		text1 = d.stripper.Strip(text1)
		text2 = d.stripper.Strip(text2)
		d.logger.Debug("Stripped diacritics",
			"text1", text1,
			"text2", text2,
		)
	}

	m := sequence.NewMatcher(text1, text2)
	matched := m.TotalMatched()
	score := m.Ratio()
	len1, len2 := m.Lengths()

	details := map[string]interface{}{
		"text1_length":      len1,
		"text2_length":      len2,
		"matched_runes":     matched,
		"ignore_diacritics": d.config.IgnoreDiacritics,
	}

	d.logger.Debug("Computed hadith similarity",
		"score", score,
		"matched_runes", matched,
		"text1_length", len1,
		"text2_length", len2,
	)

	return domain.Result{
		Name:             "hadith_similarity",
		Score:            score,
		MatchedRunes:     matched,
		Text1Length:      len1,
		Text2Length:      len2,
		IgnoreDiacritics: d.config.IgnoreDiacritics,
		Details:          details,
	}, nil
}
