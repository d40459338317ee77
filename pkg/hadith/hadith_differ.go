// Package hadith exposes the hadith similarity pipeline with optional
// warmup, intended for long-running services that want the pools and
// runtime warmed before serving traffic.
package hadith

import (
	"context"

	"github.com/baditaflorin/l"

	"github.com/suhailmahmood/go_hadith_similarity/internal/adapters/logger"
	"github.com/suhailmahmood/go_hadith_similarity/internal/adapters/markup"
	"github.com/suhailmahmood/go_hadith_similarity/internal/adapters/normalizer"
	"github.com/suhailmahmood/go_hadith_similarity/internal/core/domain"
	corehadith "github.com/suhailmahmood/go_hadith_similarity/internal/core/hadith"
	"github.com/suhailmahmood/go_hadith_similarity/internal/ports"
	"github.com/suhailmahmood/go_hadith_similarity/internal/warmup"
)

// ErrTextsNotSet is returned when either text of a comparison is empty.
var ErrTextsNotSet = corehadith.ErrTextsNotSet

// HadithDiffer provides methods to compare hadith texts.
type HadithDiffer struct {
	calculator ports.SimilarityCalculator
	logger     ports.Logger
	normalizer ports.Normalizer
	stripper   ports.DiacriticStripper
	warmed     bool
}

// HadithDifferOption defines a functional option for configuring HadithDiffer.
type HadithDifferOption func(*hadithDifferConfig)

type hadithDifferConfig struct {
	IgnoreDiacritics bool
	Logger           ports.Logger
	Normalizer       ports.Normalizer
	Stripper         ports.DiacriticStripper
	WarmUp           bool
	WarmUpConfig     warmup.WarmupConfig
}

// WithIgnoreDiacritics sets the diacritics policy for comparisons.
func WithIgnoreDiacritics(ignore bool) HadithDifferOption {
	return func(cfg *hadithDifferConfig) {
		cfg.IgnoreDiacritics = ignore
	}
}

// WithLogger sets a custom logger.
func WithLogger(lg l.Logger) HadithDifferOption {
	return func(cfg *hadithDifferConfig) {
		cfg.Logger = logger.FromExisting(lg)
	}
}

// WithNormalizer sets a custom normalizer.
func WithNormalizer(n ports.Normalizer) HadithDifferOption {
	return func(cfg *hadithDifferConfig) {
		cfg.Normalizer = n
	}
}

// WithPooledNormalizer sets the buffer-pooled normalizer.
func WithPooledNormalizer() HadithDifferOption {
	return func(cfg *hadithDifferConfig) {
		normFactory := normalizer.NewNormalizerFactory()
		cfg.Normalizer = normFactory.CreateNormalizer(normalizer.PooledNormalizerType, markup.NewStripper())
	}
}

// WithWarmUp enables warmup on initialization.
func WithWarmUp(enable bool) HadithDifferOption {
	return func(cfg *hadithDifferConfig) {
		cfg.WarmUp = enable
	}
}

// WithWarmUpConfig sets a custom warmup configuration.
func WithWarmUpConfig(config warmup.WarmupConfig) HadithDifferOption {
	return func(cfg *hadithDifferConfig) {
		cfg.WarmUpConfig = config
		cfg.WarmUp = true
	}
}

// NewHadithDiffer creates a new HadithDiffer instance.
func NewHadithDiffer(opts ...HadithDifferOption) (*HadithDiffer, error) {
	defaultConfig := corehadith.DefaultConfig()

	config := &hadithDifferConfig{
		IgnoreDiacritics: defaultConfig.IgnoreDiacritics,
		WarmUp:           false,
		WarmUpConfig:     warmup.DefaultWarmupConfig(),
	}

	for _, opt := range opts {
		opt(config)
	}

	if config.Logger == nil {
		var err error
		config.Logger, err = logger.NewStdLogger()
		if err != nil {
			return nil, err
		}
	}
	if config.Normalizer == nil {
		config.Normalizer = normalizer.NewHadithNormalizer(markup.NewStripper())
	}
	if config.Stripper == nil {
		config.Stripper = normalizer.NewDiacriticStripper()
	}

	coreConfig := corehadith.Config{
		IgnoreDiacritics: config.IgnoreDiacritics,
	}
	differ := corehadith.NewDiffer(coreConfig, config.Logger, config.Normalizer, config.Stripper)

	hd := &HadithDiffer{
		calculator: differ,
		logger:     config.Logger,
		normalizer: config.Normalizer,
		stripper:   config.Stripper,
		warmed:     false,
	}

	if config.WarmUp {
		hd.WarmUp(context.Background(), config.WarmUpConfig)
	}

	return hd, nil
}

// Compute cleans and compares the given pair of hadith texts.
func (hd *HadithDiffer) Compute(ctx context.Context, text1, text2 string) (domain.Result, error) {
	return hd.calculator.Compute(ctx, text1, text2)
}

// WarmUp pre-warms the normalizer, diacritic stripper and calculator.
func (hd *HadithDiffer) WarmUp(ctx context.Context, config warmup.WarmupConfig) {
	if hd.warmed {
		hd.logger.Debug("Already warmed up, skipping")
		return
	}

	warmupMgr := warmup.NewManager(hd.logger, config)
	warmupMgr.RegisterCalculator(hd.calculator)
	warmupMgr.RegisterNormalizer(hd.normalizer)
	warmupMgr.RegisterDiacriticStripper(hd.stripper)

	warmupMgr.WarmUp(ctx)
	hd.warmed = true
}
