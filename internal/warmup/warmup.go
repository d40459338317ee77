package warmup

import (
	"context"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/suhailmahmood/go_hadith_similarity/internal/ports"
)

// WarmupConfig defines configuration for warming up the comparison pipeline.
type WarmupConfig struct {
	// Number of concurrent warmup routines to run
	Concurrency int
	// Number of iterations per routine
	Iterations int
	// Sample text size for warmup
	SampleTextSize int
	// Warmup duration (0 means no time limit)
	Duration time.Duration
	// Whether to perform GC after warmup
	ForceGC bool
}

// DefaultWarmupConfig returns the default warmup configuration.
func DefaultWarmupConfig() WarmupConfig {
	return WarmupConfig{
		Concurrency:    runtime.NumCPU(),
		Iterations:     200,
		SampleTextSize: 1000,
		Duration:       5 * time.Second,
		ForceGC:        true,
	}
}

// Manager handles warmup of normalizers, diacritic strippers and
// similarity calculators before they serve traffic.
type Manager struct {
	logger      ports.Logger
	calculators []ports.SimilarityCalculator
	normalizers []ports.Normalizer
	strippers   []ports.DiacriticStripper
	config      WarmupConfig
}

// NewManager creates a new warmup manager.
func NewManager(logger ports.Logger, config WarmupConfig) *Manager {
	return &Manager{
		logger: logger,
		config: config,
	}
}

// RegisterCalculator adds a calculator to be warmed up.
func (wm *Manager) RegisterCalculator(calc ports.SimilarityCalculator) {
	wm.calculators = append(wm.calculators, calc)
}

// RegisterNormalizer adds a normalizer to be warmed up.
func (wm *Manager) RegisterNormalizer(norm ports.Normalizer) {
	wm.normalizers = append(wm.normalizers, norm)
}

// RegisterDiacriticStripper adds a diacritic stripper to be warmed up.
func (wm *Manager) RegisterDiacriticStripper(stripper ports.DiacriticStripper) {
	wm.strippers = append(wm.strippers, stripper)
}

// WarmUp runs the warmup process for all registered components.
func (wm *Manager) WarmUp(ctx context.Context) {
	startTime := time.Now()
	wm.logger.Info("Starting warmup",
		"components", len(wm.calculators)+len(wm.normalizers)+len(wm.strippers),
		"concurrency", wm.config.Concurrency,
		"iterations", wm.config.Iterations,
	)

	var warmupCtx context.Context
	var cancel context.CancelFunc
	if wm.config.Duration > 0 {
		warmupCtx, cancel = context.WithTimeout(ctx, wm.config.Duration)
		defer cancel()
	} else {
		warmupCtx = ctx
	}

	wm.warmUpNormalizers(warmupCtx)
	wm.warmUpCalculators(warmupCtx)

	if wm.config.ForceGC {
		wm.logger.Debug("Forcing garbage collection after warmup")
		runtime.GC()
	}

	wm.logger.Info("Warmup completed",
		"duration", time.Since(startTime),
	)
}

// warmUpNormalizers runs warmup for all registered normalizers and strippers.
func (wm *Manager) warmUpNormalizers(ctx context.Context) {
	if len(wm.normalizers) == 0 && len(wm.strippers) == 0 {
		return
	}

	wm.logger.Debug("Warming up normalizers",
		"normalizers", len(wm.normalizers),
		"strippers", len(wm.strippers),
	)

	sampleText := generateSampleText(wm.config.SampleTextSize)

	var wg sync.WaitGroup
	for i := 0; i < wm.config.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for j := 0; j < wm.config.Iterations; j++ {
				select {
				case <-ctx.Done():
					return
				default:
				}

				for _, normalizer := range wm.normalizers {
					_ = normalizer.Normalize(sampleText)
				}
				for _, stripper := range wm.strippers {
					_ = stripper.Strip(sampleText)
				}
			}
		}()
	}

	wg.Wait()
}

// warmUpCalculators runs warmup for all registered calculators.
func (wm *Manager) warmUpCalculators(ctx context.Context) {
	if len(wm.calculators) == 0 {
		return
	}

	wm.logger.Debug("Warming up calculators", "count", len(wm.calculators))

	original := generateSampleText(wm.config.SampleTextSize)
	variant := generateVariantText(original, 0.1)
	distant := generateVariantText(original, 0.5)

	var wg sync.WaitGroup
	for i := 0; i < wm.config.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for j := 0; j < wm.config.Iterations; j++ {
				select {
				case <-ctx.Done():
					return
				default:
				}

				for _, calculator := range wm.calculators {
					// Alternate between similarity levels.
					switch j % 3 {
					case 0:
						_, _ = calculator.Compute(ctx, original, original)
					case 1:
						_, _ = calculator.Compute(ctx, original, variant)
					default:
						_, _ = calculator.Compute(ctx, original, distant)
					}
				}
			}
		}()
	}

	wg.Wait()
}

// generateSampleText creates hadith-shaped sample text of roughly the
// specified size, mixing vowelled words, punctuation and markup so the
// whole cleaning pipeline gets exercised.
func generateSampleText(size int) string {
	words := []string{
		"قَالَ", "رَسُولُ", "اللَّهِ", "صلى", "الله", "عليه", "وسلم",
		"إِنَّمَا", "الأَعْمَالُ", "بِالنِّيَّاتِ،", "حَدَّثَنَا", "يَحْيَى؛",
		"عَنْ", "<b>مَالِكٍ</b>", "أَخْبَرَنَا", "قَالَ۔",
	}

	var sb strings.Builder
	for i := 0; sb.Len() < size; i++ {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(words[i%len(words)])
	}

	return sb.String()
}

// generateVariantText creates a text similar to the original with the
// specified share of words replaced.
func generateVariantText(original string, diffRatio float64) string {
	words := strings.Fields(original)

	changeCount := int(float64(len(words)) * diffRatio)

	replacements := []string{
		"أَخْبَرَنَا", "حَدَّثَنِي", "سَمِعْتُ", "رَوَى", "ذَكَرَ",
	}

	newWords := make([]string, len(words))
	copy(newWords, words)

	for i := 0; i < changeCount && i < len(newWords); i++ {
		newWords[i] = replacements[i%len(replacements)]
	}

	return strings.Join(newWords, " ")
}
