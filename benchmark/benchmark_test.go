package benchmark

import (
	"context"
	"strings"
	"testing"

	"github.com/suhailmahmood/go_hadith_similarity/internal/adapters/markup"
	"github.com/suhailmahmood/go_hadith_similarity/internal/adapters/normalizer"
	"github.com/suhailmahmood/go_hadith_similarity/internal/core/hadith"
	"github.com/suhailmahmood/go_hadith_similarity/internal/core/sequence"
)

// nopLogger keeps benchmark output clean.
type nopLogger struct{}

func (nopLogger) Debug(msg string, keysAndValues ...interface{}) {}
func (nopLogger) Info(msg string, keysAndValues ...interface{})  {}
func (nopLogger) Warn(msg string, keysAndValues ...interface{})  {}
func (nopLogger) Error(msg string, keysAndValues ...interface{}) {}
func (nopLogger) Close() error                                   { return nil }

// generateText creates a text of roughly the specified size by repeating a
// vowelled sample narration.
func generateText(size int) string {
	sample := "قَالَ رَسُولُ اللَّهِ صلى الله عليه وسلم؛ «إِنَّمَا الأَعْمَالُ بِالنِّيَّاتِ، وَإِنَّمَا لِكُلِّ امْرِئٍ مَا نَوَى»۔ "
	var sb strings.Builder
	sb.Grow(size)
	for sb.Len() < size {
		sb.WriteString(sample)
	}
	return sb.String()
}

func variantOf(text string) string {
	words := strings.Fields(text)
	for i := 0; i < len(words); i += 10 {
		words[i] = "حَدَّثَنَا"
	}
	return strings.Join(words, " ")
}

func BenchmarkMatcherRatio(b *testing.B) {
	sizes := []struct {
		name string
		size int
	}{
		{"Small_1K", 1024},
		{"Medium_10K", 10 * 1024},
	}

	for _, s := range sizes {
		text1 := generateText(s.size)
		text2 := variantOf(text1)

		b.Run(s.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = sequence.Ratio(text1, text2)
			}
		})
	}
}

func BenchmarkNormalize(b *testing.B) {
	stripper := markup.NewStripper()
	impls := []struct {
		name string
		n    interface{ Normalize(string) string }
	}{
		{"Default", normalizer.NewHadithNormalizer(stripper)},
		{"Pooled", normalizer.NewPooledNormalizer(stripper)},
	}

	text := generateText(10 * 1024)
	for _, impl := range impls {
		b.Run(impl.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = impl.n.Normalize(text)
			}
		})
	}
}

func BenchmarkStripDiacritics(b *testing.B) {
	stripper := normalizer.NewDiacriticStripper()
	text := generateText(10 * 1024)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = stripper.Strip(text)
	}
}

func BenchmarkDifferCompute(b *testing.B) {
	d := hadith.NewDiffer(
		hadith.Config{IgnoreDiacritics: true},
		nopLogger{},
		normalizer.NewPooledNormalizer(markup.NewStripper()),
		normalizer.NewDiacriticStripper(),
	)

	text1 := generateText(4 * 1024)
	text2 := variantOf(text1)
	ctx := context.Background()

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = d.Compute(ctx, text1, text2)
	}
}
