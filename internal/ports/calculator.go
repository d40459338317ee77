package ports

import (
	"context"

	"github.com/suhailmahmood/go_hadith_similarity/internal/core/domain"
)

// SimilarityCalculator defines the interface for computing similarity between two texts.
type SimilarityCalculator interface {
	Compute(ctx context.Context, text1, text2 string) (domain.Result, error)
}
