// hadith_similarity_test.go
package hadithsimilarity

import (
	"context"
	"errors"
	"testing"
)

func TestComputeWithDefaults(t *testing.T) {
	hs, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	tests := []struct {
		name     string
		text1    string
		text2    string
		expected float64
	}{
		{
			name:     "Identical after cleaning",
			text1:    "Hello, world!",
			text2:    "<b>Hello,</b>   world!  ",
			expected: 1.0,
		},
		{
			name:     "Identical arabic",
			text1:    "قال رسول الله إنما الأعمال بالنيات",
			text2:    "قال رسول الله إنما الأعمال بالنيات",
			expected: 1.0,
		},
		{
			name:     "Completely disjoint",
			text1:    "abc",
			text2:    "xyz",
			expected: 0.0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, err := hs.Compute(context.Background(), tc.text1, tc.text2)
			if err != nil {
				t.Fatalf("Compute: %v", err)
			}
			if result.Score != tc.expected {
				t.Errorf("expected score %v, got %v (details: %v)", tc.expected, result.Score, result.Details)
			}
		})
	}
}

func TestComputeIgnoreDiacritics(t *testing.T) {
	strict, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	lenient, err := New(WithIgnoreDiacritics(true))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	text1 := "الحَمْدُ للَّهِ"
	text2 := "الحمد للّه"

	strictResult, err := strict.Compute(context.Background(), text1, text2)
	if err != nil {
		t.Fatalf("Compute (strict): %v", err)
	}
	lenientResult, err := lenient.Compute(context.Background(), text1, text2)
	if err != nil {
		t.Fatalf("Compute (lenient): %v", err)
	}

	if lenientResult.Score < 0.9 {
		t.Errorf("expected score >= 0.9 with diacritics ignored, got %v", lenientResult.Score)
	}
	if strictResult.Score >= lenientResult.Score {
		t.Errorf("expected strict score (%v) below diacritics-ignored score (%v)",
			strictResult.Score, lenientResult.Score)
	}
}

func TestComputeEmptyText(t *testing.T) {
	hs, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if _, err := hs.Compute(context.Background(), "", "نعم"); !errors.Is(err, ErrTextsNotSet) {
		t.Errorf("expected ErrTextsNotSet, got %v", err)
	}
}

func TestDifferSession(t *testing.T) {
	hs, err := New(WithPooledNormalizer())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	d := hs.NewDiffer()

	if _, err := d.Compare(context.Background()); !errors.Is(err, ErrTextsNotSet) {
		t.Fatalf("expected ErrTextsNotSet before SetTexts, got %v", err)
	}

	if err := d.SetTexts("الحَمْدُ للَّهِ", "الحمد للّه"); err != nil {
		t.Fatalf("SetTexts: %v", err)
	}

	strict, err := d.Compare(context.Background())
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}

	d.SetIgnoreDiacritics(true)
	lenient, err := d.Compare(context.Background())
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}

	if strict.Score >= lenient.Score {
		t.Errorf("expected strict score (%v) below diacritics-ignored score (%v)", strict.Score, lenient.Score)
	}
}
