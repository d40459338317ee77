package ports

// Normalizer defines the interface for hadith text cleaning.
type Normalizer interface {
	Normalize(text string) string
}

// DiacriticStripper defines the interface for removing combining marks
// from already-cleaned text.
type DiacriticStripper interface {
	Strip(text string) string
}
