package domain

// Result holds the outcome of a hadith similarity computation.
type Result struct {
	Name             string
	Score            float64
	MatchedRunes     int
	Text1Length      int
	Text2Length      int
	IgnoreDiacritics bool
	Details          map[string]interface{}
}
