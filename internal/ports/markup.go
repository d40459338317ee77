package ports

// MarkupStripper extracts the text content of a string that may contain
// HTML markup. Input without markup must pass through unchanged.
type MarkupStripper interface {
	StripTags(text string) string
}
