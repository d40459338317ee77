package markup

import "testing"

func TestStripTags(t *testing.T) {
	stripper := NewStripper()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "Plain text unchanged",
			input:    "Hello, world!",
			expected: "Hello, world!",
		},
		{
			name:     "Simple tags removed",
			input:    "<b>bold</b> and <i>italic</i>",
			expected: "bold and italic",
		},
		{
			name:     "Attributes discarded",
			input:    `<a href="https://example.com" title="x">link</a>`,
			expected: "link",
		},
		{
			name:     "Angle bracket before digit kept",
			input:    "score <3 points",
			expected: "score <3 points",
		},
		{
			name:     "Unclosed tag recovered",
			input:    "<b>unclosed",
			expected: "unclosed",
		},
		{
			name:     "Entities decoded",
			input:    "a &amp; b",
			expected: "a & b",
		},
		{
			name:     "Arabic content preserved",
			input:    "<p dir=\"rtl\">قال رسول الله</p>",
			expected: "قال رسول الله",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := stripper.StripTags(tc.input)
			if got != tc.expected {
				t.Errorf("StripTags(%q) = %q, expected %q", tc.input, got, tc.expected)
			}
		})
	}
}
