package taxonomy

import "strings"

// Confidence buckets for keyword suggestions.
const (
	ConfidenceHigh   = "high"
	ConfidenceMedium = "medium"
	ConfidenceLow    = "low"
)

// Suggestion is the outcome of a keyword match against free text.
type Suggestion struct {
	Category   string
	Confidence string
	Matches    int
}

// Suggest performs keyword matching against the supplied text and returns the
// best-scoring category. The boolean is false when no keyword matches at all.
// Ties resolve to the earlier category in document order, keeping the result
// deterministic.
func (t *Taxonomy) Suggest(text string) (Suggestion, bool) {
	lowered := strings.ToLower(text)

	best := Suggestion{}
	for _, category := range t.categories {
		matches := 0
		for _, keyword := range category.Keywords {
			if strings.Contains(lowered, strings.ToLower(keyword)) {
				matches++
			}
		}
		if matches > best.Matches {
			best = Suggestion{Category: category.Name, Matches: matches}
		}
	}

	if best.Matches == 0 {
		return Suggestion{}, false
	}

	switch {
	case best.Matches > 5:
		best.Confidence = ConfidenceHigh
	case best.Matches > 2:
		best.Confidence = ConfidenceMedium
	default:
		best.Confidence = ConfidenceLow
	}
	return best, true
}
