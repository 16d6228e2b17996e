package assess

import (
	"strings"

	"frontierbrief/internal/lexicon"
	"frontierbrief/internal/model"
)

// ClassifyImpact maps a summary to a directional impact label with a
// human-readable reason. Direction requires a strict majority of cue hits;
// equal counts (including zero) are mixed/unclear.
func ClassifyImpact(summary string) (model.Impact, string) {
	text := lexicon.Normalize(summary)
	posHits := lexicon.Matches(text, lexicon.Positive)
	negHits := lexicon.Matches(text, lexicon.Negative)

	if len(posHits) > len(negHits) {
		return model.ImpactPositive, "positive cues: " + strings.Join(posHits, ", ")
	}
	if len(negHits) > len(posHits) {
		return model.ImpactNegative, "negative cues: " + strings.Join(negHits, ", ")
	}
	return model.ImpactMixed, "insufficient directional evidence"
}
