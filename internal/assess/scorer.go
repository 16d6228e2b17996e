package assess

import (
	"strings"

	"frontierbrief/internal/lexicon"
)

// Scoring constants. Catalyst credit is capped regardless of how many
// distinct catalyst phrases match; the two source tiers are mutually
// exclusive, fast-source checked first.
const (
	catalystCap  = 3
	trustedBonus = 2
	fastBonus    = 1
)

// MaxSignalScore is the highest score the scorer can return
// (catalystCap + trustedBonus).
const MaxSignalScore = catalystCap + trustedBonus

// SignalScore estimates how actionable an observation is, independent of
// direction, from catalyst cue density and source credibility.
// The result is always in [0, MaxSignalScore].
func SignalScore(summary, source string) (int, string) {
	text := lexicon.Normalize(summary)
	score := 0
	var reasons []string

	cueHits := lexicon.Matches(text, lexicon.HighSignal)
	if len(cueHits) > 0 {
		credit := len(cueHits)
		if credit > catalystCap {
			credit = catalystCap
		}
		score += credit
		reasons = append(reasons, "hard catalysts: "+strings.Join(cueHits, ", "))
	}

	sourceText := lexicon.Normalize(source)
	if strings.Contains(sourceText, lexicon.FastSourceMarker) {
		score += fastBonus
		reasons = append(reasons, "fast signal source (x.com)")
	} else if len(lexicon.Matches(sourceText, lexicon.TrustedDomains)) > 0 {
		score += trustedBonus
		reasons = append(reasons, "high-credibility financial source")
	}

	if len(reasons) == 0 {
		return score, "limited specificity"
	}
	return score, strings.Join(reasons, "; ")
}
