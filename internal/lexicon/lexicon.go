// Package lexicon holds the fixed cue phrase inventories used to classify
// and score market observations. Cues are matched as lowercase substrings of
// normalized text; the slices are sorted so matched-cue lists render in a
// stable order.
package lexicon

import "strings"

// Positive cues connote favorable news.
var Positive = []string{
	"approved",
	"beat",
	"beats",
	"contract win",
	"expands",
	"funding secured",
	"growth",
	"margin expansion",
	"record revenue",
	"surge",
}

// Negative cues connote unfavorable news.
var Negative = []string{
	"cash burn",
	"cuts guidance",
	"delay",
	"dilution",
	"downgrade",
	"export ban",
	"lawsuit",
	"miss",
	"probe",
	"recall",
}

// HighSignal cues connote a concrete, material catalyst regardless of
// direction.
var HighSignal = []string{
	"capex",
	"earnings",
	"export control",
	"government award",
	"guidance",
	"long-term contract",
	"production ramp",
	"regulatory",
	"supply agreement",
}

// TrustedDomains identify high-credibility financial press in a source
// string.
var TrustedDomains = []string{
	"bloomberg",
	"cnbc",
	"ft.com",
	"reuters",
	"wsj",
}

// FastSourceMarker identifies the fast, low-latency social source.
const FastSourceMarker = "x.com"

// Normalize trims and lowercases text for cue matching.
func Normalize(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

// Matches returns the cues present in normalized text as substrings.
// Each cue counts once regardless of how often it occurs; results keep the
// cue slice order.
func Matches(normalized string, cues []string) []string {
	var hits []string
	for _, cue := range cues {
		if strings.Contains(normalized, cue) {
			hits = append(hits, cue)
		}
	}
	return hits
}
