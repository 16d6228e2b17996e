package model

// Observation represents a single market observation collected from a source
type Observation struct {
	Topic   string `json:"topic"`   // Tracked topic (e.g., "AI hardware")
	Company string `json:"company"` // Company the observation concerns
	Source  string `json:"source"`  // Where the observation was seen
	URL     string `json:"url"`     // Link to the underlying item
	Summary string `json:"summary"` // One-line summary of the news
}

// Impact classifies the directional market impact of an observation
type Impact string

const (
	ImpactPositive Impact = "positive"      // Favorable news
	ImpactNegative Impact = "negative"      // Unfavorable news
	ImpactMixed    Impact = "mixed/unclear" // No strict cue majority either way
)

// Assessment is the result of classifying and scoring one observation
type Assessment struct {
	Observation Observation `json:"observation"`
	Impact      Impact      `json:"impact"`
	SignalScore int         `json:"signal_score"` // 0-5, catalyst credit plus source tier
	Reason      string      `json:"reason"`       // Classifier reason + "; " + scorer reason
}

// IsDirectional reports whether the assessment has a clear direction
func (a Assessment) IsDirectional() bool {
	return a.Impact != ImpactMixed
}
