// Package assess implements the observation assessment engine: directional
// impact classification, signal strength scoring, and deterministic ranking.
package assess

import (
	"encoding/json"
	"sort"
	"time"

	"frontierbrief/internal/cache"
	"frontierbrief/internal/model"
)

// Engine assesses batches of observations. The zero-value-free constructor
// form mirrors the rest of the pipeline; an optional memo cache skips
// recomputation for observations repeating the same summary and source.
type Engine struct {
	memo    cache.Cache
	memoTTL time.Duration
}

// NewEngine creates an assessment engine without memoization
func NewEngine() *Engine {
	return &Engine{}
}

// NewEngineWithCache creates an assessment engine that memoizes
// per-observation results in the given cache
func NewEngineWithCache(memo cache.Cache, ttl time.Duration) *Engine {
	return &Engine{memo: memo, memoTTL: ttl}
}

// memoEntry is the cached per-observation result. Only summary and source
// feed the classifier and scorer, so the entry is valid for any observation
// sharing both.
type memoEntry struct {
	Impact model.Impact `json:"impact"`
	Score  int          `json:"score"`
	Reason string       `json:"reason"`
}

// Assess classifies, scores, and ranks all observations. The mapping is
// total and 1:1; the result is ordered descending by (signal score,
// directional), with ties keeping input order. Empty input yields an empty
// result.
func (e *Engine) Assess(observations []model.Observation) []model.Assessment {
	assessed := make([]model.Assessment, 0, len(observations))
	for _, obs := range observations {
		assessed = append(assessed, e.evaluate(obs))
	}

	sort.SliceStable(assessed, func(i, j int) bool {
		if assessed[i].SignalScore != assessed[j].SignalScore {
			return assessed[i].SignalScore > assessed[j].SignalScore
		}
		return assessed[i].IsDirectional() && !assessed[j].IsDirectional()
	})

	return assessed
}

// evaluate runs the classifier and scorer on a single observation
func (e *Engine) evaluate(obs model.Observation) model.Assessment {
	if e.memo != nil {
		key := cache.AssessmentKey(obs.Summary, obs.Source)
		if data, found := e.memo.Get(key); found {
			var entry memoEntry
			if err := json.Unmarshal(data, &entry); err == nil {
				return model.Assessment{
					Observation: obs,
					Impact:      entry.Impact,
					SignalScore: entry.Score,
					Reason:      entry.Reason,
				}
			}
		}
	}

	impact, impactReason := ClassifyImpact(obs.Summary)
	score, scoreReason := SignalScore(obs.Summary, obs.Source)
	reason := impactReason + "; " + scoreReason

	if e.memo != nil {
		entry := memoEntry{Impact: impact, Score: score, Reason: reason}
		if data, err := json.Marshal(entry); err == nil {
			_ = e.memo.Set(cache.AssessmentKey(obs.Summary, obs.Source), data, e.memoTTL)
		}
	}

	return model.Assessment{
		Observation: obs,
		Impact:      impact,
		SignalScore: score,
		Reason:      reason,
	}
}
