package pipeline

import (
	"fmt"
	"strings"
	"time"

	"frontierbrief/internal/model"
)

// Renderer renders an ordered assessment list as a plain-text brief.
// Display order is the pipeline's output order.
type Renderer struct {
	includeFooter bool
}

// NewRenderer creates a new renderer
func NewRenderer(includeFooter bool) *Renderer {
	return &Renderer{includeFooter: includeFooter}
}

// Render produces the daily brief text for the given timestamp
func (r *Renderer) Render(assessments []model.Assessment, now time.Time) string {
	lines := []string{
		fmt.Sprintf("Daily Frontier Research Brief (%s)", now.UTC().Format("2006-01-02 15:04 UTC")),
		"",
		"Principles: skeptical, concise, capital-scarce, opportunity-cost aware.",
		"",
	}

	if len(assessments) == 0 {
		lines = append(lines, "No observations supplied.")
		return strings.Join(lines, "\n")
	}

	for idx, item := range assessments {
		obs := item.Observation
		lines = append(lines,
			fmt.Sprintf("%d. [%s] %s -> %s (signal %d/5)",
				idx+1, obs.Topic, obs.Company, strings.ToUpper(string(item.Impact)), item.SignalScore),
			fmt.Sprintf("   Why: %s.", item.Reason),
			fmt.Sprintf("   Source: %s (%s)", obs.Source, obs.URL),
		)
	}

	if r.includeFooter {
		lines = append(lines,
			"",
			"Action filter:",
			"- Focus only on items with signal >=3 and clear positive/negative direction.",
			"- Ignore narrative-only items without earnings, regulation, supply, or contract implications.",
		)
	}

	return strings.Join(lines, "\n")
}
