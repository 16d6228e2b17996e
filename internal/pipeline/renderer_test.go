package pipeline

import (
	"strings"
	"testing"
	"time"

	"frontierbrief/internal/model"
)

var renderStamp = time.Date(2026, 8, 28, 9, 30, 0, 0, time.UTC)

func TestRenderer_Render_FullBrief(t *testing.T) {
	renderer := NewRenderer(true)

	assessments := []model.Assessment{
		{
			Observation: model.Observation{
				Topic:   "AI hardware",
				Company: "NVIDIA",
				Source:  "Reuters",
				URL:     "https://www.reuters.com/example",
				Summary: "NVIDIA beats earnings and raises guidance after long-term contract win.",
			},
			Impact:      model.ImpactPositive,
			SignalScore: 5,
			Reason:      "positive cues: beat, beats, contract win; hard catalysts: earnings, guidance, long-term contract; high-credibility financial source",
		},
	}

	report := renderer.Render(assessments, renderStamp)

	if !strings.Contains(report, "Daily Frontier Research Brief (2026-08-28 09:30 UTC)") {
		t.Errorf("Expected title with UTC timestamp, got:\n%s", report)
	}
	if !strings.Contains(report, "Principles: skeptical, concise, capital-scarce, opportunity-cost aware.") {
		t.Error("Expected principles line")
	}
	if !strings.Contains(report, "1. [AI hardware] NVIDIA -> POSITIVE (signal 5/5)") {
		t.Errorf("Expected numbered item line, got:\n%s", report)
	}
	if !strings.Contains(report, "   Why: positive cues: beat, beats, contract win;") {
		t.Error("Expected Why line with reason")
	}
	if !strings.Contains(report, "   Source: Reuters (https://www.reuters.com/example)") {
		t.Error("Expected Source line")
	}
	if !strings.Contains(report, "Action filter:") {
		t.Error("Expected action filter footer")
	}
	if !strings.Contains(report, "- Focus only on items with signal >=3 and clear positive/negative direction.") {
		t.Error("Expected action filter guidance")
	}
}

func TestRenderer_Render_MixedImpactUppercased(t *testing.T) {
	renderer := NewRenderer(true)

	assessments := []model.Assessment{
		{
			Observation: model.Observation{Topic: "Robotics", Company: "Fanuc", Source: "blog", URL: "https://example.com"},
			Impact:      model.ImpactMixed,
			SignalScore: 0,
			Reason:      "insufficient directional evidence; limited specificity",
		},
	}

	report := renderer.Render(assessments, renderStamp)

	if !strings.Contains(report, "1. [Robotics] Fanuc -> MIXED/UNCLEAR (signal 0/5)") {
		t.Errorf("Expected uppercased mixed label, got:\n%s", report)
	}
}

func TestRenderer_Render_Empty(t *testing.T) {
	renderer := NewRenderer(true)

	report := renderer.Render(nil, renderStamp)

	if !strings.Contains(report, "No observations supplied.") {
		t.Errorf("Expected empty-report body, got:\n%s", report)
	}
	if strings.Contains(report, "1.") {
		t.Error("Expected no numbered blocks for empty input")
	}
	if strings.Contains(report, "Action filter:") {
		t.Error("Expected no footer for empty input")
	}
}

func TestRenderer_Render_NoFooter(t *testing.T) {
	renderer := NewRenderer(false)

	assessments := []model.Assessment{
		{
			Observation: model.Observation{Topic: "Robotics", Company: "ABB", Source: "CNBC", URL: "https://example.com"},
			Impact:      model.ImpactPositive,
			SignalScore: 4,
			Reason:      "positive cues: expands; hard catalysts: government award, production ramp; high-credibility financial source",
		},
	}

	report := renderer.Render(assessments, renderStamp)

	if strings.Contains(report, "Action filter:") {
		t.Error("Expected footer to be omitted")
	}
	if !strings.Contains(report, "1. [Robotics] ABB -> POSITIVE (signal 4/5)") {
		t.Error("Expected item line")
	}
}

func TestRenderer_Render_DisplayOrderMatchesInput(t *testing.T) {
	renderer := NewRenderer(true)

	assessments := []model.Assessment{
		{Observation: model.Observation{Topic: "t", Company: "First", Source: "s", URL: "u"}, Impact: model.ImpactMixed},
		{Observation: model.Observation{Topic: "t", Company: "Second", Source: "s", URL: "u"}, Impact: model.ImpactMixed},
	}

	report := renderer.Render(assessments, renderStamp)

	first := strings.Index(report, "First")
	second := strings.Index(report, "Second")
	if first < 0 || second < 0 || first > second {
		t.Errorf("Expected display order to match pipeline order, got:\n%s", report)
	}
}
