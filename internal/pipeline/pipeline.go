// Package pipeline orchestrates a brief run: load observations, assess,
// render, and optionally attach LLM commentary.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"time"

	"frontierbrief/internal/assess"
	"frontierbrief/internal/cache"
	"frontierbrief/internal/llm"
	"frontierbrief/internal/model"
)

// Pipeline orchestrates the complete analyze process
type Pipeline struct {
	engine   *assess.Engine
	renderer *Renderer
	provider llm.Provider // Optional commentary provider (nil if disabled)
	config   *model.Config
}

// NewPipeline creates a new pipeline with the given configuration
func NewPipeline(cfg *model.Config) *Pipeline {
	engine := assess.NewEngine()
	if cfg.Cache.Enabled {
		memo := cache.NewMemoryCache(cfg.Cache.TTL, cfg.Cache.TTL)
		engine = assess.NewEngineWithCache(memo, cfg.Cache.TTL)
	}

	var provider llm.Provider
	if cfg.LLM.Provider != "" {
		p, err := llm.NewProvider(llm.ConfigFromModel(cfg.LLM))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to initialize LLM provider: %v\n", err)
		} else {
			provider = p
		}
	}

	return &Pipeline{
		engine:   engine,
		renderer: NewRenderer(cfg.Output.IncludeFooter),
		provider: provider,
		config:   cfg,
	}
}

// BriefResult contains the complete result of analyzing one observation file
type BriefResult struct {
	Path        string
	Assessments []model.Assessment
	Report      string
	Commentary  string // Empty unless an LLM provider is configured
}

// AnalyzeFile loads observations from a file, assesses them, and renders the
// brief. Only the load step can fail; assessment and rendering are total.
func (p *Pipeline) AnalyzeFile(ctx context.Context, path string) (*BriefResult, error) {
	// 1. Load and validate observations (fail-fast on malformed input)
	observations, err := LoadObservations(path)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}

	// 2. Assess and rank
	assessments := p.engine.Assess(observations)

	// 3. Render
	report := p.renderer.Render(assessments, time.Now().UTC())

	result := &BriefResult{
		Path:        path,
		Assessments: assessments,
		Report:      report,
	}

	// 4. Generate commentary if enabled (AFTER assessment, never affects it)
	if p.provider != nil {
		resp, err := p.provider.Comment(ctx, llm.CommentRequest{Assessments: assessments})
		if err != nil {
			// Don't fail the run, just warn
			fmt.Fprintf(os.Stderr, "Warning: commentary generation failed: %v\n", err)
		} else if resp != nil {
			result.Commentary = resp.Commentary
		}
	}

	return result, nil
}
