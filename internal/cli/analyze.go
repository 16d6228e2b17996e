package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"frontierbrief/internal/pipeline"
	"github.com/spf13/cobra"
)

var (
	outPath        string
	noFooter       bool
	analyzeTimeout time.Duration
	llmEnabled     bool
	llmProvider    string
	llmModel       string
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze <observations.json>",
	Short: "Analyze a JSON list of observations and print the ranked brief",
	Long: `Analyze loads a JSON array of observations, classifies each one's
directional impact, scores its signal strength, and renders the ranked
daily brief.

The input must be a JSON array of objects with exactly these string fields:
topic, company, source, url, summary. Malformed records abort the run
before any assessment.

Example:
  frontierbrief analyze observations.json
  frontierbrief analyze observations.json --out brief.txt
  frontierbrief analyze observations.json --llm --llm-provider openai`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	// Output flags
	analyzeCmd.Flags().StringVar(&outPath, "out", "", "write the brief to a file instead of stdout")
	analyzeCmd.Flags().BoolVar(&noFooter, "no-footer", false, "omit the action filter footer")
	analyzeCmd.Flags().DurationVar(&analyzeTimeout, "timeout", 2*time.Minute, "overall analyze timeout")

	// LLM flags
	analyzeCmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable LLM commentary (never affects scores)")
	analyzeCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai, ollama)")
	analyzeCmd.Flags().StringVar(&llmModel, "llm-model", "gpt-4o-mini", "LLM model name")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	input := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), analyzeTimeout)
	defer cancel()

	// Build configuration from config file, env, and flags
	cfg := loadConfig()
	cfg.Output.IncludeFooter = !noFooter

	if llmEnabled {
		cfg.LLM.Provider = llmProvider
		cfg.LLM.Model = llmModel

		switch llmProvider {
		case "openai":
			cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
			if cfg.LLM.APIKey == "" {
				return fmt.Errorf("OPENAI_API_KEY environment variable not set")
			}
		case "ollama":
			if baseURL := os.Getenv("OLLAMA_BASE_URL"); baseURL != "" {
				cfg.LLM.BaseURL = baseURL
			}
		}
	} else {
		cfg.LLM.Provider = ""
	}

	p := pipeline.NewPipeline(cfg)

	if verbose {
		fmt.Fprintf(os.Stderr, "Analyzing: %s\n", input)
	}

	result, err := p.AnalyzeFile(ctx, input)
	if err != nil {
		return fmt.Errorf("analyze failed: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Assessed %d observations\n", len(result.Assessments))
		fmt.Fprintln(os.Stderr)
	}

	if outPath != "" {
		if err := os.WriteFile(outPath, []byte(result.Report+"\n"), 0644); err != nil {
			return fmt.Errorf("write brief: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote brief: %s\n", outPath)
		}
	} else {
		fmt.Println(result.Report)
	}

	if result.Commentary != "" {
		fmt.Println()
		fmt.Println("Commentary (LLM, does not affect ranking):")
		fmt.Println(result.Commentary)
	}

	return nil
}
