package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"frontierbrief/internal/pipeline"
	"frontierbrief/internal/worker"
	"github.com/spf13/cobra"
)

var (
	concurrency  int
	outputDir    string
	batchTimeout time.Duration
	// noFooter is defined in analyze.go and shared here
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <list-file>",
	Short: "Analyze multiple observation files in parallel",
	Long: `Batch analyzes multiple observation files concurrently:
- Read observation-file paths from a list file (one per line, # comments)
- Analyze files in parallel with a configurable worker count
- Write one brief per input file to the output directory

Each file still runs through the sequential assessment pipeline, so the
ranking inside every brief is deterministic.

Example:
  frontierbrief batch files.txt
  frontierbrief batch files.txt --concurrency 8 --output-dir ./briefs`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "./briefs", "output directory for briefs")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for batch processing")
	batchCmd.Flags().BoolVar(&noFooter, "no-footer", false, "omit the action filter footer")
}

func runBatch(cmd *cobra.Command, args []string) error {
	listFile := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	cfg := loadConfig()
	cfg.Output.IncludeFooter = !noFooter
	cfg.Concurrency.Workers = concurrency
	// One engine serves all files; repeated observations hit the memo cache
	cfg.Cache.Enabled = true

	fmt.Fprintf(os.Stderr, "Input file:   %s\n", listFile)
	fmt.Fprintf(os.Stderr, "Workers:      %d\n", concurrency)
	fmt.Fprintf(os.Stderr, "Output dir:   %s\n", outputDir)
	fmt.Fprintln(os.Stderr)

	// Create output directory
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	p := pipeline.NewPipeline(cfg)
	processor := worker.NewBatchProcessor(p, concurrency)

	results, err := processor.ProcessFile(ctx, listFile)
	if err != nil {
		return fmt.Errorf("process file: %w", err)
	}

	successCount := 0
	failureCount := 0

	for _, result := range results {
		if result.Error != nil {
			failureCount++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", result.Path, result.Error)
			continue
		}

		outPath := filepath.Join(outputDir, briefFilename(result.Path))
		if err := os.WriteFile(outPath, []byte(result.Brief.Report+"\n"), 0644); err != nil {
			failureCount++
			fmt.Fprintf(os.Stderr, "✗ %s: failed to write brief: %v\n", result.Path, err)
			continue
		}

		successCount++
		fmt.Fprintf(os.Stderr, "✓ %s (%d observations)\n", result.Path, len(result.Brief.Assessments))
	}

	fmt.Fprintln(os.Stderr)
	fmt.Fprintf(os.Stderr, "Total:     %d files\n", len(results))
	fmt.Fprintf(os.Stderr, "Success:   %d\n", successCount)
	fmt.Fprintf(os.Stderr, "Failures:  %d\n", failureCount)
	fmt.Fprintf(os.Stderr, "Output:    %s\n", outputDir)

	if failureCount > 0 {
		return fmt.Errorf("%d of %d files failed", failureCount, len(results))
	}
	return nil
}

// briefFilename derives an output file name from an observations file path
func briefFilename(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if base == "" {
		base = "brief"
	}
	return base + ".txt"
}
