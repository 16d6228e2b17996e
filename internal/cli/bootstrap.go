package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// bootstrapCmd prints the research scope, priority sources, and workflow
var bootstrapCmd = &cobra.Command{
	Use:   "bootstrap",
	Short: "Print research scope, sources, and workflow",
	Long: `Bootstrap prints the daily research starting point: tracked topics,
the priority source set, the company watchlist per topic, and the
collection workflow. The scope comes from configuration; the assessment
cue sets themselves are fixed.`,
	Run: runBootstrap,
}

func init() {
	rootCmd.AddCommand(bootstrapCmd)
}

func runBootstrap(cmd *cobra.Command, args []string) {
	cfg := loadConfig()

	fmt.Println("Frontier Research Brief - Daily Bootstrap")
	fmt.Println()

	fmt.Println("Tracked topics:")
	for _, topic := range cfg.Watchlist.Topics {
		fmt.Printf("- %s\n", topic)
	}

	fmt.Println("\nPriority source set:")
	for _, src := range cfg.Sources {
		fmt.Printf("- %s\n", src)
	}

	fmt.Println("\nMajor companies to monitor:")
	for _, topic := range cfg.Watchlist.Topics {
		companies, ok := cfg.Watchlist.Companies[topic]
		if !ok {
			continue
		}
		fmt.Printf("- %s: %s\n", topic, strings.Join(companies, ", "))
	}

	fmt.Println("\nWorkflow:")
	fmt.Println("1) Collect 3-8 high-signal observations per topic from x.com + financial press.")
	fmt.Println("2) Reject rumor-only claims without filings, contracts, guidance, or regulator actions.")
	fmt.Println("3) Classify impact: positive / negative / mixed.")
	fmt.Println("4) Rank by signal strength and opportunity cost.")
	fmt.Println("5) Produce a short watchlist and what to ignore.")
}
