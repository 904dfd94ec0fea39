package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/bharatvision/labelcheck/internal/pipeline"
	"github.com/bharatvision/labelcheck/internal/worker"
	"github.com/spf13/cobra"
)

var (
	concurrency  int
	outputDir    string
	batchTimeout time.Duration
	// policy, category, noCache, noFooter and the LLM flags are defined in
	// check.go and shared here
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <path>",
	Short: "Check multiple labels in parallel",
	Long: `Batch processes multiple labels concurrently:
- Read labels from a directory of .txt/.html files, or from a single
  file with labels separated by "---" lines
- Check labels in parallel with configurable worker count
- Generate individual reports for each label

Example:
  labelcheck batch labels/
  labelcheck batch labels.txt --concurrency 10 --output-dir ./reports
  labelcheck batch labels.txt --policy weighted --category food`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	// Concurrency flags
	batchCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "./labelcheck-reports", "output directory for reports")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for batch processing")

	// Inherit flags from check command
	batchCmd.Flags().StringVar(&policy, "policy", "equal", "scoring policy (equal, weighted)")
	batchCmd.Flags().StringVar(&category, "category", "", "product category applied to every label")
	batchCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable LLM response cache")
	batchCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")

	// LLM flags
	batchCmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable LLM-backed extraction (patterns remain the fallback)")
	batchCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai, anthropic, ollama)")
	batchCmd.Flags().StringVar(&llmModel, "llm-model", "", "LLM model name (provider default when empty)")
}

func runBatch(cmd *cobra.Command, args []string) error {
	path := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "  Labelcheck Batch Processing\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Input:        %s\n", path)
	fmt.Fprintf(os.Stderr, "  Workers:      %d\n", concurrency)
	fmt.Fprintf(os.Stderr, "  Output dir:   %s\n", outputDir)
	fmt.Fprintf(os.Stderr, "  Timeout:      %v\n", batchTimeout)
	fmt.Fprintf(os.Stderr, "\n")

	// Build configuration
	cfg, err := buildConfig()
	if err != nil {
		return err
	}
	cfg.Concurrency.Workers = concurrency

	if llmEnabled {
		fmt.Fprintf(os.Stderr, "  LLM:          %s/%s\n", llmProvider, cfg.LLM.Model)
	}

	// Create output directory
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	// Load labels
	fmt.Fprintf(os.Stderr, "⚙️  Reading labels...\n")
	items, err := worker.LoadItems(path, category)
	if err != nil {
		return fmt.Errorf("load labels: %w", err)
	}

	fmt.Fprintf(os.Stderr, "✓ Loaded %d labels\n", len(items))
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "⚙️  Processing labels with %d workers...\n", concurrency)
	fmt.Fprintf(os.Stderr, "\n")

	// Create checker and batch processor
	checker := pipeline.NewChecker(cfg)
	processor := worker.NewBatchProcessor(checker, concurrency)
	results := processor.Process(ctx, items)

	// Process results
	successCount := 0
	failureCount := 0
	compliantCount := 0

	renderer := pipeline.NewRenderer(cfg.Output.IncludeFooter)
	for _, result := range results {
		if result.Error != nil {
			failureCount++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", result.Name, result.Error)
			continue
		}

		successCount++
		if result.Result.Compliant {
			compliantCount++
		}

		jsonPath := filepath.Join(outputDir, result.Name+".json")
		mdPath := filepath.Join(outputDir, result.Name+".md")

		if err := renderer.RenderJSON(result.Result, jsonPath); err != nil {
			fmt.Fprintf(os.Stderr, "✗ %s: failed to write JSON: %v\n", result.Name, err)
			continue
		}
		if err := renderer.RenderMarkdown(result.Result, mdPath); err != nil {
			fmt.Fprintf(os.Stderr, "✗ %s: failed to write Markdown: %v\n", result.Name, err)
			continue
		}

		fmt.Fprintf(os.Stderr, "✓ %s: %s (score %.2f, %s)\n", result.Name, result.Result.Status, result.Result.Score, result.Result.Summary)
	}

	// Summary
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "  Batch Complete\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Total:      %d labels\n", len(results))
	fmt.Fprintf(os.Stderr, "  Checked:    %d\n", successCount)
	fmt.Fprintf(os.Stderr, "  Compliant:  %d\n", compliantCount)
	fmt.Fprintf(os.Stderr, "  Failures:   %d\n", failureCount)
	fmt.Fprintf(os.Stderr, "  Output:     %s\n", outputDir)
	fmt.Fprintf(os.Stderr, "\n")

	return nil
}
