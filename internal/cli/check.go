package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/bharatvision/labelcheck/internal/model"
	"github.com/bharatvision/labelcheck/internal/pipeline"
	"github.com/spf13/cobra"
)

var (
	inputFile   string
	outJSON     string
	outMD       string
	timeout     time.Duration
	policy      string
	category    string
	noCache     bool
	noFooter    bool
	llmEnabled  bool
	llmProvider string
	llmModel    string

	knownMRP          string
	knownQuantity     string
	knownManufacturer string
	knownDate         string
	knownCountry      string
	knownCare         string
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check [label text]",
	Short: "Check a single label and generate a compliance report",
	Long: `Check evaluates one product label:
- Extract the six mandatory declarations from the label text
- Apply verbatim values for fields the caller already knows
- Score the label under the selected policy
- Generate transparent, explainable reports

The label text comes from the positional argument, from --file, or
from stdin when neither is given.

Example:
  labelcheck check "MRP: ₹120 Net Qty: 500g Made in India"
  labelcheck check --file label.txt --json report.json --md report.md
  labelcheck check --file label.txt --policy weighted --category food
  labelcheck check --file label.txt --known-mrp 120 --known-country India
  labelcheck check --file label.txt --llm --llm-provider openai`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	// Input flags
	checkCmd.Flags().StringVarP(&inputFile, "file", "f", "", "label text file (.txt or .html)")

	// Output flags
	checkCmd.Flags().StringVar(&outJSON, "json", "", "output JSON path (optional)")
	checkCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path (optional)")
	checkCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")

	// Scoring flags
	checkCmd.Flags().StringVar(&policy, "policy", model.PolicyEqualWeight, "scoring policy (equal, weighted)")
	checkCmd.Flags().StringVar(&category, "category", "", "product category for category-conditional checks (e.g. food)")

	// Known-field flags; values are trusted verbatim and skip extraction
	checkCmd.Flags().StringVar(&knownMRP, "known-mrp", "", "known MRP value")
	checkCmd.Flags().StringVar(&knownQuantity, "known-quantity", "", "known net quantity value")
	checkCmd.Flags().StringVar(&knownManufacturer, "known-manufacturer", "", "known manufacturer/packer value")
	checkCmd.Flags().StringVar(&knownDate, "known-date", "", "known date of manufacture value")
	checkCmd.Flags().StringVar(&knownCountry, "known-country", "", "known country of origin value")
	checkCmd.Flags().StringVar(&knownCare, "known-care", "", "known consumer care value")

	// Runtime flags
	checkCmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "overall check timeout")
	checkCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable LLM response cache")

	// LLM flags
	checkCmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable LLM-backed extraction (patterns remain the fallback)")
	checkCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai, anthropic, ollama)")
	checkCmd.Flags().StringVar(&llmModel, "llm-model", "", "LLM model name (provider default when empty)")
}

func runCheck(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	text, err := readLabelText(args)
	if err != nil {
		return err
	}

	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	known := knownFromFlags()
	if verbose {
		fmt.Fprintf(os.Stderr, "Policy: %s\n", cfg.Scoring.Policy)
		if cfg.Scoring.Category != "" {
			fmt.Fprintf(os.Stderr, "Category: %s\n", cfg.Scoring.Category)
		}
		if len(known) > 0 {
			fmt.Fprintf(os.Stderr, "Known fields: %d\n", len(known))
		}
		fmt.Fprintln(os.Stderr)
	}

	checker := pipeline.NewChecker(cfg)
	result, err := checker.Check(ctx, pipeline.Input{
		Text:     text,
		Known:    known,
		Category: category,
	})
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Extraction source: %s\n", result.Source)
		fmt.Fprintf(os.Stderr, "✓ Fields found: %s\n", result.Summary)
		fmt.Fprintf(os.Stderr, "✓ Score: %.2f/100\n", result.Score)
		fmt.Fprintln(os.Stderr)
	}

	pipeline.NewRenderer(cfg.Output.IncludeFooter).PrintSummary(result)

	if err := checker.RenderResult(result, outJSON, outMD); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	return nil
}

// readLabelText resolves the label text from the positional argument, the
// --file flag, or stdin
func readLabelText(args []string) (string, error) {
	if len(args) == 1 && inputFile != "" {
		return "", fmt.Errorf("label text given both as argument and via --file")
	}
	if len(args) == 1 {
		return args[0], nil
	}
	if inputFile != "" {
		return pipeline.LoadInputFile(inputFile)
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}

// buildConfig assembles the runtime configuration from flags and environment
func buildConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()
	cfg.Scoring.Policy = policy
	cfg.Scoring.Category = category
	cfg.Cache.Enabled = !noCache
	cfg.Output.Verbose = verbose
	cfg.Output.IncludeFooter = !noFooter

	if policy != model.PolicyEqualWeight && policy != model.PolicyWeighted {
		return nil, fmt.Errorf("unknown scoring policy %q (want %q or %q)", policy, model.PolicyEqualWeight, model.PolicyWeighted)
	}

	if llmEnabled {
		cfg.LLM.Provider = llmProvider
		cfg.LLM.Model = llmModel

		// Get API key from environment
		switch llmProvider {
		case "openai":
			cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
			if cfg.LLM.APIKey == "" {
				return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
			}
		case "anthropic", "claude":
			cfg.LLM.APIKey = os.Getenv("ANTHROPIC_API_KEY")
			if cfg.LLM.APIKey == "" {
				return nil, fmt.Errorf("ANTHROPIC_API_KEY environment variable not set")
			}
		case "ollama":
			// Ollama doesn't need an API key
			baseURL := os.Getenv("OLLAMA_BASE_URL")
			if baseURL != "" {
				cfg.LLM.BaseURL = baseURL
			}
		}
	}

	return cfg, nil
}

// knownFromFlags collects the known-field flags into a KnownFields map
func knownFromFlags() model.KnownFields {
	known := model.KnownFields{}
	set := func(k model.FieldKind, v string) {
		if v != "" {
			known[k] = v
		}
	}
	set(model.FieldMRP, knownMRP)
	set(model.FieldNetQuantity, knownQuantity)
	set(model.FieldManufacturer, knownManufacturer)
	set(model.FieldDateOfManufacture, knownDate)
	set(model.FieldCountryOfOrigin, knownCountry)
	set(model.FieldConsumerCare, knownCare)
	if len(known) == 0 {
		return nil
	}
	return known
}
