package cli

import (
	"context"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/ospolicy/licensegen/internal/model"
	"github.com/ospolicy/licensegen/internal/pipeline"
	"github.com/spf13/cobra"
)

var (
	outputDir    string
	forceRefresh bool
	limit        int
	concurrency  int
	timeout      time.Duration
	llmEnabled   bool
	llmProvider  string
	llmModel     string
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the full license policy database",
	Long: `Generate downloads the SPDX license list, classifies every license,
derives compatibility rules, and writes:
- licenses/spdx/<id>.yaml      per-license policy files
- compatibility_matrix.json    pairwise static/dynamic/distribution verdicts
- obligation_database.json     obligations and derived requirement flags
- license_database.json/.yaml  the master database
- generation_summary.json      run metadata and validation report

Example:
  licensegen generate
  licensegen generate --limit 20 --output-dir /tmp/licenses
  licensegen generate --llm --llm-provider openai --llm-model gpt-4o-mini`,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	// Output flags
	generateCmd.Flags().StringVar(&outputDir, "output-dir", "data", "output directory for generated datasets")

	// Registry flags
	generateCmd.Flags().BoolVar(&forceRefresh, "force-refresh", false, "bypass the registry cache")
	generateCmd.Flags().IntVar(&limit, "limit", 0, "classify only the first N licenses (0 = all)")
	generateCmd.Flags().DurationVar(&timeout, "timeout", 30*time.Minute, "overall run timeout")
	generateCmd.Flags().IntVar(&concurrency, "concurrency", 5, "maximum concurrent classifications")

	// LLM flags
	generateCmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable AI-assisted classification")
	generateCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai, anthropic, ollama)")
	generateCmd.Flags().StringVar(&llmModel, "llm-model", "", "LLM model name (provider default when empty)")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	// Build configuration from flags
	cfg := model.DefaultConfig()
	cfg.Output.Dir = outputDir
	cfg.Output.Verbose = verbose
	cfg.Concurrency.Workers = concurrency

	// Configure LLM if enabled
	if llmEnabled {
		cfg.LLM.Provider = llmProvider
		cfg.LLM.Model = llmModel

		// Get API key from environment
		switch llmProvider {
		case "openai":
			cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
			if cfg.LLM.APIKey == "" {
				return fmt.Errorf("OPENAI_API_KEY environment variable not set")
			}
		case "anthropic", "claude":
			cfg.LLM.APIKey = os.Getenv("ANTHROPIC_API_KEY")
			if cfg.LLM.APIKey == "" {
				return fmt.Errorf("ANTHROPIC_API_KEY environment variable not set")
			}
		case "ollama":
			// Ollama doesn't need an API key
			baseURL := os.Getenv("OLLAMA_BASE_URL")
			if baseURL != "" {
				cfg.LLM.BaseURL = baseURL
			}
		}
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Output: %s\n", cfg.Output.Dir)
		fmt.Fprintf(os.Stderr, "Workers: %d\n", cfg.Concurrency.Workers)
		if llmEnabled {
			fmt.Fprintf(os.Stderr, "LLM: %s/%s\n", cfg.LLM.Provider, cfg.LLM.Model)
		} else {
			fmt.Fprintf(os.Stderr, "LLM: disabled (deterministic classification)\n")
		}
		fmt.Fprintln(os.Stderr)
	}

	gen := pipeline.NewGenerator(cfg)

	summary, err := gen.Run(ctx, pipeline.Options{
		ForceRefresh: forceRefresh,
		Limit:        limit,
	})
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	printSummary(summary)

	return nil
}

// printSummary writes the human-readable run summary to stdout.
func printSummary(s *model.Summary) {
	fmt.Printf("Generated %d license policies (SPDX list %s)\n", s.TotalLicenses, s.SPDXVersion)
	fmt.Printf("Output: %s\n", s.OutputDirectory)

	cats := make([]string, 0, len(s.Categories))
	for cat := range s.Categories {
		cats = append(cats, cat)
	}
	sort.Strings(cats)

	fmt.Println("Categories:")
	for _, cat := range cats {
		fmt.Printf("  %-16s %d\n", cat, s.Categories[cat])
	}

	if s.Validation.IsValid {
		fmt.Println("Validation: ok")
	} else {
		fmt.Printf("Validation: %d issues\n", len(s.Validation.Errors))
		for _, msg := range s.Validation.Errors {
			fmt.Printf("  %s\n", msg)
		}
	}
}
