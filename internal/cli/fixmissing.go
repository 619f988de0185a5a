package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/ospolicy/licensegen/internal/fixup"
	"github.com/spf13/cobra"
)

var (
	fixOutputDir string
	fixTimeout   time.Duration
)

// fixMissingCmd represents the fix-missing command
var fixMissingCmd = &cobra.Command{
	Use:   "fix-missing",
	Short: "Backfill policy files for licenses the registry 404s on",
	Long: `Fix-missing creates policy files for the known set of licenses whose
detail documents are absent from the SPDX registry. Text is fetched from
the SPDX raw-text mirrors where possible; otherwise curated fallback data
is used. Existing policy files are never overwritten, so the command is
safe to run after a full generation.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(context.Background(), fixTimeout)
		defer cancel()

		patcher := fixup.NewPatcher(fixOutputDir)

		created, err := patcher.Run(ctx)
		if err != nil {
			return fmt.Errorf("fix-missing failed: %w", err)
		}

		fmt.Printf("Created %d missing license policies\n", created)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(fixMissingCmd)

	fixMissingCmd.Flags().StringVar(&fixOutputDir, "output-dir", "data", "output directory holding the policy files")
	fixMissingCmd.Flags().DurationVar(&fixTimeout, "timeout", 2*time.Minute, "overall timeout for mirror fetches")
}
