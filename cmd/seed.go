package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/beanthere/beanthere/internal/ui/styles"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load sample beans, flavors, and drinks",
	Long: `Populate an empty database with sample beans, flavor tags, and a few
logged drinks. Does nothing when beans already exist.`,
	Args: cobra.NoArgs,
	RunE: runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, args []string) error {
	svc, cleanup, err := openService()
	if err != nil {
		return err
	}
	defer cleanup()

	seeded, err := svc.SeedSampleData()
	if err != nil {
		return err
	}
	if !seeded {
		fmt.Fprintln(cmd.OutOrStdout(), styles.Muted.Render("Database already has beans; seed skipped."))
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), styles.Good.Render("Database seeded with sample beans, drinks, and flavors."))
	return nil
}
