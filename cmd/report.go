package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/beanthere/beanthere/internal/ui/styles"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Daily sales, profit, and vibe check",
	Args:  cobra.NoArgs,
	RunE:  runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	svc, cleanup, err := openService()
	if err != nil {
		return err
	}
	defer cleanup()

	report, err := svc.DailyReport(time.Now())
	if err != nil {
		return err
	}
	if report == nil {
		fmt.Fprintln(cmd.OutOrStdout(), styles.Muted.Render("No drinks logged today yet."))
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout())
	fmt.Fprint(cmd.OutOrStdout(), styles.RenderDailyReport(report, cfg.Currency))
	return nil
}
