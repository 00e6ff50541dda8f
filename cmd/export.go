package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/beanthere/beanthere/internal/ui/styles"
)

var exportDir string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export today's drinks to CSV",
	Long: `Write all drinks logged since local midnight to a CSV file named after
today's date. Re-running on the same day overwrites the file.`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportDir, "dir", "", "directory to write the CSV to (default from config)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	svc, cleanup, err := openService()
	if err != nil {
		return err
	}
	defer cleanup()

	dir := exportDir
	if dir == "" {
		dir = cfg.ExportDir
	}

	path, err := svc.ExportDailyCSV(time.Now(), dir)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), styles.Good.Render("Exported to "+path))
	return nil
}
