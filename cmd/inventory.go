package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/beanthere/beanthere/internal/ui/styles"
)

var inventoryCmd = &cobra.Command{
	Use:   "inventory",
	Short: "Show current bean inventory with low-stock warnings",
	Args:  cobra.NoArgs,
	RunE:  runInventory,
}

func init() {
	rootCmd.AddCommand(inventoryCmd)
}

func runInventory(cmd *cobra.Command, args []string) error {
	svc, cleanup, err := openService()
	if err != nil {
		return err
	}
	defer cleanup()

	beans, err := svc.Inventory()
	if err != nil {
		return err
	}
	if len(beans) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), styles.Muted.Render("No beans in inventory yet."))
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), styles.RenderInventory(beans, cfg.LowStockGrams))
	return nil
}
