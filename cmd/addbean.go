package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/beanthere/beanthere/internal/ui/styles"
)

var addbeanCmd = &cobra.Command{
	Use:   "addbean <name> <origin> <grams>",
	Short: "Add a new bean or restock an existing one",
	Long: `Add a bean to the inventory, or add grams to an existing bean's stock.
Negative grams are accepted on an existing bean as a stock correction, as
long as the result stays at or above zero.`,
	Args: cobra.ExactArgs(3),
	RunE: runAddBean,
}

func init() {
	rootCmd.AddCommand(addbeanCmd)
}

func runAddBean(cmd *cobra.Command, args []string) error {
	name, origin := args[0], args[1]
	grams, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		return fmt.Errorf("invalid grams %q: must be a number", args[2])
	}

	svc, cleanup, err := openService()
	if err != nil {
		return err
	}
	defer cleanup()

	bean, restocked, err := svc.AddOrRestockBean(name, origin, grams)
	if err != nil {
		return err
	}

	if restocked {
		fmt.Fprintf(cmd.OutOrStdout(), "Restocked %s %+gg (now %.0fg)\n",
			styles.BeanName.Render(bean.Name), grams, bean.GramsInStock)
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Added new bean: %s from %s\n",
		styles.BeanName.Render(bean.Name), bean.Origin)
	return nil
}
