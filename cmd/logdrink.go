package cmd

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/beanthere/beanthere/internal/coffee/application"
	"github.com/beanthere/beanthere/internal/coffee/domain"
	"github.com/beanthere/beanthere/internal/ui/styles"
)

var (
	logRating  int
	logNotes   string
	logFlavors string
)

var logCmd = &cobra.Command{
	Use:   "log <bean> <grams> <price>",
	Short: "Log a drink — automatically deducts from inventory",
	Long: `Log one sold drink against a bean. The bean's stock is reduced by the
grams used, atomically with the drink record. Rating, notes, and flavors
are prompted for when the flags are omitted.`,
	Args: cobra.ExactArgs(3),
	RunE: runLogDrink,
}

func init() {
	logCmd.Flags().IntVar(&logRating, "rating", 0, "rating 1-5 (prompted if omitted)")
	logCmd.Flags().StringVar(&logNotes, "notes", "", "tasting notes (prompted if omitted)")
	logCmd.Flags().StringVar(&logFlavors, "flavors", "", "comma-separated flavor tags (prompted if omitted)")
	rootCmd.AddCommand(logCmd)
}

func runLogDrink(cmd *cobra.Command, args []string) error {
	beanName := args[0]
	grams, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("invalid grams %q: must be a number", args[1])
	}
	price, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		return fmt.Errorf("invalid price %q: must be a number", args[2])
	}

	reader := bufio.NewReader(cmd.InOrStdin())

	rating := logRating
	if !cmd.Flags().Changed("rating") {
		rating, err = promptRating(cmd, reader)
		if err != nil {
			return err
		}
	}
	notes := logNotes
	if !cmd.Flags().Changed("notes") {
		notes, err = promptLine(cmd, reader, "Tasting notes")
		if err != nil {
			return err
		}
	}
	flavors := logFlavors
	if !cmd.Flags().Changed("flavors") {
		flavors, err = promptLine(cmd, reader, "Flavors (comma-separated)")
		if err != nil {
			return err
		}
	}

	svc, cleanup, err := openService()
	if err != nil {
		return err
	}
	defer cleanup()

	drink, err := svc.LogDrink(application.LogDrinkParams{
		BeanName:    beanName,
		Grams:       grams,
		Price:       price,
		Rating:      rating,
		Notes:       notes,
		FlavorNames: strings.Split(flavors, ","),
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Logged %gg of %s — %s%.2f — %d stars\n",
		drink.GramsUsed, styles.BeanName.Render(beanName), cfg.Currency, drink.PricePaid, drink.Rating)
	return nil
}

// promptLine asks for one line of input and returns it trimmed. EOF yields
// an empty answer.
func promptLine(cmd *cobra.Command, reader *bufio.Reader, label string) (string, error) {
	fmt.Fprintf(cmd.OutOrStdout(), "%s: ", label)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", nil
	}
	return strings.TrimSpace(line), nil
}

// promptRating asks for a 1-5 rating, re-prompting until the answer parses.
func promptRating(cmd *cobra.Command, reader *bufio.Reader) (int, error) {
	for {
		answer, err := promptLine(cmd, reader, "Rating (1-5)")
		if err != nil {
			return 0, err
		}
		rating, err := strconv.Atoi(answer)
		if err == nil && domain.ValidRating(rating) {
			return rating, nil
		}
		if answer == "" {
			// Nothing left to read; let validation produce the error.
			return 0, nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), styles.Muted.Render("Please enter a number from 1 to 5."))
	}
}
