// Package cmd implements the beanthere command-line interface.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/beanthere/beanthere/internal/coffee/application"
	"github.com/beanthere/beanthere/internal/config"
	"github.com/beanthere/beanthere/internal/infrastructure/sqlite"
	"github.com/beanthere/beanthere/internal/log"
)

var (
	cfgFile string
	dbPath  string
	cfg     config.Config
)

var rootCmd = &cobra.Command{
	Use:   "beanthere",
	Short: "BeanThere — coffee shop inventory and sales tracker",
	Long: `BeanThere tracks bean stock, logs drink sales with flavor tags,
deducts inventory, and produces a daily profit and rating report
plus a CSV export. All data lives in a single local SQLite database.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return err
		}
		if dbPath != "" {
			cfg.DatabasePath = dbPath
		}
		if cfg.Logging.Enabled {
			if err := log.Init(cfg.Logging.Path, cfg.Logging.Level); err != nil {
				return fmt.Errorf("initializing logging: %w", err)
			}
		}
		log.Debug(log.CatCmd, "Running command", "command", cmd.Name(), "args", args)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = log.Close()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ~/.beanthere/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "database file (overrides config)")
}

// Execute runs the root command. Called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// openService opens the database for one command invocation and returns the
// coffee service plus a cleanup function. The cleanup must run on every exit
// path so the connection never leaks.
func openService() (*application.CoffeeService, func(), error) {
	db, err := sqlite.NewDB(cfg.DatabasePath)
	if err != nil {
		return nil, nil, err
	}
	svc := application.NewCoffeeService(db.CoffeeRepository(), application.BeanDefaults{
		Roaster:   cfg.DefaultRoaster,
		CostPerKg: cfg.DefaultCostPerKg,
	})
	return svc, func() { _ = db.Close() }, nil
}
