// Package cmd wires the command-line interface for the batch banking
// ledger.
package cmd

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var logger *log.Logger

var rootCmd = &cobra.Command{
	Use:   "bank-ledger",
	Short: "Batch banking back-office simulator",
	Long: `bank-ledger ingests a batch document of users, exchange rates and
timestamped commands, applies them to an in-memory ledger and emits the
JSON audit trail.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, err := log.ParseLevel(viper.GetString("log-level"))
		if err != nil {
			level = log.InfoLevel
		}
		logger.SetLevel(level)
	},
}

// Execute runs the CLI. Called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "bank-ledger",
	})

	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	_ = viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))

	viper.SetEnvPrefix("BANKLEDGER")
	viper.AutomaticEnv()
}
