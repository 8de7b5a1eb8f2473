package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bank-ledger/app"
	"bank-ledger/report"
	"bank-ledger/store"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Apply a batch document and emit the audit trail",
	Long: `Reads the batch JSON document (users, exchange rates, commands),
applies every command in order to a fresh in-memory ledger and writes the
ordered JSON output. With no --output the audit trail goes to stdout.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		inputPath := viper.GetString("input")
		if inputPath == "" {
			return fmt.Errorf("--input is required")
		}

		data, err := os.ReadFile(inputPath)
		if err != nil {
			return fmt.Errorf("reading batch input: %w", err)
		}
		var batch app.Batch
		if err := json.Unmarshal(data, &batch); err != nil {
			return fmt.Errorf("decoding batch input: %w", err)
		}

		logger.Info("starting batch run",
			"users", len(batch.Users),
			"rates", len(batch.ExchangeRates),
			"commands", len(batch.Commands))

		output := report.NewBuilder()
		processor := app.NewProcessor(store.NewInMemoryTransactionLog(), output, logger)
		if err := processor.Run(batch); err != nil {
			return fmt.Errorf("batch run failed: %w", err)
		}

		rendered, err := output.Render()
		if err != nil {
			return fmt.Errorf("rendering output: %w", err)
		}
		rendered = append(rendered, '\n')

		outputPath := viper.GetString("output")
		if outputPath == "" {
			_, err = os.Stdout.Write(rendered)
			return err
		}
		if err := os.WriteFile(outputPath, rendered, 0o644); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
		logger.Info("audit trail written", "path", outputPath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringP("input", "i", "", "batch JSON document to apply (required)")
	runCmd.Flags().StringP("output", "o", "", "file for the JSON audit trail (default stdout)")
	_ = viper.BindPFlag("input", runCmd.Flags().Lookup("input"))
	_ = viper.BindPFlag("output", runCmd.Flags().Lookup("output"))
}
