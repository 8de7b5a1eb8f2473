package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"bank-ledger/app"
	"bank-ledger/exchange"
	"bank-ledger/shared"
)

var (
	convertFrom   string
	convertTo     string
	convertAmount string
)

var convertCmd = &cobra.Command{
	Use:   "convert <batch.json>",
	Short: "Query the conversion graph of a batch document",
	Long: `Loads only the exchange rates from a batch document and answers a
single conversion query, printing the amount, the composed rate and the
path taken through the rate graph.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading batch input: %w", err)
		}
		var batch app.Batch
		if err := json.Unmarshal(data, &batch); err != nil {
			return fmt.Errorf("decoding batch input: %w", err)
		}

		graph := exchange.NewGraph()
		for _, in := range batch.ExchangeRates {
			if err := graph.AddRate(shared.Currency(in.From), shared.Currency(in.To), in.Rate); err != nil {
				return err
			}
		}

		amount, err := decimal.NewFromString(convertAmount)
		if err != nil {
			return fmt.Errorf("invalid amount %q: %w", convertAmount, err)
		}

		from := shared.Currency(convertFrom)
		to := shared.Currency(convertTo)
		converted, err := graph.Convert(amount, from, to)
		if err != nil {
			return err
		}
		rate, err := graph.Rate(from, to)
		if err != nil {
			return err
		}
		path, err := graph.Path(from, to)
		if err != nil {
			return err
		}

		hops := make([]string, 0, len(path))
		for _, c := range path {
			hops = append(hops, c.String())
		}
		fmt.Printf("%s %s = %s %s (rate %s, path %s)\n",
			amount.String(), from, converted.String(), to,
			rate.String(), strings.Join(hops, " -> "))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringVar(&convertFrom, "from", "", "source currency code (required)")
	convertCmd.Flags().StringVar(&convertTo, "to", "", "target currency code (required)")
	convertCmd.Flags().StringVar(&convertAmount, "amount", "1", "amount to convert")
	_ = convertCmd.MarkFlagRequired("from")
	_ = convertCmd.MarkFlagRequired("to")
}
