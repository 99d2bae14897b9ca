package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/coursework/indian"
)

var (
	inrSymbol string
	inrPlaces int
)

var inrCmd = &cobra.Command{
	Use:   "inr NUMBER...",
	Short: "Format numbers with Indian digit grouping",
	Long: `Formats each argument with a 3-digit rightmost group followed by 2-digit
groups: 1234567890.123 → 1,23,45,67,890.123. Fractions are kept exactly as
typed unless --places is given.`,
	Example: "  coursework inr 123456.7891 -- -123456.78",
	Args:    cobra.MinimumNArgs(1),
	RunE:    runInr,
}

func init() {
	inrCmd.Flags().StringVar(&inrSymbol, "symbol", "", "currency symbol placed after the sign (default from config)")
	inrCmd.Flags().IntVar(&inrPlaces, "places", -1, "round to this many fractional digits (-1 keeps them verbatim)")
}

func runInr(cmd *cobra.Command, args []string) error {
	symbol := cfg.Format.Symbol
	if cmd.Flags().Changed("symbol") {
		symbol = inrSymbol
	}
	places := cfg.Format.Places
	if cmd.Flags().Changed("places") {
		places = inrPlaces
	}

	opts := []indian.Option{indian.WithSymbol(symbol)}
	if places >= 0 {
		opts = append(opts, indian.WithPlaces(places))
	}

	out := cmd.OutOrStdout()
	for _, arg := range args {
		s, err := indian.FormatString(arg, opts...)
		if err != nil {
			logger.Warn("invalid number", zap.String("arg", arg), zap.Error(err))
			return err
		}
		if _, err := fmt.Fprintln(out, s); err != nil {
			return err
		}
	}

	return nil
}
