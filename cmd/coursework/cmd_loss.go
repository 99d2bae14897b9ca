package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/coursework/loss"
	"github.com/katalvlaran/coursework/series"
)

var (
	lossStrategy string
	lossAll      bool
	lossTop      int
	lossRandom   int
	lossSeed     int64
)

var lossCmd = &cobra.Command{
	Use:   "loss [PRICE...]",
	Short: "Find the minimum loss when buying in one year and selling later",
	Long: `Given projected prices (one per year), finds the buy year and later sell
year with the smallest positive loss. Years are 1-indexed.

Prices come from the arguments, or from a seeded shuffle of 1..N with
--random N --seed S.`,
	Example: "  coursework loss 20 15 7 2 13 --all",
	RunE:    runLoss,
}

func init() {
	lossCmd.Flags().StringVar(&lossStrategy, "strategy", "", "optimized or bruteforce (default from config)")
	lossCmd.Flags().BoolVar(&lossAll, "all", false, "also list loss-making pairs, smallest first")
	lossCmd.Flags().IntVar(&lossTop, "top", 0, "how many pairs --all prints, 0 = all (default from config)")
	lossCmd.Flags().IntVar(&lossRandom, "random", 0, "generate N distinct prices instead of reading arguments")
	lossCmd.Flags().Int64Var(&lossSeed, "seed", 0, "seed for --random")
}

func runLoss(cmd *cobra.Command, args []string) error {
	prices, err := lossPrices(args)
	if err != nil {
		return err
	}

	name := cfg.Loss.Strategy
	if cmd.Flags().Changed("strategy") {
		name = lossStrategy
	}
	strategy, err := loss.ParseStrategy(name)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "prices: %v\n", prices)

	res, err := loss.Solve(prices, loss.Options{Strategy: strategy})
	switch {
	case errors.Is(err, loss.ErrNoSolution):
		fmt.Fprintln(out, "no loss possible: prices never drop")
	case err != nil:
		return err
	default:
		fmt.Fprintf(out, "buy in year %d (price %v), sell in year %d (price %v): loss %v\n",
			res.Buy, prices[res.Buy-1], res.Sell, prices[res.Sell-1], res.Loss)
	}
	logger.Debug("minimum loss",
		zap.Stringer("strategy", strategy),
		zap.Int("years", len(prices)),
		zap.Stringer("result", res))

	if !lossAll {
		return nil
	}
	top := cfg.Loss.Top
	if cmd.Flags().Changed("top") {
		top = lossTop
	}

	return printAllLosses(out, prices, top)
}

// lossPrices parses the arguments or generates a permutation.
func lossPrices(args []string) ([]float64, error) {
	if lossRandom > 0 {
		return series.Permutation(lossRandom, series.WithSeed(lossSeed))
	}
	if len(args) == 0 {
		return nil, errors.New("loss: give prices as arguments or use --random N")
	}

	prices := make([]float64, len(args))
	for i, a := range args {
		p, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("loss: price %d %q: %w", i+1, a, err)
		}
		prices[i] = p
	}

	return prices, nil
}

// printAllLosses writes up to top pairs (0 = all).
func printAllLosses(out io.Writer, prices []float64, top int) error {
	all, err := loss.AllLosses(prices)
	if err != nil {
		return err
	}
	if top > 0 && top < len(all) {
		all = all[:top]
	}

	fmt.Fprintln(out, "loss-making pairs:")
	for i, r := range all {
		fmt.Fprintf(out, "  %d. buy year %d (%v), sell year %d (%v) -> loss %v\n",
			i+1, r.Buy, prices[r.Buy-1], r.Sell, prices[r.Sell-1], r.Loss)
	}

	return nil
}
