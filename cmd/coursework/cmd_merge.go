package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/coursework/internal/input"
	"github.com/katalvlaran/coursework/intervals"
)

var (
	mergeThreshold float64
	mergeInclusive bool
	mergeOutput    string
)

var mergeCmd = &cobra.Command{
	Use:   "merge FILE_A FILE_B",
	Short: "Merge two interval lists by overlap ratio",
	Long: `Reads two interval lists (YAML or JSON) shaped as

  - positions: [left, right]
    values: [label, ...]

and merges every pair whose intersection covers more than --threshold of
either interval. The earlier interval keeps its bounds and gains the labels.`,
	Args: cobra.ExactArgs(2),
	RunE: runMerge,
}

func init() {
	mergeCmd.Flags().Float64VarP(&mergeThreshold, "threshold", "t", intervals.DefaultThreshold, "overlap ratio to exceed (0,1]")
	mergeCmd.Flags().BoolVar(&mergeInclusive, "inclusive", false, "merge when the ratio equals the threshold too")
	mergeCmd.Flags().StringVarP(&mergeOutput, "output", "o", "yaml", "output format: yaml, json or text")
}

func runMerge(cmd *cobra.Command, args []string) error {
	a, err := input.LoadIntervals(args[0])
	if err != nil {
		return err
	}
	b, err := input.LoadIntervals(args[1])
	if err != nil {
		return err
	}

	threshold := cfg.Merge.Threshold
	if cmd.Flags().Changed("threshold") {
		threshold = mergeThreshold
	}
	if threshold <= 0 || threshold > 1 {
		return fmt.Errorf("--threshold %v: must be in (0,1]", threshold)
	}
	inclusive := cfg.Merge.Inclusive
	if cmd.Flags().Changed("inclusive") {
		inclusive = mergeInclusive
	}

	format := cfg.Merge.Output
	if cmd.Flags().Changed("output") {
		format = mergeOutput
	}

	merged, err := intervals.Merge(a, b, mergeOptions(threshold, inclusive)...)
	if err != nil {
		return err
	}
	logger.Info("merged interval lists",
		zap.Int("a", len(a)),
		zap.Int("b", len(b)),
		zap.Int("result", len(merged)),
		zap.Float64("threshold", threshold),
		zap.Bool("inclusive", inclusive))

	return input.EncodeIntervals(cmd.OutOrStdout(), merged, format)
}

// mergeOptions is shared by merge and demo so both honour the same settings.
func mergeOptions(threshold float64, inclusive bool) []intervals.Option {
	opts := []intervals.Option{intervals.WithThreshold(threshold)}
	if inclusive {
		opts = append(opts, intervals.WithInclusive())
	}

	return opts
}
