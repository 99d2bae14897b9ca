package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/coursework/caesar"
	"github.com/katalvlaran/coursework/indian"
	"github.com/katalvlaran/coursework/internal/input"
	"github.com/katalvlaran/coursework/intervals"
	"github.com/katalvlaran/coursework/loss"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run every exercise on its sample input",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		for _, step := range []func(io.Writer) error{demoCaesar, demoMerge, demoIndian, demoLoss} {
			if err := step(out); err != nil {
				return err
			}
		}
		return nil
	},
}

func demoCaesar(out io.Writer) error {
	fmt.Fprintln(out, "=== Caesar cipher ===")
	samples := []struct {
		text  string
		shift int
	}{
		{"Hello World!", 3},
		{"ABCDEFGHIJKLMNOPQRSTUVWXYZ", 1},
		{"The quick brown fox jumps over the lazy dog", 13},
		{"Programming is fun!", 5},
	}
	for _, s := range samples {
		enc := caesar.Encode(s.text, s.shift)
		dec := caesar.Decode(enc, s.shift)
		fmt.Fprintf(out, "shift %-2d %q -> %q -> %q (match: %t)\n", s.shift, s.text, enc, dec, dec == s.text)
	}
	return nil
}

func demoMerge(out io.Writer) error {
	fmt.Fprintln(out, "\n=== Interval merge ===")
	samples := []struct {
		name string
		a, b []intervals.Interval
	}{
		{
			name: "basic overlap",
			a:    []intervals.Interval{{Left: 1, Right: 5, Values: []string{"A", "B"}}, {Left: 10, Right: 15, Values: []string{"C"}}},
			b:    []intervals.Interval{{Left: 3, Right: 8, Values: []string{"D", "E"}}, {Left: 12, Right: 18, Values: []string{"F"}}},
		},
		{
			name: "no overlap",
			a:    []intervals.Interval{{Left: 1, Right: 3, Values: []string{"X"}}, {Left: 10, Right: 12, Values: []string{"Y"}}},
			b:    []intervals.Interval{{Left: 5, Right: 7, Values: []string{"Z"}}, {Left: 15, Right: 17, Values: []string{"W"}}},
		},
		{
			name: "containment",
			a:    []intervals.Interval{{Left: 1, Right: 10, Values: []string{"Container"}}},
			b:    []intervals.Interval{{Left: 3, Right: 7, Values: []string{"Contained"}}},
		},
	}
	for _, s := range samples {
		merged, err := intervals.Merge(s.a, s.b, mergeOptions(cfg.Merge.Threshold, cfg.Merge.Inclusive)...)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "-- %s\n", s.name)
		if err := input.EncodeIntervals(out, merged, "text"); err != nil {
			return err
		}
	}
	return nil
}

func demoIndian(out io.Writer) error {
	fmt.Fprintln(out, "\n=== Indian number format ===")
	for _, x := range []float64{123456.7891, 1234567, 12345, 123, 1234567890.123, -123456.78, 1000000, 10000000, 100000000, 1.23} {
		s, err := indian.Format(x)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%-16v -> %s\n", x, s)
	}
	return nil
}

func demoLoss(out io.Writer) error {
	fmt.Fprintln(out, "\n=== Minimum loss ===")
	for _, prices := range [][]float64{{20, 15, 7, 2, 13}, {100, 80, 60, 40, 20}, {10, 20, 30, 40, 50}} {
		bf, bfErr := loss.BruteForce(prices)
		opt, optErr := loss.Optimized(prices)
		if bfErr != nil && !errors.Is(bfErr, loss.ErrNoSolution) {
			return bfErr
		}
		if optErr != nil && !errors.Is(optErr, loss.ErrNoSolution) {
			return optErr
		}
		fmt.Fprintf(out, "%v: brute force %s | optimized %s\n", prices, bf, opt)
	}
	return nil
}
