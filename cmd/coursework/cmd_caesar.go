package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/coursework/caesar"
)

var caesarShift int

var caesarCmd = &cobra.Command{
	Use:   "caesar",
	Short: "Caesar cipher over ASCII letters",
}

var caesarEncodeCmd = &cobra.Command{
	Use:   "encode [text...]",
	Short: "Rotate letters forward by --shift",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCaesar(caesar.Encode),
}

var caesarDecodeCmd = &cobra.Command{
	Use:   "decode [text...]",
	Short: "Rotate letters back by --shift",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCaesar(caesar.Decode),
}

var caesarCandidatesCmd = &cobra.Command{
	Use:   "candidates [text...]",
	Short: "Print all 26 decodings, one per shift",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCaesarCandidates,
}

func init() {
	for _, c := range []*cobra.Command{caesarEncodeCmd, caesarDecodeCmd} {
		c.Flags().IntVarP(&caesarShift, "shift", "s", 0, "shift (default from config caesar.shift)")
	}
	caesarCmd.AddCommand(caesarEncodeCmd, caesarDecodeCmd, caesarCandidatesCmd)
}

// runCaesar adapts Encode/Decode to a command.
func runCaesar(fn func(string, int) string) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		shift := cfg.Caesar.Shift
		if cmd.Flags().Changed("shift") {
			shift = caesarShift
		}
		text := strings.Join(args, " ")

		logger.Debug("caesar",
			zap.String("op", cmd.Name()),
			zap.Int("shift", shift),
			zap.Int("normalized", caesar.Normalize(shift)),
			zap.Int("bytes", len(text)))

		_, err := fmt.Fprintln(cmd.OutOrStdout(), fn(text, shift))
		return err
	}
}

func runCaesarCandidates(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	for k, s := range caesar.Candidates(strings.Join(args, " ")) {
		if _, err := fmt.Fprintf(out, "%2d  %s\n", k, s); err != nil {
			return err
		}
	}
	return nil
}
