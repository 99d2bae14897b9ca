// Command coursework runs the exercises from the command line:
//
//	coursework caesar encode --shift 3 Hello World!
//	coursework merge a.yaml b.yaml
//	coursework inr 123456.7891
//	coursework loss 20 15 7 2 13 --all
//	coursework demo
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/coursework/internal/config"
)

var (
	// Global flags
	configPath string
	verbose    bool

	// Resolved in PersistentPreRunE
	cfg    = config.Default()
	logger = zap.NewNop()
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "coursework",
	Short: "Coursework exercises: Caesar cipher, interval merge, Indian number format, minimum loss",
	Long: `coursework runs four small, independent exercises:

  caesar  rotate ASCII letters by a fixed shift
  merge   combine two interval lists by overlap ratio
  inr     group digits the Indian way (1,23,45,67,890)
  loss    find the cheapest buy-then-sell-lower pair

Defaults can be set in a YAML file passed with --config.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded

		logger, err = newLogger(cfg.Log.Level, verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger.Debug("configuration loaded",
			zap.String("path", configPath),
			zap.String("log_level", cfg.Log.Level))

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// newLogger builds a production zap logger at the configured level.
// --verbose always wins and selects debug.
func newLogger(level string, verbose bool) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	if verbose {
		lvl = zapcore.DebugLevel
	}

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(lvl)
	zc.Encoding = "console"
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return zc.Build()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML configuration file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(caesarCmd, mergeCmd, inrCmd, lossCmd, demoCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
