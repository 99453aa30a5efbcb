package cmd

import (
	"fmt"
	"os"

	"github.com/npillmayer/notation/config"
	"github.com/npillmayer/notation/console"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "notation",
	Short: "notation - convert arithmetic expressions between infix and postfix",
	Long: `notation converts arithmetic expressions between infix and postfix
(reverse Polish) notation, and demonstrates an ordered multiset tree.

Expressions consist of numbers, identifiers, the binary operators + - * / ^,
unary minus and parentheses. In postfix notation, unary minus is written as ~.

Commands:
  convert  - convert a file of expressions, one per line
  expr     - convert expressions given as arguments
  tree     - build a multiset tree of integers and print its traversals`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (TOML or YAML)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// setup loads the configuration and installs the tracer.
func setup(cmd *cobra.Command, args []string) error {
	var err error
	if cfgFile != "" {
		if cfg, err = config.Load(cfgFile); err != nil {
			printError("loading configuration", err)
			return err
		}
	} else {
		cfg = config.Default()
	}
	level, err := cfg.Level()
	if err != nil {
		return err
	}
	if verbose && level != tracing.LevelDebug {
		level = tracing.LevelInfo
	}
	gtrace.CoreTracer = gologadapter.New()
	gtrace.CoreTracer.SetTraceLevel(level)
	return nil
}

func newPrinter(cmd *cobra.Command) *console.Printer {
	return console.NewPrinter(cmd.OutOrStdout(), cfg.ConsoleConfig(), nil)
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "Error: %s: %v\n", msg, err)
}
