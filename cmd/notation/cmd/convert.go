package cmd

import (
	"context"
	"fmt"

	"github.com/npillmayer/notation/batch"
	"github.com/npillmayer/notation/console"
	"github.com/spf13/cobra"
)

var (
	convertMode   string
	convertInput  string
	convertOutput string
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a file of expressions",
	Long: `Converts every line of an input file and writes the results to an
output file. Blank lines are kept. A line which cannot be converted is
replaced by a comment

  # Error on line <n>: <message>

Input files ending in .html or .htm are read as HTML documents, taking one
expression per line of their text.

Examples:
  notation convert --mode infix2postfix --input in.txt --output out.txt
  notation convert -v --mode postfix2infix --input rpn.txt --output infix.txt`,
	Args: cobra.NoArgs,
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringVar(&convertMode, "mode", "", "infix2postfix or postfix2infix")
	convertCmd.Flags().StringVar(&convertInput, "input", "", "input file")
	convertCmd.Flags().StringVar(&convertOutput, "output", "", "output file")
}

func runConvert(cmd *cobra.Command, args []string) error {
	if convertMode != "" {
		cfg.Mode = convertMode
	}
	if convertInput != "" {
		cfg.Input = convertInput
	}
	if convertOutput != "" {
		cfg.Output = convertOutput
	}
	if cfg.Input == "" || cfg.Output == "" {
		return fmt.Errorf("input and output files are required")
	}
	mode, err := cfg.ConversionMode()
	if err != nil {
		return err
	}
	conv, err := batch.NewConverter(mode)
	if err != nil {
		return err
	}
	defer conv.Close()
	printer := newPrinter(cmd)
	done := make(chan int)
	if verbose {
		results, err := conv.Subscribe(context.Background())
		if err != nil {
			return err
		}
		go func() {
			failed := 0
			for r := range results {
				if r.Failed() {
					failed++
					printer.Diagnostic(r.Line, r.Input, r.Err)
				}
			}
			done <- failed
		}()
	} else {
		close(done)
	}
	err = conv.ConvertFile(cfg.Input, cfg.Output)
	conv.Close()
	failed := <-done
	if err != nil {
		printError("converting "+cfg.Input, err)
		return err
	}
	if failed > 0 {
		printer.Printf(console.Warning, "%d lines could not be converted", failed)
	}
	printer.Printf(console.Info, "Done. Wrote converted expressions to %s", cfg.Output)
	return nil
}
