package cmd

import (
	"fmt"

	"github.com/npillmayer/notation/batch"
	"github.com/spf13/cobra"
)

var exprPostfix bool

var demoExpressions = map[batch.Mode][]string{
	batch.InfixToPostfix: {
		"A * ( B + C ) - D / E",
		"3 + 4 * 2 / ( 1 - 5 ) ^ 2 ^ 3",
		"-A + B",
	},
	batch.PostfixToInfix: {
		"A B C + * D E / -",
		"3 4 2 * 1 5 - 2 3 ^ ^ / +",
		"A ~ B +",
	},
}

var exprCmd = &cobra.Command{
	Use:   "expr [expression...]",
	Short: "Convert expressions given as arguments",
	Long: `Converts each argument from infix to postfix notation, or from postfix
to infix notation with --postfix. Without arguments, a set of demo
expressions is converted in both directions.

Examples:
  notation expr "A * ( B + C ) - D / E"
  notation expr --postfix "A ~ B +"`,
	RunE: runExpr,
}

func init() {
	rootCmd.AddCommand(exprCmd)

	exprCmd.Flags().BoolVar(&exprPostfix, "postfix", false, "arguments are in postfix notation")
}

func runExpr(cmd *cobra.Command, args []string) error {
	printer := newPrinter(cmd)
	out := cmd.OutOrStdout()
	if len(args) == 0 {
		for i, mode := range []batch.Mode{batch.InfixToPostfix, batch.PostfixToInfix} {
			if i > 0 {
				fmt.Fprintln(out)
			}
			fmt.Fprintf(out, "Demo %s\n", mode)
			for _, e := range demoExpressions[mode] {
				s, err := mode.Convert(e)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s -> %s\n", e, s)
			}
		}
		return nil
	}
	mode := batch.InfixToPostfix
	if exprPostfix {
		mode = batch.PostfixToInfix
	}
	var firstErr error
	for i, e := range args {
		s, err := mode.Convert(e)
		if err != nil {
			printer.Diagnostic(i+1, e, err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		fmt.Fprintf(out, "%s -> %s\n", e, s)
	}
	return firstErr
}
