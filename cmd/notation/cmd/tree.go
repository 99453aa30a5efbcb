package cmd

import (
	"fmt"
	"strconv"

	"github.com/npillmayer/notation/multiset"
	"github.com/spf13/cobra"
)

var (
	treeDot    bool
	treeRemove []int
)

var treeCmd = &cobra.Command{
	Use:   "tree [key...]",
	Short: "Build a multiset tree of integers",
	Long: `Inserts integer keys into an ordered multiset tree, removes the keys given
with --remove, and prints the traversals of the tree. Without keys, the
demo sequence 7 3 9 1 5 8 10 5 5 is used. With --dot, the tree is written
in Graphviz DOT format instead.

Examples:
  notation tree 7 3 9 1 5 8 10 5 5
  notation tree --remove 5 --remove 7 7 3 9 1 5 8 10 5 5
  notation tree --dot 4 2 6 | dot -Tsvg > tree.svg`,
	RunE: runTree,
}

func init() {
	rootCmd.AddCommand(treeCmd)

	treeCmd.Flags().BoolVar(&treeDot, "dot", false, "output Graphviz DOT")
	treeCmd.Flags().IntSliceVar(&treeRemove, "remove", nil, "keys to remove after insertion")
}

func runTree(cmd *cobra.Command, args []string) error {
	keys := []int{7, 3, 9, 1, 5, 8, 10, 5, 5}
	if len(args) > 0 {
		keys = keys[:0]
		for _, a := range args {
			k, err := strconv.Atoi(a)
			if err != nil {
				return fmt.Errorf("not an integer key: %q", a)
			}
			keys = append(keys, k)
		}
	}
	tree := multiset.New[int]()
	for _, k := range keys {
		tree.Insert(k)
	}
	out := cmd.OutOrStdout()
	for _, k := range treeRemove {
		fmt.Fprintf(out, "remove %d: %v\n", k, tree.Remove(k))
	}
	if treeDot {
		return multiset.Tree2Dot(tree, out)
	}
	for _, order := range []multiset.Order{
		multiset.InOrder, multiset.PreOrder, multiset.PostOrder, multiset.LevelOrder,
	} {
		fmt.Fprintf(out, "%-12s %v\n", order.String()+":", tree.Items(order))
	}
	fmt.Fprintf(out, "%-12s %d (%d occurrences, height %d)\n", "size:",
		tree.Len(), tree.Total(), tree.Height())
	return nil
}
