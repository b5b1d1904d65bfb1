package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ytkachuk12/wordgraph/pkg/errors"
	"github.com/ytkachuk12/wordgraph/pkg/ladder"
	"github.com/ytkachuk12/wordgraph/pkg/wordio"
)

// neighborsCommand creates the neighbors command, a direct window onto the
// neighbor oracle: it prints every dictionary word one letter away from the
// given word, in dictionary order, one per line.
func (c *CLI) neighborsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "neighbors <dictionary> <word>",
		Short: "List the dictionary words one letter away from a word",
		Long: `List every dictionary word that differs from the given word in exactly
one character position. The word itself is never listed. An empty result
is valid: the word simply has no neighbors.

Example:
  wordgraph neighbors words.txt tree`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runNeighbors(args[0], args[1])
		},
	}
}

func (c *CLI) runNeighbors(dictPath, word string) error {
	word = ladder.Normalize(word)
	if err := errors.ValidateWord(word); err != nil {
		return err
	}

	prog := newProgress(c.Logger)
	dict, err := wordio.ImportDictionary(dictPath)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Loaded %d words from %s", dict.Len(), dictPath))

	neighbors := dict.Neighbors(word)
	for _, n := range neighbors {
		fmt.Println(n)
	}
	c.Logger.Infof("%d neighbors of %q", len(neighbors), word)
	return nil
}
