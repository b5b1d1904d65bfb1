package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/ytkachuk12/wordgraph/pkg/errors"
	"github.com/ytkachuk12/wordgraph/pkg/render"
)

// Render output formats.
const (
	formatDOT = "dot"
	formatSVG = "svg"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	format  string // output format: dot or svg
	rankdir string // chain direction: LR or TB
}

// renderCommand creates the render command: solve a ladder, then draw it as
// a node-link chain with each edge labeled by its letter substitution.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{format: formatSVG, rankdir: "LR"}

	cmd := &cobra.Command{
		Use:   "render <dictionary> <start> <end> <output>",
		Short: "Draw the shortest ladder as a DOT or SVG chain",
		Long: `Solve the ladder between two words and render it with Graphviz.

Examples:
  wordgraph render words.txt fore tree ladder.svg
  wordgraph render words.txt fore tree - --format dot`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd.Context(), args[0], args[1], args[2], args[3], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format (dot, svg)")
	cmd.Flags().StringVar(&opts.rankdir, "rankdir", opts.rankdir, "chain direction (LR, TB)")

	return cmd
}

func (c *CLI) runRender(ctx context.Context, dictPath, start, end, output string, opts renderOpts) error {
	if opts.format != formatDOT && opts.format != formatSVG {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be dot or svg)", opts.format)
	}

	res, err := c.solve(ctx, dictPath, start, end)
	if err != nil {
		return err
	}
	if !res.Found {
		printInfo("No path from %q to %q, nothing to render", res.Start, res.End)
		return nil
	}

	dot := render.ToDOT(res.Ladder, render.Options{Rankdir: opts.rankdir})

	data := []byte(dot)
	if opts.format == formatSVG {
		spin := newSpinner("Rendering SVG...")
		spin.Start()
		data, err = render.SVG(ctx, dot)
		spin.Stop()
		if err != nil {
			return err
		}
	}

	out, err := openOutput(output)
	if err != nil {
		return err
	}
	defer out.Close()
	if _, err := out.Write(data); err != nil {
		return err
	}

	printSuccess("Rendered ladder with %d steps", res.Steps)
	if output != "" && output != "-" {
		printFile(output)
	}
	return nil
}
