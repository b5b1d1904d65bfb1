package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ytkachuk12/wordgraph/pkg/errors"
	"github.com/ytkachuk12/wordgraph/pkg/ladder"
	"github.com/ytkachuk12/wordgraph/pkg/observability"
	"github.com/ytkachuk12/wordgraph/pkg/wordio"
)

// solveOpts holds the command-line flags for the solve command.
type solveOpts struct {
	asJSON bool // write the JSON result form instead of one word per line
}

// solveCommand creates the solve command.
//
// The search itself never fails: "no path found" is written to the output
// file and the command exits zero. Non-zero exits are reserved for an
// unreadable dictionary, an unwritable output path, or invalid words.
func (c *CLI) solveCommand() *cobra.Command {
	var opts solveOpts

	cmd := &cobra.Command{
		Use:   "solve <dictionary> <start> <end> <output>",
		Short: "Find the shortest word ladder between two words",
		Long: `Find the shortest word ladder between two words.

Each step of the ladder changes exactly one letter, and every intermediate
word must appear in the dictionary file (one word per line). Words are
compared case-insensitively. The result is written to the output file, one
word per line; pass "-" to write to stdout.

Examples:
  wordgraph solve words.txt fore tree result.txt
  wordgraph solve words.txt cat dog -          # ladder to stdout
  wordgraph solve words.txt cat dog out.json --json`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSolve(cmd.Context(), args[0], args[1], args[2], args[3], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "write the result as JSON")

	return cmd
}

func (c *CLI) runSolve(ctx context.Context, dictPath, start, end, output string, opts solveOpts) error {
	res, err := c.solve(ctx, dictPath, start, end)
	if err != nil {
		return err
	}

	if err := writeOutput(res, output, opts.asJSON); err != nil {
		return err
	}

	if res.Found {
		printSuccess("Found ladder with %d steps", res.Steps)
		printLadder(res.Ladder)
	} else {
		printInfo("No path from %q to %q", res.Start, res.End)
	}
	if output != "" && output != "-" {
		printFile(output)
	}
	return nil
}

// solve loads the dictionary and runs one search, logging progress.
// It is shared by the solve and render commands.
func (c *CLI) solve(ctx context.Context, dictPath, start, end string) (wordio.Result, error) {
	for _, w := range []string{start, end} {
		if err := errors.ValidateWord(ladder.Normalize(w)); err != nil {
			return wordio.Result{}, err
		}
	}

	prog := newProgress(c.Logger)
	dict, err := wordio.ImportDictionary(dictPath)
	if err != nil {
		return wordio.Result{}, err
	}
	prog.done(fmt.Sprintf("Loaded %d words from %s", dict.Len(), dictPath))

	c.Logger.Debugf("searching %s -> %s", ladder.Normalize(start), ladder.Normalize(end))

	observability.Search().OnSearchStart(ctx, start, end)
	began := time.Now()
	path, found, err := dict.Find(ctx, start, end)
	elapsed := time.Since(began)
	observability.Search().OnSearchComplete(ctx, start, end, found, path.Steps(), elapsed, err)
	if err != nil {
		return wordio.Result{}, err
	}
	c.Logger.Infof("Search finished (%s)", elapsed.Round(time.Millisecond))

	return wordio.NewResult(start, end, path, found, elapsed), nil
}

// writeOutput writes res to the output path, with "" and "-" meaning stdout.
func writeOutput(res wordio.Result, output string, asJSON bool) error {
	if output == "" || output == "-" {
		if asJSON {
			return wordio.WriteResultJSON(res, os.Stdout)
		}
		return wordio.WriteResult(res, os.Stdout)
	}
	if err := errors.ValidateOutputPath(output); err != nil {
		return err
	}
	return wordio.ExportResult(res, output, asJSON)
}

// nopCloser wraps an io.Writer with a no-op Close method.
// It makes os.Stdout compatible with io.WriteCloser.
type nopCloser struct{ io.Writer }

// Close implements io.Closer with a no-op.
func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path.
// If path is empty or "-", it returns os.Stdout wrapped in nopCloser.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopCloser{os.Stdout}, nil
	}
	if err := errors.ValidateOutputPath(path); err != nil {
		return nil, err
	}
	return os.Create(path)
}
