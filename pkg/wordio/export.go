package wordio

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/ytkachuk12/wordgraph/pkg/ladder"
)

// NoPathMessage is the single line written when no ladder exists.
const NoPathMessage = "no path found"

// Result is the serializable form of one completed search.
type Result struct {
	Start    string        `json:"start"`
	End      string        `json:"end"`
	Found    bool          `json:"found"`
	Ladder   ladder.Ladder `json:"ladder,omitempty"`
	Steps    int           `json:"steps"`
	Duration string        `json:"duration,omitempty"`
	SearchID string        `json:"search_id,omitempty"`
}

// NewResult assembles a Result from a finished search.
func NewResult(start, end string, path ladder.Ladder, found bool, elapsed time.Duration) Result {
	return Result{
		Start:    ladder.Normalize(start),
		End:      ladder.Normalize(end),
		Found:    found,
		Ladder:   path,
		Steps:    path.Steps(),
		Duration: elapsed.Round(time.Microsecond).String(),
	}
}

// WriteLadder writes a ladder to w, one word per line.
func WriteLadder(l ladder.Ladder, w io.Writer) error {
	for _, word := range l {
		if _, err := fmt.Fprintln(w, word); err != nil {
			return fmt.Errorf("write ladder: %w", err)
		}
	}
	return nil
}

// WriteNoPath writes the single "no path found" line to w.
// The not-found outcome still produces output: a consumer reading the
// result file can always tell a finished search from a missing one.
func WriteNoPath(w io.Writer) error {
	if _, err := fmt.Fprintln(w, NoPathMessage); err != nil {
		return fmt.Errorf("write result: %w", err)
	}
	return nil
}

// WriteResult writes the plain-text form of res to w: the ladder one word
// per line when found, the no-path line otherwise.
func WriteResult(res Result, w io.Writer) error {
	if !res.Found {
		return WriteNoPath(w)
	}
	return WriteLadder(res.Ladder, w)
}

// WriteResultJSON writes res as indented JSON to w.
func WriteResultJSON(res Result, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(res); err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	return nil
}

// ExportResult writes res to the file at path, overwriting any previous
// content. When asJSON is set the JSON form is written instead of the
// one-word-per-line text form.
func ExportResult(res Result, path string, asJSON bool) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if asJSON {
		return WriteResultJSON(res, f)
	}
	return WriteResult(res, f)
}

// ExportLadder writes a ladder to a text file at path, one word per line.
func ExportLadder(l ladder.Ladder, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteLadder(l, f)
}
