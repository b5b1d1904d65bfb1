// Package wordio provides the I/O boundary around the ladder search core:
// reading newline-delimited word lists and writing search results.
//
// The core in [pkg/ladder] never touches files. This package owns the two
// collaborator contracts around it:
//
//   - Dictionary loader: [ReadWords] / [ImportWords] parse a word list,
//     lowercasing entries, trimming whitespace, and skipping blank or
//     malformed lines while preserving file order. File order is
//     significant: it fixes ladder tie-breaking downstream.
//   - Result writer: [WriteLadder] / [ExportLadder] serialize a ladder one
//     word per line; [WriteNoPath] emits the single "no path found" line
//     for the not-found outcome.
//
// # JSON Results
//
// [Result] is the machine-readable form of one search, shared by the CLI's
// --json mode and the HTTP API:
//
//	{
//	  "start": "cat",
//	  "end": "dog",
//	  "found": true,
//	  "ladder": ["cat", "cot", "cog", "dog"],
//	  "steps": 3
//	}
//
// [pkg/ladder]: github.com/ytkachuk12/wordgraph/pkg/ladder
package wordio
