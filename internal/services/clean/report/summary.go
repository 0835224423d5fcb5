// Package report renders run results: the human summary on stdout and the
// optional machine readable report file
package report

import (
	"bufio"
	"fmt"
	"io"

	"bitextclean/internal/core/pipeline"
	"bitextclean/internal/services/clean/domain"
)

const labelWidth = 25

// Summary writes the per-reason breakdown in pipeline order followed by the
// malformed and kept counts and where the cleaned rows went
func Summary(w io.Writer, res domain.Result) error {
	bw := bufio.NewWriter(w)
	line := func(label string, n int) { _, _ = fmt.Fprintf(bw, "%-*s: %d\n", labelWidth, label, n) }

	line("Total rows processed", res.Tally.Total)
	for _, r := range pipeline.Reasons() {
		line(r.Label(), res.Tally.Count(r.String()))
	}
	line("Malformed rows", res.Tally.Malformed)
	line("Rows kept", res.Tally.Kept)

	if res.DryRun {
		_, _ = fmt.Fprintln(bw, "Dry run: no cleaned data written")
	} else {
		_, _ = fmt.Fprintf(bw, "Cleaned data written to: %s\n", res.Output)
	}
	return bw.Flush()
}
