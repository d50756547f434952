// Package balloon renders duplicate characters as terminal balloons.
package balloon

import (
	"fmt"
	"io"

	"github.com/mfenerich/duplicate-letter-fest/internal/result"
)

// PrintSummary writes the plain-text summary for a result.
func PrintSummary(w io.Writer, res result.Result) error {
	if _, err := fmt.Fprintln(w, "\nSummary:"); err != nil {
		return err
	}
	for _, line := range res.SummaryLines() {
		if _, err := fmt.Fprintf(w, "  %s\n", line); err != nil {
			return err
		}
	}
	return nil
}
