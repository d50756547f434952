// Package result holds the outcome of one duplicate analysis.
package result

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/mfenerich/duplicate-letter-fest/internal/model"
)

const labelWidth = 23

// Result pairs one analyzed input with its findings and timing.
// Constructed once per input and never mutated afterward.
type Result struct {
	inputText  string
	duplicates []string
	duration   time.Duration
	memory     *model.MemoryStats
}

// New builds a Result. The duplicates slice is copied so later caller
// mutations cannot reach the record.
func New(inputText string, duplicates []string, duration time.Duration, memory *model.MemoryStats) Result {
	dups := make([]string, len(duplicates))
	copy(dups, duplicates)
	var mem *model.MemoryStats
	if memory != nil {
		m := *memory
		mem = &m
	}
	return Result{
		inputText:  inputText,
		duplicates: dups,
		duration:   duration,
		memory:     mem,
	}
}

// InputText returns the analyzed text.
func (r Result) InputText() string {
	return r.inputText
}

// Duplicates returns the repeated characters in first-occurrence order.
func (r Result) Duplicates() []string {
	dups := make([]string, len(r.duplicates))
	copy(dups, r.duplicates)
	return dups
}

// Duration returns the measured finder runtime.
func (r Result) Duration() time.Duration {
	return r.duration
}

// SummaryLines renders the fixed-order human-readable summary. Four
// lines always; two more when memory stats were recorded.
func (r Result) SummaryLines() []string {
	duplicates := "None"
	if len(r.duplicates) > 0 {
		duplicates = strings.Join(r.duplicates, ", ")
	}
	lines := []string{
		fmt.Sprintf("%-*s: '%s'", labelWidth, "Input text", r.inputText),
		fmt.Sprintf("%-*s: %d characters", labelWidth, "Length", utf8.RuneCountInString(r.inputText)),
		fmt.Sprintf("%-*s: %s", labelWidth, "Duplicates", duplicates),
		fmt.Sprintf("%-*s: %.6f seconds", labelWidth, "Algorithm time", r.duration.Seconds()),
	}
	if r.memory != nil {
		lines = append(lines,
			fmt.Sprintf("%-*s: %.2f KiB", labelWidth, "Memory current usage", float64(r.memory.Current)/1024),
			fmt.Sprintf("%-*s: %.2f KiB", labelWidth, "Memory peak usage", float64(r.memory.Peak)/1024),
		)
	}
	return lines
}
