package ui

import (
	"fmt"
	"io"

	"shtest/internal/domain"
)

// Formatter formats and displays output beyond the per-test lines
type Formatter struct {
	out     io.Writer
	palette Palette
}

// NewFormatter creates a new Formatter
func NewFormatter(out io.Writer, palette Palette) *Formatter {
	return &Formatter{
		out:     out,
		palette: palette,
	}
}

// PrintTestList prints the discovered tests as a tree rooted at the directory
func (f *Formatter) PrintTestList(dir string, tests []domain.TestCase) {
	if len(tests) == 0 {
		fmt.Fprintln(f.out, f.palette.Muted("No tests found"))
		return
	}

	fmt.Fprintln(f.out, f.palette.Header(fmt.Sprintf("Found %d test file(s) in %s:", len(tests), dir)))
	for i, test := range tests {
		connector := "├── "
		if i == len(tests)-1 {
			connector = "└── "
		}
		fmt.Fprintf(f.out, "%s%s\n", connector, f.palette.File(test.Name))
	}
}

// PrintSummary prints pass, fail and skip counts for a finished run
func (f *Formatter) PrintSummary(agg domain.Aggregate) {
	passed := f.palette.Pass(fmt.Sprintf("%d passed", agg.Passed))
	failed := fmt.Sprintf("%d failed", agg.Failed)
	if agg.Failed > 0 {
		failed = f.palette.Fail(failed)
	}
	skipped := f.palette.Muted(fmt.Sprintf("%d skipped", agg.Skipped))

	fmt.Fprintf(f.out, "\n%s, %s, %s (%.2fs)\n", passed, failed, skipped, agg.Duration.Seconds())
}
