package ui

import (
	"bytes"
	"fmt"
	"io"

	"shtest/internal/domain"
)

// Reporter prints one line per executed test
type Reporter struct {
	out     io.Writer
	errOut  io.Writer
	palette Palette
	width   int
}

// NewReporter creates a Reporter. Labels are padded to width columns.
func NewReporter(out, errOut io.Writer, palette Palette, width int) *Reporter {
	return &Reporter{
		out:     out,
		errOut:  errOut,
		palette: palette,
		width:   width,
	}
}

// Start prints the padded label and the ellipsis, without a newline
func (r *Reporter) Start(label string) {
	fmt.Fprintf(r.out, "%-*s... ", r.width, label)
}

// Finish completes the line started by Start. On failure the captured output
// of the test is dumped to the matching stream.
func (r *Reporter) Finish(result domain.ExecutionResult) {
	if result.Passed() {
		fmt.Fprintln(r.out, r.palette.Pass("PASS"))
		return
	}

	fmt.Fprintln(r.out, r.palette.Fail("FAIL"))
	dump(r.out, result.Stdout)
	dump(r.errOut, result.Stderr)
}

// Abort ends a line whose test could not be started
func (r *Reporter) Abort() {
	fmt.Fprintln(r.out, r.palette.Fail("FAIL"))
}

// dump writes raw bytes, ending them with a newline so the next report line
// starts in column 0
func dump(w io.Writer, data []byte) {
	if len(data) == 0 {
		return
	}
	w.Write(data)
	if !bytes.HasSuffix(data, []byte("\n")) {
		io.WriteString(w, "\n")
	}
}
