package ui

import (
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Palette holds the colors used for the report. It is decided once at startup
// and passed to whatever prints; a disabled palette renders plain text.
type Palette struct {
	pass   *color.Color
	fail   *color.Color
	header *color.Color
	file   *color.Color
	muted  *color.Color
}

// NewPalette creates a Palette. PASS is bright green (SGR 92) and FAIL bright
// red (SGR 91), each followed by a reset.
func NewPalette(enabled bool) Palette {
	p := Palette{
		pass:   color.New(color.FgHiGreen),
		fail:   color.New(color.FgHiRed),
		header: color.New(color.FgCyan),
		file:   color.New(color.FgYellow),
		muted:  color.New(color.FgHiBlack),
	}
	for _, c := range []*color.Color{p.pass, p.fail, p.header, p.file, p.muted} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// DetectPalette enables colors only when f is a terminal and NO_COLOR is unset
func DetectPalette(f *os.File) Palette {
	return NewPalette(IsTerminal(f) && os.Getenv("NO_COLOR") == "")
}

// IsTerminal reports whether f is attached to an interactive terminal
func IsTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Pass renders text in the success color
func (p Palette) Pass(text string) string { return p.pass.Sprint(text) }

// Fail renders text in the failure color
func (p Palette) Fail(text string) string { return p.fail.Sprint(text) }

// Header renders text in the heading color
func (p Palette) Header(text string) string { return p.header.Sprint(text) }

// File renders a file name
func (p Palette) File(text string) string { return p.file.Sprint(text) }

// Muted renders secondary text
func (p Palette) Muted(text string) string { return p.muted.Sprint(text) }
