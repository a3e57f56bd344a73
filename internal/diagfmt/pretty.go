package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"minicheck/internal/diag"
	"minicheck/internal/source"
)

// Pretty renders diagnostics in human-readable form, in bag order (call
// bag.Sort() beforehand for deterministic output). Each diagnostic prints
//
//	<path>:<line>:<col>: <SEV> [<CODE>]: <message>
//
// followed by the source line with a ^~~~ underline covering the span, then
// the notes.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		prettyOne(w, d, fs, opts)
	}
}

func prettyOne(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	file := fs.Get(d.Primary.File)
	start, _ := fs.Resolve(d.Primary)

	sev := severityLabel(d.Severity, opts.Color)
	fmt.Fprintf(w, "%s:%d:%d: %s [%s]: %s\n",
		file.Path, start.Line, start.Col, sev, d.Code.ID(), d.Message)

	writeContext(w, file, d.Primary, start, opts)

	if opts.ShowNotes {
		for _, n := range d.Notes {
			fmt.Fprintf(w, "  note: %s\n", n.Msg)
		}
	}
}

func severityLabel(sev diag.Severity, colored bool) string {
	if !colored {
		return sev.String()
	}
	var c *color.Color
	switch sev {
	case diag.SevError:
		c = color.New(color.FgRed, color.Bold)
	case diag.SevWarning:
		c = color.New(color.FgYellow, color.Bold)
	default:
		c = color.New(color.FgCyan)
	}
	c.EnableColor()
	return c.Sprint(sev.String())
}

// writeContext prints up to opts.Context lines before the primary line, the
// primary line itself, and the caret underline aligned with the span.
func writeContext(w io.Writer, file *source.File, sp source.Span, start source.LineCol, opts PrettyOpts) {
	line := file.GetLine(start.Line)
	if line == "" && start.Col == 1 && len(file.Content) == 0 {
		return
	}

	firstLine := start.Line
	if ctx := uint32(max(int(opts.Context), 0)); ctx < firstLine-1 {
		firstLine -= ctx
	} else {
		firstLine = 1
	}
	gutter := len(fmt.Sprintf("%d", start.Line))

	for n := firstLine; n < start.Line; n++ {
		fmt.Fprintf(w, "  %*d | %s\n", gutter, n, file.GetLine(n))
	}
	fmt.Fprintf(w, "  %*d | %s\n", gutter, start.Line, line)

	// the caret column is the display width of everything left of the span
	col := int(start.Col) - 1
	if col > len(line) {
		col = len(line)
	}
	pad := runewidth.StringWidth(line[:col])

	width := 1
	if end := col + int(sp.Len()); end <= len(line) && end > col {
		width = runewidth.StringWidth(line[col:end])
	}
	underline := "^"
	if width > 1 {
		underline += strings.Repeat("~", width-1)
	}
	fmt.Fprintf(w, "  %*s | %s%s\n", gutter, "", strings.Repeat(" ", pad), underline)
}
