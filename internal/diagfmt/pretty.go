package diagfmt

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"github.com/romarionagy/pylint/internal/diag"
	"github.com/romarionagy/pylint/internal/source"
)

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <path>:<line>:<col>: <SEV> <CODE>: <Message>
// затем контекст строки с подчёркиванием ^~~~ по Span, затем Notes и Fixes.
// Цвет включается опцией.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	if bag == nil || fs == nil {
		return
	}
	for _, d := range bag.Items() {
		printDiagnostic(w, &d, fs, opts)
	}
}

func printDiagnostic(w io.Writer, d *diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	head := header(d, fs, opts)
	fmt.Fprintln(w, head)

	if line, underline, ok := sourceContext(fs, d.Primary); ok {
		fmt.Fprintf(w, "    %s\n", line)
		fmt.Fprintf(w, "    %s\n", paint(underline, severityColor(d.Severity), opts.Color))
	}

	if opts.ShowNotes {
		for _, note := range d.Notes {
			fmt.Fprintf(w, "    note: %s\n", note.Msg)
		}
	}
	if opts.ShowFixes {
		for _, fix := range d.Fixes {
			for _, edit := range fix.Edits {
				fmt.Fprintf(w, "    fix: replace with `%s`\n", edit.NewText)
			}
		}
	}
}

func header(d *diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) string {
	var b strings.Builder

	if int(d.Primary.File) < fs.Len() {
		f := fs.Get(d.Primary.File)
		start, _ := fs.Resolve(d.Primary)
		b.WriteString(displayPath(f, fs, opts.PathMode))
		fmt.Fprintf(&b, ":%d:%d: ", start.Line, start.Col)
	}

	b.WriteString(paint(d.Severity.String(), severityColor(d.Severity), opts.Color))
	b.WriteByte(' ')
	b.WriteString(paint(d.Code.ID(), color.New(color.Bold), opts.Color))
	if opts.ShowConfidence {
		fmt.Fprintf(&b, " (%s)", d.Confidence)
	}
	b.WriteString(": ")
	b.WriteString(d.Message)
	return b.String()
}

// sourceContext returns the first line the span covers and a ^~~~ underline
// aligned under the spanned text. Wide runes count by display width.
func sourceContext(fs *source.FileSet, span source.Span) (line, underline string, ok bool) {
	if span.Empty() || int(span.File) >= fs.Len() {
		return "", "", false
	}
	f := fs.Get(span.File)
	start, end := fs.Resolve(span)
	line = f.GetLine(start.Line)
	if line == "" {
		return "", "", false
	}

	startCol := int(start.Col)
	endCol := len(line) + 1
	if end.Line == start.Line && int(end.Col) <= endCol {
		endCol = int(end.Col)
	}
	if startCol < 1 || startCol >= endCol {
		return "", "", false
	}

	pad := runewidth.StringWidth(line[:startCol-1])
	width := runewidth.StringWidth(line[startCol-1 : endCol-1])
	if width < 1 {
		width = 1
	}
	underline = strings.Repeat(" ", pad) + "^" + strings.Repeat("~", width-1)
	return line, underline, true
}

func displayPath(f *source.File, fs *source.FileSet, mode PathMode) string {
	switch mode {
	case PathModeAbsolute:
		return f.DisplayPath("", true)
	case PathModeBasename:
		return filepath.Base(f.Path)
	default:
		return f.DisplayPath(fs.BaseDir(), false)
	}
}

func severityColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return color.New(color.FgRed, color.Bold)
	case diag.SevWarning:
		return color.New(color.FgYellow)
	case diag.SevConvention:
		return color.New(color.FgCyan)
	default:
		return color.New(color.FgWhite)
	}
}

func paint(s string, c *color.Color, enabled bool) string {
	if !enabled {
		return s
	}
	c.EnableColor()
	return c.Sprint(s)
}
