package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"sdml/internal/diag"
	"sdml/internal/source"
)

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <path>:<line>:<col>: <SEV> <CODE>: <Message>
// затем контекст строки с подчёркиванием ^~~~ по Span, затем Notes с аналогичным форматом.
// Цвет включается опцией.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	p := prettyPrinter{w: w, fs: fs, opts: opts}
	for _, d := range bag.Items() {
		p.diagnostic(d)
	}
}

type prettyPrinter struct {
	w    io.Writer
	fs   *source.FileSet
	opts PrettyOpts
}

func (p prettyPrinter) diagnostic(d diag.Diagnostic) {
	file := p.fs.Get(d.Primary.File)
	start, end := p.fs.Resolve(d.Primary)

	fmt.Fprintf(p.w, "%s:%d:%d: %s %s: %s\n",
		p.path(file), start.Line, start.Col,
		p.severity(d.Severity), p.code(d.Code), d.Message)

	p.sourceContext(file, start, end)

	if p.opts.ShowNotes {
		for _, note := range d.Notes {
			nf := p.fs.Get(note.Span.File)
			npos, _ := p.fs.Resolve(note.Span)
			fmt.Fprintf(p.w, "  note: %s:%d:%d: %s\n",
				p.path(nf), npos.Line, npos.Col, note.Msg)
		}
	}
}

// sourceContext prints the primary line with its caret underline, plus the
// configured number of surrounding lines.
func (p prettyPrinter) sourceContext(file *source.File, start, end source.LineCol) {
	ctx := uint32(0)
	if p.opts.Context > 0 {
		ctx = uint32(p.opts.Context)
	}

	first := uint32(1)
	if start.Line > ctx {
		first = start.Line - ctx
	}
	for line := first; line <= start.Line+ctx; line++ {
		text := file.GetLine(line)
		if text == "" && line != start.Line {
			continue
		}
		fmt.Fprintf(p.w, "%5d | %s\n", line, text)
		if line == start.Line {
			p.underline(text, start, end)
		}
	}
}

// underline emits the ^~~~ marker aligned under the span. Tabs in the
// prefix are preserved so the marker lines up at any tab width; everything
// else is padded by display width.
func (p prettyPrinter) underline(text string, start, end source.LineCol) {
	if start.Col == 0 || int(start.Col)-1 > len(text) {
		return
	}
	prefix := text[:start.Col-1]

	var pad strings.Builder
	for _, r := range prefix {
		if r == '\t' {
			pad.WriteRune('\t')
			continue
		}
		pad.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
	}

	width := 1
	if end.Line == start.Line && end.Col > start.Col {
		span := text[start.Col-1:]
		if int(end.Col)-1 <= len(text) {
			span = text[start.Col-1 : end.Col-1]
		}
		width = max(runewidth.StringWidth(span), 1)
	}

	marker := "^" + strings.Repeat("~", width-1)
	if p.opts.Color {
		marker = color.New(color.FgGreen, color.Bold).Sprint(marker)
	}
	fmt.Fprintf(p.w, "      | %s%s\n", pad.String(), marker)
}

func (p prettyPrinter) path(file *source.File) string {
	switch p.opts.PathMode {
	case PathModeAbsolute:
		return file.FormatPath("absolute", "")
	case PathModeRelative:
		return file.FormatPath("relative", p.fs.BaseDir())
	case PathModeBasename:
		return file.FormatPath("basename", "")
	default:
		return file.FormatPath("auto", "")
	}
}

func (p prettyPrinter) severity(sev diag.Severity) string {
	if !p.opts.Color {
		return sev.String()
	}
	switch sev {
	case diag.SevError:
		return color.New(color.FgRed, color.Bold).Sprint(sev.String())
	case diag.SevWarning:
		return color.New(color.FgYellow, color.Bold).Sprint(sev.String())
	default:
		return color.New(color.FgCyan).Sprint(sev.String())
	}
}

func (p prettyPrinter) code(c diag.Code) string {
	if !p.opts.Color {
		return c.ID()
	}
	return color.New(color.Bold).Sprint(c.ID())
}
