package console

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/npillmayer/notation"
)

// Severity classifies messages.
type Severity int

const (
	Info Severity = iota
	Warning
	Error
)

func (s Severity) String() string {
	switch s {
	case Warning:
		return "warning"
	case Error:
		return "error"
	}
	return "info"
}

// indent is the left margin of an expression shown with a diagnostic.
const indent = "    "

// Printer outputs messages and diagnostics to a terminal.
type Printer struct {
	out    io.Writer
	config Config
	colors map[Severity]*color.Color
	accent *color.Color // color of the caret
}

// NewPrinter creates a printer writing to out.
//
// If config is nil, a config is created from the current terminal's
// properties. colors maps severities to colors; it may contain a subset of
// the severities, and may be nil to use a default palette.
func NewPrinter(out io.Writer, config *Config, colors map[Severity]*color.Color) *Printer {
	if config == nil {
		config = ConfigFromTerminal()
	}
	p := &Printer{
		out:    out,
		config: *config,
		colors: colors,
		accent: color.New(color.FgHiRed, color.Bold),
	}
	if p.colors == nil {
		p.colors = makeDefaultPalette()
	}
	if p.config.LineWidth <= 0 {
		p.config.LineWidth = DefaultLineWidth
	}
	for _, c := range append(p.palette(), p.accent) {
		switch p.config.Color {
		case ColorAlways:
			c.EnableColor()
		case ColorNever:
			c.DisableColor()
		}
	}
	return p
}

func makeDefaultPalette() map[Severity]*color.Color {
	return map[Severity]*color.Color{
		Info:    color.New(color.FgGreen),
		Warning: color.New(color.FgYellow),
		Error:   color.New(color.FgRed),
	}
}

func (p *Printer) palette() []*color.Color {
	cs := make([]*color.Color, 0, len(p.colors))
	for _, c := range p.colors {
		cs = append(cs, c)
	}
	return cs
}

// Printf outputs a message with a given severity, followed by a newline.
func (p *Printer) Printf(sev Severity, format string, args ...interface{}) {
	s := fmt.Sprintf(format, args...)
	if c, ok := p.colors[sev]; ok {
		c.Fprint(p.out, s)
	} else {
		io.WriteString(p.out, s)
	}
	io.WriteString(p.out, "\n")
}

// Diagnostic outputs an error for the expression on a given line of input.
// If err is located at a column of expr and the expression fits into the
// line width, the expression is shown with a caret below that column.
func (p *Printer) Diagnostic(line int, expr string, err error) {
	if err == nil {
		return
	}
	p.Printf(Error, "line %d: %s", line, err.Error())
	col, ok := column(err)
	if !ok {
		return
	}
	width := DisplayWidth(indent+expr, p.config.Context)
	if width >= p.config.LineWidth {
		tracer().Debugf("expression too wide for caret (%d en)", width)
		return
	}
	fmt.Fprintf(p.out, "%s%s\n", indent, expr)
	p.accent.Fprint(p.out, indent+Caret(expr, col, p.config.Context))
	io.WriteString(p.out, "\n")
}

// column returns the rune column of errors which point into infix input.
// Errors from postfix input are located by token index, not by column.
func column(err error) (int, bool) {
	var lexErr *notation.LexError
	if errors.As(err, &lexErr) {
		return lexErr.Col, true
	}
	var parenErr *notation.MismatchedParenthesesError
	if errors.As(err, &parenErr) {
		return parenErr.Col, true
	}
	return 0, false
}
