// Package diag renders lexer and parser errors as caret diagnostics.
package diag

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/CrimsonDemon567/lumo/internal/lexer"
)

// Positioned is implemented by errors that know where they occurred.
type Positioned interface {
	Position() lexer.Position
}

// Printer formats diagnostics for one output stream.
type Printer struct {
	location lipgloss.Style
	severity lipgloss.Style
	gutter   lipgloss.Style
	caret    lipgloss.Style
	ok       lipgloss.Style
}

// NewPrinter returns a printer whose styling matches w. With color off,
// output is plain text.
func NewPrinter(w io.Writer, color bool) *Printer {
	r := lipgloss.NewRenderer(w)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}
	return &Printer{
		location: r.NewStyle().Bold(true),
		severity: r.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		gutter:   r.NewStyle().Foreground(lipgloss.Color("8")),
		caret:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		ok:       r.NewStyle().Foreground(lipgloss.Color("10")),
	}
}

// Render formats err against src. Errors without a position are
// reported against the file alone.
func (p *Printer) Render(filename, src string, err error) string {
	var sb strings.Builder

	var positioned Positioned
	if !errors.As(err, &positioned) {
		fmt.Fprintf(&sb, "%s %s %s\n", p.location.Render(filename+":"), p.severity.Render("error:"), err)
		return sb.String()
	}

	pos := positioned.Position()
	msg := strings.TrimPrefix(err.Error(), pos.String()+": ")
	fmt.Fprintf(&sb, "%s %s %s\n",
		p.location.Render(fmt.Sprintf("%s:%d:%d:", filename, pos.Line, pos.Column)),
		p.severity.Render("error:"),
		msg)

	line, ok := sourceLine(src, pos.Line)
	if !ok {
		return sb.String()
	}
	fmt.Fprintf(&sb, "%s%s\n", p.gutter.Render(fmt.Sprintf("%4d | ", pos.Line)), line)
	fmt.Fprintf(&sb, "%s%s%s\n", p.gutter.Render("     | "), padding(line, pos.Column), p.caret.Render("^"))
	return sb.String()
}

// Fprint writes the rendered diagnostic to w.
func (p *Printer) Fprint(w io.Writer, filename, src string, err error) error {
	_, werr := io.WriteString(w, p.Render(filename, src, err))
	return werr
}

// OK formats a success line for filename.
func (p *Printer) OK(filename string) string {
	return fmt.Sprintf("%s %s\n", p.location.Render(filename+":"), p.ok.Render("ok"))
}

func sourceLine(src string, n int) (string, bool) {
	if n < 1 {
		return "", false
	}
	lines := strings.Split(src, "\n")
	if n > len(lines) {
		return "", false
	}
	return strings.TrimSuffix(lines[n-1], "\r"), true
}

// padding reproduces the whitespace before column col so the caret
// lines up even when the line contains tabs.
func padding(line string, col int) string {
	var sb strings.Builder
	i := 1
	for _, r := range line {
		if i >= col {
			break
		}
		if r == '\t' {
			sb.WriteRune('\t')
		} else {
			sb.WriteRune(' ')
		}
		i++
	}
	for ; i < col; i++ {
		sb.WriteRune(' ')
	}
	return sb.String()
}
