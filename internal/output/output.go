// Package output renders command results for people or for scripts.
//
// A Printer writes results to stdout and diagnostics to stderr. In JSON
// mode results are emitted as indented JSON and nothing else goes to
// stdout; in human mode they are drawn as tables with colored status
// lines. Quiet mode drops success messages only.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/fatih/color"
	"gopkg.in/yaml.v3"
)

// Options selects the rendering mode.
type Options struct {
	JSON  bool
	Quiet bool
}

// Printer renders results.
type Printer struct {
	out  io.Writer
	err  io.Writer
	opts Options
}

// New returns a Printer writing results to out and diagnostics to errw.
func New(out, errw io.Writer, opts Options) *Printer {
	return &Printer{out: out, err: errw, opts: opts}
}

// JSONMode reports whether results are emitted as JSON.
func (p *Printer) JSONMode() bool { return p.opts.JSON }

// Quiet reports whether success messages are suppressed.
func (p *Printer) Quiet() bool { return p.opts.Quiet }

// Out is the result stream.
func (p *Printer) Out() io.Writer { return p.out }

// JSON writes v as indented JSON.
func (p *Printer) JSON(v any) error {
	enc := json.NewEncoder(p.out)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// YAML writes v as a YAML document.
func (p *Printer) YAML(v any) error {
	enc := yaml.NewEncoder(p.out)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// Println writes a plain line of result text.
func (p *Printer) Println(s string) {
	fmt.Fprintln(p.out, s)
}

// Success prints a green confirmation unless quiet.
func (p *Printer) Success(format string, args ...any) {
	if p.opts.Quiet {
		return
	}
	color.New(color.FgGreen).Fprintf(p.out, format+"\n", args...)
}

// Notice prints a yellow informational line, such as an empty result.
func (p *Printer) Notice(format string, args ...any) {
	color.New(color.FgYellow).Fprintf(p.out, format+"\n", args...)
}

// Heading prints a bold green line introducing a block of output.
func (p *Printer) Heading(format string, args ...any) {
	color.New(color.FgGreen, color.Bold).Fprintf(p.out, format+"\n", args...)
}

// Error prints a red line on the diagnostic stream.
func (p *Printer) Error(format string, args ...any) {
	color.New(color.FgRed).Fprintf(p.err, format+"\n", args...)
}

// Column describes one table column.
type Column struct {
	Title string
	Color lipgloss.Color
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// Table draws rows under a title. Rows shorter than columns are padded.
func (p *Printer) Table(title string, columns []Column, rows [][]string) {
	headers := make([]string, len(columns))
	for i, c := range columns {
		headers[i] = c.Title
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers(headers...).
		Rows(padRows(rows, len(columns))...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if col < len(columns) && columns[col].Color != "" {
				return cellStyle.Foreground(columns[col].Color)
			}
			return cellStyle
		})

	p.render(title, t)
}

// Detail draws key/value pairs as a two-column table with row separators.
func (p *Printer) Detail(title string, rows [][]string) {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		BorderRow(true).
		Rows(padRows(rows, 2)...).
		StyleFunc(func(_, col int) lipgloss.Style {
			if col == 0 {
				return cellStyle.Foreground(lipgloss.Color("6"))
			}
			return cellStyle
		})

	p.render(title, t)
}

func (p *Printer) render(title string, t *table.Table) {
	var b strings.Builder
	if title != "" {
		b.WriteString(titleStyle.Render(title))
		b.WriteByte('\n')
	}
	b.WriteString(t.String())
	b.WriteByte('\n')
	_, _ = io.WriteString(p.out, b.String())
}

func padRows(rows [][]string, width int) [][]string {
	out := make([][]string, len(rows))
	for i, r := range rows {
		if len(r) >= width {
			out[i] = r
			continue
		}
		padded := make([]string, width)
		copy(padded, r)
		out[i] = padded
	}
	return out
}
