package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/muesli/termenv"
)

// Colors used in command output.
var (
	colorPrimary = lipgloss.Color("#7C3AED") // Purple
	colorSuccess = lipgloss.Color("#10B981") // Green
	colorWarning = lipgloss.Color("#F59E0B") // Amber
	colorError   = lipgloss.Color("#EF4444") // Red
	colorMuted   = lipgloss.Color("#9CA3AF") // Light gray
)

// printer renders tables and status lines for one output stream.
// Colors are dropped when the stream is not a terminal or color is disabled.
type printer struct {
	out     io.Writer
	header  lipgloss.Style
	cell    lipgloss.Style
	border  lipgloss.Style
	muted   lipgloss.Style
	success lipgloss.Style
	warning lipgloss.Style
	failure lipgloss.Style
	label   lipgloss.Style
}

func newPrinter(out io.Writer, noColor bool) *printer {
	r := lipgloss.NewRenderer(out)
	if noColor {
		r.SetColorProfile(termenv.Ascii)
	}
	return &printer{
		out:     out,
		header:  r.NewStyle().Bold(true).Foreground(colorPrimary).Padding(0, 1),
		cell:    r.NewStyle().Padding(0, 1),
		border:  r.NewStyle().Foreground(colorMuted),
		muted:   r.NewStyle().Foreground(colorMuted),
		success: r.NewStyle().Foreground(colorSuccess),
		warning: r.NewStyle().Foreground(colorWarning),
		failure: r.NewStyle().Foreground(colorError).Bold(true),
		label:   r.NewStyle().Bold(true),
	}
}

// table prints rows under headers with a single rule below the header.
func (p *printer) table(headers []string, rows [][]string) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(p.border).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderColumn(false).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return p.header
			}
			return p.cell
		})
	_, _ = fmt.Fprintln(p.out, t.Render())
}

// field prints an aligned "label: value" line.
func (p *printer) field(label, value string) {
	_, _ = fmt.Fprintf(p.out, "%s %s\n", p.label.Render(fmt.Sprintf("%-10s", label+":")), value)
}

func (p *printer) println(s string) {
	_, _ = fmt.Fprintln(p.out, s)
}

func (p *printer) printf(format string, a ...any) {
	_, _ = fmt.Fprintf(p.out, format, a...)
}
