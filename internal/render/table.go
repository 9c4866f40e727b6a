package render

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
)

// Table draws a box-drawing bordered table. Cells are padded before coloring so
// escape codes never skew column widths.
type Table struct {
	Headers []string
	Rows    [][]Cell
	Indent  string
}

// Cell is a plain text value with an optional color applied after padding.
type Cell struct {
	Text  string
	Color *color.Color
	Right bool
}

func Plain(s string) Cell {
	return Cell{Text: s}
}

func (t *Table) widths() []int {
	widths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		widths[i] = utf8.RuneCountInString(h)
	}
	for _, row := range t.Rows {
		for i, c := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], utf8.RuneCountInString(c.Text))
			}
		}
	}
	return widths
}

func (t *Table) border(widths []int, left, mid, right string) string {
	parts := make([]string, len(widths))
	for i, w := range widths {
		parts[i] = strings.Repeat("─", w+2)
	}
	return t.Indent + left + strings.Join(parts, mid) + right
}

func pad(s string, width int, right bool) string {
	gap := width - utf8.RuneCountInString(s)
	if gap <= 0 {
		return s
	}
	if right {
		return strings.Repeat(" ", gap) + s
	}
	return s + strings.Repeat(" ", gap)
}

func (t *Table) Render(w io.Writer) {
	widths := t.widths()
	bold := color.New(color.Bold).SprintFunc()

	fmt.Fprintln(w, t.border(widths, "┌", "┬", "┐"))
	cells := make([]string, len(t.Headers))
	for i, h := range t.Headers {
		cells[i] = " " + bold(pad(h, widths[i], false)) + " "
	}
	fmt.Fprintln(w, t.Indent+"│"+strings.Join(cells, "│")+"│")
	fmt.Fprintln(w, t.border(widths, "├", "┼", "┤"))

	for _, row := range t.Rows {
		cells := make([]string, len(t.Headers))
		for i := range t.Headers {
			var c Cell
			if i < len(row) {
				c = row[i]
			}
			text := pad(c.Text, widths[i], c.Right)
			if c.Color != nil {
				text = c.Color.Sprint(text)
			}
			cells[i] = " " + text + " "
		}
		fmt.Fprintln(w, t.Indent+"│"+strings.Join(cells, "│")+"│")
	}
	fmt.Fprintln(w, t.border(widths, "└", "┴", "┘"))
}

// BoxedHeader prints the title in a Unicode box with a fixed width.
func BoxedHeader(w io.Writer, title string) {
	width := 40
	cyanBold := color.New(color.FgCyan, color.Bold).SprintFunc()
	border := strings.Repeat("═", width)
	fmt.Fprintln(w, cyanBold("╔"+border+"╗"))
	fmt.Fprintln(w, cyanBold("║"+centerText(title, width)+"║"))
	fmt.Fprintln(w, cyanBold("╚"+border+"╝"))
}

func centerText(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	padding := (width - n) / 2
	return strings.Repeat(" ", padding) + s + strings.Repeat(" ", width-n-padding)
}
