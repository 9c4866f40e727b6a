package render

import (
	"fmt"
	"io"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
)

type Bar struct {
	Label string
	Value float64
}

var barPalette = []color.Attribute{
	color.FgGreen, color.FgCyan, color.FgYellow,
	color.FgMagenta, color.FgBlue, color.FgRed,
}

// BarChart draws horizontal bars scaled so the largest value spans width cells.
func BarChart(w io.Writer, title string, bars []Bar, width int) {
	if width <= 0 {
		width = 40
	}
	fmt.Fprintln(w, color.New(color.FgGreen, color.Bold).Sprint(title))
	if len(bars) == 0 {
		fmt.Fprintln(w, color.New(color.FgMagenta).Sprint("  No data."))
		return
	}

	labelWidth := 0
	maxValue := 0.0
	for _, b := range bars {
		labelWidth = max(labelWidth, utf8.RuneCountInString(b.Label))
		maxValue = math.Max(maxValue, b.Value)
	}

	for i, b := range bars {
		n := barLength(b.Value, maxValue, width)
		bar := color.New(barPalette[i%len(barPalette)]).Sprint(strings.Repeat("█", n))
		fmt.Fprintf(w, "  %s │%s %s\n", pad(b.Label, labelWidth, false), bar, formatNumber(b.Value))
	}
}

func barLength(v, maxValue float64, width int) int {
	if maxValue <= 0 || v <= 0 {
		return 0
	}
	n := int(math.Round(v / maxValue * float64(width)))
	// Any positive value stays visible.
	return max(n, 1)
}

func formatNumber(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.2f", v)
}
