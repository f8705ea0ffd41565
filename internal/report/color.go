package report

import (
	"fmt"

	"github.com/fatih/color"
)

// Shared color printers for the text report.
var (
	colorRed    = color.New(color.FgRed)
	colorYellow = color.New(color.FgYellow)
	colorGreen  = color.New(color.FgGreen)
	colorBold   = color.New(color.Bold)
)

// SectionTitle renders a bold section title.
func SectionTitle(title string) string {
	return colorBold.Sprint(title)
}

// colorCount colors a smell count: 1 is yellow, more is red.
func colorCount(n int) string {
	s := fmt.Sprintf("%d", n)
	if n > 1 {
		return colorRed.Sprint(s)
	}
	return colorYellow.Sprint(s)
}

// colorClean renders the no-smells message.
func colorClean(s string) string {
	return colorGreen.Sprint(s)
}

// colorWarn renders a warning line.
func colorWarn(s string) string {
	return colorYellow.Sprint(s)
}
