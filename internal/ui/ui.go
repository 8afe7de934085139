// Package ui is the shared styling layer for console output.
package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Symbols used by the renderers.
const (
	BoxChecked   = "☑"
	BoxUnchecked = "☐"
	SymCheck     = "✔"
	SymCross     = "✖"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	accentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	pendingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

var colorEnabled = true

// Disable turns all styling off; output becomes plain text.
func Disable() { colorEnabled = false }

func render(st lipgloss.Style, s string) string {
	if !colorEnabled {
		return s
	}
	return st.Render(s)
}

func Title(s string) string  { return render(titleStyle, s) }
func Muted(s string) string  { return render(mutedStyle, s) }
func Accent(s string) string { return render(accentStyle, s) }
func Good(s string) string   { return render(successStyle, s) }
func Bad(s string) string    { return render(errorStyle, s) }
func Warn(s string) string   { return render(pendingStyle, s) }

// OK prints a success line with a leading check mark.
func OK(w io.Writer, msg string) {
	fmt.Fprintln(w, Good(SymCheck+" "+msg))
}

// Fail prints a failure line with a leading cross.
func Fail(w io.Writer, msg string) {
	fmt.Fprintln(w, Bad(SymCross+" "+msg))
}

// Rule draws a muted horizontal separator.
func Rule(width int) string {
	if width < 1 {
		width = 1
	}
	return Muted(strings.Repeat("─", width))
}

// ProgressBar renders a Unicode progress bar with percentage.
func ProgressBar(done, total, width int) string {
	if total <= 0 {
		total = 1
	}
	if width < 5 {
		width = 5
	}
	filled := int(float64(done) / float64(total) * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	pct := int(float64(done) / float64(total) * 100)
	return fmt.Sprintf("%s %3d%%", bar, pct)
}
