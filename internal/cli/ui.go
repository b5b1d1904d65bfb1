package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Styles
// =============================================================================

var (
	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)

	// StyleWord for ladder words.
	StyleWord = lipgloss.NewStyle().Foreground(colorCyan)
)

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconInfo    = "›"
	iconArrow   = "→"
)

// =============================================================================
// Status Output
// =============================================================================

// printSuccess prints a success message.
func printSuccess(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconSuccess.Render(iconSuccess) + " " + msg)
}

// printError prints an error message.
func printError(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconError.Render(iconError) + " " + msg)
}

// printWarning prints a warning message.
func printWarning(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconWarning.Render(iconWarning) + " " + StyleWarning.Render(msg))
}

// printInfo prints an info/status message.
func printInfo(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconInfo.Render(iconInfo) + " " + msg)
}

// printDetail prints a detail line (indented).
func printDetail(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println("  " + StyleDim.Render(msg))
}

// printFile prints a file output line.
func printFile(path string) {
	fmt.Println("  " + StyleDim.Render(iconArrow) + " " + StyleValue.Render(path))
}

// printLadder prints a ladder on one indented line: cat → cot → cog → dog.
func printLadder(words []string) {
	styled := make([]string, len(words))
	for i, w := range words {
		styled[i] = StyleWord.Render(w)
	}
	sep := " " + StyleDim.Render(iconArrow) + " "
	fmt.Println("  " + strings.Join(styled, sep))
}
