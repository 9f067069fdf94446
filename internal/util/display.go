package util

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Terminal control sequences
const (
	ColorReset   = "\033[0m"
	ColorCyan    = "\033[36m"
	ColorGreen   = "\033[32m"
	ColorYellow  = "\033[33m"
	ColorRed     = "\033[31m"
	ColorMagenta = "\033[35m"
	ColorBold    = "\033[1m"
	ColorDim     = "\033[2m"

	ClearScreen       = "\033[2J"
	ClearScrollback   = "\033[3J"
	MoveCursorHome    = "\033[H"
	HideCursor        = "\033[?25l"
	ShowCursor        = "\033[?25h"
	EnterAltScreen    = "\033[?1049h"
	ExitAltScreen     = "\033[?1049l"
	ResetScrollRegion = "\033[r"
	SaveCursor        = "\0337"
	RestoreCursor     = "\0338"
	ClearLine         = "\033[2K"
	ClearToEnd        = "\033[J"
	MoveToBottom      = "\033[999;1H"
)

// GetDisplayWidth returns the number of terminal cells text occupies
func GetDisplayWidth(text string) int {
	return runewidth.StringWidth(text)
}

// PadRight pads text with spaces up to width cells
func PadRight(text string, width int) string {
	return runewidth.FillRight(text, width)
}

// PadLeft right-aligns text in width cells
func PadLeft(text string, width int) string {
	return runewidth.FillLeft(text, width)
}

// Truncate shortens text to width cells, marking the cut with an ellipsis
func Truncate(text string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(text, width, "…")
}

// CenterText centers text within width cells
func CenterText(text string, width int) string {
	w := GetDisplayWidth(text)
	if w >= width {
		return Truncate(text, width)
	}
	left := (width - w) / 2
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", width-w-left)
}

// FormatHeaderTitle formats main header titles (Magenta + Bold)
func FormatHeaderTitle(title string) string {
	return fmt.Sprintf("%s%s%s%s", ColorBold, ColorMagenta, title, ColorReset)
}

// FormatSectionSeparator creates a separator line of the given width
func FormatSectionSeparator(width int) string {
	if width <= 0 {
		width = 60
	}
	return fmt.Sprintf("%s%s%s", ColorCyan, strings.Repeat("─", width), ColorReset)
}
