package panes

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Plain returns s with every terminal escape sequence removed.
func Plain(s string) string {
	return ansi.Strip(s)
}

// Width is the number of terminal cells s occupies.
func Width(s string) int {
	return ansi.StringWidth(s)
}

// Clip shortens s to at most width cells and ends it with the ellipsis when
// anything was cut. Escape sequences survive the cut, so styles still reset.
func Clip(s string, width int, cfg TextConfig) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(s, width, cfg.Ellipsis)
}

// Cell fits s into a label row exactly width cells wide.
func Cell(s string, width int, cfg TextConfig) string {
	s = Clip(s, width, cfg)
	if pad := width - Width(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}
