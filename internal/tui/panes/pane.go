package panes

// Dim is an inner pane size in cells.
type Dim struct {
	Width  int
	Height int
}

// PaneLayout holds the inner size of every scroll view pane.
//
//	+-- vertical --++------- grid --------+
//	|              ||                     |
//	+--------------++---------------------+
//	+------------- horizontal ------------+
//	+-------------------------------------+
type PaneLayout struct {
	Vertical   Dim
	Grid       Dim
	Horizontal Dim
}

// CalculatePaneLayout splits the terminal between the three panes.
// Each inner dimension is at least the configured minimum.
func CalculatePaneLayout(terminalWidth, terminalHeight int, cfg PaneConfig) PaneLayout {
	stripOuter := cfg.HorizontalHeight + cfg.Border
	topOuter := terminalHeight - cfg.HeaderLines - cfg.FooterLines - stripOuter

	verticalOuter := terminalWidth * cfg.VerticalWidthPercent / 100
	gridOuter := terminalWidth - verticalOuter

	return PaneLayout{
		Vertical: Dim{
			Width:  atLeast(verticalOuter-cfg.Border, cfg.MinWidth),
			Height: atLeast(topOuter-cfg.Border, cfg.MinHeight),
		},
		Grid: Dim{
			Width:  atLeast(gridOuter-cfg.Border, cfg.MinWidth),
			Height: atLeast(topOuter-cfg.Border, cfg.MinHeight),
		},
		Horizontal: Dim{
			Width:  atLeast(terminalWidth-cfg.Border, cfg.MinWidth),
			Height: atLeast(cfg.HorizontalHeight, cfg.MinHeight),
		},
	}
}

// CalculateModalWidth computes responsive overlay width based on percentage of terminal width.
// Uses WidthPercent of terminal width, clamped between MinWidth and MaxWidth.
func CalculateModalWidth(terminalWidth int, cfg ModalConfig) int {
	width := terminalWidth * cfg.WidthPercent / 100

	if width < cfg.MinWidth {
		width = cfg.MinWidth
	}
	if width > cfg.MaxWidth {
		width = cfg.MaxWidth
	}

	// Don't exceed terminal width
	if width > terminalWidth-4 {
		width = terminalWidth - 4
	}
	return atLeast(width, 1)
}

// CalculatePickerRows returns how many results fit in the picker.
func CalculatePickerRows(terminalHeight int, cfg PickerConfig) int {
	rows := (terminalHeight - cfg.HeaderLines - cfg.FooterLines) / max(cfg.RowHeight, 1)
	return atLeast(rows, 1)
}

// CalculateViewportOffset calculates the scroll offset, in rows, needed to
// keep the selected row visible within the viewport.
func CalculateViewportOffset(selected, total, viewportRows int) int {
	if total <= viewportRows {
		return 0
	}

	// Keep selection roughly centered, but clamp to valid range
	offset := selected - viewportRows/2
	if offset < 0 {
		offset = 0
	}

	maxOffset := total - viewportRows
	if offset > maxOffset {
		offset = maxOffset
	}

	return offset
}

func atLeast(v, floor int) int {
	if v < floor {
		return floor
	}
	return v
}
