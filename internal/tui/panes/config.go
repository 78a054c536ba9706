// Package panes sizes the terminal regions the scroll views are drawn in and
// holds the text helpers shared by every renderer.
package panes

// Config holds all layout-related configuration values.
type Config struct {
	Pane   PaneConfig
	Modal  ModalConfig
	Input  InputConfig
	Text   TextConfig
	Picker PickerConfig
}

// PaneConfig holds pane dimension configuration.
type PaneConfig struct {
	// HeaderLines is the title/status bar above the panes.
	HeaderLines int

	// FooterLines accounts for: input row (1) + help bar (1).
	FooterLines int

	// Border is the cells one pane border takes on an axis (both sides).
	Border int

	// VerticalWidthPercent is the share of the top row given to the vertical stack.
	// The grid takes the rest.
	VerticalWidthPercent int

	// HorizontalHeight is the inner height of the horizontal strip.
	HorizontalHeight int

	// MinWidth and MinHeight bound every pane's inner size.
	MinWidth  int
	MinHeight int
}

// ModalConfig holds help overlay configuration.
type ModalConfig struct {
	WidthPercent int
	MinWidth     int
	MaxWidth     int
}

// InputConfig holds text input configuration.
type InputConfig struct {
	CountCharLimit  int
	IndexCharLimit  int
	FilterCharLimit int

	// Display widths
	NumberWidth int // count and index
	FilterWidth int
}

// TextConfig holds text truncation configuration.
type TextConfig struct {
	// Ellipsis is the string used to indicate truncation.
	Ellipsis string
}

// PickerConfig holds picker layout configuration.
type PickerConfig struct {
	// HeaderLines: header (1) + blank (1).
	HeaderLines int

	// FooterLines: blank (1) + help (1).
	FooterLines int

	// RowHeight is the height of one result (title + detail).
	RowHeight int
}

// DefaultConfig returns the default layout configuration.
func DefaultConfig() Config {
	return Config{
		Pane: PaneConfig{
			HeaderLines:          1,
			FooterLines:          2, // inputs (1) + help bar (1)
			Border:               2,
			VerticalWidthPercent: 35,
			HorizontalHeight:     3,
			MinWidth:             10,
			MinHeight:            3,
		},
		Modal: ModalConfig{
			WidthPercent: 50,
			MinWidth:     40,
			MaxWidth:     70,
		},
		Input: InputConfig{
			CountCharLimit:  4,
			IndexCharLimit:  6,
			FilterCharLimit: 50,
			NumberWidth:     6,
			FilterWidth:     30,
		},
		Text: TextConfig{
			Ellipsis: "...",
		},
		Picker: PickerConfig{
			HeaderLines: 2,
			FooterLines: 2,
			RowHeight:   2,
		},
	}
}
