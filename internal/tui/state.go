package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/nikbrunner/vscroll/internal/tui/panes"
)

// Mode is what keyboard input currently drives.
type Mode int

const (
	ModeNormal Mode = iota
	ModeCount       // typing into the count input
	ModeIndex       // typing into the index input
	ModeFilter      // typing into the filter input
	ModeHelp
)

// Pane identifies one of the scroll views.
type Pane int

const (
	PaneVertical Pane = iota
	PaneHorizontal
	PaneGrid
	paneCount
)

func (p Pane) String() string {
	switch p {
	case PaneVertical:
		return "vertical"
	case PaneHorizontal:
		return "horizontal"
	case PaneGrid:
		return "grid"
	default:
		return "unknown"
	}
}

// MessageType selects how the status message is styled.
type MessageType int

const (
	MessageInfo MessageType = iota
	MessageSuccess
	MessageError
)

// InputState holds the count, index and filter inputs.
type InputState struct {
	Count  textinput.Model
	Index  textinput.Model
	Filter textinput.Model
}

// NewInputState creates the inputs with limits from cfg.
func NewInputState(cfg panes.InputConfig) InputState {
	count := textinput.New()
	count.Placeholder = "0"
	count.CharLimit = cfg.CountCharLimit
	count.Width = cfg.NumberWidth
	count.Prompt = ""

	index := textinput.New()
	index.Placeholder = "end"
	index.CharLimit = cfg.IndexCharLimit
	index.Width = cfg.NumberWidth
	index.Prompt = ""

	filter := textinput.New()
	filter.Placeholder = "Filter..."
	filter.CharLimit = cfg.FilterCharLimit
	filter.Width = cfg.FilterWidth
	filter.Prompt = ""

	return InputState{Count: count, Index: index, Filter: filter}
}

// BlurAll removes focus from every input.
func (s *InputState) BlurAll() {
	s.Count.Blur()
	s.Index.Blur()
	s.Filter.Blur()
}

// parseCount reads the count input. Blank, unparsable or negative input is 0.
func parseCount(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// parseIndex reads the index input. Blank input is -1, meaning the end of
// the dataset; unparsable or negative input is 0.
func parseIndex(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return -1
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
