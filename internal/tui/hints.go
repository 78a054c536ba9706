package tui

import "strings"

// Hint represents a single keybind hint for display.
type Hint struct {
	Key  string // Display key (e.g., "j/k", "Enter")
	Desc string // Short description (e.g., "scroll", "add")
}

// renderHint renders a single hint as "key:desc" with styling.
func (a App) renderHint(h Hint) string {
	return a.styles.HintKey.Render(h.Key) + ":" + a.styles.HintDesc.Render(h.Desc)
}

// renderHints renders hints in horizontal format for bottom bar: "j/k:scroll tab:view a:add"
func (a App) renderHints(hints HintSet) string {
	allHints := hints.All()
	if len(allHints) == 0 {
		return ""
	}

	parts := make([]string, len(allHints))
	for i, h := range allHints {
		parts[i] = a.renderHint(h)
	}
	return strings.Join(parts, " ")
}

// HintSet is an ordered collection of hints by group.
type HintSet struct {
	Nav    []Hint // Navigation hints (j/k, tab, etc.)
	Edit   []Hint // Edit hints (a, d, c, i)
	Action []Hint // Action hints (/, y, s)
	System []Hint // System hints (?, q, Esc)
}

// All returns all hints flattened in display order: Nav + Action + Edit + System.
func (h HintSet) All() []Hint {
	result := make([]Hint, 0, len(h.Nav)+len(h.Action)+len(h.Edit)+len(h.System))
	result = append(result, h.Nav...)
	result = append(result, h.Action...)
	result = append(result, h.Edit...)
	result = append(result, h.System...)
	return result
}

// getContextualHints returns the appropriate hints for the current mode.
func (a App) getContextualHints() HintSet {
	switch a.mode {
	case ModeNormal:
		return a.getNormalModeHints()
	case ModeCount, ModeIndex:
		return HintSet{
			Nav:    []Hint{{Key: "0-9", Desc: "type"}},
			System: []Hint{{Key: "Enter/Esc", Desc: "done"}},
		}
	case ModeFilter:
		return HintSet{
			Nav:    []Hint{{Key: "type", Desc: "filter"}},
			Action: []Hint{{Key: "Enter", Desc: "apply"}},
			System: []Hint{{Key: "Esc", Desc: "clear"}},
		}
	case ModeHelp:
		// Help overlay covers screen, minimal hints
		return HintSet{
			System: []Hint{{Key: "?/q/Esc", Desc: "close"}},
		}
	default:
		return HintSet{}
	}
}

// getNormalModeHints returns hints for ModeNormal.
func (a App) getNormalModeHints() HintSet {
	return HintSet{
		Nav: []Hint{
			{Key: "hjkl", Desc: "scroll"},
			{Key: "tab", Desc: "view"},
		},
		Action: []Hint{
			{Key: "/", Desc: "filter"},
			{Key: "y", Desc: "yank"},
			{Key: "s", Desc: "sched"},
		},
		Edit: []Hint{
			{Key: "c/i", Desc: "count/index"},
			{Key: "a", Desc: "add"},
			{Key: "d", Desc: "del"},
		},
		System: []Hint{
			{Key: "?", Desc: "help"},
			{Key: "q", Desc: "quit"},
		},
	}
}
