package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nikbrunner/vscroll/internal/scene"
	"github.com/nikbrunner/vscroll/internal/tui/panes"
)

// renderView lays out the header, the three panes and the footer.
//
//	header
//	+-- vertical --++------- grid --------+
//	+------------- horizontal ------------+
//	inputs / message
//	hints
func (a App) renderView() string {
	if a.mode == ModeHelp {
		return a.renderHelpOverlay()
	}

	top := lipgloss.JoinHorizontal(
		lipgloss.Top,
		a.renderPane(PaneVertical),
		a.renderPane(PaneGrid),
	)

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		a.renderHeader(),
		top,
		a.renderPane(PaneHorizontal),
		a.renderInputLine(),
		a.fitLine(a.renderHints(a.getContextualHints())),
	)

	// Use Place to ensure exact terminal dimensions and prevent overflow
	return lipgloss.Place(a.width, a.height, lipgloss.Left, lipgloss.Top, content)
}

// renderHeader renders the title and the dataset status.
func (a App) renderHeader() string {
	var status strings.Builder

	fmt.Fprintf(&status, "  total: %d", a.dataset.Len())
	if a.filter != "" {
		fmt.Fprintf(&status, "  shown: %d", a.shown)
	}
	fmt.Fprintf(&status, "  focus: %s", a.focused)
	if a.config.Scroll.ScheduleLoad {
		status.WriteString("  [load:sched]")
	} else {
		status.WriteString("  [load:sync]")
	}
	for _, v := range a.views {
		if v.list.Loading() {
			status.WriteString(" loading")
			break
		}
	}

	return a.fitLine(a.styles.Title.Render("vscroll") + a.styles.Status.Render(status.String()))
}

// renderPane draws the scene of one scroll view inside a border.
func (a App) renderPane(p Pane) string {
	v := a.views[p]
	bounds := v.viewport.Bounds()

	style := a.styles.Pane
	if p == a.focused {
		style = a.styles.PaneActive
	}
	return style.
		Width(bounds.Dx()).
		Height(bounds.Dy()).
		Render(strings.Join(scene.Render(v.viewport), "\n"))
}

// renderInputLine renders the status message, if any, followed by the
// count, index and filter inputs.
func (a App) renderInputLine() string {
	var line strings.Builder

	if a.messageText != "" {
		line.WriteString(a.renderMessage())
		line.WriteString("  ")
	}
	line.WriteString(a.styles.Label.Render("count "))
	line.WriteString(a.inputs.Count.View())
	line.WriteString(a.styles.Label.Render("  index "))
	line.WriteString(a.inputs.Index.View())
	line.WriteString(a.styles.Label.Render("  filter "))
	line.WriteString(a.inputs.Filter.View())

	return a.fitLine(line.String())
}

// renderMessage renders the styled message with prefix icon based on type.
func (a App) renderMessage() string {
	var msgStyle lipgloss.Style
	var prefix string

	switch a.messageType {
	case MessageError:
		msgStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#CC3333", Dark: "#FF6666"}).
			Bold(true)
		prefix = "✗ "
	case MessageSuccess:
		msgStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#338833", Dark: "#66CC66"}).
			Bold(true)
		prefix = "✓ "
	default: // MessageInfo
		msgStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#4A7070", Dark: "#5F8787"}).
			Bold(true)
	}

	return msgStyle.Render(prefix + a.messageText)
}

// fitLine keeps a styled line within the terminal width.
func (a App) fitLine(s string) string {
	return panes.Clip(s, a.width, a.layoutConfig.Text)
}

// renderHelpOverlay renders the key reference centered on screen.
func (a App) renderHelpOverlay() string {
	modalWidth := panes.CalculateModalWidth(a.width, a.layoutConfig.Modal)

	var b strings.Builder
	b.WriteString(a.styles.Title.Render("scroll") + "\n")
	b.WriteString("j/k    down/up\n")
	b.WriteString("h/l    left/right\n")
	b.WriteString("g/G    start/end\n")
	b.WriteString("tab    next view\n")
	b.WriteString("\n")
	b.WriteString(a.styles.Title.Render("data") + "\n")
	b.WriteString("c      edit count\n")
	b.WriteString("i      edit index (blank appends)\n")
	b.WriteString("a      add count at index\n")
	b.WriteString("d      remove count at index\n")
	b.WriteString("/      filter\n")
	b.WriteString("y      yank first visible\n")
	b.WriteString("\n")
	b.WriteString(a.styles.Title.Render("load") + "\n")
	b.WriteString("s      toggle scheduled load\n")
	b.WriteString(a.styles.Help.Render("[?/esc] close"))

	// Width excludes the border.
	modal := a.styles.Modal.Width(max(modalWidth-2, 1)).Render(b.String())
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, modal)
}
