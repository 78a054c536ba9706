// Package picker is a small TUI for choosing one entry from fuzzy search
// results. Results are drawn through a scroll view, so only the rows near
// the cursor are ever bound.
package picker

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nikbrunner/vscroll/internal/geom"
	"github.com/nikbrunner/vscroll/internal/layout"
	"github.com/nikbrunner/vscroll/internal/model"
	"github.com/nikbrunner/vscroll/internal/scene"
	"github.com/nikbrunner/vscroll/internal/scrollview"
	"github.com/nikbrunner/vscroll/internal/search"
	"github.com/nikbrunner/vscroll/internal/tui/panes"
)

var (
	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")).
			Bold(true)

	normalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	detailStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244")).
			Italic(true)

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("99")).
			Bold(true).
			MarginBottom(1)
)

// result adapts a search result to a scroll view item.
type result struct {
	search.SearchResult
}

func (r result) Key() string { return r.Entry.ID }

// Picker is a simple TUI for selecting from search results.
type Picker struct {
	results   []search.SearchResult
	query     string
	cursor    int
	selected  bool
	cancelled bool
	width     int
	height    int
	cfg       panes.Config

	view *scene.Viewport
	list *scrollview.ScrollView
}

// New creates a new Picker with the given search results.
func New(results []search.SearchResult, query string) (Picker, error) {
	p := Picker{
		results: results,
		query:   query,
		width:   80,
		height:  24,
		cfg:     panes.DefaultConfig(),
	}
	if err := p.build(); err != nil {
		return Picker{}, err
	}
	return p, nil
}

// rows is the number of results that fit on screen.
func (p Picker) rows() int {
	return panes.CalculatePickerRows(p.height, p.cfg.Picker)
}

// viewportSize is the area of the result rows, in cells.
func (p Picker) viewportSize() geom.Size {
	return geom.S(float64(max(p.width, 1)), float64(p.rows()*p.cfg.Picker.RowHeight))
}

// build creates the scroll view for the current terminal size and binds the
// results to it.
func (p *Picker) build() error {
	rh := float64(p.cfg.Picker.RowHeight)
	size := p.viewportSize()

	content := scene.NewContent(geom.V(0, 1), layout.Config{Mode: layout.ModeVertical})
	view := scene.NewViewport(size, content)
	list, err := scrollview.New(scrollview.Params{
		Container: view,
		Template: &scene.Prefab{
			Size:   geom.S(size.Width, rh),
			Anchor: geom.V(0.5, 0.5),
		},
	})
	if err != nil {
		return fmt.Errorf("picker: %w", err)
	}

	items := make([]scrollview.Item, len(p.results))
	for i, r := range p.results {
		items[i] = result{r}
	}
	list.RegisterData(items)

	p.view, p.list = view, list
	p.follow()
	return nil
}

// follow scrolls so the cursor row stays on screen.
func (p *Picker) follow() {
	top := panes.CalculateViewportOffset(p.cursor, len(p.results), p.rows())
	p.view.ScrollTo(geom.V(0, float64(top*p.cfg.Picker.RowHeight)))
	p.list.OnScroll()
}

func (p *Picker) move(delta int) {
	next := p.cursor + delta
	if next < 0 || next >= len(p.results) {
		return
	}
	p.cursor = next
	p.follow()
}

// Init implements tea.Model.
func (p Picker) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (p Picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.width = msg.Width
		p.height = msg.Height
		p.view.Resize(p.viewportSize())
		p.list.Relayout()
		p.follow()
		return p, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEsc, tea.KeyCtrlC:
			p.cancelled = true
			return p, tea.Quit

		case tea.KeyEnter:
			p.selected = true
			return p, tea.Quit

		case tea.KeyDown:
			p.move(1)
			return p, nil

		case tea.KeyUp:
			p.move(-1)
			return p, nil
		}

		// Handle vim keys
		if msg.Type == tea.KeyRunes {
			switch string(msg.Runes) {
			case "j":
				p.move(1)
			case "k":
				p.move(-1)
			case "g":
				p.move(-p.cursor)
			case "G":
				p.move(len(p.results) - 1 - p.cursor)
			case "q":
				p.cancelled = true
				return p, tea.Quit
			}
			return p, nil
		}
	}

	return p, nil
}

// View implements tea.Model.
func (p Picker) View() string {
	var b strings.Builder

	// Header
	b.WriteString(headerStyle.Render(fmt.Sprintf("Search: %s (%d results)", p.query, len(p.results))))
	b.WriteString("\n\n")

	// Only the bound rows are drawn; everything else stays blank.
	lines := make([]string, p.view.Bounds().Dy())
	current := ""
	if p.cursor < len(p.results) {
		current = p.results[p.cursor].Entry.ID
	}
	width := max(p.width-3, 1)
	for _, pl := range scene.Placements(p.view) {
		r, ok := pl.Label.Item().(result)
		if !ok {
			continue
		}
		y := pl.Rect.Min.Y

		cursor := "  "
		style := normalStyle
		if r.Entry.ID == current {
			cursor = "> "
			style = selectedStyle
		}
		title := panes.Clip(r.Entry.Content, width, p.cfg.Text)
		setLine(lines, y, cursor+style.Render(title))
		setLine(lines, y+1, "   "+detailStyle.Render(r.Entry.CreatedAt.Format("2006-01-02")))
	}
	b.WriteString(strings.Join(lines, "\n"))

	// Footer
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Render("j/k: move  g/G: top/bottom  Enter: select  q/Esc: cancel"))

	return b.String()
}

func setLine(lines []string, y int, s string) {
	if y >= 0 && y < len(lines) {
		lines[y] = s
	}
}

// SelectedEntry returns the selected entry, or nil if cancelled.
func (p Picker) SelectedEntry() *model.Entry {
	if p.cancelled || !p.selected {
		return nil
	}
	if p.cursor < len(p.results) {
		return p.results[p.cursor].Entry
	}
	return nil
}

// Cancelled returns true if the user cancelled the selection.
func (p Picker) Cancelled() bool {
	return p.cancelled
}

// Bound returns how many results are currently bound to rows.
func (p Picker) Bound() int {
	return p.list.Window().Len()
}
