// Package tui is the terminal host for the scroll views: one dataset shown
// through a vertical stack, a horizontal strip and a grid at the same time.
package tui

import (
	"fmt"
	"io"
	"log"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nikbrunner/vscroll/internal/geom"
	"github.com/nikbrunner/vscroll/internal/layout"
	"github.com/nikbrunner/vscroll/internal/model"
	"github.com/nikbrunner/vscroll/internal/scene"
	"github.com/nikbrunner/vscroll/internal/scrollview"
	"github.com/nikbrunner/vscroll/internal/search"
	"github.com/nikbrunner/vscroll/internal/storage"
	"github.com/nikbrunner/vscroll/internal/tui/panes"
	"github.com/nikbrunner/vscroll/internal/window"
)

// paneView is one scroll view together with the scene it draws into.
type paneView struct {
	viewport *scene.Viewport
	list     *scrollview.ScrollView
	timer    *teaTimer
}

// App is the main bubbletea model.
type App struct {
	dataset      *model.Dataset
	store        storage.Storage
	config       storage.Config
	layoutConfig panes.Config
	keys         KeyMap
	styles       Styles
	logger       *log.Logger
	copyText     func(string) error

	views   [paneCount]*paneView
	focused Pane
	mode    Mode
	inputs  InputState
	filter  string
	shown   int

	messageText string
	messageType MessageType

	// Window dimensions
	width  int
	height int
}

// AppParams holds parameters for creating a new App.
type AppParams struct {
	Dataset      *model.Dataset
	Storage      storage.Storage         // optional, changes are not persisted if nil
	Config       *storage.Config         // optional, uses default if nil
	LayoutConfig *panes.Config           // optional, uses default if nil
	Keys         *KeyMap                 // optional, uses default if nil
	Styles       *Styles                 // optional, uses default if nil
	Logger       *log.Logger             // optional, discards if nil
	Clipboard    func(text string) error // optional, uses the system clipboard if nil
}

// NewApp creates a new App with the given parameters and registers the
// dataset with every view.
func NewApp(params AppParams) (App, error) {
	keys := DefaultKeyMap()
	if params.Keys != nil {
		keys = *params.Keys
	}

	styles := DefaultStyles()
	if params.Styles != nil {
		styles = *params.Styles
	}

	config := storage.DefaultConfig()
	if params.Config != nil {
		config = *params.Config
	}

	layoutConfig := panes.DefaultConfig()
	if params.LayoutConfig != nil {
		layoutConfig = *params.LayoutConfig
	}

	logger := params.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	copyText := params.Clipboard
	if copyText == nil {
		copyText = clipboard.WriteAll
	}

	dataset := params.Dataset
	if dataset == nil {
		dataset = model.NewDataset()
	}
	if err := dataset.Validate(); err != nil {
		return App{}, fmt.Errorf("dataset: %w", err)
	}

	app := App{
		dataset:      dataset,
		store:        params.Storage,
		config:       config,
		layoutConfig: layoutConfig,
		keys:         keys,
		styles:       styles,
		logger:       logger,
		copyText:     copyText,
		inputs:       NewInputState(layoutConfig.Input),
		width:        80,
		height:       24,
	}

	if err := app.buildViews(); err != nil {
		return App{}, err
	}
	app.register()
	return app, nil
}

// buildViews creates a fresh scroll view per pane. Scroll offsets of the
// previous views, if any, carry over.
func (a *App) buildViews() error {
	dims := a.paneDims()
	for p := Pane(0); p < paneCount; p++ {
		v, err := a.newPaneView(p, dims[p])
		if err != nil {
			return fmt.Errorf("%s view: %w", p, err)
		}
		if old := a.views[p]; old != nil {
			v.viewport.SetOffset(old.viewport.Offset())
		}
		a.views[p] = v
	}
	return nil
}

func (a *App) paneDims() [paneCount]panes.Dim {
	l := panes.CalculatePaneLayout(a.width, a.height, a.layoutConfig.Pane)
	return [paneCount]panes.Dim{
		PaneVertical:   l.Vertical,
		PaneHorizontal: l.Horizontal,
		PaneGrid:       l.Grid,
	}
}

func (a *App) paneSettings(p Pane) (storage.PaneConfig, layout.Mode) {
	switch p {
	case PaneHorizontal:
		return a.config.Horizontal, layout.ModeHorizontal
	case PaneGrid:
		return a.config.Grid, layout.ModeGrid
	default:
		return a.config.Vertical, layout.ModeVertical
	}
}

func (a *App) newPaneView(p Pane, dim panes.Dim) (*paneView, error) {
	pc, mode := a.paneSettings(p)

	// Content grows down and to the right from the top-left corner.
	content := scene.NewContent(geom.V(0, 1), pc.Layout(mode))
	vp := scene.NewViewport(geom.S(float64(dim.Width), float64(dim.Height)), content)
	timer := newTeaTimer(p)

	list, err := scrollview.New(scrollview.Params{
		Container: vp,
		Template: &scene.Prefab{
			Size:   geom.S(float64(pc.ItemWidth), float64(pc.ItemHeight)),
			Anchor: geom.V(0.5, 0.5),
		},
		Timer: timer,
		Options: scrollview.Options{
			ScheduleLoad:   a.config.Scroll.ScheduleLoad,
			FrameLoadCount: a.config.Scroll.FrameLoadCount,
		},
		Logger: a.logger,
	})
	if err != nil {
		return nil, err
	}
	return &paneView{viewport: vp, list: list, timer: timer}, nil
}

// register hands the (filtered) dataset to every view.
func (a *App) register() {
	entries := search.Filter(a.dataset, a.filter)
	items := make([]scrollview.Item, len(entries))
	for i, e := range entries {
		items[i] = e
	}
	a.shown = len(items)

	// RegisterData copies the slice, so each view owns its data.
	for _, v := range a.views {
		v.list.RegisterData(items)
		// a shrunk dataset can leave the offset past the new end
		v.viewport.Clamp()
		v.list.OnScroll()
	}
	a.logger.Printf("tui: registered %d of %d entries (filter %q)", a.shown, a.dataset.Len(), a.filter)
}

// tickCmds collects the pending loader ticks of every view.
func (a *App) tickCmds() tea.Cmd {
	var cmds []tea.Cmd
	for _, v := range a.views {
		if cmd := v.timer.Cmd(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return a.tickCmds()
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		dims := a.paneDims()
		for p, v := range a.views {
			v.viewport.Resize(geom.S(float64(dims[p].Width), float64(dims[p].Height)))
			v.list.Relayout()
		}
		return a, a.tickCmds()

	case tickMsg:
		a.views[msg.pane].timer.Fire(msg)
		return a, a.views[msg.pane].timer.Cmd()

	case tea.KeyMsg:
		switch a.mode {
		case ModeHelp:
			return a.updateHelp(msg)
		case ModeCount, ModeIndex, ModeFilter:
			return a.updateInput(msg)
		default:
			return a.updateNormal(msg)
		}
	}

	return a, nil
}

func (a App) updateHelp(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Help), msg.Type == tea.KeyEsc, key.Matches(msg, a.keys.Quit):
		a.mode = ModeNormal
	}
	return a, nil
}

func (a App) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		a.inputs.BlurAll()
		a.mode = ModeNormal
		return a, nil
	case tea.KeyEsc:
		if a.mode == ModeFilter {
			a.inputs.Filter.Reset()
			a.filter = ""
			a.register()
		}
		a.inputs.BlurAll()
		a.mode = ModeNormal
		return a, a.tickCmds()
	}

	var cmd tea.Cmd
	switch a.mode {
	case ModeCount:
		a.inputs.Count, cmd = a.inputs.Count.Update(msg)
	case ModeIndex:
		a.inputs.Index, cmd = a.inputs.Index.Update(msg)
	case ModeFilter:
		a.inputs.Filter, cmd = a.inputs.Filter.Update(msg)
		if q := a.inputs.Filter.Value(); q != a.filter {
			a.filter = q
			a.register()
			return a, tea.Batch(cmd, a.tickCmds())
		}
	}
	return a, cmd
}

func (a App) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	a.messageText = ""
	step := float64(max(a.config.Scroll.Step, 1))

	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit

	case key.Matches(msg, a.keys.Help):
		a.mode = ModeHelp

	case key.Matches(msg, a.keys.NextPane):
		a.focused = (a.focused + 1) % paneCount

	case key.Matches(msg, a.keys.Down):
		return a, a.scroll(func(vp *scene.Viewport) { vp.ScrollBy(geom.V(0, step)) })

	case key.Matches(msg, a.keys.Up):
		return a, a.scroll(func(vp *scene.Viewport) { vp.ScrollBy(geom.V(0, -step)) })

	case key.Matches(msg, a.keys.Right):
		return a, a.scroll(func(vp *scene.Viewport) { vp.ScrollBy(geom.V(step, 0)) })

	case key.Matches(msg, a.keys.Left):
		return a, a.scroll(func(vp *scene.Viewport) { vp.ScrollBy(geom.V(-step, 0)) })

	case key.Matches(msg, a.keys.Top):
		return a, a.scroll(func(vp *scene.Viewport) { vp.ScrollTo(geom.Vec2{}) })

	case key.Matches(msg, a.keys.Bottom):
		return a, a.scroll(func(vp *scene.Viewport) { vp.ScrollTo(vp.MaxOffset()) })

	case key.Matches(msg, a.keys.Count):
		a.mode = ModeCount
		return a, a.inputs.Count.Focus()

	case key.Matches(msg, a.keys.Index):
		a.mode = ModeIndex
		return a, a.inputs.Index.Focus()

	case key.Matches(msg, a.keys.Filter):
		a.mode = ModeFilter
		return a, a.inputs.Filter.Focus()

	case key.Matches(msg, a.keys.Add):
		return a.add()

	case key.Matches(msg, a.keys.Remove):
		return a.remove()

	case key.Matches(msg, a.keys.Yank):
		a.yank()

	case key.Matches(msg, a.keys.ToggleLoad):
		return a.toggleScheduledLoad()
	}

	return a, nil
}

// scroll moves the focused viewport and lets its scroll view react.
func (a *App) scroll(move func(vp *scene.Viewport)) tea.Cmd {
	v := a.views[a.focused]
	move(v.viewport)
	v.list.OnScroll()
	return v.timer.Cmd()
}

// add inserts count entries at index, relabels the dataset and registers it.
func (a App) add() (tea.Model, tea.Cmd) {
	count := parseCount(a.inputs.Count.Value())
	if count == 0 {
		return a, nil
	}
	index := a.dataset.Insert(parseIndex(a.inputs.Index.Value()), count)
	a.setMessage(MessageSuccess, fmt.Sprintf("Added %d at %d", count, index))
	return a.commit()
}

// remove deletes count entries starting at index. Out of range is ignored.
func (a App) remove() (tea.Model, tea.Cmd) {
	count := parseCount(a.inputs.Count.Value())
	if count == 0 {
		return a, nil
	}
	index := parseIndex(a.inputs.Index.Value())
	removed := a.dataset.Remove(index, count)
	if removed == 0 {
		return a, nil
	}
	a.setMessage(MessageSuccess, fmt.Sprintf("Removed %d at %d", removed, index))
	return a.commit()
}

// commit persists the dataset and registers it with every view.
func (a App) commit() (tea.Model, tea.Cmd) {
	if a.store != nil {
		if err := a.store.Save(a.dataset); err != nil {
			a.logger.Printf("tui: save: %v", err)
			a.setMessage(MessageError, fmt.Sprintf("Save failed: %v", err))
		}
	}
	a.register()
	return a, a.tickCmds()
}

// yank copies the content of the focused view's first visible entry.
func (a *App) yank() {
	text, ok := a.FirstVisible(a.focused)
	if !ok {
		a.setMessage(MessageError, "Nothing to yank")
		return
	}
	if err := a.copyText(text); err != nil {
		a.setMessage(MessageError, fmt.Sprintf("Clipboard: %v", err))
		return
	}
	a.setMessage(MessageSuccess, "Yanked "+text)
}

// toggleScheduledLoad flips incremental loading. Options are fixed per
// scroll view, so the views are rebuilt and the data registered again.
func (a App) toggleScheduledLoad() (tea.Model, tea.Cmd) {
	a.config.Scroll.ScheduleLoad = !a.config.Scroll.ScheduleLoad
	if err := a.buildViews(); err != nil {
		a.setMessage(MessageError, err.Error())
		return a, nil
	}
	a.register()

	state := "off"
	if a.config.Scroll.ScheduleLoad {
		state = "on"
	}
	a.setMessage(MessageInfo, "Scheduled load "+state)
	return a, a.tickCmds()
}

func (a *App) setMessage(t MessageType, text string) {
	a.messageType = t
	a.messageText = text
}

// FirstVisible returns the content of the first entry in p's window.
func (a App) FirstVisible(p Pane) (string, bool) {
	list := a.views[p].list
	w := list.Window()
	if w.Len() <= 0 {
		return "", false
	}
	e, ok := list.Items()[w.Start].(model.Entry)
	if !ok {
		return "", false
	}
	return e.Content, true
}

// Window returns the realized range of p.
func (a App) Window(p Pane) window.Range {
	return a.views[p].list.Window()
}

// Loading reports whether p is binding its window over several ticks.
func (a App) Loading(p Pane) bool {
	return a.views[p].list.Loading()
}

// Visible returns the entries currently bound in p.
func (a App) Visible(p Pane) []scrollview.Item {
	return a.views[p].list.Visible()
}

// Focused returns the pane that receives scroll keys.
func (a App) Focused() Pane {
	return a.focused
}

// Mode returns the current input mode.
func (a App) Mode() Mode {
	return a.mode
}

// Total returns the dataset size.
func (a App) Total() int {
	return a.dataset.Len()
}

// Shown returns how many entries pass the filter.
func (a App) Shown() int {
	return a.shown
}

// Dataset returns the dataset being shown.
func (a App) Dataset() *model.Dataset {
	return a.dataset
}

// Message returns the status message, if any.
func (a App) Message() string {
	return a.messageText
}

// ScheduleLoad reports whether views bind their windows incrementally.
func (a App) ScheduleLoad() bool {
	return a.config.Scroll.ScheduleLoad
}

// WithDimensions returns a copy of the app laid out for width x height.
func (a App) WithDimensions(width, height int) App {
	m, _ := a.Update(tea.WindowSizeMsg{Width: width, Height: height})
	return m.(App)
}

// View implements tea.Model.
func (a App) View() string {
	return a.renderView()
}
