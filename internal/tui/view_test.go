package tui_test

import (
	"strings"
	"testing"

	"github.com/nikbrunner/vscroll/internal/model"
	"github.com/nikbrunner/vscroll/internal/tui"
	"github.com/nikbrunner/vscroll/internal/tui/panes"
	"gotest.tools/v3/assert"
)

// createTestApp creates a test app with fixed dimensions.
func createTestApp(t *testing.T, n, width, height int) tui.App {
	t.Helper()
	app := newTestApp(t, n, tui.AppParams{})

	// Set fixed dimensions for consistent output
	return app.WithDimensions(width, height)
}

func viewLines(app tui.App) []string {
	return strings.Split(panes.Plain(app.View()), "\n")
}

func TestView_FillsTerminal(t *testing.T) {
	for _, size := range [][2]int{{80, 24}, {120, 30}} {
		app := createTestApp(t, 30, size[0], size[1])
		lines := viewLines(app)

		assert.Equal(t, len(lines), size[1])
		for i, line := range lines {
			assert.Assert(t, panes.Width(line) <= size[0], "line %d is too wide: %q", i, line)
		}
	}
}

func TestView_Header(t *testing.T) {
	app := createTestApp(t, 30, 80, 24)
	lines := viewLines(app)

	assert.Assert(t, strings.HasPrefix(lines[0], "vscroll  total: 30  focus: vertical  [load:sync]"), lines[0])
}

func TestView_ShowsOnlyWindowedItems(t *testing.T) {
	app := createTestApp(t, 30, 80, 24)
	out := panes.Plain(app.View())

	assert.Assert(t, strings.Contains(out, "content1"))
	assert.Assert(t, strings.Contains(out, "content7"), "grid shows its third row")
	assert.Assert(t, !strings.Contains(out, "content30"), "last item is outside every window")
}

func TestView_VerticalPaneRows(t *testing.T) {
	app := createTestApp(t, 30, 80, 24)
	lines := viewLines(app)

	// Border row, then the first item box; items are centered in a 26 wide pane.
	assert.Assert(t, strings.HasPrefix(lines[2], "┃   ┌──────────────────┐   ┃"), lines[2])
	assert.Assert(t, strings.HasPrefix(lines[3], "┃   │content1          │   ┃"), lines[3])
}

func TestView_FilterShowsShownCount(t *testing.T) {
	app := createTestApp(t, 30, 80, 24)
	app, _ = send(app, keys("/")...)
	app, _ = send(app, keys("content2")...)

	lines := viewLines(app)
	// content2, content12 and content20..29
	assert.Assert(t, strings.Contains(lines[0], "shown: 12"), lines[0])
}

func TestView_EmptyState(t *testing.T) {
	app, err := tui.NewApp(tui.AppParams{Dataset: model.NewDataset()})
	assert.NilError(t, err)
	app = app.WithDimensions(80, 24)

	out := panes.Plain(app.View())
	assert.Assert(t, strings.Contains(out, "total: 0"))
	assert.Assert(t, !strings.Contains(out, "content"))
}

func TestView_HelpOverlay(t *testing.T) {
	app := createTestApp(t, 3, 80, 24)
	app, _ = send(app, keys("?")...)

	out := panes.Plain(app.View())
	assert.Assert(t, strings.Contains(out, "toggle scheduled load"))
	assert.Assert(t, !strings.Contains(out, "total: 3"))
}

func TestView_MessageLine(t *testing.T) {
	app := createTestApp(t, 3, 80, 24)
	app, _ = send(app, keys("y")...)

	lines := viewLines(app)
	assert.Assert(t, strings.Contains(lines[len(lines)-2], "✓ Yanked content1"), lines[len(lines)-2])
}
