package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nikbrunner/vscroll/internal/exporter"
	"github.com/nikbrunner/vscroll/internal/geom"
	"github.com/nikbrunner/vscroll/internal/importer"
	"github.com/nikbrunner/vscroll/internal/layout"
	"github.com/nikbrunner/vscroll/internal/model"
	"github.com/nikbrunner/vscroll/internal/picker"
	"github.com/nikbrunner/vscroll/internal/scene"
	"github.com/nikbrunner/vscroll/internal/scrollview"
	"github.com/nikbrunner/vscroll/internal/search"
	"github.com/nikbrunner/vscroll/internal/snapshot"
	"github.com/nikbrunner/vscroll/internal/storage"
	"github.com/nikbrunner/vscroll/internal/tui"
)

func main() {
	if len(os.Args) >= 2 {
		switch os.Args[1] {
		case "help", "--help", "-h":
			printHelp()
			return
		case "seed":
			if len(os.Args) < 3 {
				fmt.Fprintf(os.Stderr, "Usage: vscroll seed <count>\n")
				os.Exit(1)
			}
			runSeed(os.Args[2])
			return
		case "import":
			if len(os.Args) < 3 {
				fmt.Fprintf(os.Stderr, "Usage: vscroll import <file.html>\n")
				os.Exit(1)
			}
			runImport(os.Args[2])
			return
		case "export":
			// Export with optional path
			var outputPath string
			if len(os.Args) >= 3 {
				outputPath = os.Args[2]
			}
			runExport(outputPath)
			return
		case "snapshot":
			if len(os.Args) < 3 {
				fmt.Fprintf(os.Stderr, "Usage: vscroll snapshot <out.png> [offset]\n")
				os.Exit(1)
			}
			offset := "0"
			if len(os.Args) >= 4 {
				offset = os.Args[3]
			}
			runSnapshot(os.Args[2], offset)
			return
		default:
			// Treat as search query (join all remaining args)
			query := strings.Join(os.Args[1:], " ")
			runQuickSearch(query)
			return
		}
	}

	// No args - run full TUI
	runTUI()
}

func printHelp() {
	help := `vscroll - virtualized scroll views in the terminal

Usage:
  vscroll                       Open interactive TUI
  vscroll <query>               Fuzzy search → pick an entry
  vscroll seed <count>          Replace the dataset with count entries
  vscroll import <file>         Import entries from an HTML list
  vscroll export [path]         Export entries to HTML
  vscroll snapshot <png> [y]    Render the vertical view at offset y to PNG
  vscroll help                  Show this help

TUI Keybindings:
  Scrolling:
    j/k         Scroll down/up
    h/l         Scroll left/right
    g/G         Jump to start/end
    tab         Focus next view

  Data:
    c           Edit count
    i           Edit index (blank appends)
    a           Add count entries at index
    d           Remove count entries at index
    /           Fuzzy filter
    y           Yank first visible entry

  Other:
    s           Toggle scheduled loading
    ?           Show help overlay
    q           Quit

Data Storage:
  ~/.config/vscroll/entries.db    (or entries.json with storage = "json")
  ~/.config/vscroll/config.toml

Set VSCROLL_DEBUG=1 to log to ~/.config/vscroll/debug.log.
`
	fmt.Print(help)
}

// loadConfig reads the config file, creating it with defaults if missing.
func loadConfig() *storage.Config {
	configPath, err := storage.DefaultConfigFilePath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error getting config path: %v\n", err)
		os.Exit(1)
	}

	config, err := storage.LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	return config
}

// openDataset opens the configured backend and loads the dataset.
func openDataset(config *storage.Config) (storage.Storage, *model.Dataset) {
	store, err := storage.OpenStorage(config.Storage)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening storage: %v\n", err)
		os.Exit(1)
	}

	dataset, err := store.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading entries: %v\n", err)
		os.Exit(1)
	}
	return store, dataset
}

func closeStore(store storage.Storage) {
	if c, ok := store.(io.Closer); ok {
		_ = c.Close()
	}
}

// debugLogger routes log output to a file when VSCROLL_DEBUG is set.
// The returned func closes the file.
func debugLogger() (*log.Logger, func()) {
	if os.Getenv("VSCROLL_DEBUG") == "" {
		return nil, func() {}
	}

	dir, err := storage.DataDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error getting data dir: %v\n", err)
		os.Exit(1)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating data dir: %v\n", err)
		os.Exit(1)
	}

	f, err := tea.LogToFile(filepath.Join(dir, "debug.log"), "vscroll")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening debug log: %v\n", err)
		os.Exit(1)
	}
	return log.Default(), func() { f.Close() }
}

// runTUI runs the full interactive TUI.
func runTUI() {
	logger, closeLog := debugLogger()
	defer closeLog()

	config := loadConfig()
	store, dataset := openDataset(config)
	defer closeStore(store)

	app, err := tui.NewApp(tui.AppParams{
		Dataset: dataset,
		Storage: store,
		Config:  config,
		Logger:  logger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error starting app: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running app: %v\n", err)
		os.Exit(1)
	}
}

// runSeed replaces the stored dataset with count fresh entries.
func runSeed(arg string) {
	count, err := strconv.Atoi(arg)
	if err != nil || count < 0 {
		fmt.Fprintf(os.Stderr, "Error: count must be a non-negative number, got %q\n", arg)
		os.Exit(1)
	}

	config := loadConfig()
	store, _ := openDataset(config)
	defer closeStore(store)

	if err := store.Save(model.Seed(count)); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving entries: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Seeded %d entries\n", count)
}

// runQuickSearch performs a fuzzy search and prints the chosen entry.
func runQuickSearch(query string) {
	config := loadConfig()
	store, dataset := openDataset(config)
	defer closeStore(store)

	// Search
	results := search.FuzzySearchEntries(dataset, query)

	if len(results) == 0 {
		fmt.Printf("No entries found for '%s'\n", query)
		return
	}

	var selected *model.Entry

	if len(results) == 1 {
		// Single result - select it directly
		selected = results[0].Entry
	} else {
		// Multiple results - show picker
		p, err := picker.New(results, query)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating picker: %v\n", err)
			os.Exit(1)
		}
		finalModel, err := tea.NewProgram(p).Run()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running picker: %v\n", err)
			os.Exit(1)
		}

		finalPicker := finalModel.(picker.Picker)
		if finalPicker.Cancelled() {
			return
		}
		selected = finalPicker.SelectedEntry()
	}

	if selected == nil {
		return
	}
	fmt.Printf("%s (index %d)\n", selected.Content, dataset.IndexOf(selected.ID))
}

// runImport handles the import subcommand.
func runImport(filePath string) {
	config := loadConfig()
	store, dataset := openDataset(config)
	defer closeStore(store)

	file, err := os.Open(filePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	entries, err := importer.ParseHTMLEntries(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing HTML: %v\n", err)
		os.Exit(1)
	}

	added, skipped := dataset.ImportMerge(entries)

	if err := store.Save(dataset); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving entries: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Imported %d entries", added)
	if skipped > 0 {
		fmt.Printf(" (%d duplicates skipped)", skipped)
	}
	fmt.Println()
}

// runExport handles the export subcommand.
func runExport(outputPath string) {
	// Determine output path
	if outputPath == "" {
		var err error
		outputPath, err = exporter.DefaultExportPath()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting default export path: %v\n", err)
			os.Exit(1)
		}
	}

	config := loadConfig()
	store, dataset := openDataset(config)
	defer closeStore(store)

	// Write to file
	if err := os.WriteFile(outputPath, []byte(exporter.ExportHTML(dataset)), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing file: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Exported %d entries to %s\n", dataset.Len(), outputPath)
}

// Snapshot canvas, in cells and pixels per cell.
const (
	snapshotWidth  = 40
	snapshotHeight = 30
	snapshotScale  = 8
)

// runSnapshot renders the vertical view scrolled to offset into a PNG.
func runSnapshot(outputPath, offsetArg string) {
	offset, err := strconv.ParseFloat(offsetArg, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: offset must be a number, got %q\n", offsetArg)
		os.Exit(1)
	}

	config := loadConfig()
	store, dataset := openDataset(config)
	defer closeStore(store)

	pane := config.Vertical
	content := scene.NewContent(geom.V(0, 1), pane.Layout(layout.ModeVertical))
	vp := scene.NewViewport(geom.S(snapshotWidth, snapshotHeight), content)
	list, err := scrollview.New(scrollview.Params{
		Container: vp,
		Template: &scene.Prefab{
			Size:   geom.S(float64(pane.ItemWidth), float64(pane.ItemHeight)),
			Anchor: geom.V(0.5, 0.5),
		},
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating scroll view: %v\n", err)
		os.Exit(1)
	}

	items := make([]scrollview.Item, len(dataset.Entries))
	for i, e := range dataset.Entries {
		items[i] = e
	}
	list.RegisterData(items)
	vp.ScrollTo(geom.V(0, offset))
	list.OnScroll()

	r := snapshot.NewRenderer(vp, snapshotScale, snapshot.DefaultTheme())
	r.Render(vp)
	if err := r.SavePNG(outputPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing PNG: %v\n", err)
		os.Exit(1)
	}

	w := list.Window()
	fmt.Printf("Rendered entries %d-%d of %d to %s\n", w.Start, w.End, dataset.Len(), outputPath)
}
