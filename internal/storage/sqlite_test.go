package storage_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/nikbrunner/vscroll/internal/exporter"
	"github.com/nikbrunner/vscroll/internal/importer"
	"github.com/nikbrunner/vscroll/internal/model"
	"github.com/nikbrunner/vscroll/internal/storage"
)

func TestSQLiteStorage_SaveAndLoad(t *testing.T) {
	s, err := storage.NewSQLiteStorage(filepath.Join(t.TempDir(), "entries.db"))
	if err != nil {
		t.Fatalf("failed to create storage: %v", err)
	}
	defer s.Close()

	now := time.Now().Truncate(time.Second) // RFC3339 loses sub-second precision
	d := &model.Dataset{Entries: []model.Entry{
		{ID: "b", Content: "content1", CreatedAt: now},
		{ID: "a", Content: "content2", CreatedAt: now.Add(-time.Hour)},
		{ID: "c", Content: "content3", CreatedAt: now.Add(time.Hour)},
	}}

	if err := s.Save(d); err != nil {
		t.Fatalf("failed to save: %v", err)
	}

	loaded, err := s.Load()
	if err != nil {
		t.Fatalf("failed to load: %v", err)
	}

	if loaded.Len() != 3 {
		t.Fatalf("expected 3 entries, got %d", loaded.Len())
	}
	// order comes from position, not from id or creation time
	for i, want := range d.Entries {
		got := loaded.Entries[i]
		if got.ID != want.ID || got.Content != want.Content {
			t.Errorf("entry %d: got %s/%s, want %s/%s", i, got.ID, got.Content, want.ID, want.Content)
		}
		if !got.CreatedAt.Equal(want.CreatedAt) {
			t.Errorf("entry %d: created %v, want %v", i, got.CreatedAt, want.CreatedAt)
		}
	}
}

func TestSQLiteStorage_EmptyDatabase(t *testing.T) {
	s, err := storage.NewSQLiteStorage(filepath.Join(t.TempDir(), "empty.db"))
	if err != nil {
		t.Fatalf("failed to create storage: %v", err)
	}
	defer s.Close()

	d, err := s.Load()
	if err != nil {
		t.Fatalf("failed to load: %v", err)
	}
	if d.Len() != 0 {
		t.Errorf("expected empty dataset, got %d entries", d.Len())
	}

	version, err := s.SchemaVersion()
	if err != nil {
		t.Fatalf("failed to read schema version: %v", err)
	}
	if version != 1 {
		t.Errorf("expected schema version 1, got %d", version)
	}
}

func TestSQLiteStorage_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "entries.db")

	s, err := storage.NewSQLiteStorage(path)
	if err != nil {
		t.Fatalf("failed to create storage: %v", err)
	}
	defer s.Close()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Error("database file was not created")
	}
	if s.Path() != path {
		t.Errorf("expected path %q, got %q", path, s.Path())
	}
}

func TestSQLiteStorage_SaveReplaces(t *testing.T) {
	s, err := storage.NewSQLiteStorage(filepath.Join(t.TempDir(), "entries.db"))
	if err != nil {
		t.Fatalf("failed to create storage: %v", err)
	}
	defer s.Close()

	d := model.Seed(5)
	if err := s.Save(d); err != nil {
		t.Fatalf("failed to save: %v", err)
	}

	d.Remove(1, 3)
	if err := s.Save(d); err != nil {
		t.Fatalf("failed to save: %v", err)
	}

	loaded, err := s.Load()
	if err != nil {
		t.Fatalf("failed to load: %v", err)
	}
	if loaded.Len() != 2 {
		t.Fatalf("expected 2 entries after removal, got %d", loaded.Len())
	}
	if loaded.Entries[1].Content != "content5" {
		t.Errorf("expected content5 second, got %q", loaded.Entries[1].Content)
	}
}

func TestSQLiteStorage_DuplicateIDRollsBack(t *testing.T) {
	s, err := storage.NewSQLiteStorage(filepath.Join(t.TempDir(), "entries.db"))
	if err != nil {
		t.Fatalf("failed to create storage: %v", err)
	}
	defer s.Close()

	good := model.Seed(2)
	if err := s.Save(good); err != nil {
		t.Fatalf("failed to save: %v", err)
	}

	bad := &model.Dataset{Entries: []model.Entry{
		{ID: "dup", Content: "x"},
		{ID: "dup", Content: "y"},
	}}
	if err := s.Save(bad); err == nil {
		t.Fatal("expected primary key violation")
	}

	loaded, err := s.Load()
	if err != nil {
		t.Fatalf("failed to load: %v", err)
	}
	if loaded.Len() != 2 || loaded.Entries[0].ID != good.Entries[0].ID {
		t.Error("expected failed save to leave previous data intact")
	}
}

func TestSQLiteStorage_ImportExportRoundtrip(t *testing.T) {
	s, err := storage.NewSQLiteStorage(filepath.Join(t.TempDir(), "entries.db"))
	if err != nil {
		t.Fatalf("failed to create storage: %v", err)
	}
	defer s.Close()

	original := model.Seed(4)
	for i := range original.Entries {
		original.Entries[i].CreatedAt = original.Entries[i].CreatedAt.Truncate(time.Second)
	}
	if err := s.Save(original); err != nil {
		t.Fatalf("failed to save: %v", err)
	}

	loaded, err := s.Load()
	if err != nil {
		t.Fatalf("failed to load: %v", err)
	}

	html := exporter.ExportHTML(loaded)
	entries, err := importer.ParseHTMLEntries(strings.NewReader(html))
	if err != nil {
		t.Fatalf("failed to parse export: %v", err)
	}

	fresh := model.NewDataset()
	added, skipped := fresh.ImportMerge(entries)
	if added != 4 || skipped != 0 {
		t.Errorf("expected 4 added 0 skipped, got %d/%d", added, skipped)
	}
	for i, e := range fresh.Entries {
		if e.ID != original.Entries[i].ID || e.Content != original.Entries[i].Content {
			t.Errorf("entry %d did not survive the roundtrip: %+v", i, e)
		}
	}

	// importing the same export again adds nothing
	added, skipped = fresh.ImportMerge(entries)
	if added != 0 || skipped != 4 {
		t.Errorf("expected 0 added 4 skipped on reimport, got %d/%d", added, skipped)
	}
}
