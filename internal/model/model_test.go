package model_test

import (
	"testing"

	"github.com/nikbrunner/vscroll/internal/model"
)

func contents(d *model.Dataset) []string {
	out := make([]string, d.Len())
	for i, e := range d.Entries {
		out[i] = e.Content
	}
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestSeed(t *testing.T) {
	d := model.Seed(3)

	want := []string{"content1", "content2", "content3"}
	if got := contents(d); !equal(got, want) {
		t.Errorf("Seed(3) = %v, want %v", got, want)
	}
	if err := d.Validate(); err != nil {
		t.Errorf("seeded dataset invalid: %v", err)
	}
}

func TestDataset_Insert(t *testing.T) {
	tests := []struct {
		name      string
		start     int
		index     int
		count     int
		wantLen   int
		wantIndex int
	}{
		{"append with empty index", 3, -1, 2, 5, 3},
		{"insert at front", 3, 0, 2, 5, 0},
		{"insert in middle", 3, 1, 1, 4, 1},
		{"index past end clamps to append", 3, 10, 1, 4, 3},
		{"zero count is ignored", 3, 0, 0, 3, -1},
		{"into empty dataset", 0, 0, 4, 4, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := model.Seed(tt.start)
			got := d.Insert(tt.index, tt.count)

			if got != tt.wantIndex {
				t.Errorf("Insert returned %d, want %d", got, tt.wantIndex)
			}
			if d.Len() != tt.wantLen {
				t.Errorf("expected %d entries, got %d", tt.wantLen, d.Len())
			}
			for i, e := range d.Entries {
				if e.Content != model.Label(i) {
					t.Errorf("entry %d content = %q, want %q", i, e.Content, model.Label(i))
				}
			}
		})
	}
}

func TestDataset_InsertKeepsIdentity(t *testing.T) {
	d := model.Seed(2)
	first, second := d.Entries[0].ID, d.Entries[1].ID

	d.Insert(1, 1)

	if d.Entries[0].ID != first {
		t.Error("entry before the insertion point changed identity")
	}
	if d.Entries[2].ID != second {
		t.Error("entry after the insertion point was not shifted")
	}
	if d.Entries[2].Content != "content3" {
		t.Errorf("shifted entry not relabelled, got %q", d.Entries[2].Content)
	}
	if err := d.Validate(); err != nil {
		t.Errorf("unexpected duplicate: %v", err)
	}
}

func TestDataset_Remove(t *testing.T) {
	tests := []struct {
		name        string
		index       int
		count       int
		wantRemoved int
		want        []string
	}{
		{"from front", 0, 2, 2, []string{"content3", "content4", "content5"}},
		{"from middle", 1, 1, 1, []string{"content1", "content3", "content4", "content5"}},
		{"count past end", 3, 10, 2, []string{"content1", "content2", "content3"}},
		{"index out of range", 5, 1, 0, []string{"content1", "content2", "content3", "content4", "content5"}},
		{"negative index", -1, 1, 0, []string{"content1", "content2", "content3", "content4", "content5"}},
		{"zero count", 0, 0, 0, []string{"content1", "content2", "content3", "content4", "content5"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := model.Seed(5)
			removed := d.Remove(tt.index, tt.count)

			if removed != tt.wantRemoved {
				t.Errorf("Remove returned %d, want %d", removed, tt.wantRemoved)
			}
			if got := contents(d); !equal(got, tt.want) {
				t.Errorf("after Remove got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDataset_EntryByID(t *testing.T) {
	d := model.Seed(2)
	id := d.Entries[1].ID

	e := d.EntryByID(id)
	if e == nil {
		t.Fatal("expected to find entry")
	}
	if e.Content != "content2" {
		t.Errorf("expected content2, got %q", e.Content)
	}
	if d.IndexOf(id) != 1 {
		t.Errorf("expected index 1, got %d", d.IndexOf(id))
	}

	if d.EntryByID("nonexistent") != nil {
		t.Error("expected nil for nonexistent entry")
	}
	if d.IndexOf("nonexistent") != -1 {
		t.Error("expected -1 for nonexistent entry")
	}
}

func TestDataset_ImportMerge(t *testing.T) {
	d := model.Seed(2)

	added, skipped := d.ImportMerge([]model.Entry{
		{Content: "content1"}, // duplicate content
		{Content: "imported"},
		{ID: d.Entries[1].ID, Content: "other"}, // duplicate id
	})

	if added != 1 {
		t.Errorf("expected 1 added, got %d", added)
	}
	if skipped != 2 {
		t.Errorf("expected 2 skipped, got %d", skipped)
	}
	last := d.Entries[d.Len()-1]
	if last.Content != "imported" || last.ID == "" {
		t.Errorf("imported entry not appended with an id: %+v", last)
	}
}

func TestDataset_Validate(t *testing.T) {
	d := &model.Dataset{Entries: []model.Entry{{ID: "a"}, {ID: "b"}, {ID: "a"}}}
	if err := d.Validate(); err == nil {
		t.Error("expected error for duplicated id")
	}

	d = &model.Dataset{Entries: []model.Entry{{ID: ""}}}
	if err := d.Validate(); err == nil {
		t.Error("expected error for missing id")
	}
}

func TestEntry_Key(t *testing.T) {
	e := model.NewEntry("hello")
	if e.Key() != e.ID {
		t.Errorf("Key() = %q, want ID %q", e.Key(), e.ID)
	}
	if e.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}
}

func TestEntry_String(t *testing.T) {
	e := model.NewEntry("hello")
	if e.String() != "hello" {
		t.Errorf("String() = %q, want %q", e.String(), "hello")
	}
}
