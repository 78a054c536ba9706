package model

import "fmt"

// Dataset is the ordered list of entries every view registers.
type Dataset struct {
	Entries []Entry `json:"entries"`
}

// NewDataset creates an empty Dataset with an initialized slice.
func NewDataset() *Dataset {
	return &Dataset{Entries: []Entry{}}
}

// Seed returns a dataset of n entries labelled content1..contentN.
func Seed(n int) *Dataset {
	d := NewDataset()
	d.Insert(-1, n)
	return d
}

// Len returns the number of entries.
func (d *Dataset) Len() int {
	return len(d.Entries)
}

// Insert adds count fresh entries before index. A negative index, or one
// past the end, appends. Afterwards every entry is relabelled by position.
// Returns the index the entries were inserted at.
func (d *Dataset) Insert(index, count int) int {
	if count <= 0 {
		return -1
	}
	if index < 0 || index > len(d.Entries) {
		index = len(d.Entries)
	}

	fresh := make([]Entry, count)
	for i := range fresh {
		fresh[i] = NewEntry(Label(index + i))
	}

	entries := make([]Entry, 0, len(d.Entries)+count)
	entries = append(entries, d.Entries[:index]...)
	entries = append(entries, fresh...)
	entries = append(entries, d.Entries[index:]...)
	d.Entries = entries

	d.Relabel()
	return index
}

// Remove deletes up to count entries starting at index and returns how many
// were removed. Out of range indexes remove nothing. Remaining entries keep
// their labels.
func (d *Dataset) Remove(index, count int) int {
	if count <= 0 || index < 0 || index >= len(d.Entries) {
		return 0
	}
	end := min(index+count, len(d.Entries))
	d.Entries = append(d.Entries[:index], d.Entries[end:]...)
	return end - index
}

// Relabel sets each entry's content to content1..contentN in order.
func (d *Dataset) Relabel() {
	for i := range d.Entries {
		d.Entries[i].Content = Label(i)
	}
}

// EntryByID finds an entry by ID, returns nil if not found.
func (d *Dataset) EntryByID(id string) *Entry {
	for i := range d.Entries {
		if d.Entries[i].ID == id {
			return &d.Entries[i]
		}
	}
	return nil
}

// IndexOf returns the position of the entry with id, or -1.
func (d *Dataset) IndexOf(id string) int {
	for i := range d.Entries {
		if d.Entries[i].ID == id {
			return i
		}
	}
	return -1
}

// HasContent checks if an entry with the given content exists.
func (d *Dataset) HasContent(content string) bool {
	for _, e := range d.Entries {
		if e.Content == content {
			return true
		}
	}
	return false
}

// ImportMerge appends imported entries, skipping those whose content or ID
// already exists. Returns counts of added and skipped entries.
func (d *Dataset) ImportMerge(entries []Entry) (added, skipped int) {
	for _, e := range entries {
		if d.HasContent(e.Content) || (e.ID != "" && d.EntryByID(e.ID) != nil) {
			skipped++
			continue
		}
		if e.ID == "" {
			e.ID = generateID()
		}
		d.Entries = append(d.Entries, e)
		added++
	}
	return added, skipped
}

// Validate reports the first duplicated ID. Scroll views require unique keys.
func (d *Dataset) Validate() error {
	seen := make(map[string]int, len(d.Entries))
	for i, e := range d.Entries {
		if e.ID == "" {
			return fmt.Errorf("entry %d has no id", i)
		}
		if j, ok := seen[e.ID]; ok {
			return fmt.Errorf("entries %d and %d share id %s", j, i, e.ID)
		}
		seen[e.ID] = i
	}
	return nil
}
