package model

import (
	"fmt"
	"time"
)

// Entry is one record of the dataset shown by the scroll views.
type Entry struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewEntry creates an Entry with a generated ID.
func NewEntry(content string) Entry {
	return Entry{
		ID:        generateID(),
		Content:   content,
		CreatedAt: time.Now(),
	}
}

// Key returns the entry ID. It makes Entry usable as a scroll view item.
func (e Entry) Key() string {
	return e.ID
}

// String returns the entry content, which is what item views display.
func (e Entry) String() string {
	return e.Content
}

// Label returns the display text for position i (zero-based).
func Label(i int) string {
	return fmt.Sprintf("content%d", i+1)
}
