package importer_test

import (
	"strings"
	"testing"
	"time"

	"github.com/nikbrunner/vscroll/internal/importer"
)

func TestParseHTML_ListItems(t *testing.T) {
	html := `<!DOCTYPE html>
<html><body>
<h1>Entries (2)</h1>
<ol>
    <li data-id="e1" data-created="1700000000">content1</li>
    <li>  second entry  </li>
</ol>
</body></html>`

	entries, err := importer.ParseHTMLEntries(strings.NewReader(html))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}

	if entries[0].ID != "e1" {
		t.Errorf("expected ID 'e1', got %q", entries[0].ID)
	}
	if entries[0].Content != "content1" {
		t.Errorf("expected content 'content1', got %q", entries[0].Content)
	}
	if !entries[0].CreatedAt.Equal(time.Unix(1700000000, 0)) {
		t.Errorf("expected created time from data-created, got %v", entries[0].CreatedAt)
	}

	if entries[1].Content != "second entry" {
		t.Errorf("expected trimmed content, got %q", entries[1].Content)
	}
	if entries[1].ID == "" {
		t.Error("expected generated ID for entry without data-id")
	}
}

func TestParseHTML_BookmarkFile(t *testing.T) {
	html := `<!DOCTYPE NETSCAPE-Bookmark-file-1>
<DL><p>
    <DT><H3>Development</H3>
    <DL><p>
        <DT><A HREF="https://react.dev" ADD_DATE="1234567890">React Docs</A>
    </DL><p>
    <DT><A HREF="https://google.com">Google</A>
    <DT><A HREF="https://empty.example"></A>
</DL><p>`

	entries, err := importer.ParseHTMLEntries(strings.NewReader(html))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Content != "React Docs" {
		t.Errorf("expected 'React Docs', got %q", entries[0].Content)
	}
	if entries[0].CreatedAt.Unix() != 1234567890 {
		t.Errorf("expected ADD_DATE timestamp, got %d", entries[0].CreatedAt.Unix())
	}
	if entries[1].Content != "Google" {
		t.Errorf("expected 'Google', got %q", entries[1].Content)
	}
}

func TestParseHTML_Empty(t *testing.T) {
	entries, err := importer.ParseHTMLEntries(strings.NewReader(""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected 0 entries, got %d", len(entries))
	}
}
