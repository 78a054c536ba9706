package importer

import (
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/nikbrunner/vscroll/internal/model"
	"golang.org/x/net/html"
)

// ParseHTMLEntries reads entries from an HTML document.
//
// Every <li> becomes one entry with its text as content; data-id and
// data-created attributes, as written by the exporter, are kept when present.
// Links outside a list item (browser bookmark files) become entries too, so
// any bookmark export can serve as a dataset.
func ParseHTMLEntries(r io.Reader) ([]model.Entry, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	var entries []model.Entry

	var parse func(*html.Node)
	parse = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch strings.ToLower(n.Data) {
			case "li", "a":
				content := getTextContent(n)
				if content == "" {
					return
				}
				e := model.NewEntry(content)
				if id := getAttr(n, "data-id"); id != "" {
					e.ID = id
				}
				for _, attr := range []string{"data-created", "add_date"} {
					if ts := getAttr(n, attr); ts != "" {
						if sec, err := strconv.ParseInt(ts, 10, 64); err == nil {
							e.CreatedAt = time.Unix(sec, 0)
						}
					}
				}
				entries = append(entries, e)
				return // Don't recurse into the entry
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			parse(c)
		}
	}

	parse(doc)
	return entries, nil
}

// getTextContent returns the text content of a node.
func getTextContent(n *html.Node) string {
	var text strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			text.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return strings.TrimSpace(text.String())
}

// getAttr returns the value of an attribute, case-insensitive.
func getAttr(n *html.Node, key string) string {
	key = strings.ToLower(key)
	for _, attr := range n.Attr {
		if strings.ToLower(attr.Key) == key {
			return attr.Val
		}
	}
	return ""
}
