package catalog

import (
	"encoding/json"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// Page is the result of parsing the player server's playlist edit form:
// the catalog entries, which of them were rendered checked, and the
// server-supplied initial order, if any.
type Page struct {
	Entries      []Entry
	Preselected  []string // checked paths, in encounter order
	InitialOrder []string // nil when absent or malformed
}

// ParseEditPage parses the player's rendered edit form. Each item is an
// <input type="checkbox" name="videos"> whose value (or data-path) is the
// stable path, decorated with data-name and data-preview attributes; the
// selected-panel container may carry a data-initial-order JSON array.
// Items with an empty path are dropped and a malformed order attribute is
// treated as absent.
func ParseEditPage(r io.Reader) (Page, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return Page{}, err
	}

	var page Page

	var parse func(*html.Node)
	parse = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if isVideoCheckbox(n) {
				path := getAttr(n, "data-path")
				if path == "" {
					path = getAttr(n, "value")
				}
				if path != "" {
					page.Entries = append(page.Entries, Entry{
						Path:        path,
						DisplayName: getAttr(n, "data-name"),
						PreviewURI:  getAttr(n, "data-preview"),
					})
					if hasAttr(n, "checked") {
						page.Preselected = append(page.Preselected, path)
					}
				}
				return
			}
			if raw := getAttr(n, "data-initial-order"); raw != "" && page.InitialOrder == nil {
				var order []string
				if err := json.Unmarshal([]byte(raw), &order); err == nil {
					page.InitialOrder = order
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			parse(c)
		}
	}

	parse(doc)
	return page, nil
}

func isVideoCheckbox(n *html.Node) bool {
	return strings.EqualFold(n.Data, "input") &&
		strings.EqualFold(getAttr(n, "type"), "checkbox") &&
		getAttr(n, "name") == "videos"
}

// getAttr returns the value of an attribute, case-insensitive.
func getAttr(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if strings.EqualFold(attr.Key, key) {
			return attr.Val
		}
	}
	return ""
}

// hasAttr reports whether an attribute is present, regardless of value.
func hasAttr(n *html.Node, key string) bool {
	for _, attr := range n.Attr {
		if strings.EqualFold(attr.Key, key) {
			return true
		}
	}
	return false
}
