package reader

import (
	"strings"

	"golang.org/x/net/html"
)

// VisibleText extracts the human-visible text from cleaned HTML,
// skipping script, style, noscript, and iframe subtrees. The parser
// is tolerant, so malformed markup degrades to whatever text it
// recovers rather than an error.
func VisibleText(content string) string {
	doc, err := html.Parse(strings.NewReader(content))
	if err != nil {
		// Unreachable with an in-memory reader; kept for totality.
		return strings.TrimSpace(content)
	}

	var buf strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript", "iframe":
				return
			}
		}

		if n.Type == html.TextNode {
			text := strings.TrimSpace(n.Data)
			if text != "" {
				buf.WriteString(text)
				buf.WriteString(" ")
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	walk(doc)
	return strings.TrimSpace(buf.String())
}
