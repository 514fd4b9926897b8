package musicapi

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// maxPageSize bounds how much of a song page is read.
const maxPageSize = 4 << 20

// extractLyrics collects the text of every lyrics container on a Genius song
// page. Line breaks become newlines; annotation headers are skipped.
func extractLyrics(r io.Reader) (string, error) {
	doc, err := html.Parse(io.LimitReader(r, maxPageSize))
	if err != nil {
		return "", fmt.Errorf("failed to parse song page: %w", err)
	}

	var blocks []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && attr(n, "data-lyrics-container") == "true" {
			var sb strings.Builder
			collectText(n, &sb)
			blocks = append(blocks, sb.String())
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	if len(blocks) == 0 {
		return "", ErrLyricsNotFound
	}
	return strings.Join(blocks, "\n"), nil
}

func collectText(n *html.Node, sb *strings.Builder) {
	switch n.Type {
	case html.TextNode:
		sb.WriteString(n.Data)
		return
	case html.ElementNode:
		if n.Data == "br" {
			sb.WriteByte('\n')
			return
		}
		if attr(n, "data-exclude-from-selection") == "true" {
			return
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, sb)
	}
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
