// Package discovery finds additional keyword ideas in locally stored website
// pages and ranks them with simulated planner metrics.
package discovery

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/net/html"
)

// Phrase length limits, in words.
const (
	minPhraseWords = 2
	maxPhraseWords = 6
)

// ExtractPhrases collects candidate keyword phrases from an HTML document:
// the title, meta keywords, and h1-h3 headings. Phrases are lower-cased,
// whitespace-collapsed and returned once each in document order.
func ExtractPhrases(r io.Reader) ([]string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	var raw []string
	var traverse func(*html.Node)
	traverse = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "title", "h1", "h2", "h3":
				raw = append(raw, textContent(n))
			case "meta":
				if strings.EqualFold(attr(n, "name"), "keywords") {
					raw = append(raw, strings.Split(attr(n, "content"), ",")...)
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			traverse(c)
		}
	}
	traverse(doc)

	seen := make(map[string]struct{}, len(raw))
	phrases := make([]string, 0, len(raw))
	for _, candidate := range raw {
		phrase := normalize(candidate)
		words := len(strings.Fields(phrase))
		if words < minPhraseWords || words > maxPhraseWords {
			continue
		}
		if _, dup := seen[phrase]; dup {
			continue
		}
		seen[phrase] = struct{}{}
		phrases = append(phrases, phrase)
	}
	return phrases, nil
}

// ExtractFile reads and extracts phrases from an HTML file on disk.
func ExtractFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open page %s: %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	phrases, err := ExtractPhrases(f)
	if err != nil {
		return nil, fmt.Errorf("page %s: %w", path, err)
	}
	return phrases, nil
}

func textContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			sb.WriteByte(' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if strings.EqualFold(a.Key, key) {
			return a.Val
		}
	}
	return ""
}

// normalize lower-cases s, replaces separators with spaces and collapses
// runs of whitespace.
func normalize(s string) string {
	s = strings.ToLower(s)
	s = strings.Map(func(r rune) rune {
		switch r {
		case '|', ':', ';', '!', '?', '"', '(', ')', '[', ']':
			return ' '
		}
		return r
	}, s)
	return strings.Join(strings.Fields(s), " ")
}
