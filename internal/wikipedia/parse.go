package wikipedia

import (
	"errors"
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
)

const (
	maxSections     = 15
	maxSummaryChars = 500
	maxBodyWords    = 8000
	maxEntities     = 10
)

var skippedSections = map[string]bool{
	"References":     true,
	"External links": true,
	"See also":       true,
	"Notes":          true,
}

func parseArticle(doc *html.Node) (Article, error) {
	heading := findByID(doc, "firstHeading")
	if heading == nil {
		return Article{}, errors.New("could not locate article heading")
	}

	content := findByID(doc, "mw-content-text")
	if content == nil {
		return Article{}, errors.New("could not locate article content")
	}

	paragraphs := collectParagraphs(content)

	article := Article{
		Title:       strings.TrimSpace(nodeText(heading)),
		Summary:     firstSubstantialParagraph(paragraphs),
		Sections:    collectSections(content),
		BodyText:    joinParagraphs(paragraphs),
		KeyEntities: collectEntities(content),
	}
	return article, nil
}

func firstSubstantialParagraph(paragraphs []string) string {
	for _, text := range paragraphs {
		if len(text) > 100 {
			if len(text) > maxSummaryChars {
				// Back up to a rune start so the cut never splits a
				// multi-byte character.
				cut := maxSummaryChars
				for cut > 0 && !utf8.RuneStart(text[cut]) {
					cut--
				}
				return text[:cut]
			}
			return text
		}
	}
	return ""
}

func joinParagraphs(paragraphs []string) string {
	text := strings.Join(paragraphs, "\n\n")
	words := strings.Fields(text)
	if len(words) > maxBodyWords {
		text = strings.Join(words[:maxBodyWords], " ") + "..."
	}
	return text
}

func collectParagraphs(content *html.Node) []string {
	var paragraphs []string
	walk(content, func(n *html.Node) bool {
		if n.Type != html.ElementNode {
			return true
		}
		// Tables, references and inline footnotes only add noise to the text
		// handed to the language model.
		switch n.Data {
		case "table", "script", "style", "sup":
			return false
		case "p":
			if text := strings.TrimSpace(nodeText(n)); text != "" {
				paragraphs = append(paragraphs, text)
			}
			return false
		}
		return true
	})
	return paragraphs
}

func collectSections(content *html.Node) []string {
	var sections []string
	walk(content, func(n *html.Node) bool {
		if n.Type != html.ElementNode {
			return true
		}
		if n.Data != "h2" && n.Data != "h3" {
			return true
		}
		headline := findByClass(n, "mw-headline")
		if headline == nil {
			// Newer skins render the heading text directly on the element.
			headline = n
		}
		text := strings.TrimSpace(nodeText(headline))
		if text != "" && !skippedSections[text] && len(sections) < maxSections {
			sections = append(sections, text)
		}
		return false
	})
	return sections
}

func collectEntities(content *html.Node) KeyEntities {
	people := make(map[string]bool)
	organizations := make(map[string]bool)
	locations := make(map[string]bool)

	walk(content, func(n *html.Node) bool {
		if n.Type != html.ElementNode || n.Data != "a" {
			return true
		}
		href := attr(n, "href")
		title := attr(n, "title")
		if !strings.Contains(href, "/wiki/") || strings.Contains(href, ":") || title == "" {
			return true
		}

		lower := strings.ToLower(title)
		switch {
		case containsAny(lower, "university", "company", "corporation", "institute", "organization"):
			organizations[title] = true
		case containsAny(lower, "city", "country", "state", "kingdom", "empire"):
			locations[title] = true
		case len(strings.Fields(title)) <= 3 && title[0] >= 'A' && title[0] <= 'Z':
			people[title] = true
		}
		return true
	})

	return KeyEntities{
		People:        sortedLimit(people, maxEntities),
		Organizations: sortedLimit(organizations, maxEntities),
		Locations:     sortedLimit(locations, maxEntities),
	}
}

func containsAny(s string, substrings ...string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func sortedLimit(set map[string]bool, limit int) []string {
	out := make([]string, 0, len(set))
	for item := range set {
		out = append(out, item)
	}
	sort.Strings(out)
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// walk visits nodes depth-first; visit returns false to skip a subtree.
func walk(n *html.Node, visit func(*html.Node) bool) {
	if !visit(n) {
		return
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		walk(child, visit)
	}
}

func findByID(n *html.Node, id string) *html.Node {
	var found *html.Node
	walk(n, func(node *html.Node) bool {
		if found != nil {
			return false
		}
		if node.Type == html.ElementNode && attr(node, "id") == id {
			found = node
			return false
		}
		return true
	})
	return found
}

func findByClass(n *html.Node, class string) *html.Node {
	var found *html.Node
	walk(n, func(node *html.Node) bool {
		if found != nil {
			return false
		}
		if node.Type == html.ElementNode && hasClass(node, class) {
			found = node
			return false
		}
		return true
	})
	return found
}

func hasClass(n *html.Node, class string) bool {
	for _, candidate := range strings.Fields(attr(n, "class")) {
		if candidate == class {
			return true
		}
	}
	return false
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func nodeText(n *html.Node) string {
	var builder strings.Builder
	walk(n, func(node *html.Node) bool {
		if node.Type == html.ElementNode {
			switch node.Data {
			case "sup", "style", "script":
				return false
			}
		}
		if node.Type == html.TextNode {
			builder.WriteString(node.Data)
		}
		return true
	})
	return builder.String()
}
