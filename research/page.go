package research

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

const maxPageBody = 2 << 20

func (c *Client) scrapePage(ctx context.Context, rawURL string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.pageTimeout)
	defer cancel()

	body, err := c.fetch(ctx, rawURL, maxPageBody, "text/html,application/xhtml+xml;q=0.9,*/*;q=0.8")
	if err != nil || body == nil {
		return "", err
	}
	return leadingParagraphs(body, c.maxParagraphs)
}

// leadingParagraphs returns the trimmed text of the first n <p> elements,
// dropping empty ones, joined by newlines
func leadingParagraphs(body []byte, n int) (string, error) {
	doc, err := html.Parse(bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	var paragraphs []*html.Node
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if len(paragraphs) >= n {
			return
		}
		if node.Type == html.ElementNode && node.Data == "p" {
			paragraphs = append(paragraphs, node)
		}
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(doc)

	texts := make([]string, 0, len(paragraphs))
	for _, p := range paragraphs {
		text := strings.TrimSpace(nodeText(p))
		if text != "" {
			texts = append(texts, text)
		}
	}
	return strings.Join(texts, "\n"), nil
}

func nodeText(n *html.Node) string {
	var sb strings.Builder
	var collect func(*html.Node)
	collect = func(node *html.Node) {
		if node.Type == html.TextNode {
			sb.WriteString(node.Data)
		}
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			collect(child)
		}
	}
	collect(n)
	return sb.String()
}
