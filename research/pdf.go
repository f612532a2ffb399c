package research

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

const maxPDFBody = 20 << 20

func (c *Client) scrapePDF(ctx context.Context, rawURL string) (string, error) {
	body, err := c.fetch(ctx, rawURL, maxPDFBody, "application/pdf")
	if err != nil || body == nil {
		return "", err
	}
	return extractPDFText(body)
}

// extractPDFText joins the plain text of every page that yields any
func extractPDFText(data []byte) (text string, err error) {
	// the PDF parser panics on some malformed documents
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("malformed PDF: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("error opening PDF: %w", err)
	}

	pages := make([]string, 0, reader.NumPage())
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		if pageText != "" {
			pages = append(pages, pageText)
		}
	}
	return strings.Join(pages, "\n"), nil
}
