package extract

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// HTML flattens an HTML page (the portal's "print KRS" view) into lines of text:
// every non-empty text node becomes one line, in document order. Table cells therefore
// land on their own lines, the same shape the PDF text layer has.
func HTML(r io.Reader) (string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	var lines []string
	collectText(doc.Find("body"), &lines)

	if len(lines) == 0 {
		return "", ErrEmptyDocument
	}
	return strings.Join(lines, "\n"), nil
}

func collectText(sel *goquery.Selection, lines *[]string) {
	sel.Contents().Each(func(i int, node *goquery.Selection) {
		switch goquery.NodeName(node) {
		case "#text":
			for _, part := range strings.Split(node.Text(), "\n") {
				if part = strings.TrimSpace(part); part != "" {
					*lines = append(*lines, part)
				}
			}
		case "script", "style", "noscript", "#comment":
			// skipped
		default:
			collectText(node, lines)
		}
	})
}
