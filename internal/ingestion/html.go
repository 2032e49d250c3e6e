package ingestion

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// blockSelectors are the HTML elements treated as line boundaries when a
// resume arrives as an HTML export. Each matched element becomes one line of
// output, which keeps headings and bullets on their own lines the way the
// recognizer expects.
const blockSelectors = "h1, h2, h3, h4, h5, h6, p, li, td, div"

// ExtractTextFromHTML converts a resume saved as HTML into plain text, one
// line per block-level element.
func ExtractTextFromHTML(htmlContent string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return "", &HTMLExtractionError{Message: "failed to parse HTML", Cause: err}
	}

	// Drop non-content elements before walking the tree.
	doc.Find("script, style, noscript, head").Remove()

	var lines []string
	doc.Find(blockSelectors).Each(func(_ int, s *goquery.Selection) {
		// Skip container elements; their text is collected from the leaf
		// blocks inside them, and taking it here would duplicate every line.
		if s.Find(blockSelectors).Length() > 0 {
			return
		}
		text := strings.TrimSpace(s.Text())
		if text == "" {
			return
		}
		if goquery.NodeName(s) == "li" && !isBulletLine(text) {
			text = "- " + text
		}
		lines = append(lines, text)
	})

	if len(lines) == 0 {
		// No block structure at all; fall back to the flattened text.
		return strings.TrimSpace(doc.Text()), nil
	}
	return strings.Join(lines, "\n"), nil
}
