package parsers

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	mederrors "github.com/hazelvis/Medium-Publisher-Logic/errors"
)

// ExtractTitleFromHtml returns a title for the given HTML post
// content, taken from the first <h1>, falling back to <title>.
// Returns an empty string when neither is present.
func ExtractTitleFromHtml(htmlContent string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return "", fmt.Errorf(
			"html error %d: failed to parse post content, more info => %w",
			mederrors.HTML_ERROR,
			err,
		)
	}

	if title := strings.TrimSpace(doc.Find("h1").First().Text()); title != "" {
		return title, nil
	}
	return strings.TrimSpace(doc.Find("title").First().Text()), nil
}

// ExtractCanonicalLink returns the canonical URL declared by the
// given HTML post content via <link rel="canonical">, if any.
func ExtractCanonicalLink(htmlContent string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return "", fmt.Errorf(
			"html error %d: failed to parse post content, more info => %w",
			mederrors.HTML_ERROR,
			err,
		)
	}

	link, _ := doc.Find(`link[rel="canonical"]`).First().Attr("href")
	return strings.TrimSpace(link), nil
}
