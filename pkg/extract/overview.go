package extract

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/go-shiori/go-readability"
)

const maxExcerptLen = 280

// Overview distills a readable title and excerpt from a full posting page.
// It is display-only: the field pipeline never depends on it.
func Overview(pageHTML, pageURL string) (title, excerpt string, err error) {
	u, err := url.Parse(pageURL)
	if err != nil {
		return "", "", fmt.Errorf("parse page url: %w", err)
	}

	parser := readability.NewParser()
	article, err := parser.Parse(strings.NewReader(pageHTML), u)
	if err != nil {
		return "", "", fmt.Errorf("readability parse: %w", err)
	}

	title = cleanText(article.Title)
	excerpt = cleanText(article.Excerpt)
	if excerpt == "" {
		excerpt = cleanText(article.TextContent)
	}
	if len(excerpt) > maxExcerptLen {
		excerpt = excerpt[:maxExcerptLen] + "…"
	}
	return title, excerpt, nil
}
