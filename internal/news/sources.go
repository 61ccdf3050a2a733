// Package news ingests football news articles, runs LLM extraction over
// them, and derives player signals from the results.
package news

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Source describes one news site to ingest from.
type Source struct {
	Name     string
	URL      string
	Language string
	// HeadlineSelector matches anchor elements pointing at articles on
	// the source's index page.
	HeadlineSelector string
}

// DefaultSources returns the built-in news sources.
func DefaultSources() []Source {
	return []Source{
		{
			Name:             "ESPN",
			URL:              "https://www.espn.com/soccer/news",
			Language:         "en",
			HeadlineSelector: "section a[href*='/soccer/']",
		},
		{
			Name:             "Sky Sports",
			URL:              "https://www.skysports.com/football/news",
			Language:         "en",
			HeadlineSelector: ".news-list a.news-list__headline-link",
		},
		{
			Name:             "Goal.com",
			URL:              "https://www.goal.com/en",
			Language:         "en",
			HeadlineSelector: "a[href*='/lists/'], a[href*='/news/']",
		},
	}
}

// headlinesPerSource caps how many articles one ingestion cycle pulls
// from a single source.
const headlinesPerSource = 10

// Headline is a parsed index-page entry prior to fetching the article.
type Headline struct {
	Title string
	URL   string
}

// ParseHeadlines extracts article links from a source's index page.
func ParseHeadlines(html string, source Source) ([]Headline, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s index page: %w", source.Name, err)
	}

	base, err := url.Parse(source.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid source URL %q: %w", source.URL, err)
	}

	seen := make(map[string]bool)
	var headlines []Headline
	doc.Find(source.HeadlineSelector).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		href, ok := sel.Attr("href")
		if !ok {
			return true
		}
		link, err := base.Parse(href)
		if err != nil {
			return true
		}
		title := strings.TrimSpace(sel.Text())
		if title == "" || seen[link.String()] {
			return true
		}
		seen[link.String()] = true
		headlines = append(headlines, Headline{Title: title, URL: link.String()})
		return len(headlines) < headlinesPerSource
	})
	return headlines, nil
}

// externalID builds a stable article key from its source and URL so
// repeated ingestion cycles do not duplicate rows.
func externalID(source Source, articleURL string) string {
	return fmt.Sprintf("%s:%s", strings.ToLower(strings.ReplaceAll(source.Name, " ", "-")), articleURL)
}
