package news

import (
	"fmt"
	"time"

	"github.com/sportify/transfer-scout/internal/types"
)

// MockArticles returns fallback sample articles used when a source
// cannot be fetched, so extraction and scoring can run end to end
// without live feeds.
func MockArticles(source Source, now time.Time) []types.NewsArticle {
	stamp := now.UnixMilli()
	return []types.NewsArticle{
		{
			ExternalID:  fmt.Sprintf("mock-%d-1", stamp),
			Title:       "Haaland ruled out for 3 weeks due to hamstring injury",
			Content:     "Manchester City confirmed that Erling Haaland will miss the next 3 weeks with a hamstring injury sustained in training. The Norwegian striker is expected to return after the international break.",
			Language:    source.Language,
			SourceName:  source.Name,
			PublishedAt: now,
			Author:      "Sport Reporter",
		},
		{
			ExternalID:  fmt.Sprintf("mock-%d-2", stamp),
			Title:       "Chelsea close to signing Brighton defender",
			Content:     "Chelsea has agreed a deal with Brighton & Hove Albion to sign defender Moisés Caicedo. The transfer fee is reported at €80 million with contract terms agreed. Medical tests scheduled for this week.",
			Language:    source.Language,
			SourceName:  source.Name,
			PublishedAt: now,
			Author:      "Transfer Correspondent",
		},
		{
			ExternalID:  fmt.Sprintf("mock-%d-3", stamp),
			Title:       "Liverpool extend Salah contract through 2026",
			Content:     "Liverpool FC has confirmed Mohamed Salah has signed a new contract extension through June 2026. The Egyptian winger expressed his commitment to the club with improved wages.",
			Language:    source.Language,
			SourceName:  source.Name,
			PublishedAt: now,
			Author:      "Club News",
		},
	}
}
