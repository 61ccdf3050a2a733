package llm

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sportify/transfer-scout/internal/types"
)

func TestSystemPrompt_LanguageSelection(t *testing.T) {
	assert.Contains(t, SystemPrompt("en"), "football intelligence analyst")
	assert.Contains(t, SystemPrompt("de"), "Fußball-Intelligenzanalyst")
	assert.Contains(t, SystemPrompt("ar"), "كرة قدم")

	// Unsupported languages fall back to English
	assert.Equal(t, SystemPrompt("en"), SystemPrompt("fr"))
	assert.Equal(t, SystemPrompt("en"), SystemPrompt(""))
}

func TestSystemPrompt_RumorConvention(t *testing.T) {
	// The analyst instructions must carry the rumor confidence ceiling
	assert.Contains(t, SystemPrompt("en"), "confidence < 0.7 for rumors")
}

func TestBuildArticlePrompt(t *testing.T) {
	article := &types.NewsArticle{
		Title:       "Star striker sidelined for six weeks",
		Content:     "The club confirmed a hamstring injury on Tuesday.",
		Language:    "en",
		SourceName:  "ESPN",
		PublishedAt: time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC),
	}

	prompt := BuildArticlePrompt(article)

	assert.Contains(t, prompt, "Article: Star striker sidelined for six weeks")
	assert.Contains(t, prompt, "Source: ESPN")
	assert.Contains(t, prompt, "hamstring injury")
	assert.Contains(t, prompt, `"event_type"`)
	assert.Contains(t, prompt, `"is_rumor"`)
	assert.True(t, strings.HasPrefix(prompt, SystemPrompt("en")))
}

func TestParseExtraction_ValidJSON(t *testing.T) {
	raw := `{
		"event_type": "injury",
		"confidence_score": 0.9,
		"entities": {"players": ["Erling Haaland"], "clubs": ["Manchester City"]},
		"facts": ["Out for 6 weeks with hamstring injury"],
		"is_rumor": false
	}`

	payload := ParseExtraction(raw)

	assert.Equal(t, types.EventInjury, payload.EventType)
	assert.Equal(t, 0.9, payload.ConfidenceScore)
	assert.Equal(t, []string{"Erling Haaland"}, payload.Entities.Players)
	assert.Equal(t, []string{"Manchester City"}, payload.Entities.Clubs)
	assert.False(t, payload.IsRumor)
}

func TestParseExtraction_WrappedInCodeBlock(t *testing.T) {
	raw := "```json\n{\"event_type\": \"transfer_rumor\", \"confidence_score\": 0.5, \"is_rumor\": true}\n```"

	payload := ParseExtraction(raw)

	assert.Equal(t, types.EventTransferRumor, payload.EventType)
	assert.True(t, payload.IsRumor)
}

func TestParseExtraction_GarbageFallsBackToUnknownRumor(t *testing.T) {
	payload := ParseExtraction("I could not analyze this article, sorry.")

	assert.Equal(t, types.EventUnknown, payload.EventType)
	assert.Equal(t, 0.3, payload.ConfidenceScore)
	assert.True(t, payload.IsRumor)
	assert.Len(t, payload.Facts, 1)
}

func TestParseExtraction_LongGarbageTruncated(t *testing.T) {
	payload := ParseExtraction(strings.Repeat("x", 500))

	assert.Len(t, payload.Facts, 1)
	assert.Len(t, payload.Facts[0], 200)
}
