// Package llm - extractor.go provides LLM-based extraction of structured
// signals from football news articles.
package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/sportify/transfer-scout/internal/schemas"
	"github.com/sportify/transfer-scout/internal/types"
)

// evidenceSnippetMax caps the evidence snippet carried on an extraction.
const evidenceSnippetMax = 500

// systemPrompts are the per-language analyst instructions. Unsupported
// languages fall back to English.
var systemPrompts = map[string]string{
	"en": `You are a football intelligence analyst. Extract structured information from football news articles.

For each article, identify:
1. Event Type (transfer_rumor, transfer_confirmed, injury, suspension, contract_extension, form_change)
2. Confidence Score (0-1)
3. Entities (player names, club names)
4. Key facts extracted directly from the text
5. Risk indicators

CRITICAL: Do NOT treat rumors as confirmed facts. Mark confidence < 0.7 for rumors.
Extract ONLY facts explicitly stated in the text.
Never invent or assume information.`,

	"ar": `أنت محلل ذكاء كرة قدم. استخرج المعلومات المنظمة من مقالات أخبار كرة القدم.

لكل مقالة، حدد:
1. نوع الحدث (شائعة انتقال، انتقال مؤكد، إصابة، إيقاف، تمديد عقد)
2. درجة الثقة (0-1)
3. الكيانات (أسماء اللاعبين، أسماء الأندية)
4. الحقائق الأساسية المستخرجة مباشرة من النص
5. مؤشرات المخاطر

حرج: لا تعامل الشائعات كحقائق مؤكدة.`,

	"de": `Sie sind ein Fußball-Intelligenzanalyst. Extrahieren Sie strukturierte Informationen aus Fußballnachrichtenartikeln.

Für jeden Artikel identifizieren Sie:
1. Ereignistyp (Wechselgerücht, Wechsel bestätigt, Verletzung, Sperre, Vertragsverlängerung)
2. Zuverlässigkeitsscore (0-1)
3. Entitäten (Spielernamen, Vereinsnamen)
4. Schlüsseltatsachen direkt aus dem Text
5. Risikoindikatoren`,
}

// SystemPrompt returns the analyst instructions for a language code.
func SystemPrompt(language string) string {
	if p, ok := systemPrompts[language]; ok {
		return p
	}
	return systemPrompts["en"]
}

// BuildArticlePrompt constructs the extraction prompt for one article.
func BuildArticlePrompt(article *types.NewsArticle) string {
	var sb strings.Builder
	sb.WriteString(SystemPrompt(article.Language))
	sb.WriteString("\n\n")
	sb.WriteString(fmt.Sprintf("Article: %s\n", article.Title))
	sb.WriteString(fmt.Sprintf("Source: %s\n", article.SourceName))
	sb.WriteString(fmt.Sprintf("Published: %s\n\n", article.PublishedAt.Format(time.RFC3339)))
	sb.WriteString("Content:\n")
	sb.WriteString(article.Content)
	sb.WriteString("\n\nExtract structured signals in JSON format:\n")
	sb.WriteString(`{
  "event_type": "string",
  "confidence_score": number,
  "entities": {
    "players": ["name1", "name2"],
    "clubs": ["club1", "club2"]
  },
  "facts": ["fact1", "fact2"],
  "is_rumor": boolean
}`)
	return sb.String()
}

// ExtractionPayload is the JSON shape the model is asked to return.
type ExtractionPayload struct {
	EventType       string                  `json:"event_type"`
	ConfidenceScore float64                 `json:"confidence_score"`
	Entities        types.ExtractedEntities `json:"entities"`
	Facts           []string                `json:"facts"`
	IsRumor         bool                    `json:"is_rumor"`
}

// ParseExtraction decodes a model response. Unparseable responses
// degrade to an unknown low-confidence rumor carrying the raw text as
// its only fact, rather than failing the article.
func ParseExtraction(raw string) ExtractionPayload {
	var payload ExtractionPayload
	if err := json.Unmarshal([]byte(CleanJSONBlock(raw)), &payload); err == nil && payload.EventType != "" {
		return payload
	}

	fact := raw
	if len(fact) > 200 {
		fact = fact[:200]
	}
	return ExtractionPayload{
		EventType:       types.EventUnknown,
		ConfidenceScore: 0.3,
		Facts:           []string{fact},
		IsRumor:         true,
	}
}

// NewsExtractor turns articles into structured extractions using an LLM.
type NewsExtractor struct {
	client Client
	tier   ModelTier
}

// NewNewsExtractor creates an extractor over the given client.
func NewNewsExtractor(client Client) *NewsExtractor {
	return &NewsExtractor{client: client, tier: TierStandard}
}

// ExtractSignals runs extraction over one article. The returned
// extraction has ArticleID and AffectedPlayers unset; the caller
// resolves entity names to player IDs before persisting.
func (e *NewsExtractor) ExtractSignals(ctx context.Context, article *types.NewsArticle) (*types.NewsExtraction, error) {
	start := time.Now()

	raw, err := e.client.GenerateJSON(ctx, BuildArticlePrompt(article), e.tier)
	if err != nil {
		return nil, fmt.Errorf("failed to extract signals: %w", err)
	}

	if err := schemas.ValidateExtraction(raw); err != nil {
		log.Printf("Warning: extraction for %q failed schema validation: %v", article.Title, err)
	}

	payload := ParseExtraction(raw)

	snippet := article.Content
	if len(snippet) > evidenceSnippetMax {
		snippet = snippet[:evidenceSnippetMax]
	}

	return &types.NewsExtraction{
		EventType:        payload.EventType,
		ConfidenceScore:  payload.ConfidenceScore,
		Entities:         payload.Entities,
		KeyFacts:         payload.Facts,
		EvidenceSnippet:  snippet,
		IsRumor:          payload.IsRumor,
		LLMModel:         e.client.GetModel(e.tier),
		ProcessingTimeMS: time.Since(start).Milliseconds(),
	}, nil
}
