package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateExtraction_Valid(t *testing.T) {
	doc := `{
		"event_type": "injury",
		"confidence_score": 0.9,
		"entities": {"players": ["Erling Haaland"], "clubs": ["Manchester City"]},
		"facts": ["Out for 3 weeks"],
		"is_rumor": false
	}`
	assert.NoError(t, ValidateExtraction(doc))
}

func TestValidateExtraction_MissingRequiredField(t *testing.T) {
	doc := `{"event_type": "injury", "confidence_score": 0.9}`
	err := ValidateExtraction(doc)
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.NotEmpty(t, validationErr.Errors)
}

func TestValidateExtraction_UnknownEventType(t *testing.T) {
	doc := `{"event_type": "moon_landing", "confidence_score": 0.9, "is_rumor": false}`
	err := ValidateExtraction(doc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "event_type")
}

func TestValidateExtraction_ConfidenceOutOfRange(t *testing.T) {
	doc := `{"event_type": "injury", "confidence_score": 1.5, "is_rumor": false}`
	err := ValidateExtraction(doc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "confidence_score")
}

func TestValidateJSONString_MalformedDocument(t *testing.T) {
	err := ValidateJSONString(`{"type": "object"}`, `not json`)
	require.Error(t, err)

	var loadErr *SchemaLoadError
	assert.ErrorAs(t, err, &loadErr)
}
