package llm

import (
	"testing"
)

func TestCleanJSONBlock_MarkdownCodeBlock(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "json code block",
			input:    "```json\n{\"event_type\": \"injury\"}\n```",
			expected: `{"event_type": "injury"}`,
		},
		{
			name:     "generic code block",
			input:    "```\n{\"event_type\": \"injury\"}\n```",
			expected: `{"event_type": "injury"}`,
		},
		{
			name:     "code block with language",
			input:    "```javascript\n{\"event_type\": \"injury\"}\n```",
			expected: `{"event_type": "injury"}`,
		},
		{
			name:     "plain JSON",
			input:    `{"event_type": "injury"}`,
			expected: `{"event_type": "injury"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CleanJSONBlock(tt.input)
			if result != tt.expected {
				t.Errorf("CleanJSONBlock() = %q, want %q", result, tt.expected)
			}
		})
	}
}

func TestCleanJSONBlock_PreambleText(t *testing.T) {
	input := "Here is the extraction:\n{\"event_type\": \"transfer_rumor\", \"is_rumor\": true}"
	expected := `{"event_type": "transfer_rumor", "is_rumor": true}`
	if result := CleanJSONBlock(input); result != expected {
		t.Errorf("CleanJSONBlock() = %q, want %q", result, expected)
	}
}
