package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_HasSubcommands(t *testing.T) {
	names := map[string]bool{}
	for _, cmd := range rootCmd.Commands() {
		names[cmd.Name()] = true
	}

	assert.True(t, names["serve"])
	assert.True(t, names["recommend"])
	assert.True(t, names["ingest-news"])
	assert.True(t, names["setup-db"])
	assert.True(t, names["seed"])
}

func TestRecommendCommand_RequiresClubFlag(t *testing.T) {
	rootCmd.SetArgs([]string{"recommend"})
	err := rootCmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "club")
}

func TestRecommendCommand_InvalidClubID(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/test")

	rootCmd.SetArgs([]string{"recommend", "--club", "not-a-uuid"})
	err := rootCmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid club ID")
}

func TestSetupDBCommand_RequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	rootCmd.SetArgs([]string{"setup-db", "--db-url", ""})
	err := rootCmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "database URL is required")
}

func TestIngestNewsCommand_RequiresAPIKey(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/test")
	t.Setenv("GEMINI_API_KEY", "")

	rootCmd.SetArgs([]string{"ingest-news", "--api-key", ""})
	err := rootCmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Gemini API key is required")
}
