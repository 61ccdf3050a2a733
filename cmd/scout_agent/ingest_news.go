package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/sportify/transfer-scout/internal/config"
	"github.com/sportify/transfer-scout/internal/db"
	"github.com/sportify/transfer-scout/internal/llm"
	"github.com/sportify/transfer-scout/internal/news"
	"github.com/sportify/transfer-scout/internal/observability"
)

var ingestNewsCmd = &cobra.Command{
	Use:   "ingest-news",
	Short: "Run one news ingestion cycle",
	Long: `Fetches headlines from the configured news sources, extracts structured
transfer signals from each new article, and stores the extractions along
with any derived injury or suspension signals.`,
	RunE: runIngestNews,
}

var (
	ingestConfigPath  string
	ingestDatabaseURL string
	ingestAPIKey      string
)

func init() {
	ingestNewsCmd.Flags().StringVar(&ingestConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	ingestNewsCmd.Flags().StringVar(&ingestDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")
	ingestNewsCmd.Flags().StringVar(&ingestAPIKey, "api-key", "", "Gemini API key (optional, defaults to GEMINI_API_KEY env var)")
	rootCmd.AddCommand(ingestNewsCmd)
}

func runIngestNews(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	var cfg config.Config
	if ingestConfigPath != "" {
		loaded, err := config.LoadConfig(ingestConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return err
		}
		cfg = *loaded
	}

	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = ingestDatabaseURL
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = ingestAPIKey
	}

	cfg = cfg.MergeWithDefaults(config.Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		APIKey:      os.Getenv("GEMINI_API_KEY"),
	})

	if cfg.DatabaseURL == "" {
		return fmt.Errorf("database URL is required (set DATABASE_URL or pass --db-url)")
	}
	if cfg.APIKey == "" {
		return fmt.Errorf("Gemini API key is required (set GEMINI_API_KEY or pass --api-key)")
	}

	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	client, err := llm.NewClient(ctx, llm.DefaultConfig(), cfg.APIKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer client.Close()

	ingestor := news.NewIngestor(database, llm.NewNewsExtractor(client))

	start := time.Now()
	ingestor.RunOnce(ctx)

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintIngestSummary(len(news.DefaultSources()), time.Since(start).Round(time.Millisecond).String())

	return nil
}
