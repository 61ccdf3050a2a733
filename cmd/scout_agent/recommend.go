package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/sportify/transfer-scout/internal/config"
	"github.com/sportify/transfer-scout/internal/db"
	"github.com/sportify/transfer-scout/internal/engine"
	"github.com/sportify/transfer-scout/internal/observability"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Generate transfer recommendations for a club",
	Long: `Runs the full recommendation pipeline for one club: loads the club's active
need profile, filters the available player pool, scores every surviving
candidate, and persists the ranked, explained results.

Configuration can be loaded from a JSON file using --config. Command-line
arguments override config file values.`,
	RunE: runRecommend,
}

var (
	recommendConfigPath  string
	recommendClubID      string
	recommendTopN        int
	recommendDatabaseURL string
	recommendVerbose     bool
)

func init() {
	recommendCmd.Flags().StringVar(&recommendConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	recommendCmd.Flags().StringVar(&recommendClubID, "club", "", "Club ID to generate recommendations for (required)")
	recommendCmd.Flags().IntVar(&recommendTopN, "top-n", 0, "Number of recommendations to keep")
	recommendCmd.Flags().StringVar(&recommendDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")
	recommendCmd.Flags().BoolVarP(&recommendVerbose, "verbose", "v", false, "Print detailed score breakdowns")

	_ = recommendCmd.MarkFlagRequired("club")

	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	var cfg config.Config
	if recommendConfigPath != "" {
		loaded, err := config.LoadConfig(recommendConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return err
		}
		cfg = *loaded
	}

	if cmd.Flags().Changed("top-n") {
		cfg.TopN = recommendTopN
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = recommendDatabaseURL
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = recommendVerbose
	}

	cfg = cfg.MergeWithDefaults(config.Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		TopN:        engine.DefaultTopN,
	})

	if cfg.DatabaseURL == "" {
		return fmt.Errorf("database URL is required (set DATABASE_URL or pass --db-url)")
	}

	clubID, err := uuid.Parse(recommendClubID)
	if err != nil {
		return fmt.Errorf("invalid club ID %q: %w", recommendClubID, err)
	}

	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	need, err := database.ClubNeedProfile(ctx, clubID)
	if err != nil {
		return fmt.Errorf("failed to load need profile: %w", err)
	}
	if need == nil {
		return &engine.NeedProfileNotFoundError{ClubID: clubID}
	}

	printer := observability.NewPrinter(os.Stdout)
	if cfg.Verbose {
		printer.PrintNeedProfile(need)
	}

	recs, err := engine.New(database).Generate(ctx, need, cfg.TopN)
	if err != nil {
		return fmt.Errorf("recommendation run failed: %w", err)
	}

	if len(recs) == 0 {
		fmt.Println("No candidates matched the club's needs.")
		return nil
	}

	if cfg.Verbose {
		printer.PrintRecommendations(recs)
	} else {
		for _, rec := range recs {
			fmt.Printf("%2d. %-30s %-4s %.3f\n",
				rec.RankPosition, rec.PlayerName, rec.PrimaryPosition, rec.FinalScore)
		}
	}
	fmt.Printf("Generated %d recommendations for club %s\n", len(recs), clubID)

	return nil
}
