package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sportify/transfer-scout/internal/db"
)

var setupDatabaseURL string

var setupDBCmd = &cobra.Command{
	Use:   "setup-db",
	Short: "Create the database schema",
	Long:  `Applies the embedded schema to the target PostgreSQL database. Safe to run repeatedly; all statements are idempotent.`,
	RunE:  runSetupDB,
}

func init() {
	setupDBCmd.Flags().StringVar(&setupDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")
	rootCmd.AddCommand(setupDBCmd)
}

func runSetupDB(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	databaseURL := setupDatabaseURL
	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	if databaseURL == "" {
		return fmt.Errorf("database URL is required (set DATABASE_URL or pass --db-url)")
	}

	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	if err := database.Setup(ctx); err != nil {
		return fmt.Errorf("failed to set up schema: %w", err)
	}

	fmt.Println("Database schema created successfully")
	return nil
}
