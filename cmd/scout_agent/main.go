// Package main provides the entry point for the Transfer Scout CLI and API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "scout_agent",
	Short: "Transfer Scout recommendation service",
	Long:  "Transfer Scout ranks available players against a club's stated needs, combining squad-fit, performance, availability, and news-derived signals into explained recommendations.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
