// Package main provides the entry point for the Talent Hub backend.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "talenthub",
	Short: "Talent Hub backend",
	Long:  "Talent Hub manages talent profiles and opportunities, parses uploaded resumes into structured form data via LLM extraction, and recommends courses for career growth.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
