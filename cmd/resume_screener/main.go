// Package main provides the entry point for the resume screener CLI and API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_screener",
	Short: "Resume screening pipeline",
	Long:  "Resume Screener extracts structured candidate fields from PDF/DOCX resumes and ranks them against a job description by skill relevance.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
