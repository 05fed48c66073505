package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-screener/internal/db"
	"github.com/jonathan/resume-screener/internal/observability"
)

var (
	parseConfigPath string
	parseVerbose    bool
	parseSave       bool
)

var parseCmd = &cobra.Command{
	Use:   "parse <file> [file...]",
	Short: "Parse resume documents into structured records",
	Long: `Parse one or more PDF/DOCX resumes, extracting name, email, phone and
matched skills. Failures are reported per file; the batch continues.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().StringVar(&parseConfigPath, "config", "", "Path to JSON config file")
	parseCmd.Flags().BoolVar(&parseVerbose, "verbose", false, "Print formatted output instead of JSON")
	parseCmd.Flags().BoolVar(&parseSave, "save", false, "Persist parsed records to the database (requires DATABASE_URL)")
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(parseConfigPath)
	if err != nil {
		return err
	}

	parser, err := newParser(cfg)
	if err != nil {
		return err
	}

	var database *db.DB
	if parseSave {
		if cfg.DatabaseURL == "" {
			return fmt.Errorf("--save requires a database URL (config or DATABASE_URL)")
		}
		database, err = db.Connect(cmd.Context(), cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer database.Close()
	}

	printer := observability.NewPrinter(os.Stdout)
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	failed := 0
	for _, path := range args {
		record, err := parser.ParseDocument(path)
		if err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "Warning: %s: %v\n", path, err)
			continue
		}

		if parseVerbose || cfg.Verbose {
			printer.PrintRecord(filepath.Base(path), record)
		} else {
			if err := encoder.Encode(record); err != nil {
				return err
			}
		}

		if database != nil {
			id, err := database.SaveResume(cmd.Context(), filepath.Base(path), record)
			if err != nil {
				return fmt.Errorf("failed to save %s: %w", path, err)
			}
			fmt.Printf("Saved %s as %s\n", filepath.Base(path), id)
		}
	}

	if failed > 0 {
		fmt.Fprintf(os.Stderr, "Parsed %d of %d files (%d failed)\n", len(args)-failed, len(args), failed)
	}
	if failed == len(args) {
		return fmt.Errorf("all %d files failed to parse", failed)
	}
	return nil
}
