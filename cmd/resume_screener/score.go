package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-screener/internal/db"
	"github.com/jonathan/resume-screener/internal/observability"
	"github.com/jonathan/resume-screener/internal/types"
)

var (
	scoreConfigPath string
	scoreJobFile    string
	scoreVerbose    bool
)

var scoreCmd = &cobra.Command{
	Use:   "score [job description]",
	Short: "Rank stored resumes against a job description",
	Long: `Score every resume in the database against a job description and print
them ranked by relevance. The job description is read from the positional
arguments, or from a file with --job-file.`,
	RunE: runScore,
}

func init() {
	scoreCmd.Flags().StringVar(&scoreConfigPath, "config", "", "Path to JSON config file")
	scoreCmd.Flags().StringVar(&scoreJobFile, "job-file", "", "Read the job description from a file")
	scoreCmd.Flags().BoolVar(&scoreVerbose, "verbose", false, "Print formatted output instead of JSON")
	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, args []string) error {
	jobDescription, err := resolveJobDescription(args)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(scoreConfigPath)
	if err != nil {
		return err
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("score requires a database URL (config or DATABASE_URL)")
	}

	parser, err := newParser(cfg)
	if err != nil {
		return err
	}

	database, err := db.Connect(cmd.Context(), cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer database.Close()

	stored, err := database.ListResumes(cmd.Context(), "")
	if err != nil {
		return err
	}

	batch := make([]types.ScoredResume, 0, len(stored))
	byID := make(map[uuid.UUID]types.StoredResume, len(stored))
	for _, resume := range stored {
		batch = append(batch, types.ScoredResume{ID: resume.ID, SkillsText: resume.Skills})
		byID[resume.ID] = resume
	}

	ranked := parser.ScoreAndRank(jobDescription, batch)

	results := make([]types.RankedResume, 0, len(ranked))
	for _, scored := range ranked {
		resume := byID[scored.ID]
		results = append(results, types.RankedResume{
			ID:       scored.ID,
			Filename: resume.Filename,
			Name:     resume.Name,
			Skills:   scored.SkillsText,
			Score:    scored.Score,
		})
	}

	if scoreVerbose || cfg.Verbose {
		observability.NewPrinter(os.Stdout).PrintRanking(results)
		return nil
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(results)
}

func resolveJobDescription(args []string) (string, error) {
	if scoreJobFile != "" {
		data, err := os.ReadFile(scoreJobFile)
		if err != nil {
			return "", fmt.Errorf("failed to read job description file: %w", err)
		}
		return string(data), nil
	}
	if len(args) == 0 {
		return "", fmt.Errorf("provide a job description as arguments or via --job-file")
	}
	return strings.Join(args, " "), nil
}
