package main

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-screener/internal/db"
)

var (
	exportConfigPath string
	exportOutput     string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export stored resumes as CSV",
	Long:  "Dump every stored resume record to CSV, to stdout or to a file with --output.",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportConfigPath, "config", "", "Path to JSON config file")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Write CSV to a file instead of stdout")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(exportConfigPath)
	if err != nil {
		return err
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("export requires a database URL (config or DATABASE_URL)")
	}

	database, err := db.Connect(cmd.Context(), cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer database.Close()

	resumes, err := database.ListResumes(cmd.Context(), "")
	if err != nil {
		return err
	}

	out := os.Stdout
	if exportOutput != "" {
		f, err := os.Create(exportOutput)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	writer := csv.NewWriter(out)
	if err := writer.Write([]string{"ID", "Filename", "Name", "Email", "Phone", "Skills"}); err != nil {
		return err
	}
	for _, r := range resumes {
		row := []string{r.ID.String(), r.Filename, r.Name, r.Email, r.Phone, r.Skills}
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return err
	}

	if exportOutput != "" {
		fmt.Printf("Exported %d resumes to %s\n", len(resumes), exportOutput)
	}
	return nil
}
