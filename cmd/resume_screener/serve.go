package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-screener/internal/db"
	"github.com/jonathan/resume-screener/internal/server"
)

var (
	serveConfigPath string
	servePort       int
	serveUploadDir  string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the resume screening API server",
	Long: `Start the HTTP server exposing resume upload, listing, scoring, export
and download endpoints. Requires a database URL via config or DATABASE_URL.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to JSON config file")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config)")
	serveCmd.Flags().StringVar(&serveUploadDir, "upload-dir", "", "Directory for uploaded files (overrides config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(serveConfigPath)
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Port = servePort
	}
	if serveUploadDir != "" {
		cfg.UploadDir = serveUploadDir
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("serve requires a database URL (config or DATABASE_URL)")
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

	srv, err := server.New(server.Config{
		Port:      cfg.Port,
		UploadDir: cfg.UploadDir,
		Store:     database,
		Parser:    parser,
	})
	if err != nil {
		return err
	}

	return srv.Start()
}
