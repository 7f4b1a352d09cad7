package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/voxcast/voxcast-api/internal/database"
	"github.com/voxcast/voxcast-api/pkg/config"
)

// migrateCmd applies the database schema and seeds the default personas
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations",
	Long: `Apply the database schema for the Voxcast Studio API.

Creates or updates the tables for projects, documents, chunks,
generations, citations, personas, and jobs, then seeds the built-in
persona roster. Safe to run repeatedly.`,
	RunE: runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	db, err := database.Initialize(cfg.Database.Path, cfg.Database.Verbose)
	if err != nil {
		return fmt.Errorf("initializing database: %w", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		return fmt.Errorf("migrating database: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Database migrated at %s\n", cfg.Database.Path)
	return nil
}
