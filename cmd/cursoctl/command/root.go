package command

// root.go defines the root command for the cursoctl admin tool.
// Subcommands talk to postgres directly, not through the API.

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"cursohub/database"
	"cursohub/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "cursoctl",
	Short: "cursoctl - course platform admin tool",
	Long: `cursoctl performs admin operations against the course database:
- Seed the lesson catalog and downloadable resources from JSON files
- Promote a user to admin or activate a paid account by hand
- Reset a student's progress

Connection settings come from the same environment (.env) the API server uses.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// openDB loads the shared configuration and connects to postgres.
func openDB() (*gorm.DB, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	db, err := database.OpenGorm(cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	if err := database.AutoMigrate(db); err != nil {
		return nil, err
	}
	return db, nil
}
