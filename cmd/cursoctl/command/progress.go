package command

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"cursohub/internal/http-api/repository"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Progress ledger commands",
}

var resetProgressCmd = &cobra.Command{
	Use:   "reset [email] [lesson-id]",
	Short: "Reset a student's progress, for one lesson or the whole course",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB()
		if err != nil {
			return err
		}

		repo := repository.NewProgressRepository(db)
		email := args[0]

		rows, err := repo.GetAllProgress(context.Background(), email)
		if err != nil {
			return fmt.Errorf("failed to load progress for %s: %w", email, err)
		}
		if len(rows) == 0 {
			fmt.Printf("No progress recorded for %s.\n", email)
			return nil
		}

		var onlyLesson int64
		if len(args) == 2 {
			onlyLesson, err = strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid lesson ID: %w", err)
			}
		}

		deleted := 0
		for _, row := range rows {
			if onlyLesson != 0 && row.LessonID != onlyLesson {
				continue
			}
			if err := repo.DeleteProgress(context.Background(), row.ID); err != nil {
				return fmt.Errorf("failed to delete progress row %d: %w", row.ID, err)
			}
			deleted++
		}

		fmt.Printf("✓ Reset %d progress rows for %s\n", deleted, email)
		return nil
	},
}

func init() {
	progressCmd.AddCommand(resetProgressCmd)
	rootCmd.AddCommand(progressCmd)
}
