package command

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"cursohub/internal/http-api/models"
	"cursohub/internal/http-api/repository"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed catalog data from JSON files",
}

var seedLessonsCmd = &cobra.Command{
	Use:   "lessons [file.json]",
	Short: "Load lessons from a JSON array",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var lessons []models.Lesson
		if err := readJSONFile(args[0], &lessons); err != nil {
			return err
		}

		db, err := openDB()
		if err != nil {
			return err
		}

		repo := repository.NewLessonRepository(db)
		for i := range lessons {
			if !models.ValidModule(lessons[i].Module) {
				return fmt.Errorf("lesson %q: unknown module %q", lessons[i].Title, lessons[i].Module)
			}
			if err := repo.Create(context.Background(), &lessons[i]); err != nil {
				return fmt.Errorf("failed to create lesson %q: %w", lessons[i].Title, err)
			}
		}

		fmt.Printf("✓ Seeded %d lessons\n", len(lessons))
		return nil
	},
}

var seedResourcesCmd = &cobra.Command{
	Use:   "resources [file.json]",
	Short: "Load downloadable resources from a JSON array",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var resources []models.Resource
		if err := readJSONFile(args[0], &resources); err != nil {
			return err
		}

		db, err := openDB()
		if err != nil {
			return err
		}

		repo := repository.NewResourceRepository(db)
		for i := range resources {
			if !models.ValidCategory(resources[i].Category) {
				return fmt.Errorf("resource %q: unknown category %q", resources[i].Name, resources[i].Category)
			}
			if err := repo.Create(context.Background(), &resources[i]); err != nil {
				return fmt.Errorf("failed to create resource %q: %w", resources[i].Name, err)
			}
		}

		fmt.Printf("✓ Seeded %d resources\n", len(resources))
		return nil
	},
}

func readJSONFile(path string, target interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

func init() {
	seedCmd.AddCommand(seedLessonsCmd)
	seedCmd.AddCommand(seedResourcesCmd)
	rootCmd.AddCommand(seedCmd)
}
