package command

import (
	"fmt"

	"github.com/spf13/cobra"

	"cursohub/internal/http-api/models"
	"cursohub/internal/http-api/repository"
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "User account management commands",
}

var promoteUserCmd = &cobra.Command{
	Use:   "promote [email]",
	Short: "Promote a user to admin",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB()
		if err != nil {
			return err
		}

		repo := repository.NewUserRepository(db)
		user, err := repo.FindByEmail(args[0])
		if err != nil {
			return fmt.Errorf("user %s not found: %w", args[0], err)
		}

		user.Role = models.RoleAdmin
		if err := repo.Update(user); err != nil {
			return fmt.Errorf("failed to promote user: %w", err)
		}

		fmt.Printf("✓ %s is now an admin\n", user.Email)
		return nil
	},
}

var activateUserCmd = &cobra.Command{
	Use:   "activate [email]",
	Short: "Mark a user as paid by hand (bank transfer, refund reversal)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB()
		if err != nil {
			return err
		}

		repo := repository.NewUserRepository(db)
		if _, err := repo.FindByEmail(args[0]); err != nil {
			return fmt.Errorf("user %s not found: %w", args[0], err)
		}

		if err := repo.MarkPaid(args[0]); err != nil {
			return fmt.Errorf("failed to activate user: %w", err)
		}

		fmt.Printf("✓ %s now has course access\n", args[0])
		return nil
	},
}

func init() {
	userCmd.AddCommand(promoteUserCmd)
	userCmd.AddCommand(activateUserCmd)
	rootCmd.AddCommand(userCmd)
}
