package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tms/internal/domain"
	"tms/internal/service"
)

var (
	adminEmail string
	adminName  string
)

var createAdminCmd = &cobra.Command{
	Use:   "create-admin",
	Short: "Create the first admin user",
	Long: `Create-admin inserts an admin account so the API can be used. The
password is read from TMS_ADMIN_PASSWORD.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		password := os.Getenv("TMS_ADMIN_PASSWORD")
		if password == "" {
			return fmt.Errorf("TMS_ADMIN_PASSWORD is not set")
		}

		b, err := openBackend()
		if err != nil {
			return err
		}
		defer b.Close()

		user, err := b.users.Create(cmd.Context(), service.CreateUserInput{
			Email:    adminEmail,
			Password: password,
			FullName: adminName,
			Role:     domain.RoleAdmin,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "created admin %s (%s)\n", user.Email, user.ID)
		return nil
	},
}

func init() {
	createAdminCmd.Flags().StringVar(&adminEmail, "email", "", "admin email")
	createAdminCmd.Flags().StringVar(&adminName, "name", "Administrator", "admin full name")
	_ = createAdminCmd.MarkFlagRequired("email")
	rootCmd.AddCommand(createAdminCmd)
}
