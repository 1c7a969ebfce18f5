package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newAdminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Admin credential management",
	}

	cmd.AddCommand(newAdminRegisterCmd())
	cmd.AddCommand(newAdminUpdateCmd())

	return cmd
}

func newAdminRegisterCmd() *cobra.Command {
	var email, pass string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a new admin credential",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Services.Session.Register(cmd.Context(), email, pass); err != nil {
				return err
			}
			fmt.Printf("Registered %s\n", email)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Admin email (required)")
	cmd.Flags().StringVar(&pass, "pass", "", "Admin password (required)")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("pass")

	return cmd
}

func newAdminUpdateCmd() *cobra.Command {
	var oldEmail, newEmail, newPass string

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update an admin credential in place",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Services.Session.UpdateAdmin(cmd.Context(), oldEmail, newEmail, newPass); err != nil {
				return err
			}
			fmt.Printf("Updated %s -> %s\n", oldEmail, newEmail)
			return nil
		},
	}

	cmd.Flags().StringVar(&oldEmail, "old-email", "", "Current admin email (required)")
	cmd.Flags().StringVar(&newEmail, "email", "", "New admin email (required)")
	cmd.Flags().StringVar(&newPass, "pass", "", "New admin password (required)")
	_ = cmd.MarkFlagRequired("old-email")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("pass")

	return cmd
}
