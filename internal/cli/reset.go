package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newResetCmd() *cobra.Command {
	var confirm string

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete every row of every backend table",
		Long: `reset deletes all rows from all seven backend tables, children first.

The operation is not transactional: a failure aborts the sequence and
leaves tables already cleared empty. It requires the exact confirmation
phrase via --confirm.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Services.Maintenance.ResetAll(cmd.Context(), confirm); err != nil {
				return err
			}
			fmt.Println("All tables cleared")
			return nil
		},
	}

	cmd.Flags().StringVar(&confirm, "confirm", "", "Confirmation phrase (required)")
	_ = cmd.MarkFlagRequired("confirm")

	return cmd
}
