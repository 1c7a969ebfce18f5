package cli

import (
	"github.com/spf13/cobra"
)

func newListCmd(outputFormat *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List backend collections",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "users",
		Short: "List registered users, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			users, err := app.Services.Directory.List(cmd.Context())
			if err != nil {
				return err
			}
			NewOutput(*outputFormat).Print(users)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "partners",
		Short: "List active partners",
		RunE: func(cmd *cobra.Command, args []string) error {
			partners, err := app.Services.Partner.ListPartners(cmd.Context())
			if err != nil {
				return err
			}
			NewOutput(*outputFormat).Print(partners)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "candidates",
		Short: "List partner candidates awaiting verification",
		RunE: func(cmd *cobra.Command, args []string) error {
			candidates, err := app.Services.Partner.ListCandidates(cmd.Context())
			if err != nil {
				return err
			}
			NewOutput(*outputFormat).Print(candidates)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "services",
		Short: "List service offerings",
		RunE: func(cmd *cobra.Command, args []string) error {
			services, err := app.Services.Catalog.List(cmd.Context())
			if err != nil {
				return err
			}
			NewOutput(*outputFormat).Print(services)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "incoming-orders",
		Short: "List pending orders",
		RunE: func(cmd *cobra.Command, args []string) error {
			orders, err := app.Services.Order.ListIncoming(cmd.Context())
			if err != nil {
				return err
			}
			NewOutput(*outputFormat).Print(orders)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "order-history",
		Short: "List completed and cancelled orders",
		RunE: func(cmd *cobra.Command, args []string) error {
			orders, err := app.Services.Order.ListHistory(cmd.Context())
			if err != nil {
				return err
			}
			NewOutput(*outputFormat).Print(orders)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "ratings",
		Short: "List partner ratings",
		RunE: func(cmd *cobra.Command, args []string) error {
			ratings, err := app.Services.Feedback.ListRatings(cmd.Context())
			if err != nil {
				return err
			}
			NewOutput(*outputFormat).Print(ratings)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "complaints",
		Short: "List user complaints",
		RunE: func(cmd *cobra.Command, args []string) error {
			complaints, err := app.Services.Feedback.ListComplaints(cmd.Context())
			if err != nil {
				return err
			}
			NewOutput(*outputFormat).Print(complaints)
			return nil
		},
	})

	return cmd
}
