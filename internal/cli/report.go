package cli

import (
	"github.com/spf13/cobra"
)

func newReportCmd(outputFormat *string) *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Show aggregate marketplace figures",
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, err := app.Services.Report.Summarize(cmd.Context())
			if err != nil {
				return err
			}
			NewOutput(*outputFormat).Print(summary)
			return nil
		},
	}
}
