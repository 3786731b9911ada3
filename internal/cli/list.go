package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"osa-filters/internal/app"
)

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every registered filter name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			service, err := app.NewService(cmd.Context())
			if err != nil {
				return err
			}
			for _, name := range service.Registry.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}
