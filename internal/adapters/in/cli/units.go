package cli

import (
	"shipping/internal/core/application/usecases/queries"

	"github.com/spf13/cobra"
)

func newUnitsCommand(handler queries.ListUnitsQueryHandler) *cobra.Command {
	return &cobra.Command{
		Use:   "units <kind>",
		Short: "List the units of a kind (mass, length)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query, err := queries.NewListUnitsQuery(args[0])
			if err != nil {
				return err
			}

			res, err := handler.Handle(cmd.Context(), query)
			if err != nil {
				return err
			}
			return printJSON(cmd, res)
		},
	}
}
