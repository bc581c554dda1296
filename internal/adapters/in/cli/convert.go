package cli

import (
	"fmt"
	"strconv"

	"shipping/internal/core/application/usecases/queries"

	"github.com/spf13/cobra"
)

func newConvertCommand(handler queries.ConvertQuantityQueryHandler) *cobra.Command {
	return &cobra.Command{
		Use:   "convert <amount> <from> <to>",
		Short: "Convert an amount between two units of the same kind",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("amount %q: %w", args[0], err)
			}

			query, err := queries.NewConvertQuantityQuery(amount, args[1], args[2])
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
