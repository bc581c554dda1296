// Package cli exposes the shipping use cases as a cobra command tree.
// Every command prints its result as indented JSON.
package cli

import (
	"encoding/json"
	"io"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/application/usecases/queries"

	"github.com/spf13/cobra"
)

// Handlers are the use cases the commands run.
type Handlers struct {
	PackShipment    commands.PackShipmentCommandHandler
	ConvertQuantity queries.ConvertQuantityQueryHandler
	ListUnits       queries.ListUnitsQueryHandler
	MeasurePackage  queries.MeasurePackageQueryHandler
}

// NewRootCommand builds the command tree writing results to out.
//
// Example:
//
//	root := cli.NewRootCommand(handlers, os.Stdout)
//	root.SetArgs([]string{"convert", "2", "kg", "lb"})
//	err := root.ExecuteContext(ctx)
func NewRootCommand(h Handlers, out io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:   "shipping",
		Short: "Convert units, measure parcels and pack shipments",
		Long: `shipping converts mass and length quantities between metric and imperial
units, derives the billable measurements of a parcel and packs order lines
into weight-limited parcels.

Examples:
  shipping units mass
  shipping convert 2 kg lb
  shipping measure --weight 120 --weight-unit oz --dim 15 --dim 10 --dim 4.5
  shipping pack --item 2x600@10.00 --item 1x300 --max-weight 1000`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)

	root.AddCommand(
		newUnitsCommand(h.ListUnits),
		newConvertCommand(h.ConvertQuantity),
		newMeasureCommand(h.MeasurePackage),
		newPackCommand(h.PackShipment),
	)
	return root
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
