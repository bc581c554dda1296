package cli

import (
	"shipping/internal/core/application/usecases/queries"

	"github.com/spf13/cobra"
)

func newMeasureCommand(handler queries.MeasurePackageQueryHandler) *cobra.Command {
	var (
		weight     float64
		weightUnit string
		dims       []float64
		dimUnit    string
		units      string
		value      string
		currency   string
		cylinder   bool
	)

	cmd := &cobra.Command{
		Use:   "measure",
		Short: "Derive the billable measurements of a parcel",
		Long: `Derive the volumetric and billable weight, girth and volume of a parcel.

Units default to the parcel's system: metric unless the weight or every
dimension is imperial, or --units says otherwise.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			desc := queries.PackageDescription{
				Weight:   queries.Amount{Value: weight, Unit: weightUnit},
				Units:    units,
				Currency: currency,
				Cylinder: cylinder,
			}
			for _, d := range dims {
				desc.Dimensions = append(desc.Dimensions, queries.Amount{Value: d, Unit: dimUnit})
			}
			if value != "" {
				desc.Value = value
			}

			query, err := queries.NewMeasurePackageQuery(desc)
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

	cmd.Flags().Float64VarP(&weight, "weight", "w", 0, "weight of the parcel")
	cmd.Flags().StringVar(&weightUnit, "weight-unit", "", "unit of the weight (default from the unit system)")
	cmd.Flags().Float64SliceVarP(&dims, "dim", "d", nil, "a dimension, up to three")
	cmd.Flags().StringVar(&dimUnit, "dim-unit", "", "unit of the dimensions (default from the unit system)")
	cmd.Flags().StringVarP(&units, "units", "u", "", "unit system (metric, imperial)")
	cmd.Flags().StringVar(&value, "value", "", "declared value; with a decimal point in major units, otherwise cents")
	cmd.Flags().StringVar(&currency, "currency", "", "currency of the declared value")
	cmd.Flags().BoolVar(&cylinder, "cylinder", false, "measure the parcel as a cylinder")
	_ = cmd.MarkFlagRequired("weight")

	return cmd
}
