package cli

import (
	"fmt"
	"strconv"
	"strings"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/domain/model/parcel"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/core/domain/services"

	"github.com/spf13/cobra"
)

type packedPackage struct {
	Grams        float64    `json:"grams"`
	ValueCents   int64      `json:"valueCents"`
	DimensionsCm [3]float64 `json:"dimensionsCm"`
}

type packedShipment struct {
	ID           string          `json:"id"`
	Currency     string          `json:"currency"`
	PackageCount int             `json:"packageCount"`
	TotalGrams   float64         `json:"totalGrams"`
	TotalCents   int64           `json:"totalCents"`
	Packages     []packedPackage `json:"packages"`
}

func newPackCommand(handler commands.PackShipmentCommandHandler) *cobra.Command {
	var (
		items     []string
		dims      []float64
		maxWeight float64
		currency  string
	)

	cmd := &cobra.Command{
		Use:   "pack",
		Short: "Pack order lines into weight-limited parcels",
		Long: `Pack order lines into parcels of a fixed size, in order, without exceeding
the maximum weight of a parcel.

An item is QUANTITYxGRAMS with an optional @PRICE per unit, for example
2x600@10.00 (two units of 600 g at 10.00 each) or 1x300@250 (250 cents).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			lines := make([]services.LineItem, 0, len(items))
			for _, raw := range items {
				item, err := parseLineItem(raw)
				if err != nil {
					return err
				}
				lines = append(lines, item)
			}

			command, err := commands.NewPackShipmentCommand(lines, dims, maxWeight, currency)
			if err != nil {
				return err
			}

			batch, err := handler.Handle(cmd.Context(), command)
			if err != nil {
				return err
			}

			out, err := presentBatch(batch)
			if err != nil {
				return err
			}
			return printJSON(cmd, out)
		},
	}

	cmd.Flags().StringArrayVarP(&items, "item", "i", nil, "an order line as QUANTITYxGRAMS[@PRICE]")
	cmd.Flags().Float64SliceVarP(&dims, "dims", "d", nil, "parcel dimensions in centimetres, up to three")
	cmd.Flags().Float64VarP(&maxWeight, "max-weight", "m", 0, "maximum weight of a parcel in grams")
	cmd.Flags().StringVarP(&currency, "currency", "c", "", "currency of the item prices")
	_ = cmd.MarkFlagRequired("max-weight")

	return cmd
}

// parseLineItem reads QUANTITYxGRAMS[@PRICE].
func parseLineItem(raw string) (services.LineItem, error) {
	line, price, hasPrice := strings.Cut(strings.TrimSpace(raw), "@")

	qty, grams, ok := strings.Cut(line, "x")
	if !ok {
		return services.LineItem{}, fmt.Errorf("item %q: expected QUANTITYxGRAMS[@PRICE]", raw)
	}

	quantity, err := strconv.Atoi(qty)
	if err != nil {
		return services.LineItem{}, fmt.Errorf("item %q: quantity: %w", raw, err)
	}
	weight, err := strconv.ParseFloat(grams, 64)
	if err != nil {
		return services.LineItem{}, fmt.Errorf("item %q: grams: %w", raw, err)
	}

	var value any
	if hasPrice {
		value = price
	}
	return services.NewLineItem(quantity, weight, value)
}

func presentBatch(batch *shipment.PackedBatch) (packedShipment, error) {
	out := packedShipment{
		ID:           batch.ID().String(),
		Currency:     batch.Currency(),
		PackageCount: batch.Count(),
		TotalGrams:   batch.TotalGrams(),
		TotalCents:   batch.TotalCents(),
		Packages:     make([]packedPackage, 0, batch.Count()),
	}
	for _, pkg := range batch.Packages() {
		grams, err := pkg.Grams(parcel.Actual)
		if err != nil {
			return packedShipment{}, err
		}
		cents, _ := pkg.Value()
		out.Packages = append(out.Packages, packedPackage{
			Grams:        grams,
			ValueCents:   cents,
			DimensionsCm: pkg.AllCentimetres(),
		})
	}
	return out, nil
}
