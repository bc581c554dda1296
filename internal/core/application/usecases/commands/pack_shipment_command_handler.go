package commands

import (
	"context"
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/core/domain/services"
	"shipping/internal/core/ports"
	"shipping/internal/pkg/logging"

	"go.uber.org/zap"
)

// PackShipmentCommandHandler packs an order and wraps the parcels in a PackedBatch.
// Every request is reported to the packing metrics, successful or not.
//
// Example:
//
//	handler := NewPackShipmentCommandHandler(packer, metrics, logger, "USD")
//	batch, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, services.ErrOverweightItem) {
//	    // tell the caller which limit was hit
//	}
type PackShipmentCommandHandler struct {
	packer          ShipmentPacker
	metrics         ports.PackingMetrics
	logger          *zap.Logger
	defaultCurrency string
}

// NewPackShipmentCommandHandler creates a handler.
// defaultCurrency is used for commands that carry no currency.
func NewPackShipmentCommandHandler(
	packer ShipmentPacker,
	metrics ports.PackingMetrics,
	logger *zap.Logger,
	defaultCurrency string,
) PackShipmentCommandHandler {
	return PackShipmentCommandHandler{
		packer:          packer,
		metrics:         metrics,
		logger:          logging.Component(logger, "pack_shipment"),
		defaultCurrency: defaultCurrency,
	}
}

// Handle packs the command's items.
// Packing is all or nothing: on error no batch is returned.
func (h PackShipmentCommandHandler) Handle(ctx context.Context, cmd PackShipmentCommand) (*shipment.PackedBatch, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	currency := cmd.Currency()
	if currency == "" {
		currency = h.defaultCurrency
	}

	packages, err := h.packer.Pack(cmd.Items(), cmd.Dimensions(), cmd.MaxWeightGrams(), currency)
	if err != nil {
		result := ports.PackingFailed
		if errors.Is(err, services.ErrOverweightItem) || errors.Is(err, services.ErrExcessPackageQuantity) {
			result = ports.PackingRejected
		}
		h.metrics.ObservePacking(result, 0)
		h.logger.Warn("shipment not packed",
			zap.String("result", string(result)),
			zap.Int("lines", len(cmd.Items())),
			zap.Float64("max_weight_grams", cmd.MaxWeightGrams()),
			zap.Error(err),
		)
		return nil, err
	}

	batch, err := shipment.NewPackedBatch(kernel.NewUUID(), packages, currency)
	if err != nil {
		h.metrics.ObservePacking(ports.PackingFailed, 0)
		return nil, err
	}

	h.metrics.ObservePacking(ports.PackingSucceeded, batch.Count())
	h.logger.Info("shipment packed",
		zap.Stringer("batch_id", batch.ID()),
		zap.Int("packages", batch.Count()),
		zap.Float64("total_grams", batch.TotalGrams()),
		zap.Int64("total_cents", batch.TotalCents()),
		zap.String("currency", batch.Currency()),
	)

	return batch, nil
}
