// Package commands contains the operations that produce new shipping state.
// Every command is built and validated by its constructor and executed by a
// handler that receives its collaborators explicitly.
package commands

import (
	"shipping/internal/core/domain/model/parcel"
	"shipping/internal/core/domain/services"
)

// ShipmentPacker splits line items into parcels.
// *services.ShipmentPacker implements it.
type ShipmentPacker interface {
	Pack(items []services.LineItem, dimensions []float64, maxWeightGrams float64, currency string) ([]parcel.Package, error)
}
