// Package services provides domain services that work across several value objects.
//
// The package includes:
//   - ShipmentPacker: greedy first-fit packing of order line items into parcels
//
// Services keep no state between calls and are safe for concurrent use.
package services
