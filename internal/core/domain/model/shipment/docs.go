// Package shipment holds the result of packing an order: a batch of parcels with
// an identifier and the totals a carrier quote needs.
package shipment
