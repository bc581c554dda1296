// Package parcel models a physical shipping package on top of the measure package.
//
// A Package holds a weight and three dimensions, always sorted ascending and padded
// to three, and derives the measurements carriers price on: volumetric and billable
// weight, girth and volume (with cylinder variants), in metric or imperial units.
// It also normalises a declared monetary value to integer cents.
package parcel
