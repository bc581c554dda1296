// Package kernel holds the value objects shared by every shipping aggregate.
// Today that is the UUID used to identify packed shipments.
package kernel
