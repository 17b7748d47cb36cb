// Package kernel holds the value objects shared by every aggregate of the
// pickup-request pipeline: UUID identifiers, geocoded Coordinates and manager
// Phone numbers. Each one is immutable and invalid as a zero value.
package kernel
