// Package kernel provides shared value objects used across the domain model.
//
// The package includes:
//   - UUID: An immutable identifier value object wrapping github.com/google/uuid
//   - Location: A validated geographic coordinate pair for delivery addresses
//
// All kernel types are constructed through factory functions that enforce
// validation, so a value that exists is a value that is valid. Zero values are
// detectable via Validate() and rejected by consumers.
package kernel
