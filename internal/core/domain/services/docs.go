// Package services provides domain services that combine a Delivery with its
// freight calculator to produce shipping documents.
//
// The package includes:
//   - LabelService: renders the shipping label and the one-line order summary
package services
