// Package word provides generic bit arithmetic over fixed-width unsigned words.
//
// All position arguments are bit offsets already reduced into [0, Width).
// Go shifts by an amount >= the operand width yield zero instead of wrapping,
// so callers must reduce offsets before building masks.
//
// Used internally for:
//   - Single-bit masks for get/set
//   - Span masks for partial first/last words of ranged fills
//   - Whole-word fills, popcount and set-bit scanning
package word
