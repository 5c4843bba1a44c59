// Package pipeline fans candidate pairs out to an Engine-like Rescorer,
// drops repeated candidates, and hands hits back in input order.
//
// The only contracts to implement are Rescorer and Source.
// This keeps the pipeline swappable and testable.
package pipeline
