// Package ungapped scores (query, target) pairs along a single diagonal
// without gaps.
//
// Layout:
//   - substitution.go: local running-max, boundary-tracking and global-sum scans
//   - identity.go:     chunked identity (match) counter
//   - diagonal.go:     compact-diagonal reconstruction and best-diagonal search
//
// Every function here is pure: inputs are borrowed read-only and results are
// returned by value, so callers may fan out across goroutines freely.
// Residue codes must already be valid indices into the substitution table.
//
// This package has no app/output deps; engine can import it cleanly.
package ungapped
