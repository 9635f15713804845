// File: errors.go
// Role: sentinel errors for the store package.
//
// Error policy (matches the convention used throughout this module):
//   - Only sentinel package-level variables are exposed.
//   - Callers branch with errors.Is(err, ErrX), never string comparison.
//   - Sentinels are never wrapped with formatted strings at definition site;
//     call sites attach context with fmt.Errorf("...: %w", ErrX).

package store

import "errors"

// ErrLengthMismatch indicates the lengths of Offsets/Adjacency/Weights
// passed to Assign are inconsistent (|Adjacency| != Offsets[last], or
// |Weights| != |Adjacency| when weights are supplied).
var ErrLengthMismatch = errors.New("store: offsets/adjacency/weights length mismatch")

// ErrInvariantViolation indicates a structural invariant of the CSR layout
// was violated: non-monotonic offsets, Offsets[0] != 0, an out-of-range
// adjacency entry, or a neighbor slice that is not strictly sorted.
var ErrInvariantViolation = errors.New("store: structural invariant violation")

// ErrGraphFileMissing indicates the requested binary graph file could not
// be opened for reading.
var ErrGraphFileMissing = errors.New("store: graph file missing or unreadable")

// ErrGraphFileCorrupt indicates a binary graph file was opened but its
// contents do not match the expected fixed-shape layout: a negative edge
// count, or a short read (the file ends before the sections its node and
// edge counts imply). Trailing bytes after the directed flag are not
// detected.
var ErrGraphFileCorrupt = errors.New("store: graph file malformed")

// ErrNodeOutOfRange indicates a node id argument was not in [0, n).
var ErrNodeOutOfRange = errors.New("store: node id out of range")
