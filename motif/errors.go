// File: errors.go
// Role: sentinel errors for the motif package.

package motif

import "errors"

// ErrInvalidLevel indicates NewEngine was asked for a level other than 3
// or 4.
var ErrInvalidLevel = errors.New("motif: level must be 3 or 4")

// ErrNilTable indicates NewEngine was given a nil variation.Table.
var ErrNilTable = errors.New("motif: variation table is required")

// ErrNilGraph indicates Bind was called with a nil store.View.
var ErrNilGraph = errors.New("motif: graph is nil")

// ErrNotBound indicates Calculate was called before Bind (state
// Configured) or the engine is otherwise not in the Bound state.
var ErrNotBound = errors.New("motif: engine is not in the Bound state")
