// File: errors.go
// Role: sentinel errors for the variation package.

package variation

import "errors"

// ErrFileMissing indicates the variation table file could not be opened.
var ErrFileMissing = errors.New("variation: table file missing or unreadable")

// ErrInvalidLevel indicates a Key was constructed with Level not in {3,4}.
var ErrInvalidLevel = errors.New("variation: level must be 3 or 4")
