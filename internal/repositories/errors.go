package repositories

import "errors"

// ErrNotFound is returned (wrapped) by every repository lookup that finds no
// matching row, so callers can branch with errors.Is regardless of the
// backing implementation.
var ErrNotFound = errors.New("record not found")
