package braciole

import "errors"

// ErrCancelled is returned by Show when the user backs out of the menu
// without selecting anything.
var ErrCancelled = errors.New("cancelled")
