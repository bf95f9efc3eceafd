package layout

import "errors"

// ErrNotFound is returned when an operation references a pane id that is
// not present in the tree.
var ErrNotFound = errors.New("layout: pane not found")
