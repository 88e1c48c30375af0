//go:build !statsview
// +build !statsview

package statsview

import "io"

/// Launch does nothing without the statsview build tag.
///
func Launch(_ io.Writer) {
}

/// Available returns true if the stats server can be launched.
///
func Available() bool {
	return false
}
