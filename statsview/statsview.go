//go:build statsview
// +build statsview

package statsview

import (
	"fmt"
	"io"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
)

/// Address the stats server listens on.
///
const Address = "localhost:12600"

const url = "/debug/statsview"

/// Launch the stats server in the background.
///
func Launch(output io.Writer) {
	go func() {
		viewer.SetConfiguration(viewer.WithAddr(Address))
		mgr := statsview.New()
		mgr.Start()
	}()

	fmt.Fprintf(output, "stats server available at %s%s\n", Address, url)
}

/// Available returns true if the stats server can be launched.
///
func Available() bool {
	return true
}
