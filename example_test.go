//go:build !guilog_release

package guilog_test

import (
	"github.com/guilog/guilog"
	"github.com/guilog/guilog/syserr"
)

// Typical lifetime of the logger inside a graphical application.
func Example() {
	defer guilog.Shutdown()

	guilog.SetLogLevel(guilog.Info)
	guilog.Infof("window created: %dx%d", 1280, 720)
	guilog.Tracef("not shown below the Info threshold")

	if err := saveSettings(); err != nil {
		// Record the failed call's OS code; Failf prints the [APP]
		// line and a [SYS] line with the OS message, then clears the
		// indicator.
		syserr.Record(err)
		guilog.Failf("saving settings failed")
	}
}

func saveSettings() error { return nil }
