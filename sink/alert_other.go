//go:build !windows

package sink

import (
	"fmt"
	"os"
)

// Alert reports a logging failure that must reach the user even when
// the console itself is broken. Without a native dialog the message
// goes to standard error.
func Alert(title, text string) {
	fmt.Fprintf(os.Stderr, "%s: %s\n", title, text)
}
