// Package syserr models the operating system's "last error" indicator
// for the logging path.
//
// The indicator is a single process-wide slot. Host code records the
// error code of a failed system call with Record or Set; the logging
// helpers read it with Capture and hand it to the logger, which clears
// it once the event has been written or deliberately suppressed. The
// clear happens in both cases so a stale code is never attributed to a
// later, unrelated operation.
//
// Message translates a code into the operating system's human-readable
// text for it.
package syserr
