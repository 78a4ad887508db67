// Package sink abstracts the console output target behind a small
// capability interface: open, write a line, restore the display mode,
// close.
//
// One concrete implementation exists per platform. On Windows, Console
// allocates a console for GUI-subsystem processes that have none,
// redirects standard output to it, and enables virtual-terminal
// processing so color escapes render; Close releases exactly what Open
// created, and an inherited console is left as found. On POSIX systems
// standard output always exists, so the console sink is a thin colored
// writer.
//
// Memory is an in-memory sink for tests. It records written lines and
// the order of lifecycle calls so teardown ordering can be asserted.
//
// Sinks count their writes in Stats; tests use the counters to prove
// that filtered calls produced no console traffic.
package sink
