// Package formatter renders log entries into console lines.
//
// The Text formatter produces the two-line shape the console contract
// fixes: an application line
//
//	[APP] [2026-08-31 14:02:11.042133]: window created.
//
// and, when the entry carries a non-zero OS error code, a system line
// immediately after it
//
//	[SYS] [2026-08-31 14:02:11.042133]: permission denied
//
// Both lines of one entry are rendered into the same buffer so the pair
// reaches the sink in a single write and can never be split by another
// caller.
//
// Color is applied per severity as a fixed pair of escape attributes:
// the label segment carries the level's background color, the message
// its foreground color. Formatters built with Color false emit plain
// text for consoles where virtual-terminal processing is unavailable.
package formatter
